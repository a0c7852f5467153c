package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"event_agency_backend/internal/models"

	"github.com/lib/pq"
)

// ClientRepository defines the interface for client-related database operations.
type ClientRepository interface {
	CreateClient(executor SQLExecutor, client *models.Client) (int64, error)
	GetClients() ([]models.Client, error)
}

type clientRepository struct {
	db *sql.DB
}

// NewClientRepository creates a new instance of ClientRepository.
func NewClientRepository(db *sql.DB) ClientRepository {
	return &clientRepository{db: db}
}

// CreateClient inserts a new client and returns the generated identifier.
func (r *clientRepository) CreateClient(executor SQLExecutor, client *models.Client) (int64, error) {
	query := `INSERT INTO clients (name, cpf, phone, email, address, notes)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at`

	err := executor.QueryRow(query,
		client.Name, client.CPF, client.Phone, client.Email, client.Address, client.Notes,
	).Scan(&client.ID, &client.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating client: %v", ErrDatabaseError, err)
	}
	return client.ID, nil
}

// GetClients retrieves all clients ordered by name ascending.
func (r *clientRepository) GetClients() ([]models.Client, error) {
	clients := []models.Client{}
	query := `SELECT id, name, cpf, phone, email, address, notes, created_at
	          FROM clients ORDER BY name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying clients: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var client models.Client
		if err := rows.Scan(
			&client.ID, &client.Name, &client.CPF, &client.Phone,
			&client.Email, &client.Address, &client.Notes, &client.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning client: %v", ErrDatabaseError, err)
		}
		clients = append(clients, client)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating client rows: %v", ErrDatabaseError, err)
	}

	return clients, nil
}
