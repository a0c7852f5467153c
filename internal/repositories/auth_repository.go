package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"event_agency_backend/internal/models"
)

// AuthRepository defines the interface for credential lookups.
type AuthRepository interface {
	FindUserByUsername(username string) (*models.User, error)
}

type authRepository struct {
	db *sql.DB
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(db *sql.DB) AuthRepository {
	return &authRepository{db: db}
}

// FindUserByUsername retrieves a user by exact username match. The returned
// model carries the password hash for the login comparison; callers must
// never serialize it.
func (r *authRepository) FindUserByUsername(username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password_hash, name, role, created_at
	          FROM users WHERE username = $1`

	err := r.db.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Name, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding user by username: %v", ErrDatabaseError, err)
	}
	return user, nil
}
