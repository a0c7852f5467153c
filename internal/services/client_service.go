package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"event_agency_backend/internal/models"
	"event_agency_backend/internal/repositories"
)

// ErrClientValidation is returned when client data fails validation.
var ErrClientValidation = errors.New("client data validation error")

// CreateClientRequest DTO. Optional fields stay nil when not informed and
// are stored as NULL.
type CreateClientRequest struct {
	Name    string  `json:"name" binding:"required"`
	CPF     *string `json:"cpf"`
	Phone   string  `json:"phone" binding:"required"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// ClientService handles client business logic.
type ClientService interface {
	CreateClient(req CreateClientRequest) (int64, error)
	GetClients() ([]models.Client, error)
}

type clientService struct {
	clientRepo repositories.ClientRepository
	db         *sql.DB
}

// NewClientService creates a new instance of ClientService.
func NewClientService(repo repositories.ClientRepository, db *sql.DB) ClientService {
	return &clientService{clientRepo: repo, db: db}
}

// CreateClient validates required fields and persists a new client,
// returning the generated identifier.
func (s *clientService) CreateClient(req CreateClientRequest) (int64, error) {
	if strings.TrimSpace(req.Name) == "" {
		return 0, fmt.Errorf("%w: name cannot be empty", ErrClientValidation)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return 0, fmt.Errorf("%w: phone cannot be empty", ErrClientValidation)
	}

	client := &models.Client{
		Name:    req.Name,
		CPF:     req.CPF,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Notes:   req.Notes,
	}

	id, err := s.clientRepo.CreateClient(s.db, client)
	if err != nil {
		return 0, fmt.Errorf("failed to create client: %w", err)
	}
	return id, nil
}

// GetClients returns all clients sorted by name ascending.
func (s *clientService) GetClients() ([]models.Client, error) {
	clients, err := s.clientRepo.GetClients()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clients: %w", err)
	}
	return clients, nil
}
