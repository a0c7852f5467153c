package services

import (
	"errors"
	"fmt"

	"event_agency_backend/internal/models"
	"event_agency_backend/internal/repositories"
	"event_agency_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so the response never reveals which accounts exist.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrTokenGeneration = errors.New("failed to generate token")
)

// LoginRequest DTO
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse DTO
type AuthResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// AuthService handles staff authentication.
type AuthService interface {
	LoginUser(req LoginRequest) (*AuthResponse, error)
}

type authService struct {
	authRepo repositories.AuthRepository
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(authRepo repositories.AuthRepository) AuthService {
	return &authService{authRepo: authRepo}
}

// LoginUser looks up the user by exact username, compares the password
// against the stored bcrypt hash, and on success issues a session token
// alongside the public projection of the user.
func (s *authService) LoginUser(req LoginRequest) (*AuthResponse, error) {
	user, err := s.authRepo.FindUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login attempt failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAccessToken(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	return &AuthResponse{
		Token: token,
		User:  user.Public(),
	}, nil
}
