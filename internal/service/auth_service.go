package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"traveldiary-be/internal/jwt"
	"traveldiary-be/internal/models"
	"traveldiary-be/internal/repository"
)

// bcryptCost matches the fixed cost factor used for all stored hashes
const bcryptCost = 10

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(req *models.RegisterRequest) error
	Login(req *models.LoginRequest) (*models.LoginResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user account with a bcrypt-hashed password.
// Nothing about the created user is echoed back.
func (s *authService) Register(req *models.RegisterRequest) error {
	// Check if the username is already taken
	existingUser, err := s.userRepo.FindByUsername(req.Username)
	if err == nil && existingUser != nil {
		return ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.userRepo.Create(req.Name, req.Username, string(hashedPassword)); err != nil {
		// The unique constraint backstops the check above under concurrent
		// registration of the same username.
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Login verifies credentials and issues a signed access token
func (s *authService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidPassword
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{AccessToken: token}, nil
}
