package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"traveldiary-be/internal/entities"

	"github.com/lib/pq"
)

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(name, username, passwordHash string) (*entities.User, error)
	FindByUsername(username string) (*entities.User, error)
	FindByID(id int) (*entities.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(name, username, passwordHash string) (*entities.User, error) {
	query := `
		INSERT INTO users (name, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, name, username, password_hash, created_at
	`

	var user entities.User
	err := r.db.QueryRow(query, name, username, passwordHash).Scan(
		&user.ID,
		&user.Name,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
		return nil, ErrDuplicateUsername
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// FindByUsername finds a user by username
func (r *userRepository) FindByUsername(username string) (*entities.User, error) {
	query := `
		SELECT id, name, username, password_hash, created_at
		FROM users
		WHERE username = $1
	`

	var user entities.User
	err := r.db.QueryRow(query, username).Scan(
		&user.ID,
		&user.Name,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// FindByID finds a user by ID
func (r *userRepository) FindByID(id int) (*entities.User, error) {
	query := `
		SELECT id, name, username, password_hash, created_at
		FROM users
		WHERE id = $1
	`

	var user entities.User
	err := r.db.QueryRow(query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}
