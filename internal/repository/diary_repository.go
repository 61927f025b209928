package repository

import (
	"database/sql"
	"fmt"

	"traveldiary-be/internal/entities"
)

// DiaryRepository defines the interface for diary entry database operations.
// Every read and mutation on an existing entry is keyed on (id, user_id)
// jointly, so entries owned by other users behave as if they don't exist.
type DiaryRepository interface {
	Create(userID int, title, description, location string) (*entities.DiaryEntry, error)
	FindByUser(userID int) ([]*entities.DiaryEntry, error)
	FindByID(id, userID int) (*entities.DiaryEntry, error)
	Update(id, userID int, title, description, location string) error
	Delete(id, userID int) error
}

type diaryRepository struct {
	db *sql.DB
}

// NewDiaryRepository creates a new diary entry repository
func NewDiaryRepository(db *sql.DB) DiaryRepository {
	return &diaryRepository{db: db}
}

// Create inserts a new diary entry; date defaults to the insert timestamp
func (r *diaryRepository) Create(userID int, title, description, location string) (*entities.DiaryEntry, error) {
	query := `
		INSERT INTO diary_entries (title, description, location, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, description, date, location, user_id
	`

	var entry entities.DiaryEntry
	err := r.db.QueryRow(query, title, description, location, userID).Scan(
		&entry.ID,
		&entry.Title,
		&entry.Description,
		&entry.Date,
		&entry.Location,
		&entry.UserID,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create diary entry: %w", err)
	}

	return &entry, nil
}

// FindByUser retrieves all diary entries for a user in insertion order
func (r *diaryRepository) FindByUser(userID int) ([]*entities.DiaryEntry, error) {
	query := `
		SELECT id, title, description, date, location, user_id
		FROM diary_entries
		WHERE user_id = $1
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get diary entries: %w", err)
	}
	defer rows.Close()

	var entries []*entities.DiaryEntry
	for rows.Next() {
		var entry entities.DiaryEntry
		err := rows.Scan(
			&entry.ID,
			&entry.Title,
			&entry.Description,
			&entry.Date,
			&entry.Location,
			&entry.UserID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan diary entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating diary entries: %w", err)
	}

	return entries, nil
}

// FindByID retrieves a diary entry only if it belongs to the given user
func (r *diaryRepository) FindByID(id, userID int) (*entities.DiaryEntry, error) {
	query := `
		SELECT id, title, description, date, location, user_id
		FROM diary_entries
		WHERE id = $1 AND user_id = $2
	`

	var entry entities.DiaryEntry
	err := r.db.QueryRow(query, id, userID).Scan(
		&entry.ID,
		&entry.Title,
		&entry.Description,
		&entry.Date,
		&entry.Location,
		&entry.UserID,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find diary entry: %w", err)
	}

	return &entry, nil
}

// Update overwrites the mutable fields of an entry owned by the given user.
// The update is a single conditional statement: zero rows affected means the
// entry doesn't exist or belongs to someone else, with no window between an
// existence check and the write.
func (r *diaryRepository) Update(id, userID int, title, description, location string) error {
	query := `
		UPDATE diary_entries
		SET title = $1, description = $2, location = $3
		WHERE id = $4 AND user_id = $5
	`

	result, err := r.db.Exec(query, title, description, location, id, userID)
	if err != nil {
		return fmt.Errorf("failed to update diary entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes an entry owned by the given user, same conditional shape as Update
func (r *diaryRepository) Delete(id, userID int) error {
	query := `DELETE FROM diary_entries WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete diary entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
