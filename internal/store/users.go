// ABOUTME: User record operations for the SQLite store
// ABOUTME: Lookup by id and email, insert with unique-email enforcement

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CreateUser inserts a new user record.
// Returns ErrEmailExists if the email is already registered.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, name, email, password, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Password,
		user.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("inserting user: %w", err)
	}

	s.logger.Info("created user", "id", user.ID, "email", user.Email)
	return nil
}

// UpdateUser updates a user's name, email, and password hash by ID.
// Returns ErrUserNotFound if no row matches, ErrEmailExists if the new
// email belongs to another user.
func (s *SQLiteStore) UpdateUser(ctx context.Context, user *User) error {
	query := `UPDATE users SET name = ?, email = ?, password = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query,
		user.Name,
		user.Email,
		user.Password,
		user.ID,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("updating user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	s.logger.Info("updated user", "id", user.ID)
	return nil
}

// GetUser retrieves a user by ID.
func (s *SQLiteStore) GetUser(ctx context.Context, id string) (*User, error) {
	return s.getUser(ctx, "id = ?", id)
}

// GetUserByEmail retrieves a user by email. The match is exact and
// case-sensitive (SQLite's default collation for TEXT equality).
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.getUser(ctx, "email = ?", email)
}

func (s *SQLiteStore) getUser(ctx context.Context, where string, arg any) (*User, error) {
	query := `
		SELECT id, name, email, password, created_at
		FROM users
		WHERE ` + where

	var user User
	var createdAtStr string

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&createdAtStr,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}

	user.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	return &user, nil
}
