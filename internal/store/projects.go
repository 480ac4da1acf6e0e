// ABOUTME: Project record operations for the SQLite store
// ABOUTME: CRUD plus creation-time-descending and per-user listings

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CreateProject inserts a new project record.
func (s *SQLiteStore) CreateProject(ctx context.Context, project *Project) error {
	query := `
		INSERT INTO projects (id, title, description, userId, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		project.ID,
		project.Title,
		project.Description,
		project.UserID,
		project.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}

	s.logger.Debug("created project", "id", project.ID, "user_id", project.UserID)
	return nil
}

// GetProject retrieves a project by ID.
func (s *SQLiteStore) GetProject(ctx context.Context, id string) (*Project, error) {
	query := `
		SELECT id, title, description, userId, created_at
		FROM projects
		WHERE id = ?
	`

	var project Project
	var createdAtStr string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.UserID,
		&createdAtStr,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying project: %w", err)
	}

	project.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	return &project, nil
}

// ListProjects returns all projects ordered by creation time descending.
func (s *SQLiteStore) ListProjects(ctx context.Context) ([]*Project, error) {
	query := `
		SELECT id, title, description, userId, created_at
		FROM projects
		ORDER BY created_at DESC
	`
	return s.listProjects(ctx, query)
}

// ListProjectsByUser returns all projects owned by the given user,
// ordered by creation time descending.
func (s *SQLiteStore) ListProjectsByUser(ctx context.Context, userID string) ([]*Project, error) {
	query := `
		SELECT id, title, description, userId, created_at
		FROM projects
		WHERE userId = ?
		ORDER BY created_at DESC
	`
	return s.listProjects(ctx, query, userID)
}

func (s *SQLiteStore) listProjects(ctx context.Context, query string, args ...any) ([]*Project, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var projects []*Project
	for rows.Next() {
		var project Project
		var createdAtStr string

		if err := rows.Scan(&project.ID, &project.Title, &project.Description, &project.UserID, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}

		project.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		projects = append(projects, &project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	return projects, nil
}

// UpdateProject updates a project's title and description.
// Returns ErrProjectNotFound if no row matches the id.
func (s *SQLiteStore) UpdateProject(ctx context.Context, id, title, description string) error {
	query := `UPDATE projects SET title = ?, description = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, title, description, id)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrProjectNotFound
	}

	s.logger.Debug("updated project", "id", id)
	return nil
}

// DeleteProject deletes a project by ID.
func (s *SQLiteStore) DeleteProject(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrProjectNotFound
	}

	s.logger.Info("deleted project", "id", id)
	return nil
}
