package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/doclift/doclift/internal/core/domain"
	"github.com/doclift/doclift/internal/core/ports/driven"
)

// projectStore implements driven.ProjectStore.
type projectStore struct {
	store *Store
}

var _ driven.ProjectStore = (*projectStore)(nil)

// Get retrieves a project by ID.
func (s *projectStore) Get(ctx context.Context, id string) (*domain.Project, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, slug, repo_url, created_at
		FROM projects WHERE id = ?
	`, id)

	var project domain.Project
	var createdAt sql.NullTime
	if err := row.Scan(&project.ID, &project.Slug, &project.RepoURL, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	if createdAt.Valid {
		project.CreatedAt = createdAt.Time
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT user_id FROM project_users
		WHERE project_id = ?
		ORDER BY position, user_id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("querying project users: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("scanning project user: %w", err)
		}
		project.UserIDs = append(project.UserIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project users: %w", err)
	}

	return &project, nil
}

// Users retrieves the users associated with a project, in association order.
func (s *projectStore) Users(ctx context.Context, projectID string) ([]domain.User, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT u.id, u.username, u.created_at
		FROM users u
		JOIN project_users pu ON pu.user_id = u.id
		WHERE pu.project_id = ?
		ORDER BY pu.position, u.id
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("querying project users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		var createdAt sql.NullTime
		if err := rows.Scan(&user.ID, &user.Username, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		if createdAt.Valid {
			user.CreatedAt = createdAt.Time
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}
	return users, nil
}

// ==================== Write helpers ====================
//
// Projects are created by the application's project wizard; these
// writers serve that flow and the test suite.

// SaveProject stores or updates a project record.
func (s *Store) SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, slug, repo_url, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			slug = excluded.slug,
			repo_url = excluded.repo_url
	`, project.ID, project.Slug, project.RepoURL, project.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("saving project: %w", err)
	}

	for pos, userID := range project.UserIDs {
		if err := s.AddProjectUser(ctx, project.ID, userID, pos); err != nil {
			return nil, err
		}
	}
	return &project, nil
}

// AddProjectUser associates a user with a project at the given position.
func (s *Store) AddProjectUser(ctx context.Context, projectID, userID string, position int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO project_users (project_id, user_id, position)
		VALUES (?, ?, ?)
		ON CONFLICT(project_id, user_id) DO UPDATE SET position = excluded.position
	`, projectID, userID, position)
	if err != nil {
		return fmt.Errorf("adding project user: %w", err)
	}
	return nil
}
