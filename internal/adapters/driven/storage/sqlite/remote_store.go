package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/doclift/doclift/internal/core/domain"
	"github.com/doclift/doclift/internal/core/ports/driven"
)

// ==================== Remote Repository Store ====================

// remoteRepositoryStore implements driven.RemoteRepositoryStore.
type remoteRepositoryStore struct {
	store *Store
}

var _ driven.RemoteRepositoryStore = (*remoteRepositoryStore)(nil)

// Upsert creates or updates a repository record keyed by
// (user, provider, remote ID). The ID of an existing row is preserved
// so re-imports never duplicate records.
func (s *remoteRepositoryStore) Upsert(ctx context.Context, repo domain.RemoteRepository) (*domain.RemoteRepository, error) {
	if repo.ID == "" {
		repo.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if repo.CreatedAt.IsZero() {
		repo.CreatedAt = now
	}
	repo.UpdatedAt = now

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO remote_repositories (
			id, user_id, organization_id, provider, remote_id,
			name, full_name, description, clone_url, ssh_url, html_url,
			private, admin, created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, provider, remote_id) DO UPDATE SET
			organization_id = excluded.organization_id,
			name = excluded.name,
			full_name = excluded.full_name,
			description = excluded.description,
			clone_url = excluded.clone_url,
			ssh_url = excluded.ssh_url,
			html_url = excluded.html_url,
			private = excluded.private,
			admin = excluded.admin,
			updated_at = excluded.updated_at
	`, repo.ID, repo.UserID, nullString(repo.OrganizationID), string(repo.Provider), repo.RemoteID,
		repo.Name, repo.FullName, repo.Description, repo.CloneURL, repo.SSHURL, repo.HTMLURL,
		repo.Private, repo.Admin, repo.CreatedAt, repo.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upserting repository: %w", err)
	}

	return s.getByIdentity(ctx, repo.UserID, repo.Provider, repo.RemoteID)
}

// ListByUser retrieves all repository records owned by a user.
func (s *remoteRepositoryStore) ListByUser(ctx context.Context, userID string) ([]domain.RemoteRepository, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+repoColumns+`
		FROM remote_repositories
		WHERE user_id = ?
		ORDER BY full_name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying repositories: %w", err)
	}
	defer rows.Close()

	var repos []domain.RemoteRepository
	for rows.Next() {
		repo, err := scanRepo(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning repository: %w", err)
		}
		repos = append(repos, *repo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating repositories: %w", err)
	}
	return repos, nil
}

const repoColumns = `id, user_id, organization_id, provider, remote_id,
	name, full_name, description, clone_url, ssh_url, html_url,
	private, admin, created_at, updated_at`

func (s *remoteRepositoryStore) getByIdentity(ctx context.Context, userID string, provider domain.Provider, remoteID string) (*domain.RemoteRepository, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT `+repoColumns+`
		FROM remote_repositories
		WHERE user_id = ? AND provider = ? AND remote_id = ?
	`, userID, string(provider), remoteID)

	repo, err := scanRepo(row)
	if err != nil {
		return nil, fmt.Errorf("scanning repository: %w", err)
	}
	return repo, nil
}

func scanRepo(row scanner) (*domain.RemoteRepository, error) {
	var repo domain.RemoteRepository
	var orgID sql.NullString
	var prov string
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&repo.ID, &repo.UserID, &orgID, &prov, &repo.RemoteID,
		&repo.Name, &repo.FullName, &repo.Description, &repo.CloneURL, &repo.SSHURL, &repo.HTMLURL,
		&repo.Private, &repo.Admin, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	repo.OrganizationID = orgID.String
	repo.Provider = domain.Provider(prov)
	if createdAt.Valid {
		repo.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		repo.UpdatedAt = updatedAt.Time
	}
	return &repo, nil
}

// ==================== Remote Organization Store ====================

// remoteOrganizationStore implements driven.RemoteOrganizationStore.
type remoteOrganizationStore struct {
	store *Store
}

var _ driven.RemoteOrganizationStore = (*remoteOrganizationStore)(nil)

// Upsert creates or updates an organization record keyed by
// (user, provider, remote ID).
func (s *remoteOrganizationStore) Upsert(ctx context.Context, org domain.RemoteOrganization) (*domain.RemoteOrganization, error) {
	if org.ID == "" {
		org.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if org.CreatedAt.IsZero() {
		org.CreatedAt = now
	}
	org.UpdatedAt = now

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO remote_organizations (
			id, user_id, provider, remote_id,
			slug, name, email, url, avatar_url, created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, provider, remote_id) DO UPDATE SET
			slug = excluded.slug,
			name = excluded.name,
			email = excluded.email,
			url = excluded.url,
			avatar_url = excluded.avatar_url,
			updated_at = excluded.updated_at
	`, org.ID, org.UserID, string(org.Provider), org.RemoteID,
		org.Slug, org.Name, org.Email, org.URL, org.AvatarURL,
		org.CreatedAt, org.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upserting organization: %w", err)
	}

	return s.getByIdentity(ctx, org.UserID, org.Provider, org.RemoteID)
}

// ListByUser retrieves all organization records owned by a user.
func (s *remoteOrganizationStore) ListByUser(ctx context.Context, userID string) ([]domain.RemoteOrganization, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+orgColumns+`
		FROM remote_organizations
		WHERE user_id = ?
		ORDER BY slug
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying organizations: %w", err)
	}
	defer rows.Close()

	var orgs []domain.RemoteOrganization
	for rows.Next() {
		org, err := scanOrg(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning organization: %w", err)
		}
		orgs = append(orgs, *org)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating organizations: %w", err)
	}
	return orgs, nil
}

const orgColumns = `id, user_id, provider, remote_id,
	slug, name, email, url, avatar_url, created_at, updated_at`

func (s *remoteOrganizationStore) getByIdentity(ctx context.Context, userID string, provider domain.Provider, remoteID string) (*domain.RemoteOrganization, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT `+orgColumns+`
		FROM remote_organizations
		WHERE user_id = ? AND provider = ? AND remote_id = ?
	`, userID, string(provider), remoteID)

	org, err := scanOrg(row)
	if err != nil {
		return nil, fmt.Errorf("scanning organization: %w", err)
	}
	return org, nil
}

func scanOrg(row scanner) (*domain.RemoteOrganization, error) {
	var org domain.RemoteOrganization
	var prov string
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&org.ID, &org.UserID, &prov, &org.RemoteID,
		&org.Slug, &org.Name, &org.Email, &org.URL, &org.AvatarURL,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	org.Provider = domain.Provider(prov)
	if createdAt.Valid {
		org.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		org.UpdatedAt = updatedAt.Time
	}
	return &org, nil
}
