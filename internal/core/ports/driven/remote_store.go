package driven

import (
	"context"

	"github.com/doclift/doclift/internal/core/domain"
)

// RemoteRepositoryStore persists mirror records of vendor repositories.
type RemoteRepositoryStore interface {
	// Upsert creates or updates a repository record, keyed by
	// (provider, remote ID, owning user). Returns the stored record
	// with its ID populated.
	Upsert(ctx context.Context, repo domain.RemoteRepository) (*domain.RemoteRepository, error)

	// ListByUser retrieves all repository records owned by a user.
	ListByUser(ctx context.Context, userID string) ([]domain.RemoteRepository, error)
}

// RemoteOrganizationStore persists mirror records of vendor
// organizations and teams.
type RemoteOrganizationStore interface {
	// Upsert creates or updates an organization record, keyed by
	// (provider, remote ID, owning user). Returns the stored record
	// with its ID populated.
	Upsert(ctx context.Context, org domain.RemoteOrganization) (*domain.RemoteOrganization, error)

	// ListByUser retrieves all organization records owned by a user.
	ListByUser(ctx context.Context, userID string) ([]domain.RemoteOrganization, error)
}
