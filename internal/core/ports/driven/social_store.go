package driven

import (
	"context"

	"github.com/doclift/doclift/internal/core/domain"
)

// SocialAccountStore reads vendor-linked identities.
// Accounts are written by the application's social login flow; the sync
// module only reads them.
type SocialAccountStore interface {
	// GetByUserProvider retrieves the social account linking a user to
	// a provider. Returns nil if the user has no linked account.
	GetByUserProvider(ctx context.Context, userID string, provider domain.Provider) (*domain.SocialAccount, error)
}

// SocialTokenStore reads stored OAuth credentials.
type SocialTokenStore interface {
	// FirstByUserProvider retrieves the first stored token for a
	// user+provider pair, matching the vendor login flow's insertion
	// order. Returns nil if no token exists.
	FirstByUserProvider(ctx context.Context, userID string, provider domain.Provider) (*domain.SocialToken, error)

	// ListByUserProvider retrieves all stored tokens for a
	// user+provider pair, oldest first.
	ListByUserProvider(ctx context.Context, userID string, provider domain.Provider) ([]domain.SocialToken, error)
}
