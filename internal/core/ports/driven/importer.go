package driven

import (
	"context"

	"github.com/doclift/doclift/internal/core/domain"
)

// Importer syncs a user's repositories and organizations from one vendor.
type Importer interface {
	// Provider identifies the vendor this importer talks to.
	Provider() domain.Provider

	// Import fetches the user's repositories and organizations and
	// upserts their mirror records. When sync is false only session
	// availability is checked.
	//
	// The boolean reports whether an authenticated session could be
	// built from stored credentials, independent of sync success: a
	// user with no stored token yields (false, nil) without any
	// vendor calls.
	Import(ctx context.Context, user domain.User, sync bool) (bool, error)
}
