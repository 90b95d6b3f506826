package driven

import (
	"context"

	"github.com/doclift/doclift/internal/core/domain"
)

// ProjectStore reads documentation projects.
// Projects are created elsewhere in the application; the sync module
// reads them for token lookup and webhook registration.
type ProjectStore interface {
	// Get retrieves a project by ID.
	// Returns domain.ErrNotFound if the project does not exist.
	Get(ctx context.Context, id string) (*domain.Project, error)

	// Users retrieves the users associated with a project, in
	// association order.
	Users(ctx context.Context, projectID string) ([]domain.User, error)
}
