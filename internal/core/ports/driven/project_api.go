package driven

import "context"

// ProjectAPI reaches the application's own REST API.
// Used when configuration directs token lookup away from the local
// database (e.g. on build machines without credential access).
type ProjectAPI interface {
	// ProjectToken retrieves the stored private-repo access token for
	// a project. Returns empty string if none is stored.
	ProjectToken(ctx context.Context, projectID string) (string, error)
}
