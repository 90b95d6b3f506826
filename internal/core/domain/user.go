package domain

import "time"

// User represents a local application account.
// Users are created by the application's registration flow; this module
// only reads them to resolve stored vendor credentials.
type User struct {
	// ID is the unique identifier (UUID).
	ID string `json:"id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// CreatedAt is when the user was created.
	CreatedAt time.Time `json:"created_at"`
}

// Project represents a documentation project tied to a source repository.
// Projects are created elsewhere in the application; the sync module only
// reads them for token lookup and webhook registration.
type Project struct {
	// ID is the unique identifier (UUID).
	ID string `json:"id"`

	// Slug is the URL-safe project name.
	Slug string `json:"slug"`

	// RepoURL is the source-control clone URL (SSH or HTTPS).
	RepoURL string `json:"repo_url"`

	// UserIDs are the accounts associated with this project.
	UserIDs []string `json:"user_ids,omitempty"`

	// CreatedAt is when the project was created.
	CreatedAt time.Time `json:"created_at"`
}
