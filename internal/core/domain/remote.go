package domain

import "time"

// RemoteRepository mirrors a repository hosted on a vendor.
//
// Records are upserted per import run, keyed by (provider, remote ID,
// owning user): re-running an import must never duplicate a repository.
type RemoteRepository struct {
	// ID is the unique identifier (UUID).
	ID string `json:"id"`

	// UserID references the local user who imported this repository.
	UserID string `json:"user_id"`

	// OrganizationID references the RemoteOrganization this repository
	// belongs to. Empty for repositories owned by the user directly.
	OrganizationID string `json:"organization_id,omitempty"`

	// Provider identifies the vendor hosting the repository.
	Provider Provider `json:"provider"`

	// RemoteID is the vendor-side repository identifier.
	RemoteID string `json:"remote_id"`

	// Name is the short repository name.
	Name string `json:"name"`

	// FullName is the owner-qualified name (e.g. "octocat/hello").
	FullName string `json:"full_name"`

	// Description is the vendor-side repository description.
	Description string `json:"description,omitempty"`

	// CloneURL is the HTTPS clone URL.
	CloneURL string `json:"clone_url,omitempty"`

	// SSHURL is the SSH clone URL.
	SSHURL string `json:"ssh_url,omitempty"`

	// HTMLURL is the vendor web page for the repository.
	HTMLURL string `json:"html_url,omitempty"`

	// Private reports whether the repository is private on the vendor.
	Private bool `json:"private"`

	// Admin reports whether the importing user administers the repository.
	Admin bool `json:"admin"`

	// CreatedAt is when the mirror record was first created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the mirror record was last synced.
	UpdatedAt time.Time `json:"updated_at"`
}

// RemoteOrganization mirrors an organization or team hosted on a vendor.
// Created during org-repo sync and upserted with the same idempotency
// key scheme as RemoteRepository.
type RemoteOrganization struct {
	// ID is the unique identifier (UUID).
	ID string `json:"id"`

	// UserID references the local user who imported this organization.
	UserID string `json:"user_id"`

	// Provider identifies the vendor hosting the organization.
	Provider Provider `json:"provider"`

	// RemoteID is the vendor-side organization identifier.
	RemoteID string `json:"remote_id"`

	// Slug is the URL-safe organization name (login or team slug).
	Slug string `json:"slug"`

	// Name is the display name, if the vendor provides one.
	Name string `json:"name,omitempty"`

	// Email is the public contact address, if any.
	Email string `json:"email,omitempty"`

	// URL is the vendor web page for the organization.
	URL string `json:"url,omitempty"`

	// AvatarURL is the organization avatar image URL.
	AvatarURL string `json:"avatar_url,omitempty"`

	// CreatedAt is when the mirror record was first created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the mirror record was last synced.
	UpdatedAt time.Time `json:"updated_at"`
}
