package domain

import "time"

// SocialAccount links a local user to an account on a vendor.
// It is created by the application's social login flow and consumed
// read-only by the sync module.
type SocialAccount struct {
	// ID is the unique identifier (UUID).
	ID string `json:"id"`

	// UserID references the owning local user.
	UserID string `json:"user_id"`

	// Provider identifies the vendor this account belongs to.
	Provider Provider `json:"provider"`

	// UID is the vendor-side account identifier (login or account UUID).
	UID string `json:"uid"`

	// CreatedAt is when the account link was established.
	CreatedAt time.Time `json:"created_at"`
}

// SocialToken is a vendor-issued OAuth credential for a SocialAccount.
//
// For OAuth2 providers (GitHub) only Token is set. OAuth1 providers
// (Bitbucket) additionally carry TokenSecret for request signing.
type SocialToken struct {
	// ID is the unique identifier (UUID).
	ID string `json:"id"`

	// AccountID references the SocialAccount this token belongs to.
	AccountID string `json:"account_id"`

	// Token is the opaque vendor-issued access token.
	Token string `json:"token"`

	// TokenSecret is the OAuth1 resource-owner secret.
	// Empty for OAuth2 providers.
	TokenSecret string `json:"token_secret,omitempty"`

	// CreatedAt is when the token was stored.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the token was last refreshed.
	UpdatedAt time.Time `json:"updated_at"`
}

// IsSet returns true if the token carries a usable access token.
func (t *SocialToken) IsSet() bool {
	return t != nil && t.Token != ""
}
