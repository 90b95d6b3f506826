package domain

// Provider identifies a supported source-control vendor.
//
// The set is closed: session construction and import dispatch reject
// anything outside the constants below with ErrUnsupportedProvider
// instead of leaving behaviour undefined.
type Provider string

const (
	// ProviderGitHub is the GitHub OAuth2 provider.
	ProviderGitHub Provider = "github"
	// ProviderBitbucket is the Bitbucket OAuth1 provider.
	ProviderBitbucket Provider = "bitbucket"
)

// Valid returns true if p is one of the supported providers.
func (p Provider) Valid() bool {
	switch p {
	case ProviderGitHub, ProviderBitbucket:
		return true
	}
	return false
}

// String returns the provider identifier.
func (p Provider) String() string {
	return string(p)
}
