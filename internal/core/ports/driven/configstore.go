package driven

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}

// Configuration keys consulted by the sync module.
const (
	// KeyAllowPrivateRepos gates private-repository token lookup.
	KeyAllowPrivateRepos = "allow_private_repos"

	// KeyDontHitDB directs project token lookup to the remote API
	// instead of the local credential store.
	KeyDontHitDB = "dont_hit_db"

	// KeyProductionDomain is the public domain webhooks point back to.
	KeyProductionDomain = "production_domain"

	// KeyGitHubClientID is the GitHub OAuth app client ID.
	KeyGitHubClientID = "github.client_id"

	// KeyBitbucketKey is the Bitbucket OAuth1 consumer key.
	KeyBitbucketKey = "bitbucket.consumer_key"

	// KeyBitbucketSecret is the Bitbucket OAuth1 consumer secret.
	KeyBitbucketSecret = "bitbucket.consumer_secret"
)
