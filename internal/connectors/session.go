package connectors

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dghubble/oauth1"
	"golang.org/x/oauth2"

	"github.com/doclift/doclift/internal/core/domain"
	"github.com/doclift/doclift/internal/core/ports/driven"
)

// DefaultTimeout is the HTTP request timeout applied to vendor sessions.
const DefaultTimeout = 30 * time.Second

// Session is an authenticated HTTP session against one vendor's API.
// The embedded client injects the provider's authentication into every
// request: a bearer Authorization header for OAuth2 providers, an
// HMAC-SHA1 signed Authorization header for OAuth1 providers.
type Session struct {
	// Provider identifies the vendor this session authenticates against.
	Provider domain.Provider

	// HTTP is the authenticated client. Safe to hand to API wrappers.
	HTTP *http.Client
}

// SessionProvider builds authenticated sessions from stored credentials.
type SessionProvider struct {
	tokens driven.SocialTokenStore
	config driven.ConfigStore
	logger *log.Logger
}

// NewSessionProvider creates a session provider reading tokens from the
// given store and OAuth app credentials from configuration.
func NewSessionProvider(tokens driven.SocialTokenStore, config driven.ConfigStore, logger *log.Logger) *SessionProvider {
	return &SessionProvider{
		tokens: tokens,
		config: config,
		logger: logger,
	}
}

// Session builds an authenticated session for the user on the given
// provider. Returns (nil, nil) when the user has no stored token: a
// missing credential is "no session", not a failure. An identifier
// outside the supported provider set yields ErrUnsupportedProvider.
func (p *SessionProvider) Session(ctx context.Context, user domain.User, provider domain.Provider) (*Session, error) {
	token, err := p.tokens.FirstByUserProvider(ctx, user.ID, provider)
	if err != nil {
		return nil, fmt.Errorf("looking up token: %w", err)
	}
	if !token.IsSet() {
		p.logger.Debug("no stored token", "user", user.Username, "provider", provider)
		return nil, nil
	}

	switch provider {
	case domain.ProviderGitHub:
		return p.githubSession(ctx, token), nil
	case domain.ProviderBitbucket:
		return p.bitbucketSession(ctx, token), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedProvider, provider)
	}
}

// githubSession carries "Authorization: bearer <token>" on every request.
func (p *SessionProvider) githubSession(ctx context.Context, token *domain.SocialToken) *Session {
	ts := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token.Token,
		TokenType:   "bearer",
	})
	client := oauth2.NewClient(ctx, ts)
	client.Timeout = DefaultTimeout

	return &Session{Provider: domain.ProviderGitHub, HTTP: client}
}

// bitbucketSession signs every request with the OAuth1 consumer
// key/secret and the stored resource-owner key/secret.
func (p *SessionProvider) bitbucketSession(ctx context.Context, token *domain.SocialToken) *Session {
	cfg := oauth1.NewConfig(
		p.config.GetString(driven.KeyBitbucketKey),
		p.config.GetString(driven.KeyBitbucketSecret),
	)
	client := cfg.Client(ctx, oauth1.NewToken(token.Token, token.TokenSecret))
	client.Timeout = DefaultTimeout

	return &Session{Provider: domain.ProviderBitbucket, HTTP: client}
}
