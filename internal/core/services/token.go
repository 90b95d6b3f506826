package services

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/doclift/doclift/internal/core/domain"
	"github.com/doclift/doclift/internal/core/ports/driven"
)

// TokenService resolves private-repo access tokens for projects.
type TokenService struct {
	config   driven.ConfigStore
	api      driven.ProjectAPI
	projects driven.ProjectStore
	tokens   driven.SocialTokenStore
	logger   *log.Logger
}

// NewTokenService creates a token lookup service. api may be nil when
// the deployment never routes lookups through the remote API.
func NewTokenService(
	config driven.ConfigStore,
	api driven.ProjectAPI,
	projects driven.ProjectStore,
	tokens driven.SocialTokenStore,
	logger *log.Logger,
) *TokenService {
	return &TokenService{
		config:   config,
		api:      api,
		projects: projects,
		tokens:   tokens,
		logger:   logger,
	}
}

// TokenForProject resolves the private-repo access token for a project.
//
// Returns ("", false) immediately when private-repo access is disabled
// in configuration. Otherwise the lookup strategy depends on the
// dont_hit_db flag: the application's remote API, or the last GitHub
// token found among the project's users. forceLocal overrides the flag
// and always reads the local store. Lookup failures are logged and
// swallowed, yielding ("", false).
func (s *TokenService) TokenForProject(ctx context.Context, project domain.Project, forceLocal bool) (string, bool) {
	if !s.config.GetBool(driven.KeyAllowPrivateRepos) {
		return "", false
	}

	token, err := s.lookup(ctx, project, forceLocal)
	if err != nil {
		s.logger.Error("failed to get token for project", "project", project.Slug, "err", err)
		return "", false
	}
	return token, token != ""
}

func (s *TokenService) lookup(ctx context.Context, project domain.Project, forceLocal bool) (string, error) {
	if s.dontHitDB() && !forceLocal {
		if s.api == nil {
			return "", fmt.Errorf("remote token lookup configured but no API client available")
		}
		return s.api.ProjectToken(ctx, project.ID)
	}

	users, err := s.projects.Users(ctx, project.ID)
	if err != nil {
		return "", fmt.Errorf("listing project users: %w", err)
	}

	// Last token found among the project's users wins.
	var token string
	for _, user := range users {
		t, err := s.tokens.FirstByUserProvider(ctx, user.ID, domain.ProviderGitHub)
		if err != nil {
			return "", fmt.Errorf("looking up token for %q: %w", user.Username, err)
		}
		if t.IsSet() {
			token = t.Token
		}
	}
	return token, nil
}

// dontHitDB reads the lookup-strategy flag. Unset defaults to true:
// deployments must opt in to local credential reads.
func (s *TokenService) dontHitDB() bool {
	v, ok := s.config.Get(driven.KeyDontHitDB)
	if !ok {
		return true
	}
	b, ok := v.(bool)
	if !ok {
		return true
	}
	return b
}
