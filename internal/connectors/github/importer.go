package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/doclift/doclift/internal/connectors"
	"github.com/doclift/doclift/internal/core/domain"
	"github.com/doclift/doclift/internal/core/ports/driven"
)

// DefaultBaseURL is the production GitHub API root.
const DefaultBaseURL = "https://api.github.com"

// perPage is the page size requested from list endpoints.
const perPage = 100

// Importer syncs a user's GitHub repositories and organizations.
// It implements driven.Importer.
type Importer struct {
	sessions *connectors.SessionProvider
	repos    driven.RemoteRepositoryStore
	orgs     driven.RemoteOrganizationStore
	limiter  *RateLimiter
	logger   *log.Logger
	baseURL  string
}

var _ driven.Importer = (*Importer)(nil)

// Option configures an Importer.
type Option func(*Importer)

// WithBaseURL points the importer at an alternate API root.
func WithBaseURL(url string) Option {
	return func(i *Importer) { i.baseURL = url }
}

// NewImporter creates a GitHub importer.
func NewImporter(
	sessions *connectors.SessionProvider,
	repos driven.RemoteRepositoryStore,
	orgs driven.RemoteOrganizationStore,
	logger *log.Logger,
	opts ...Option,
) *Importer {
	i := &Importer{
		sessions: sessions,
		repos:    repos,
		orgs:     orgs,
		limiter:  NewRateLimiter(),
		logger:   logger,
		baseURL:  DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Provider identifies the vendor this importer talks to.
func (i *Importer) Provider() domain.Provider {
	return domain.ProviderGitHub
}

// Import syncs the user's own repositories, then their organizations
// and org repositories. The boolean reports whether an authenticated
// session could be built, independent of sync success. Each phase
// translates malformed responses into its own SyncError; records
// upserted before a failure are kept.
func (i *Importer) Import(ctx context.Context, user domain.User, sync bool) (bool, error) {
	session, err := i.sessions.Session(ctx, user, domain.ProviderGitHub)
	if err != nil {
		return false, err
	}
	if session == nil {
		return false, nil
	}
	if !sync {
		return true, nil
	}

	if err := i.importUserRepos(ctx, session, user); err != nil {
		return true, err
	}
	if err := i.importOrgs(ctx, session, user); err != nil {
		return true, err
	}
	return true, nil
}

// importUserRepos upserts every repository the user owns or collaborates on.
func (i *Importer) importUserRepos(ctx context.Context, session *connectors.Session, user domain.User) error {
	url := fmt.Sprintf("%s/user/repos?per_page=%d", i.baseURL, perPage)
	items, err := Paginate(ctx, session.HTTP, i.limiter, url)
	if err != nil {
		return &SyncError{Phase: PhaseRepositories, Err: err}
	}

	for _, item := range items {
		var repo repoResponse
		if err := json.Unmarshal(item, &repo); err != nil {
			return &SyncError{Phase: PhaseRepositories, Err: err}
		}
		if _, err := i.repos.Upsert(ctx, repo.toDomain(user.ID, "")); err != nil {
			return fmt.Errorf("saving repository %q: %w", repo.FullName, err)
		}
	}

	i.logger.Debug("synced github repositories", "user", user.Username, "count", len(items))
	return nil
}

// importOrgs upserts each organization the user belongs to along with
// that organization's repositories.
func (i *Importer) importOrgs(ctx context.Context, session *connectors.Session, user domain.User) error {
	var stubs []orgStub
	if err := i.get(ctx, session, i.baseURL+"/user/orgs", &stubs); err != nil {
		return &SyncError{Phase: PhaseOrganizations, Err: err}
	}

	for _, stub := range stubs {
		var org orgResponse
		if err := i.get(ctx, session, fmt.Sprintf("%s/orgs/%s", i.baseURL, stub.Login), &org); err != nil {
			return &SyncError{Phase: PhaseOrganizations, Err: err}
		}

		saved, err := i.orgs.Upsert(ctx, org.toDomain(user.ID))
		if err != nil {
			return fmt.Errorf("saving organization %q: %w", org.Login, err)
		}

		url := fmt.Sprintf("%s/orgs/%s/repos?per_page=%d", i.baseURL, stub.Login, perPage)
		items, err := Paginate(ctx, session.HTTP, i.limiter, url)
		if err != nil {
			return &SyncError{Phase: PhaseOrganizations, Err: err}
		}

		for _, item := range items {
			var repo repoResponse
			if err := json.Unmarshal(item, &repo); err != nil {
				return &SyncError{Phase: PhaseOrganizations, Err: err}
			}
			if _, err := i.repos.Upsert(ctx, repo.toDomain(user.ID, saved.ID)); err != nil {
				return fmt.Errorf("saving repository %q: %w", repo.FullName, err)
			}
		}

		i.logger.Debug("synced github organization", "user", user.Username, "org", stub.Login, "repos", len(items))
	}

	return nil
}

// get performs one rate-limited GET and decodes the JSON body into v.
func (i *Importer) get(ctx context.Context, session *connectors.Session, url string, v any) error {
	if err := i.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := session.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()
	i.limiter.UpdateFromResponse(resp)

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}
	return nil
}
