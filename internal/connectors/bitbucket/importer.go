package bitbucket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/doclift/doclift/internal/connectors"
	"github.com/doclift/doclift/internal/core/domain"
	"github.com/doclift/doclift/internal/core/ports/driven"
)

// DefaultBaseURL is the production Bitbucket API root.
const DefaultBaseURL = "https://bitbucket.org/api"

// proactiveRate throttles vendor calls (~2 req/sec). Bitbucket's hourly
// quota is generous but unauthenticated bursts get rejected quickly.
const proactiveRate = 2

// Importer syncs a user's Bitbucket repositories and team repositories.
// It implements driven.Importer.
type Importer struct {
	sessions *connectors.SessionProvider
	accounts driven.SocialAccountStore
	repos    driven.RemoteRepositoryStore
	bucket   *rate.Limiter
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

// NewImporter creates a Bitbucket importer.
func NewImporter(
	sessions *connectors.SessionProvider,
	accounts driven.SocialAccountStore,
	repos driven.RemoteRepositoryStore,
	logger *log.Logger,
	opts ...Option,
) *Importer {
	i := &Importer{
		sessions: sessions,
		accounts: accounts,
		repos:    repos,
		bucket:   rate.NewLimiter(rate.Limit(proactiveRate), 1),
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
	return domain.ProviderBitbucket
}

// Import syncs the user's own repositories, then the repositories of
// every team the user holds privileges on. The boolean reports whether
// an authenticated session could be built, independent of sync
// success. A session without a linked social account fails explicitly:
// the vendor account UID is the repositories endpoint's path segment.
func (i *Importer) Import(ctx context.Context, user domain.User, sync bool) (bool, error) {
	session, err := i.sessions.Session(ctx, user, domain.ProviderBitbucket)
	if err != nil {
		return false, err
	}
	if session == nil {
		return false, nil
	}
	if !sync {
		return true, nil
	}

	account, err := i.accounts.GetByUserProvider(ctx, user.ID, domain.ProviderBitbucket)
	if err != nil {
		return true, fmt.Errorf("looking up social account: %w", err)
	}
	if account == nil {
		return true, fmt.Errorf("%w: bitbucket account for user %q", domain.ErrNoLinkedAccount, user.Username)
	}

	if err := i.importUserRepos(ctx, session, user, account.UID); err != nil {
		return true, err
	}
	if err := i.importTeamRepos(ctx, session, user); err != nil {
		return true, err
	}
	return true, nil
}

// importUserRepos upserts every repository under the user's own account.
func (i *Importer) importUserRepos(ctx context.Context, session *connectors.Session, user domain.User, uid string) error {
	url := fmt.Sprintf("%s/2.0/repositories/%s", i.baseURL, uid)
	pages, err := Paginate(ctx, session.HTTP, i.bucket, url)
	if err != nil {
		return &SyncError{Phase: PhaseRepositories, Err: err}
	}

	if err := i.processPages(ctx, user, pages); err != nil {
		return err
	}

	i.logger.Debug("synced bitbucket repositories", "user", user.Username, "pages", len(pages))
	return nil
}

// importTeamRepos walks the user's team privileges and upserts each
// team's repositories.
func (i *Importer) importTeamRepos(ctx context.Context, session *connectors.Session, user domain.User) error {
	var privileges privilegesResponse
	if err := i.get(ctx, session, i.baseURL+"/1.0/user/privileges/", &privileges); err != nil {
		return &SyncError{Phase: PhaseTeams, Err: err}
	}

	for team := range privileges.Teams {
		url := fmt.Sprintf("%s/2.0/teams/%s/repositories", i.baseURL, team)
		pages, err := Paginate(ctx, session.HTTP, i.bucket, url)
		if err != nil {
			return &SyncError{Phase: PhaseTeams, Err: err}
		}

		if err := i.processPages(ctx, user, pages); err != nil {
			return err
		}

		i.logger.Debug("synced bitbucket team", "user", user.Username, "team", team, "pages", len(pages))
	}

	return nil
}

// processPages upserts the repositories of each page group. Items that
// do not match the repository shape are logged and skipped rather than
// failing the page.
func (i *Importer) processPages(ctx context.Context, user domain.User, pages []Page) error {
	for _, page := range pages {
		for _, item := range page.Values {
			var repo repoResponse
			if err := json.Unmarshal(item, &repo); err != nil {
				i.logger.Warn("skipping malformed repository entry", "user", user.Username, "err", err)
				continue
			}
			if _, err := i.repos.Upsert(ctx, repo.toDomain(user.ID)); err != nil {
				return fmt.Errorf("saving repository %q: %w", repo.FullName, err)
			}
		}
	}
	return nil
}

// get performs one throttled GET and decodes the JSON body into v.
func (i *Importer) get(ctx context.Context, session *connectors.Session, url string, v any) error {
	if err := i.bucket.Wait(ctx); err != nil {
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

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}
	return nil
}
