package bitbucket

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/doclift/doclift/internal/connectors"
	"github.com/doclift/doclift/internal/connectors/repourl"
	"github.com/doclift/doclift/internal/core/domain"
	"github.com/doclift/doclift/internal/core/ports/driven"
)

// DefaultWebhookBaseURL is the production Bitbucket 1.0 API root used
// for service (webhook) management.
const DefaultWebhookBaseURL = "https://api.bitbucket.org"

// WebhookRegistrar creates build webhooks ("POST services") on
// Bitbucket repositories.
//
// Registration performs no existence check: repeated calls for the
// same project create duplicate services.
type WebhookRegistrar struct {
	config  driven.ConfigStore
	logger  *log.Logger
	baseURL string
}

// RegistrarOption configures a WebhookRegistrar.
type RegistrarOption func(*WebhookRegistrar)

// WithRegistrarBaseURL points the registrar at an alternate API root.
func WithRegistrarBaseURL(url string) RegistrarOption {
	return func(r *WebhookRegistrar) { r.baseURL = url }
}

// NewWebhookRegistrar creates a registrar reading the webhook target
// domain from configuration.
func NewWebhookRegistrar(config driven.ConfigStore, logger *log.Logger, opts ...RegistrarOption) *WebhookRegistrar {
	r := &WebhookRegistrar{
		config: config,
		logger: logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.baseURL == "" {
		r.baseURL = DefaultWebhookBaseURL
	}
	return r
}

// Register derives owner/repo from the project's clone URL and issues
// one form-encoded service-creation POST on the authenticated session.
// The response status code is logged and returned; non-2xx responses
// are not distinguished from success. The error is non-nil only when
// no request could be issued at all.
func (r *WebhookRegistrar) Register(ctx context.Context, session *connectors.Session, project domain.Project) (int, error) {
	owner, repo, err := repourl.Bitbucket(project.RepoURL)
	if err != nil {
		return 0, err
	}

	target := fmt.Sprintf("https://%s/bitbucket", r.config.GetString(driven.KeyProductionDomain))
	form := url.Values{
		"type": {"POST"},
		"URL":  {target},
	}

	endpoint := fmt.Sprintf("%s/1.0/repositories/%s/%s/services", r.baseURL, owner, repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := session.HTTP.Do(req)
	if err != nil {
		return 0, fmt.Errorf("creating service for %s/%s: %w", owner, repo, err)
	}
	resp.Body.Close()

	r.logger.Info("creating bitbucket webhook", "project", project.Slug, "status", resp.StatusCode)
	return resp.StatusCode, nil
}
