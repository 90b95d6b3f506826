package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	gh "github.com/google/go-github/v80/github"

	"github.com/doclift/doclift/internal/connectors"
	"github.com/doclift/doclift/internal/connectors/repourl"
	"github.com/doclift/doclift/internal/core/domain"
	"github.com/doclift/doclift/internal/core/ports/driven"
)

// WebhookRegistrar creates build webhooks on GitHub repositories.
//
// Registration performs no existence check: calling it twice for the
// same project creates a second hook. Deduplication is left to the
// vendor-side hook listing UI.
type WebhookRegistrar struct {
	config  driven.ConfigStore
	logger  *log.Logger
	baseURL string
}

// NewWebhookRegistrar creates a registrar reading the webhook target
// domain from configuration.
func NewWebhookRegistrar(config driven.ConfigStore, logger *log.Logger, opts ...RegistrarOption) *WebhookRegistrar {
	r := &WebhookRegistrar{config: config, logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegistrarOption configures a WebhookRegistrar.
type RegistrarOption func(*WebhookRegistrar)

// WithRegistrarBaseURL points the registrar at an alternate API root.
func WithRegistrarBaseURL(url string) RegistrarOption {
	return func(r *WebhookRegistrar) { r.baseURL = url }
}

// Register derives owner/repo from the project's clone URL and issues
// one hook-creation POST on the authenticated session. The response
// status code is logged and returned; non-2xx responses are not
// distinguished from success. The error is non-nil only when no
// request could be issued at all.
func (r *WebhookRegistrar) Register(ctx context.Context, session *connectors.Session, project domain.Project) (int, error) {
	owner, repo, err := repourl.GitHub(project.RepoURL)
	if err != nil {
		return 0, err
	}

	client := gh.NewClient(session.HTTP)
	if r.baseURL != "" {
		base, parseErr := url.Parse(strings.TrimSuffix(r.baseURL, "/") + "/")
		if parseErr != nil {
			return 0, fmt.Errorf("parsing base URL: %w", parseErr)
		}
		client.BaseURL = base
	}

	hookURL := fmt.Sprintf("https://%s/github", r.config.GetString(driven.KeyProductionDomain))
	hook := &gh.Hook{
		Name:   gh.Ptr("web"),
		Active: gh.Ptr(true),
		Config: &gh.HookConfig{
			URL:         gh.Ptr(hookURL),
			ContentType: gh.Ptr("json"),
		},
	}

	_, resp, err := client.Repositories.CreateHook(ctx, owner, repo, hook)
	if resp == nil {
		return 0, fmt.Errorf("creating hook for %s/%s: %w", owner, repo, err)
	}

	r.logger.Info("creating github webhook", "project", project.Slug, "status", resp.StatusCode)
	return resp.StatusCode, nil
}
