// Package restapi reaches the application's own REST API from
// machines without database access (e.g. build workers). It implements
// the driven.ProjectAPI port.
package restapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/doclift/doclift/internal/core/ports/driven"
)

// defaultTimeout bounds each API call.
const defaultTimeout = 30 * time.Second

// Client is an authenticated client for the application's REST API.
type Client struct {
	http     *http.Client
	baseURL  string
	username string
	password string
}

var _ driven.ProjectAPI = (*Client)(nil)

// NewClient creates an API client. Credentials are the service
// account's basic-auth pair; pass empty strings for anonymous access.
func NewClient(baseURL, username, password string) *Client {
	return &Client{
		http:     &http.Client{Timeout: defaultTimeout},
		baseURL:  baseURL,
		username: username,
		password: password,
	}
}

// ProjectToken retrieves the stored private-repo access token for a
// project. Returns empty string if none is stored.
func (c *Client) ProjectToken(ctx context.Context, projectID string) (string, error) {
	var body struct {
		Token string `json:"token"`
	}
	url := fmt.Sprintf("%s/api/v2/project/%s/token/", c.baseURL, projectID)
	if err := c.get(ctx, url, &body); err != nil {
		return "", err
	}
	return body.Token, nil
}

// get performs an HTTP GET and JSON-decodes the response into v.
func (c *Client) get(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
