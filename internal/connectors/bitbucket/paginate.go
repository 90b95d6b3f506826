package bitbucket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// Page is one raw page object from a paginated 2.0 API endpoint.
// Values holds the page's items; Next points to the following page.
type Page struct {
	Values []json.RawMessage `json:"values"`
	Next   string            `json:"next"`
}

// Paginate fetches every page starting at url, following each body's
// "next" field until absent. The result has one element per page (the
// page object itself, not its flattened items), so callers iterate
// Values per page. One blocking request is issued per page, with no
// page-count cap.
func Paginate(ctx context.Context, client *http.Client, bucket *rate.Limiter, url string) ([]Page, error) {
	var result []Page

	for url != "" {
		if err := bucket.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("building request: %w", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetching page: %w", err)
		}

		var page Page
		err = json.NewDecoder(resp.Body).Decode(&page)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("decoding page: %w", err)
		}

		result = append(result, page)
		url = page.Next
	}

	return result, nil
}
