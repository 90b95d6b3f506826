package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

// linkRegex matches Link header entries: <url>; rel="type".
var linkRegex = regexp.MustCompile(`<([^>]+)>;\s*rel="([^"]+)"`)

// ParseNextLink extracts the "next" URL from a Link header.
// Returns empty string if no next link is found.
func ParseNextLink(linkHeader string) string {
	if linkHeader == "" {
		return ""
	}

	for _, part := range strings.Split(linkHeader, ",") {
		matches := linkRegex.FindStringSubmatch(strings.TrimSpace(part))
		if len(matches) == 3 && matches[2] == "next" {
			return matches[1]
		}
	}

	return ""
}

// Paginate fetches every page starting at url and concatenates the
// items of each page's JSON array into one flat sequence. The loop is
// unbounded: it follows the Link header's "next" relation until the
// header stops producing one, issuing one blocking request per page.
//
// A page whose body is not a JSON array (for example an error object)
// fails the whole walk.
func Paginate(ctx context.Context, client *http.Client, limiter *RateLimiter, url string) ([]json.RawMessage, error) {
	var result []json.RawMessage

	for url != "" {
		if err := limiter.Wait(ctx); err != nil {
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
		limiter.UpdateFromResponse(resp)

		var page []json.RawMessage
		err = json.NewDecoder(resp.Body).Decode(&page)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("decoding page: %w", err)
		}

		result = append(result, page...)
		url = ParseNextLink(resp.Header.Get("Link"))
	}

	return result, nil
}
