// Package connectors contains the vendor-facing plumbing for remote
// repository sync: OAuth session construction from stored credentials
// and per-vendor subpackages for pagination, import and webhook
// registration.
//
// Subpackages:
//
//   - github: OAuth2 bearer sessions, Link-header pagination
//   - bitbucket: OAuth1 signed sessions, in-body cursor pagination
//   - repourl: owner/repo extraction from clone URLs
//
// All vendor calls are sequential and blocking; a sync run makes one
// HTTP request per page until the vendor stops producing next links.
package connectors
