// Package repourl extracts owner and repository names from source-control
// clone URLs. It understands the SSH, HTTPS and git protocol forms both
// vendors hand out.
package repourl

import (
	"fmt"
	"regexp"
)

// Patterns cover the clone URL forms GitHub and Bitbucket publish:
// git@host:owner/repo.git, ssh://git@host/owner/repo,
// https://host/owner/repo(.git) and git://host/owner/repo.
var (
	githubPattern = regexp.MustCompile(
		`^(?:git@github\.com:|(?:https?|git|ssh)://(?:git@)?github\.com/)([^/]+)/([^/]+?)(?:\.git)?/?$`)
	bitbucketPattern = regexp.MustCompile(
		`^(?:git@bitbucket\.org:|(?:https?|ssh)://(?:[^@/]+@)?bitbucket\.org/)([^/]+)/([^/]+?)(?:\.git)?/?$`)
)

// GitHub extracts owner and repository from a GitHub clone URL.
func GitHub(url string) (owner, repo string, err error) {
	return match(githubPattern, url)
}

// Bitbucket extracts owner and repository from a Bitbucket clone URL.
func Bitbucket(url string) (owner, repo string, err error) {
	return match(bitbucketPattern, url)
}

func match(pattern *regexp.Regexp, url string) (string, string, error) {
	m := pattern.FindStringSubmatch(url)
	if m == nil {
		return "", "", fmt.Errorf("repourl: cannot parse owner/repo from %q", url)
	}
	return m[1], m[2], nil
}
