package repourl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitHub(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		owner string
		repo  string
	}{
		{"ssh shorthand", "git@github.com:owner/repo.git", "owner", "repo"},
		{"ssh shorthand without suffix", "git@github.com:owner/repo", "owner", "repo"},
		{"https", "https://github.com/owner/repo", "owner", "repo"},
		{"https with suffix", "https://github.com/owner/repo.git", "owner", "repo"},
		{"https trailing slash", "https://github.com/owner/repo/", "owner", "repo"},
		{"git protocol", "git://github.com/owner/repo.git", "owner", "repo"},
		{"ssh url", "ssh://git@github.com/owner/repo", "owner", "repo"},
		{"http", "http://github.com/owner/repo", "owner", "repo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := GitHub(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.repo, repo)
		})
	}

	t.Run("rejects non-github URLs", func(t *testing.T) {
		_, _, err := GitHub("https://bitbucket.org/owner/repo")
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, _, err := GitHub("not a url")
		assert.Error(t, err)
	})
}

func TestBitbucket(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		owner string
		repo  string
	}{
		{"ssh shorthand", "git@bitbucket.org:owner/repo.git", "owner", "repo"},
		{"https", "https://bitbucket.org/owner/repo", "owner", "repo"},
		{"https with user", "https://user@bitbucket.org/owner/repo.git", "owner", "repo"},
		{"ssh url", "ssh://git@bitbucket.org/owner/repo", "owner", "repo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := Bitbucket(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.repo, repo)
		})
	}

	t.Run("rejects github URLs", func(t *testing.T) {
		_, _, err := Bitbucket("git@github.com:owner/repo.git")
		assert.Error(t, err)
	})
}
