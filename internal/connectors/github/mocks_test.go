package github

import (
	"context"
	"strconv"

	"github.com/doclift/doclift/internal/core/domain"
	"github.com/doclift/doclift/internal/core/ports/driven"
)

// mockTokenStore implements driven.SocialTokenStore for testing.
type mockTokenStore struct {
	tokens map[string][]domain.SocialToken // keyed by userID + "/" + provider
	err    error
}

func (m *mockTokenStore) key(userID string, provider domain.Provider) string {
	return userID + "/" + string(provider)
}

func (m *mockTokenStore) FirstByUserProvider(_ context.Context, userID string, provider domain.Provider) (*domain.SocialToken, error) {
	if m.err != nil {
		return nil, m.err
	}
	tokens := m.tokens[m.key(userID, provider)]
	if len(tokens) == 0 {
		return nil, nil
	}
	return &tokens[0], nil
}

func (m *mockTokenStore) ListByUserProvider(_ context.Context, userID string, provider domain.Provider) ([]domain.SocialToken, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.tokens[m.key(userID, provider)], nil
}

// mockConfigStore implements driven.ConfigStore for testing.
type mockConfigStore struct {
	values map[string]any
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	s, _ := m.values[key].(string)
	return s
}

func (m *mockConfigStore) GetBool(key string) bool {
	b, _ := m.values[key].(bool)
	return b
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Load() error { return nil }
func (m *mockConfigStore) Path() string {
	return "mock"
}

// mockRepoStore implements driven.RemoteRepositoryStore for testing.
type mockRepoStore struct {
	repos []domain.RemoteRepository
	err   error
}

func (m *mockRepoStore) Upsert(_ context.Context, repo domain.RemoteRepository) (*domain.RemoteRepository, error) {
	if m.err != nil {
		return nil, m.err
	}
	repo.ID = strconv.Itoa(len(m.repos) + 1)
	m.repos = append(m.repos, repo)
	return &repo, nil
}

func (m *mockRepoStore) ListByUser(_ context.Context, userID string) ([]domain.RemoteRepository, error) {
	var out []domain.RemoteRepository
	for _, r := range m.repos {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

// mockOrgStore implements driven.RemoteOrganizationStore for testing.
type mockOrgStore struct {
	orgs []domain.RemoteOrganization
	err  error
}

func (m *mockOrgStore) Upsert(_ context.Context, org domain.RemoteOrganization) (*domain.RemoteOrganization, error) {
	if m.err != nil {
		return nil, m.err
	}
	org.ID = "org-" + strconv.Itoa(len(m.orgs)+1)
	m.orgs = append(m.orgs, org)
	return &org, nil
}

func (m *mockOrgStore) ListByUser(_ context.Context, userID string) ([]domain.RemoteOrganization, error) {
	var out []domain.RemoteOrganization
	for _, o := range m.orgs {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

var (
	_ driven.SocialTokenStore        = (*mockTokenStore)(nil)
	_ driven.ConfigStore             = (*mockConfigStore)(nil)
	_ driven.RemoteRepositoryStore   = (*mockRepoStore)(nil)
	_ driven.RemoteOrganizationStore = (*mockOrgStore)(nil)
)
