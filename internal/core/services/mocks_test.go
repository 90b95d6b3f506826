package services

import (
	"context"

	"github.com/doclift/doclift/internal/core/domain"
	"github.com/doclift/doclift/internal/core/ports/driven"
)

// mockImporter implements driven.Importer for testing.
type mockImporter struct {
	provider domain.Provider
	obtained bool
	err      error
	calls    int
	lastSync bool
}

func (m *mockImporter) Provider() domain.Provider {
	return m.provider
}

func (m *mockImporter) Import(_ context.Context, _ domain.User, sync bool) (bool, error) {
	m.calls++
	m.lastSync = sync
	return m.obtained, m.err
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

func (m *mockConfigStore) Load() error  { return nil }
func (m *mockConfigStore) Path() string { return "mock" }

// mockProjectAPI implements driven.ProjectAPI for testing.
type mockProjectAPI struct {
	token string
	err   error
	calls int
}

func (m *mockProjectAPI) ProjectToken(_ context.Context, _ string) (string, error) {
	m.calls++
	return m.token, m.err
}

// mockProjectStore implements driven.ProjectStore for testing.
type mockProjectStore struct {
	projects map[string]*domain.Project
	users    map[string][]domain.User // keyed by project ID
	err      error
}

func (m *mockProjectStore) Get(_ context.Context, id string) (*domain.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	project, ok := m.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return project, nil
}

func (m *mockProjectStore) Users(_ context.Context, projectID string) ([]domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users[projectID], nil
}

// mockTokenStore implements driven.SocialTokenStore for testing.
type mockTokenStore struct {
	tokens map[string][]domain.SocialToken // keyed by userID + "/" + provider
	err    error
}

func (m *mockTokenStore) FirstByUserProvider(_ context.Context, userID string, provider domain.Provider) (*domain.SocialToken, error) {
	if m.err != nil {
		return nil, m.err
	}
	tokens := m.tokens[userID+"/"+string(provider)]
	if len(tokens) == 0 {
		return nil, nil
	}
	return &tokens[0], nil
}

func (m *mockTokenStore) ListByUserProvider(_ context.Context, userID string, provider domain.Provider) ([]domain.SocialToken, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.tokens[userID+"/"+string(provider)], nil
}

var (
	_ driven.Importer         = (*mockImporter)(nil)
	_ driven.ConfigStore      = (*mockConfigStore)(nil)
	_ driven.ProjectAPI       = (*mockProjectAPI)(nil)
	_ driven.ProjectStore     = (*mockProjectStore)(nil)
	_ driven.SocialTokenStore = (*mockTokenStore)(nil)
)
