package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doclift/doclift/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seedUser(t *testing.T, store *Store, username string) *domain.User {
	t.Helper()

	user, err := store.SaveUser(context.Background(), domain.User{Username: username})
	require.NoError(t, err)
	return user
}

func seedAccount(t *testing.T, store *Store, userID string, provider domain.Provider, uid string) *domain.SocialAccount {
	t.Helper()

	account, err := store.SaveSocialAccount(context.Background(), domain.SocialAccount{
		UserID: userID, Provider: provider, UID: uid,
	})
	require.NoError(t, err)
	return account
}

func TestSocialAccountStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := seedUser(t, store, "jsmith")
	seedAccount(t, store, user.ID, domain.ProviderGitHub, "12345")

	t.Run("found", func(t *testing.T) {
		account, err := store.SocialAccountStore().GetByUserProvider(ctx, user.ID, domain.ProviderGitHub)
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, "12345", account.UID)
		assert.Equal(t, domain.ProviderGitHub, account.Provider)
	})

	t.Run("missing is nil, not an error", func(t *testing.T) {
		account, err := store.SocialAccountStore().GetByUserProvider(ctx, user.ID, domain.ProviderBitbucket)
		require.NoError(t, err)
		assert.Nil(t, account)
	})
}

func TestSocialTokenStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := seedUser(t, store, "jsmith")
	account := seedAccount(t, store, user.ID, domain.ProviderGitHub, "12345")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	_, err := store.SaveSocialToken(ctx, domain.SocialToken{
		AccountID: account.ID, Token: "newer", CreatedAt: base.Add(time.Hour),
	})
	require.NoError(t, err)
	_, err = store.SaveSocialToken(ctx, domain.SocialToken{
		AccountID: account.ID, Token: "older", CreatedAt: base,
	})
	require.NoError(t, err)

	t.Run("first is oldest by creation time", func(t *testing.T) {
		token, err := store.SocialTokenStore().FirstByUserProvider(ctx, user.ID, domain.ProviderGitHub)
		require.NoError(t, err)
		require.NotNil(t, token)
		assert.Equal(t, "older", token.Token)
	})

	t.Run("list preserves creation order", func(t *testing.T) {
		tokens, err := store.SocialTokenStore().ListByUserProvider(ctx, user.ID, domain.ProviderGitHub)
		require.NoError(t, err)
		require.Len(t, tokens, 2)
		assert.Equal(t, "older", tokens[0].Token)
		assert.Equal(t, "newer", tokens[1].Token)
	})

	t.Run("no tokens is nil, not an error", func(t *testing.T) {
		token, err := store.SocialTokenStore().FirstByUserProvider(ctx, user.ID, domain.ProviderBitbucket)
		require.NoError(t, err)
		assert.Nil(t, token)
	})
}

func TestRemoteRepositoryStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := seedUser(t, store, "jsmith")
	repos := store.RemoteRepositoryStore()

	repo := domain.RemoteRepository{
		UserID:   user.ID,
		Provider: domain.ProviderGitHub,
		RemoteID: "1001",
		Name:     "docs",
		FullName: "jsmith/docs",
		CloneURL: "https://github.com/jsmith/docs.git",
		Private:  true,
		Admin:    true,
	}

	first, err := repos.Upsert(ctx, repo)
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	t.Run("re-import preserves the row identity", func(t *testing.T) {
		repo.Description = "project docs"
		second, err := repos.Upsert(ctx, repo)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "project docs", second.Description)

		listed, err := repos.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, listed, 1)
	})

	t.Run("same remote ID on another provider is distinct", func(t *testing.T) {
		other := repo
		other.Provider = domain.ProviderBitbucket
		other.RemoteID = "1001"

		saved, err := repos.Upsert(ctx, other)
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, saved.ID)

		listed, err := repos.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, listed, 2)
	})
}

func TestRemoteOrganizationStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := seedUser(t, store, "jsmith")
	orgs := store.RemoteOrganizationStore()

	org := domain.RemoteOrganization{
		UserID:   user.ID,
		Provider: domain.ProviderGitHub,
		RemoteID: "77",
		Slug:     "acme",
		Name:     "Acme Inc",
	}

	first, err := orgs.Upsert(ctx, org)
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	org.Name = "Acme Incorporated"
	second, err := orgs.Upsert(ctx, org)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Acme Incorporated", second.Name)

	listed, err := orgs.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	t.Run("organization links repositories", func(t *testing.T) {
		repo := domain.RemoteRepository{
			UserID:         user.ID,
			OrganizationID: first.ID,
			Provider:       domain.ProviderGitHub,
			RemoteID:       "2002",
			FullName:       "acme/infra",
		}
		saved, err := store.RemoteRepositoryStore().Upsert(ctx, repo)
		require.NoError(t, err)
		assert.Equal(t, first.ID, saved.OrganizationID)
	})
}

func TestProjectStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")

	project, err := store.SaveProject(ctx, domain.Project{
		Slug:    "docs",
		RepoURL: "git@github.com:acme/docs.git",
		UserIDs: []string{bob.ID, alice.ID},
	})
	require.NoError(t, err)

	t.Run("get includes users in association order", func(t *testing.T) {
		got, err := store.ProjectStore().Get(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, "docs", got.Slug)
		assert.Equal(t, []string{bob.ID, alice.ID}, got.UserIDs)
	})

	t.Run("users resolve in association order", func(t *testing.T) {
		users, err := store.ProjectStore().Users(ctx, project.ID)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "bob", users[0].Username)
		assert.Equal(t, "alice", users[1].Username)
	})

	t.Run("missing project", func(t *testing.T) {
		_, err := store.ProjectStore().Get(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
