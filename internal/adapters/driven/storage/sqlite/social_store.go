package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/doclift/doclift/internal/core/domain"
	"github.com/doclift/doclift/internal/core/ports/driven"
)

// ==================== Social Account Store ====================

// socialAccountStore implements driven.SocialAccountStore.
type socialAccountStore struct {
	store *Store
}

var _ driven.SocialAccountStore = (*socialAccountStore)(nil)

// GetByUserProvider retrieves the social account linking a user to a provider.
func (s *socialAccountStore) GetByUserProvider(ctx context.Context, userID string, provider domain.Provider) (*domain.SocialAccount, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, user_id, provider, uid, created_at
		FROM social_accounts
		WHERE user_id = ? AND provider = ?
		ORDER BY created_at, id
		LIMIT 1
	`, userID, string(provider))

	var account domain.SocialAccount
	var prov string
	var createdAt sql.NullTime
	if err := row.Scan(&account.ID, &account.UserID, &prov, &account.UID, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning social account: %w", err)
	}

	account.Provider = domain.Provider(prov)
	if createdAt.Valid {
		account.CreatedAt = createdAt.Time
	}
	return &account, nil
}

// ==================== Social Token Store ====================

// socialTokenStore implements driven.SocialTokenStore.
type socialTokenStore struct {
	store *Store
}

var _ driven.SocialTokenStore = (*socialTokenStore)(nil)

const socialTokenQuery = `
	SELECT t.id, t.account_id, t.token, t.token_secret, t.created_at, t.updated_at
	FROM social_tokens t
	JOIN social_accounts a ON a.id = t.account_id
	WHERE a.user_id = ? AND a.provider = ?
	ORDER BY t.created_at, t.id
`

// FirstByUserProvider retrieves the first stored token for a user+provider pair.
func (s *socialTokenStore) FirstByUserProvider(ctx context.Context, userID string, provider domain.Provider) (*domain.SocialToken, error) {
	row := s.store.db.QueryRowContext(ctx, socialTokenQuery+" LIMIT 1", userID, string(provider))

	token, err := scanToken(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning social token: %w", err)
	}
	return token, nil
}

// ListByUserProvider retrieves all stored tokens for a user+provider pair.
func (s *socialTokenStore) ListByUserProvider(ctx context.Context, userID string, provider domain.Provider) ([]domain.SocialToken, error) {
	rows, err := s.store.db.QueryContext(ctx, socialTokenQuery, userID, string(provider))
	if err != nil {
		return nil, fmt.Errorf("querying social tokens: %w", err)
	}
	defer rows.Close()

	var tokens []domain.SocialToken
	for rows.Next() {
		token, err := scanToken(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning social token: %w", err)
		}
		tokens = append(tokens, *token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating social tokens: %w", err)
	}
	return tokens, nil
}

// scanner abstracts sql.Row and sql.Rows for shared scan code.
type scanner interface {
	Scan(dest ...any) error
}

func scanToken(row scanner) (*domain.SocialToken, error) {
	var token domain.SocialToken
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&token.ID, &token.AccountID, &token.Token,
		&token.TokenSecret, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if createdAt.Valid {
		token.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		token.UpdatedAt = updatedAt.Time
	}
	return &token, nil
}

// ==================== Write helpers ====================
//
// The sync module consumes accounts and tokens read-only; these writers
// serve the application's login flow and the test suite.

// SaveUser stores or updates a user record.
func (s *Store) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET username = excluded.username
	`, user.ID, user.Username, user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("saving user: %w", err)
	}
	return &user, nil
}

// SaveSocialAccount stores a vendor-linked identity.
func (s *Store) SaveSocialAccount(ctx context.Context, account domain.SocialAccount) (*domain.SocialAccount, error) {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO social_accounts (id, user_id, provider, uid, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(provider, uid) DO UPDATE SET user_id = excluded.user_id
	`, account.ID, account.UserID, string(account.Provider), account.UID, account.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("saving social account: %w", err)
	}
	return &account, nil
}

// SaveSocialToken stores a vendor-issued OAuth credential.
func (s *Store) SaveSocialToken(ctx context.Context, token domain.SocialToken) (*domain.SocialToken, error) {
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if token.CreatedAt.IsZero() {
		token.CreatedAt = now
	}
	token.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO social_tokens (id, account_id, token, token_secret, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			token = excluded.token,
			token_secret = excluded.token_secret,
			updated_at = excluded.updated_at
	`, token.ID, token.AccountID, token.Token, token.TokenSecret,
		token.CreatedAt, token.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("saving social token: %w", err)
	}
	return &token, nil
}
