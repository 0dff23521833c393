package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/user/market-dashboard/internal/repository"
)

// DBTX is the subset of *pgxpool.Pool used by the repositories.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

const createSettingsTable = `
	CREATE TABLE IF NOT EXISTS app_settings (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
`

// CredentialRepoImpl stores the crawl API key as one row of the app_settings
// key/value table.
type CredentialRepoImpl struct {
	db  DBTX
	key string
}

// NewCredentialRepo creates a CredentialRepoImpl using the fixed credential key.
func NewCredentialRepo(db DBTX) *CredentialRepoImpl {
	return &CredentialRepoImpl{db: db, key: repository.CredentialKey}
}

// EnsureSchema creates the settings table when it does not exist.
func (r *CredentialRepoImpl) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createSettingsTable); err != nil {
		return fmt.Errorf("create app_settings table: %w", err)
	}
	return nil
}

// Save upserts the token row.
func (r *CredentialRepoImpl) Save(ctx context.Context, token string) error {
	query := `
		INSERT INTO app_settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW();
	`
	if _, err := r.db.Exec(ctx, query, r.key, token); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

func (r *CredentialRepoImpl) Get(ctx context.Context) (string, error) {
	var token string
	err := r.db.QueryRow(ctx, `SELECT value FROM app_settings WHERE key = $1`, r.key).Scan(&token)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", repository.ErrCredentialNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get credential: %w", err)
	}
	return token, nil
}

func (r *CredentialRepoImpl) Delete(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM app_settings WHERE key = $1`, r.key); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}

func (r *CredentialRepoImpl) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
