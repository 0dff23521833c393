package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/user/market-dashboard/internal/repository"
)

// CredentialRepoImpl stores the crawl API key as a plain Redis string.
type CredentialRepoImpl struct {
	client *redis.Client
	key    string
}

// NewCredentialRepo creates a CredentialRepoImpl using the fixed credential key.
func NewCredentialRepo(client *redis.Client) *CredentialRepoImpl {
	return &CredentialRepoImpl{client: client, key: repository.CredentialKey}
}

// Save sets the key without expiry, overwriting any previous token.
func (r *CredentialRepoImpl) Save(ctx context.Context, token string) error {
	if err := r.client.Set(ctx, r.key, token, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}

func (r *CredentialRepoImpl) Get(ctx context.Context) (string, error) {
	token, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", repository.ErrCredentialNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", r.key, err)
	}
	return token, nil
}

// Delete removes the key. DEL on a missing key is a no-op.
func (r *CredentialRepoImpl) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", r.key, err)
	}
	return nil
}

func (r *CredentialRepoImpl) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
