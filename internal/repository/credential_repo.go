package repository

import (
	"context"
	"errors"
)

// ErrCredentialNotFound is returned when no API key has been stored.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialKey is the fixed storage key holding the crawl API key.
const CredentialKey = "firecrawl_api_key"

// CredentialRepository defines durable storage for the single crawl API key.
type CredentialRepository interface {
	// Save stores the token, overwriting any previous one.
	Save(ctx context.Context, token string) error
	// Get returns the stored token or ErrCredentialNotFound.
	Get(ctx context.Context) (string, error)
	// Delete removes the stored token. Deleting a missing token is not an error.
	Delete(ctx context.Context) error
	// Ping checks the backing store is reachable.
	Ping(ctx context.Context) error
}
