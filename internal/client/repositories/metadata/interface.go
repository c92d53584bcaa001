// Package metadata stores small string-keyed values in the local database.
// It plays the role browser durable storage plays for a web client: values
// survive restarts and are scoped to one database file.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns nil, nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete is a no-op for an absent key.
	Delete(ctx context.Context, key string) error
}
