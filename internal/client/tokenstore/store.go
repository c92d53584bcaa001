// Package tokenstore keeps the session token in durable local storage.
//
// The token is opaque: it is stored and returned exactly as received and no
// other package is expected to parse it.
package tokenstore

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/client/repositories/metadata"
)

// TokenKey is the metadata key the session token lives under.
const TokenKey = "session_token"

// Store persists a single bearer token.
type Store interface {
	// SetToken overwrites any stored token.
	SetToken(ctx context.Context, token string) error
	// GetToken returns ok == false when no token is stored.
	GetToken(ctx context.Context) (token string, ok bool, err error)
	// ClearToken removes the token. Clearing an empty store is not an error.
	ClearToken(ctx context.Context) error
}

type metadataStore struct {
	repo metadata.Repository
}

// New returns a Store backed by repo.
func New(repo metadata.Repository) Store {
	return &metadataStore{repo: repo}
}

func (s *metadataStore) SetToken(ctx context.Context, token string) error {
	if err := s.repo.Set(ctx, TokenKey, []byte(token)); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *metadataStore) GetToken(ctx context.Context) (string, bool, error) {
	value, err := s.repo.Get(ctx, TokenKey)
	if err != nil {
		return "", false, fmt.Errorf("load token: %w", err)
	}
	if value == nil {
		return "", false, nil
	}
	return string(value), true, nil
}

func (s *metadataStore) ClearToken(ctx context.Context) error {
	if err := s.repo.Delete(ctx, TokenKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
