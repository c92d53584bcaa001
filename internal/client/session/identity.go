package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
)

// ErrNoIdentityProvider is raised when identity is read from a context that
// was never given one with WithIdentity.
var ErrNoIdentityProvider = errors.New("session: identity read outside of WithIdentity")

// IdentityStore is the read/write surface of the logged-in user.
type IdentityStore interface {
	LoggedInUser() *models.User
	SetLoggedInUser(user *models.User)
}

// Identity holds the logged-in user for the lifetime of the process. It is
// never persisted.
type Identity struct {
	mu   sync.RWMutex
	user *models.User
}

func NewIdentity() *Identity {
	return &Identity{}
}

func (i *Identity) LoggedInUser() *models.User {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.user.Clone()
}

// SetLoggedInUser replaces the current user; nil logs out.
func (i *Identity) SetLoggedInUser(user *models.User) {
	i.mu.Lock()
	i.user = user.Clone()
	i.mu.Unlock()
}

type identityKey struct{}

// WithIdentity makes id available to everything that receives the returned
// context.
func WithIdentity(ctx context.Context, id IdentityStore) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity provided with WithIdentity.
func IdentityFrom(ctx context.Context) (IdentityStore, error) {
	id, ok := ctx.Value(identityKey{}).(IdentityStore)
	if !ok || id == nil {
		return nil, ErrNoIdentityProvider
	}
	return id, nil
}

// MustIdentity is IdentityFrom for code that cannot run without one. It
// panics with ErrNoIdentityProvider when ctx carries no identity.
func MustIdentity(ctx context.Context) IdentityStore {
	id, err := IdentityFrom(ctx)
	if err != nil {
		panic(err)
	}
	return id
}
