package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
)

// State is the relationship between the cached user and the identity.
// Authenticating is not represented here: a request in flight is tracked by
// whoever issued it.
type State string

const (
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
	StateDesynced      State = "desynced"
)

// Reconciler copies the cached user into the identity. The copy only ever
// flows cache -> identity, and an absent or unknown cache entry leaves the
// identity alone.
type Reconciler struct {
	cache    *Cache
	identity IdentityStore
	log      logging.Logger

	mu          sync.Mutex
	unsubscribe func()
}

func NewReconciler(cache *Cache, identity IdentityStore, log logging.Logger) *Reconciler {
	return &Reconciler{cache: cache, identity: identity, log: log}
}

// Start subscribes to UserKey and runs one pass over the current entry.
// Calling Start on a started reconciler does nothing.
func (r *Reconciler) Start() {
	r.mu.Lock()
	if r.unsubscribe != nil {
		r.mu.Unlock()
		return
	}
	r.unsubscribe = r.cache.Subscribe(UserKey, func(e Entry) { r.apply(e) })
	r.mu.Unlock()

	r.Reconcile()
}

func (r *Reconciler) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}

// Reconcile runs a single pass and reports whether the identity was written.
func (r *Reconciler) Reconcile() bool {
	return r.apply(r.cache.Get(UserKey))
}

func (r *Reconciler) apply(e Entry) bool {
	if !e.Present() {
		return false
	}
	current := r.identity.LoggedInUser()
	if current != nil && current.Email == e.User.Email {
		return false
	}
	r.identity.SetLoggedInUser(e.User)
	r.log.Debug(context.Background(), "identity synced from cache", "email", e.User.Email)
	return true
}

// State classifies the current pair of stores.
func (r *Reconciler) State() State {
	return Classify(r.cache.Get(UserKey), r.identity.LoggedInUser())
}

// Classify reports the state of a cache entry and identity pair.
func Classify(e Entry, current *models.User) State {
	if e.Present() {
		if models.SameIdentity(e.User, current) {
			return StateAuthenticated
		}
		return StateDesynced
	}
	if current == nil {
		return StateAnonymous
	}
	// An identity without a cached user is left over from an incomplete
	// logout; the reconciler never clears it on its own.
	return StateDesynced
}
