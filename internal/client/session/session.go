package session

import (
	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
)

// Session is the handle to the session state of one running client.
type Session struct {
	Cache      *Cache
	Identity   *Identity
	Reconciler *Reconciler
}

// New builds an empty session with its reconciler already subscribed.
func New(log logging.Logger) *Session {
	cache := NewCache()
	identity := NewIdentity()
	r := NewReconciler(cache, identity, log)
	r.Start()
	return &Session{Cache: cache, Identity: identity, Reconciler: r}
}

// CurrentUser returns the cached user, or nil when the cache holds none.
func (s *Session) CurrentUser() *models.User {
	return s.Cache.Get(UserKey).User
}

// Close detaches the reconciler. The stores stay readable.
func (s *Session) Close() {
	s.Reconciler.Stop()
}
