// Package routes lists the client-side pages and tracks which one is shown.
package routes

import (
	"fmt"
	"sync"
)

type Route string

const (
	Home     Route = "/"
	Login    Route = "/login"
	Register Route = "/register"
	User     Route = "/user"
)

// Known reports whether r is one of the client pages.
func Known(r Route) bool {
	switch r {
	case Home, Login, Register, User:
		return true
	}
	return false
}

// Router holds the current route. Navigation is local; nothing is fetched.
type Router struct {
	mu      sync.RWMutex
	current Route
}

func NewRouter(start Route) *Router {
	return &Router{current: start}
}

func (r *Router) Current() Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

func (r *Router) Navigate(to Route) error {
	if !Known(to) {
		return fmt.Errorf("unknown route %q", to)
	}
	r.mu.Lock()
	r.current = to
	r.mu.Unlock()
	return nil
}
