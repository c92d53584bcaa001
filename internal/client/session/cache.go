package session

import (
	"sync"

	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
)

// UserKey is the cache key of the current user.
const UserKey = "user"

// EntryState distinguishes "never fetched" from "known to be logged out".
type EntryState int

const (
	// EntryUnknown: nothing has been written under the key yet.
	EntryUnknown EntryState = iota
	// EntryAbsent: the key was written with nil, the user is logged out.
	EntryAbsent
	// EntryPresent: the key holds a user.
	EntryPresent
)

func (s EntryState) String() string {
	switch s {
	case EntryAbsent:
		return "absent"
	case EntryPresent:
		return "present"
	default:
		return "unknown"
	}
}

// Entry is a cache slot. User is non-nil only when State is EntryPresent.
type Entry struct {
	State EntryState
	User  *models.User
}

func (e Entry) Present() bool {
	return e.State == EntryPresent
}

type subscriber struct {
	id int
	fn func(Entry)
}

// Cache is an in-memory keyed store of users. Reads see every earlier Set.
// Values are copied on the way in and out so callers cannot mutate cached
// records.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
	subs    map[string][]subscriber
	nextID  int
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]Entry),
		subs:    make(map[string][]subscriber),
	}
}

func (c *Cache) Get(key string) Entry {
	c.mu.RLock()
	e := c.entries[key]
	c.mu.RUnlock()

	e.User = e.User.Clone()
	return e
}

// Set stores user under key; nil records the key as absent. Subscribers of
// the key run synchronously, in subscription order, after the write is
// visible and without the cache lock held.
func (c *Cache) Set(key string, user *models.User) {
	e := Entry{State: EntryAbsent}
	if user != nil {
		e = Entry{State: EntryPresent, User: user.Clone()}
	}

	c.mu.Lock()
	c.entries[key] = e
	subs := append([]subscriber(nil), c.subs[key]...)
	c.mu.Unlock()

	for _, s := range subs {
		s.fn(Entry{State: e.State, User: e.User.Clone()})
	}
}

// Subscribe registers fn for writes to key and returns a function that
// removes it. The returned function is safe to call more than once.
func (c *Cache) Subscribe(key string, fn func(Entry)) (unsubscribe func()) {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.subs[key] = append(c.subs[key], subscriber{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		subs := c.subs[key]
		for i, s := range subs {
			if s.id == id {
				c.subs[key] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}
