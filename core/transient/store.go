package transient

import (
	"sync"
	"time"
)

// Store provides expiring key/value persistence for session-scoped state.
// Implementations must be safe for concurrent use.
type Store interface {
	// Set stores a value under key for at most ttl. A ttl of zero or less
	// stores the value without expiry.
	Set(key string, value any, ttl time.Duration)
	// Get returns the value stored under key, if present and not expired.
	Get(key string) (any, bool)
	// Delete removes the value stored under key.
	Delete(key string)
}

type entry struct {
	value     any
	expiresAt time.Time
}

// MemoryStore is an in-memory Store with per-entry TTLs.
// Expired entries are dropped lazily on read.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]entry
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]entry)}
}

// Set stores a value with the provided TTL.
func (s *MemoryStore) Set(key string, value any, ttl time.Duration) {
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	s.mu.Lock()
	s.items[key] = entry{value: value, expiresAt: expiresAt}
	s.mu.Unlock()
}

// Get returns a stored value if it exists and has not expired.
func (s *MemoryStore) Get(key string) (any, bool) {
	s.mu.RLock()
	e, ok := s.items[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		s.Delete(key)
		return nil, false
	}
	return e.value, true
}

// Delete removes the value stored under key.
func (s *MemoryStore) Delete(key string) {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
}
