package memory

import (
	"sync"
	"sync/atomic"

	"github.com/cybernetic-labs/cyberauth/core"
)

// Store implements an in-memory key-value store. Values live for the
// lifetime of the process only, so it suits tests and demos rather than the
// durable deployments the engine expects.
type Store struct {
	data map[string]string
	mu   sync.RWMutex

	// counters
	hits    int64
	misses  int64
	sets    int64
	removes int64
}

// Stats are simple counters for store behavior.
// These are intended for diagnostics and monitoring.
type Stats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Sets    int64 `json:"sets"`
	Removes int64 `json:"removes"`
	Size    int   `json:"size"`
}

var _ core.KeyValueStore = (*Store)(nil)

// New creates a new in-memory store
func New() *Store {
	return &Store{
		data: make(map[string]string),
	}
}

// Get retrieves the value stored under key
func (s *Store) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, exists := s.data[key]
	if !exists {
		atomic.AddInt64(&s.misses, 1)
		return "", core.ErrKeyNotFound
	}

	atomic.AddInt64(&s.hits, 1)
	return value, nil
}

// Set stores value under key, replacing any previous value
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	atomic.AddInt64(&s.sets, 1)
	return nil
}

// Remove deletes key. Removing an absent key is a no-op.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, existed := s.data[key]; existed {
		delete(s.data, key)
		atomic.AddInt64(&s.removes, 1)
	}
	return nil
}

// Len returns the number of stored keys
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Stats returns store statistics
func (s *Store) Stats() Stats {
	return Stats{
		Hits:    atomic.LoadInt64(&s.hits),
		Misses:  atomic.LoadInt64(&s.misses),
		Sets:    atomic.LoadInt64(&s.sets),
		Removes: atomic.LoadInt64(&s.removes),
		Size:    s.Len(),
	}
}
