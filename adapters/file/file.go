package file

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cybernetic-labs/cyberauth/core"
)

// Store is a file-backed key-value store: each key is one file under dir.
// Durable across process restarts and scoped to the directory, which makes
// it the closest server-side analog of a browser's per-origin localStorage.
//
// Writes replace the whole file, mirroring the engine's whole-collection
// rewrite. Two processes against the same directory can lose updates to
// each other; last writer wins.
type Store struct {
	dir string
	mu  sync.RWMutex
}

var _ core.KeyValueStore = (*Store)(nil)

// New creates the directory if needed and returns a store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Get retrieves the value stored under key
func (s *Store) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", core.ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Set stores value under key, replacing any previous value
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return os.WriteFile(s.path(key), []byte(value), 0o600)
}

// Remove deletes key. Removing an absent key is a no-op.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// path maps a key to a file name. Path separators are flattened so a key
// can never escape the store directory.
func (s *Store) path(key string) string {
	name := strings.NewReplacer("/", "_", "\\", "_").Replace(key)
	return filepath.Join(s.dir, name+".json")
}
