package core

import "sync"

// FakeStore is a test-only KeyValueStore backed by a map. It exposes error
// fields for behavior injection.
type FakeStore struct {
	data map[string]string
	mu   sync.RWMutex

	getErr    error
	setErr    error
	removeErr error
}

func NewFakeStore() *FakeStore {
	return &FakeStore{
		data: make(map[string]string),
	}
}

func (f *FakeStore) Get(key string) (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.getErr != nil {
		return "", f.getErr
	}

	value, ok := f.data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (f *FakeStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.setErr != nil {
		return f.setErr
	}

	f.data[key] = value
	return nil
}

func (f *FakeStore) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.removeErr != nil {
		return f.removeErr
	}

	delete(f.data, key)
	return nil
}

// Seed writes raw content directly, bypassing error injection.
func (f *FakeStore) Seed(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
}

// Raw returns the stored value and whether the key exists.
func (f *FakeStore) Raw(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	value, ok := f.data[key]
	return value, ok
}
