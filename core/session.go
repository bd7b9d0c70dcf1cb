package core

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// SessionManager owns the single current-session slot stored under its key.
// The session value is a snapshot of one user record, not a reference into
// the user collection: it is written at login and refreshed only by a
// profile update, so it can drift from the canonical record in between.
type SessionManager struct {
	storage KeyValueStore
	key     string
	log     *zap.Logger
}

func NewSessionManager(storage KeyValueStore, key string, log *zap.Logger) *SessionManager {
	return &SessionManager{
		storage: storage,
		key:     key,
		log:     log,
	}
}

// Start persists a full copy of user as the current session, unconditionally
// replacing any existing session. Two sessions cannot coexist.
func (sm *SessionManager) Start(user *User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := sm.storage.Set(sm.key, string(data)); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Current returns the session snapshot, or nil when no session is active.
// A payload that fails to decode reads as no session.
func (sm *SessionManager) Current() (*User, error) {
	raw, err := sm.storage.Get(sm.key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		sm.log.Warn("session record is corrupt, treating as no session", zap.Error(err))
		return nil, nil
	}
	return &user, nil
}

// End removes the session slot. Ending an absent session is not an error.
func (sm *SessionManager) End() error {
	if err := sm.storage.Remove(sm.key); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// IsActive reports whether a session snapshot is currently stored.
func (sm *SessionManager) IsActive() bool {
	user, err := sm.Current()
	return err == nil && user != nil
}
