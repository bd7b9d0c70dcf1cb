package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/cybernetic-labs/cyberauth/pkg/crypto"
)

// Seed record written on first access. Fixed credentials, identical to what
// legacy deployments shipped with.
const (
	adminUsername = "admin"
	adminEmail    = "admin@cybernetic.com"
	adminPassword = "admin123"
	adminFullName = "Administrator"
	adminBio      = "Advanced Cybernetic System"
	adminAvatar   = "◆"
)

// Defaults applied to every registered profile.
const (
	defaultBio    = "Explorer of the Cybernetic Era"
	defaultAvatar = "◇"
)

const minPasswordLength = 6

// UserStore owns the user collection stored under a single key. Every
// mutation rewrites the whole collection.
type UserStore struct {
	storage KeyValueStore
	hasher  crypto.PasswordHandler
	key     string
	log     *zap.Logger
}

func NewUserStore(storage KeyValueStore, hasher crypto.PasswordHandler, key string, log *zap.Logger) *UserStore {
	return &UserStore{
		storage: storage,
		hasher:  hasher,
		key:     key,
		log:     log,
	}
}

// EnsureInitialized writes a one-element seed collection containing the
// admin record if and only if the backing key is absent or unreadable.
// Idempotent; an existing collection is never overwritten, even when empty.
func (s *UserStore) EnsureInitialized() error {
	_, err := s.load()
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		return err
	}

	digest, err := s.hasher.Hash(adminPassword)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	seed := []User{
		{
			ID:       1,
			Username: adminUsername,
			Email:    adminEmail,
			Password: digest,
			Profile: Profile{
				FullName: adminFullName,
				Bio:      adminBio,
				Avatar:   adminAvatar,
				JoinDate: time.Now().UTC().Format(time.RFC3339),
			},
		},
	}

	if err := s.save(seed); err != nil {
		return err
	}

	s.log.Info("seeded user collection", zap.String("key", s.key))
	return nil
}

// FindByUsername returns the record with the given username (case-sensitive
// compare), or ErrUserNotFound.
func (s *UserStore) FindByUsername(username string) (*User, error) {
	users, err := s.loadOrEmpty()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Username == username {
			user := users[i]
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// UsernameOrEmailTaken reports whether any record matches the username OR
// the email. Both compares are case-sensitive.
func (s *UserStore) UsernameOrEmailTaken(username, email string) (bool, error) {
	users, err := s.loadOrEmpty()
	if err != nil {
		return false, err
	}

	for i := range users {
		if users[i].Username == username || users[i].Email == email {
			return true, nil
		}
	}
	return false, nil
}

// Create validates and appends a new record, then rewrites the collection.
//
// Fails with ErrDuplicateUser on a username or email collision and with
// ErrWeakPassword when the password is shorter than six characters. The
// duplicate check runs first, matching the legacy validation order.
func (s *UserStore) Create(username, email, password string) (*User, error) {
	users, err := s.loadOrEmpty()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Username == username || users[i].Email == email {
			return nil, ErrDuplicateUser
		}
	}

	if utf8.RuneCountInString(password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		// Display counter, not a durable sequence: count+1 at creation,
		// matching ids already present in legacy records.
		ID:       len(users) + 1,
		Username: username,
		Email:    email,
		Password: digest,
		Profile: Profile{
			FullName: username,
			Bio:      defaultBio,
			Avatar:   defaultAvatar,
			JoinDate: time.Now().UTC().Format(time.RFC3339),
		},
	}

	users = append(users, user)
	if err := s.save(users); err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateProfile merges update over the profile of the record with the given
// id, field by field, and rewrites the collection. Unset fields are
// retained; JoinDate is never touched. Fails with ErrRecordNotFound when no
// record carries that id.
func (s *UserStore) UpdateProfile(userID int, update ProfileUpdate) (*User, error) {
	users, err := s.loadOrEmpty()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range users {
		if users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrRecordNotFound
	}

	profile := &users[idx].Profile
	if update.FullName != nil {
		profile.FullName = *update.FullName
	}
	if update.Bio != nil {
		profile.Bio = *update.Bio
	}
	if update.Avatar != nil {
		profile.Avatar = *update.Avatar
	}

	if err := s.save(users); err != nil {
		return nil, err
	}

	user := users[idx]
	return &user, nil
}

// All returns the full collection in insertion order. No pagination and no
// access control at this layer; authorization is the caller's problem.
func (s *UserStore) All() ([]User, error) {
	return s.loadOrEmpty()
}

// load reads and decodes the collection. An absent key surfaces as
// ErrKeyNotFound; a payload that fails to decode is masked as ErrKeyNotFound
// too, so the caller re-seeds instead of crashing on corrupt data.
func (s *UserStore) load() ([]User, error) {
	raw, err := s.storage.Get(s.key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("read user collection: %w", err)
	}

	var users []User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		s.log.Warn("user collection is corrupt, treating as empty", zap.Error(err))
		return nil, ErrKeyNotFound
	}
	return users, nil
}

// loadOrEmpty is load with absence flattened to an empty collection.
func (s *UserStore) loadOrEmpty() ([]User, error) {
	users, err := s.load()
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	return users, err
}

func (s *UserStore) save(users []User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode user collection: %w", err)
	}
	if err := s.storage.Set(s.key, string(data)); err != nil {
		return fmt.Errorf("write user collection: %w", err)
	}
	return nil
}
