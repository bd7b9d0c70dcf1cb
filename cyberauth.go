package cyberauth

import (
	"go.uber.org/zap"

	"github.com/cybernetic-labs/cyberauth/core"
	"github.com/cybernetic-labs/cyberauth/pkg/crypto"
)

// interfaces
type (
	KeyValueStore = core.KeyValueStore

	PasswordHandler = crypto.PasswordHandler
)

// structs
type (
	Auth   = core.Auth
	Config = core.Config
)

type (
	User          = core.User
	Profile       = core.Profile
	ProfileUpdate = core.ProfileUpdate
	Result        = core.Result
)

const (
	DefaultUsersKey   = core.DefaultUsersKey
	DefaultSessionKey = core.DefaultSessionKey
)

// Result messages
const (
	MsgRegistered     = core.MsgRegistered
	MsgLoggedIn       = core.MsgLoggedIn
	MsgProfileUpdated = core.MsgProfileUpdated

	MsgDuplicateUser   = core.MsgDuplicateUser
	MsgWeakPassword    = core.MsgWeakPassword
	MsgUserNotFound    = core.MsgUserNotFound
	MsgWrongPassword   = core.MsgWrongPassword
	MsgNoActiveSession = core.MsgNoActiveSession
	MsgRecordNotFound  = core.MsgRecordNotFound
)

// Constructors & helpers (convenience re-exports)
var (
	NewLegacyDigest = crypto.NewLegacyDigest
	NewArgon2       = crypto.NewArgon2
)

var (
	ErrDuplicateUser = core.ErrDuplicateUser
	ErrUserNotFound  = core.ErrUserNotFound
	ErrWrongPassword = core.ErrWrongPassword
	ErrWeakPassword  = core.ErrWeakPassword
)

var (
	ErrNoActiveSession = core.ErrNoActiveSession
	ErrRecordNotFound  = core.ErrRecordNotFound
	ErrKeyNotFound     = core.ErrKeyNotFound
)

var (
	ErrStorageRequired = core.ErrStorageRequired
)

// New validates the config, applies defaults and builds the engine. The
// user collection is lazily seeded here: if the backing key is absent, a
// one-element collection holding the fixed admin record is written.
func New(config Config) (*Auth, error) {
	if config.Storage == nil {
		return nil, ErrStorageRequired
	}

	// Set Defaults

	hasher := config.PasswordHasher
	if hasher == nil {
		// Legacy digest by default: records stored by earlier deployments
		// must keep verifying. Inject Argon2 to opt out.
		hasher = crypto.NewLegacyDigest()
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	usersKey := config.UsersKey
	if usersKey == "" {
		usersKey = core.DefaultUsersKey
	}

	sessionKey := config.SessionKey
	if sessionKey == "" {
		sessionKey = core.DefaultSessionKey
	}

	users := core.NewUserStore(config.Storage, hasher, usersKey, logger)
	sessions := core.NewSessionManager(config.Storage, sessionKey, logger)

	auth := &core.Auth{
		Users:    users,
		Sessions: sessions,
		Hasher:   hasher,
		Log:      logger,
	}

	if err := users.EnsureInitialized(); err != nil {
		return nil, err
	}

	return auth, nil
}
