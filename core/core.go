package core

import (
	"go.uber.org/zap"

	"github.com/cybernetic-labs/cyberauth/pkg/crypto"
)

// Storage keys. Values are JSON-encoded; records written by earlier
// deployments live under these exact keys.
const (
	DefaultUsersKey   = "cybernetic_users"
	DefaultSessionKey = "cybernetic_current_user"
)

type Config struct {
	Storage KeyValueStore

	// Optional config
	PasswordHasher crypto.PasswordHandler
	Logger         *zap.Logger
	UsersKey       string
	SessionKey     string
}

// Auth composes the user store and the session manager behind the facade
// operations in auth.go. One instance per storage scope; collaborators
// receive it explicitly instead of reaching for a shared global.
type Auth struct {
	Users    *UserStore
	Sessions *SessionManager
	Hasher   crypto.PasswordHandler
	Log      *zap.Logger
}
