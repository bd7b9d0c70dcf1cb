package core

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// User-facing messages carried in Result. The taxonomy mirrors the errors in
// errors.go; callers render the message, not the error.
const (
	MsgRegistered      = "registration successful"
	MsgLoggedIn        = "session started"
	MsgProfileUpdated  = "profile updated"
	MsgDuplicateUser   = "user or email already exists"
	MsgWeakPassword    = "password must be at least 6 characters"
	MsgUserNotFound    = "user not found"
	MsgWrongPassword   = "incorrect password"
	MsgNoActiveSession = "no active session"
	MsgRecordNotFound  = "user record not found"
)

// Register creates a new user record. It does NOT start a session; the
// caller logs in separately.
func (a *Auth) Register(username, email, password string) (Result, error) {
	user, err := a.Users.Create(username, email, password)
	switch {
	case errors.Is(err, ErrDuplicateUser):
		return Result{Message: MsgDuplicateUser}, nil
	case errors.Is(err, ErrWeakPassword):
		return Result{Message: MsgWeakPassword}, nil
	case err != nil:
		return Result{}, err
	}

	a.Log.Info("user registered",
		zap.String("username", user.Username),
		zap.Int("id", user.ID),
	)
	return Result{Success: true, Message: MsgRegistered, User: user}, nil
}

// Login looks the user up by username, compares digests and starts the
// session on a match. The absent-username check short-circuits before the
// password comparison.
//
// On success the full record is returned, digest included; callers must not
// render the Password field.
func (a *Auth) Login(username, password string) (Result, error) {
	user, err := a.Users.FindByUsername(username)
	if errors.Is(err, ErrUserNotFound) {
		return Result{Message: MsgUserNotFound}, nil
	}
	if err != nil {
		return Result{}, err
	}

	ok, err := a.Hasher.Verify(password, user.Password)
	if err != nil {
		return Result{}, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return Result{Message: MsgWrongPassword}, nil
	}

	if err := a.Sessions.Start(user); err != nil {
		return Result{}, err
	}

	a.Log.Info("session started", zap.String("username", user.Username))
	return Result{Success: true, Message: MsgLoggedIn, User: user}, nil
}

// Logout ends the current session. Navigating the caller's view back to a
// landing page is the presentation layer's job, not the engine's.
func (a *Auth) Logout() error {
	if err := a.Sessions.End(); err != nil {
		return err
	}
	a.Log.Info("session ended")
	return nil
}

// CurrentUser returns the session snapshot, or nil when nobody is logged in.
func (a *Auth) CurrentUser() (*User, error) {
	return a.Sessions.Current()
}

// IsLoggedIn reports whether a session is active.
func (a *Auth) IsLoggedIn() bool {
	return a.Sessions.IsActive()
}

// UpdateProfile merges update into the logged-in user's profile, then
// re-syncs the session with the freshly updated record. This is the only
// path that brings session and store back in line after the initial login.
func (a *Auth) UpdateProfile(update ProfileUpdate) (Result, error) {
	current, err := a.Sessions.Current()
	if err != nil {
		return Result{}, err
	}
	if current == nil {
		return Result{Message: MsgNoActiveSession}, nil
	}

	user, err := a.Users.UpdateProfile(current.ID, update)
	if errors.Is(err, ErrRecordNotFound) {
		return Result{Message: MsgRecordNotFound}, nil
	}
	if err != nil {
		return Result{}, err
	}

	if err := a.Sessions.Start(user); err != nil {
		return Result{}, err
	}

	return Result{Success: true, Message: MsgProfileUpdated, User: user}, nil
}

// AllUsers dumps the whole collection. Administrative listing only; no
// authorization is enforced at this layer.
func (a *Auth) AllUsers() ([]User, error) {
	return a.Users.All()
}
