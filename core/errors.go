package core

import "errors"

// Registration and login errors
var (
	// User errors
	ErrDuplicateUser = errors.New("user or email already exists") // uniqueness checked at creation only
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("incorrect password")
	ErrWeakPassword  = errors.New("password is too short")
)

// Session and profile errors
var (
	ErrNoActiveSession = errors.New("no active session")
	ErrRecordNotFound  = errors.New("user record not found") // stale session id, record gone from the store
)

// Storage errors
var (
	ErrKeyNotFound = errors.New("key not found")
)

// Config errors (caller-side wiring)
var (
	ErrStorageRequired = errors.New("storage adapter is required")
)
