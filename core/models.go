package core

// User is a stored credential record.
//
// This is the canonical record - what the store knows about someone
type User struct {
	ID       int     `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"` // digest of the plaintext, never the plaintext itself
	Profile  Profile `json:"profile"`
}

// Profile is the mutable sub-document of a User.
// JoinDate is written once at registration and never changes afterwards.
type Profile struct {
	FullName string `json:"fullName"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
	JoinDate string `json:"joinDate"`
}

// ProfileUpdate is a partial profile. Nil fields keep the stored value,
// non-nil fields overwrite it.
type ProfileUpdate struct {
	FullName *string `json:"fullName,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

// Result is the shape every facade operation returns to callers.
//
// Domain rule violations (duplicate user, weak password, wrong password,
// no active session) come back as Success=false with a user-facing Message;
// a non-nil error from the operation means the storage backend failed.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
}
