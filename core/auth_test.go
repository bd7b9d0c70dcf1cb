package core

import (
	"testing"

	"go.uber.org/zap"

	"github.com/cybernetic-labs/cyberauth/pkg/crypto"
)

func newTestAuth(t *testing.T, store KeyValueStore) *Auth {
	t.Helper()

	hasher := crypto.NewLegacyDigest()
	log := zap.NewNop()
	auth := &Auth{
		Users:    NewUserStore(store, hasher, DefaultUsersKey, log),
		Sessions: NewSessionManager(store, DefaultSessionKey, log),
		Hasher:   hasher,
		Log:      log,
	}
	if err := auth.Users.EnsureInitialized(); err != nil {
		t.Fatalf("EnsureInitialized() error = %v", err)
	}
	return auth
}

// Requirement: registering succeeds for fresh credentials and fails with the
// duplicate message when the username is taken; registration never starts a
// session.
func TestAuth_Register(t *testing.T) {
	// Arrange
	store := NewFakeStore()
	auth := newTestAuth(t, store)

	// Act
	result, err := auth.Register("neo", "neo@x.com", "matrix1")

	// Assert
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if !result.Success {
		t.Fatalf("Register() failed: %q", result.Message)
	}
	if result.User == nil || result.User.Username != "neo" {
		t.Fatalf("Register() user = %+v", result.User)
	}
	if auth.IsLoggedIn() {
		t.Error("Register() must not start a session")
	}

	// Same username again
	again, err := auth.Register("neo", "elsewhere@x.com", "matrix1")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if again.Success {
		t.Error("Register() with a taken username should fail")
	}
	if again.Message != MsgDuplicateUser {
		t.Errorf("Register() message = %q, want %q", again.Message, MsgDuplicateUser)
	}
}

// Requirement: a short password is rejected with the length message and no
// record is created.
func TestAuth_Register_WeakPassword(t *testing.T) {
	// Arrange
	store := NewFakeStore()
	auth := newTestAuth(t, store)

	// Act
	result, err := auth.Register("trinity", "t@x.com", "ab")

	// Assert
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if result.Success {
		t.Fatal("Register() with a two-character password should fail")
	}
	if result.Message != MsgWeakPassword {
		t.Errorf("Register() message = %q, want %q", result.Message, MsgWeakPassword)
	}

	all, _ := auth.AllUsers()
	if len(all) != 1 {
		t.Errorf("failed registration created a record: %d users", len(all))
	}
}

// Requirement: login succeeds iff the supplied password digests to the
// stored digest for the matched username; an absent username short-circuits
// before the password comparison.
func TestAuth_Login(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		password    string
		wantSuccess bool
		wantMessage string
	}{
		{
			name:        "seeded admin with default password",
			username:    "admin",
			password:    "admin123",
			wantSuccess: true,
			wantMessage: MsgLoggedIn,
		},
		{
			name:        "wrong password",
			username:    "admin",
			password:    "wrongpassword",
			wantMessage: MsgWrongPassword,
		},
		{
			name:        "unknown username",
			username:    "smith",
			password:    "admin123",
			wantMessage: MsgUserNotFound,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			store := NewFakeStore()
			auth := newTestAuth(t, store)

			// Act
			result, err := auth.Login(test.username, test.password)

			// Assert
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if result.Success != test.wantSuccess {
				t.Fatalf("Login() success = %v, want %v (%q)", result.Success, test.wantSuccess, result.Message)
			}
			if result.Message != test.wantMessage {
				t.Errorf("Login() message = %q, want %q", result.Message, test.wantMessage)
			}
			if result.Success != auth.IsLoggedIn() {
				t.Errorf("IsLoggedIn() = %v after login success = %v", auth.IsLoggedIn(), result.Success)
			}
			if !test.wantSuccess {
				current, _ := auth.CurrentUser()
				if current != nil {
					t.Errorf("failed login left a session for %q", current.Username)
				}
			}
		})
	}
}

// Requirement: login returns the full record, digest included.
func TestAuth_Login_ReturnsDigest(t *testing.T) {
	// Arrange
	store := NewFakeStore()
	auth := newTestAuth(t, store)

	// Act
	result, err := auth.Login("admin", "admin123")

	// Assert
	if err != nil || !result.Success {
		t.Fatalf("Login() = %+v, %v", result, err)
	}
	if result.User.Password != crypto.Digest("admin123") {
		t.Errorf("Login() user digest = %q, want digest of supplied password", result.User.Password)
	}
}

// Requirement: logout returns the engine to the anonymous state.
func TestAuth_Logout(t *testing.T) {
	// Arrange
	store := NewFakeStore()
	auth := newTestAuth(t, store)
	if result, _ := auth.Login("admin", "admin123"); !result.Success {
		t.Fatal("Login() failed during arrange")
	}
	if !auth.IsLoggedIn() {
		t.Fatal("IsLoggedIn() = false after successful login")
	}

	// Act
	if err := auth.Logout(); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	// Assert
	if auth.IsLoggedIn() {
		t.Error("IsLoggedIn() = true after Logout()")
	}
}

// Requirement: with no active session, UpdateProfile fails with the
// no-session message and nothing in the store changes.
func TestAuth_UpdateProfile_NoSession(t *testing.T) {
	// Arrange
	store := NewFakeStore()
	auth := newTestAuth(t, store)
	before, _ := store.Raw(DefaultUsersKey)
	bio := "x"

	// Act
	result, err := auth.UpdateProfile(ProfileUpdate{Bio: &bio})

	// Assert
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if result.Success {
		t.Fatal("UpdateProfile() without a session should fail")
	}
	if result.Message != MsgNoActiveSession {
		t.Errorf("UpdateProfile() message = %q, want %q", result.Message, MsgNoActiveSession)
	}

	after, _ := store.Raw(DefaultUsersKey)
	if before != after {
		t.Error("UpdateProfile() without a session mutated the store")
	}
}

// Requirement: after a successful UpdateProfile, the session snapshot and
// the canonical record both hold the merged profile.
func TestAuth_UpdateProfile_SyncsSession(t *testing.T) {
	// Arrange
	store := NewFakeStore()
	auth := newTestAuth(t, store)
	if result, _ := auth.Register("neo", "neo@x.com", "matrix1"); !result.Success {
		t.Fatal("Register() failed during arrange")
	}
	if result, _ := auth.Login("neo", "matrix1"); !result.Success {
		t.Fatal("Login() failed during arrange")
	}

	bio := "the one"
	fullName := "Thomas Anderson"

	// Act
	result, err := auth.UpdateProfile(ProfileUpdate{Bio: &bio, FullName: &fullName})

	// Assert
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if !result.Success {
		t.Fatalf("UpdateProfile() failed: %q", result.Message)
	}

	current, err := auth.CurrentUser()
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if current.Profile.Bio != bio || current.Profile.FullName != fullName {
		t.Errorf("session profile = %+v, want merged update", current.Profile)
	}

	stored, err := auth.Users.FindByUsername("neo")
	if err != nil {
		t.Fatalf("FindByUsername() error = %v", err)
	}
	if stored.Profile != current.Profile {
		t.Errorf("store profile %+v diverges from session profile %+v", stored.Profile, current.Profile)
	}
}

// Requirement: a session whose record disappeared from the store fails
// UpdateProfile with the record-not-found message.
func TestAuth_UpdateProfile_StaleSession(t *testing.T) {
	// Arrange
	store := NewFakeStore()
	auth := newTestAuth(t, store)
	if result, _ := auth.Login("admin", "admin123"); !result.Success {
		t.Fatal("Login() failed during arrange")
	}
	// Wipe the collection out from under the session
	store.Seed(DefaultUsersKey, `[]`)

	bio := "ghost"

	// Act
	result, err := auth.UpdateProfile(ProfileUpdate{Bio: &bio})

	// Assert
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if result.Success {
		t.Fatal("UpdateProfile() with a stale session id should fail")
	}
	if result.Message != MsgRecordNotFound {
		t.Errorf("UpdateProfile() message = %q, want %q", result.Message, MsgRecordNotFound)
	}
}

// Requirement: registered users are pairwise unique in both username and
// email.
func TestAuth_Uniqueness(t *testing.T) {
	// Arrange
	store := NewFakeStore()
	auth := newTestAuth(t, store)

	creds := [][3]string{
		{"neo", "neo@x.com", "matrix1"},
		{"trinity", "t@x.com", "matrix2"},
		{"morpheus", "m@x.com", "matrix3"},
	}
	for _, c := range creds {
		if result, _ := auth.Register(c[0], c[1], c[2]); !result.Success {
			t.Fatalf("Register(%q) failed: %q", c[0], result.Message)
		}
	}

	// Act
	all, err := auth.AllUsers()
	if err != nil {
		t.Fatalf("AllUsers() error = %v", err)
	}

	// Assert
	usernames := make(map[string]bool)
	emails := make(map[string]bool)
	for _, u := range all {
		if usernames[u.Username] {
			t.Errorf("duplicate username %q", u.Username)
		}
		if emails[u.Email] {
			t.Errorf("duplicate email %q", u.Email)
		}
		usernames[u.Username] = true
		emails[u.Email] = true
	}
}
