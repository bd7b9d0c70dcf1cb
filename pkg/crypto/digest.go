package crypto

import "strconv"

// PasswordHandler hashes and verifies passwords. The engine only ever stores
// and compares handler output; the scheme is the implementation's choice.
type PasswordHandler interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

// LegacyDigest reproduces the digest legacy records store: each code
// point folded into a signed 32-bit accumulator as h = h*31 + code with
// wraparound, the absolute value rendered in base-36.
//
// It is not cryptographically secure - unsalted, not iterated, and collisions
// across short inputs are plausible. It stays the default handler only
// because existing records hold these digests and must keep verifying;
// deployments without stored records should inject Argon2 instead.
type LegacyDigest struct{}

// Ensure LegacyDigest implements PasswordHandler
var _ PasswordHandler = (*LegacyDigest)(nil)

func NewLegacyDigest() *LegacyDigest {
	return &LegacyDigest{}
}

func (*LegacyDigest) Hash(password string) (string, error) {
	return Digest(password), nil
}

func (*LegacyDigest) Verify(password, hash string) (bool, error) {
	return Digest(password) == hash, nil
}

// Digest computes the legacy digest of s. Deterministic pure function; the
// empty string maps to "0". The 32-bit wraparound is load-bearing: changing
// it invalidates every previously stored digest.
func Digest(s string) string {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}

	// abs in 64 bits so the minimum int32 doesn't stay negative
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 36)
}
