package auth

import "crypto/subtle"

// VerifyCredential compares a stored credential against the supplied one.
// The stored value is the literal password today; every call site goes
// through this seam so a hashing scheme can be introduced without touching
// them.
func VerifyCredential(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}
