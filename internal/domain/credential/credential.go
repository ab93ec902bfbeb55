// Package credential derives the string that is actually hashed for a user:
// the plaintext password combined with a per-user random salt.
package credential

import (
	"crypto/rand"
	"encoding/base64"
)

// SaltSize is the number of random bytes behind every salt (256 bits).
const SaltSize = 32

// GenerateSalt returns SaltSize bytes from the system CSPRNG, base64 encoded.
// It panics if the entropy source fails; no salt can be produced safely after that.
func GenerateSalt() string {
	buf := make([]byte, SaltSize)
	if _, err := rand.Read(buf); err != nil {
		panic("credential: entropy source failed: " + err.Error())
	}

	return base64.StdEncoding.EncodeToString(buf)
}

// Combine concatenates the UTF-8 bytes of password and salt, password first,
// and base64 encodes the result. Registration and authentication must both go
// through here or stored hashes stop matching.
func Combine(password, salt string) string {
	combined := make([]byte, 0, len(password)+len(salt))
	combined = append(combined, password...)
	combined = append(combined, salt...)

	return base64.StdEncoding.EncodeToString(combined)
}
