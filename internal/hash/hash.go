// Package hash implements the credential digest used for stored passwords.
//
// Digests are unsalted single-round SHA-256 hex strings. This matches the
// digests already present in the User table; switching to a salted scheme
// would invalidate every stored credential.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the lowercase hex digest of the given plaintext.
func Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether plaintext hashes to the stored digest.
func Verify(plaintext, digest string) bool {
	return Hash(plaintext) == digest
}
