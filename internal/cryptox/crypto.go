// Package cryptox holds the password-verifier primitives used by the local
// account table. Passwords are never stored; only an argon2id-derived verifier
// and its salt are.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/dmitrijs2005/deckkeeper/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of freshly generated salts, in bytes.
const SaltSize = 16

// NewSalt returns a random salt of SaltSize bytes.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// DeriveKey stretches password with salt using argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key into the value kept on disk.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// Verify derives a verifier from (password, salt) and compares it with
// stored in constant time.
func Verify(password, salt, stored []byte) bool {
	candidate := MakeVerifier(DeriveKey(password, salt))
	return subtle.ConstantTimeCompare(candidate, stored) == 1
}
