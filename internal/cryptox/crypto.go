// Package cryptox implements the password-hashing scheme for the credential
// store: a random per-account salt and a PBKDF2-SHA256 digest, compared in
// constant time.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the length of a freshly generated salt in bytes.
	SaltSize = 16
	// HashSize is the fixed length of a password hash in bytes.
	HashSize = 32

	iterations = 100_000
)

// GenerateSalt returns a fresh random salt of SaltSize bytes.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// HashPassword derives the fixed-length hash of password under salt.
// The same (password, salt) pair always yields the same hash.
func HashPassword(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, HashSize, sha256.New)
}

// TrimHash normalizes a stored hash to its fixed-length representation,
// discarding any padding a storage engine may have appended.
func TrimHash(hash []byte) []byte {
	if len(hash) > HashSize {
		return hash[:HashSize]
	}
	return hash
}

// VerifyPassword reports whether password hashes to the stored digest under
// salt. The comparison is constant-time.
func VerifyPassword(stored []byte, password string, salt []byte) bool {
	candidate := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(TrimHash(stored), candidate) == 1
}
