// Package utils holds the credential hashing primitives. Passwords get a
// salted bcrypt digest; emails get a deterministic SHA-256 digest of the
// normalized address, so uniqueness stays checkable without keeping the
// address itself.
package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt digest of a plaintext password. Each call
// draws a fresh salt, so two digests of the same password differ.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether the plaintext password matches a stored
// bcrypt digest.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// HashEmail returns the SHA-256 hex digest of the trimmed, lower-cased
// email address. Not reversible.
func HashEmail(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// VerifyEmail reports whether a plaintext email matches a stored digest.
func VerifyEmail(email, digest string) bool {
	return HashEmail(email) == digest
}
