package util

import (
	"golang.org/x/crypto/bcrypt"
)

// Cost 12 keeps a login verify well under interactive latency while
// staying above the bcrypt default.
const bcryptCost = 12

// HashPassword returns the bcrypt hash of a plain-text password. The
// salt is embedded in the hash, so two calls never produce the same
// string.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt
// hash. A malformed hash verifies as false rather than erroring.
func VerifyPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
