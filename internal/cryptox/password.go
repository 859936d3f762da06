// Package cryptox wraps password hashing for the authentication flow.
package cryptox

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt hash from the given password using the
// default cost. The caller is expected to wipe the plaintext afterwards.
func HashPassword(password []byte) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the candidate password matches the stored
// bcrypt hash.
func CheckPassword(hash string, candidate []byte) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), candidate) == nil
}
