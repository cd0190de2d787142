// Package security contains everything related to credentials and
// session tokens
package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Matches what the frontend signup flow has always used
const bcryptCost = 10

func HashPassword(p string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(p), bcryptCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPassword compares a password candidate against the stored bcrypt
// hash. The comparison inside bcrypt is constant-time. Returns false on a
// mismatch, an error only for malformed hashes
func VerifyPassword(p, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(p))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
