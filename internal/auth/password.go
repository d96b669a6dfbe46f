// Package auth provides credential hashing and request identity helpers.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor for password hashes.
const hashCost = 10

// HashPassword creates a salted bcrypt hash of the given password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks if the password matches the hash.
// bcrypt's comparison is constant-time internally, so the result leaks
// nothing about how close the guess was.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
