package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword computes a bcrypt digest of the given plaintext password with
// the provided work factor.
//
// bcrypt embeds a random salt, so hashing the same password twice yields
// different digests; comparison must go through [CheckPassword].
//
// Returns the digest string ready for storage, or an error if the cost is
// out of bcrypt's supported range or hashing fails.
func HashPassword(password string, cost int) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt digest.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
