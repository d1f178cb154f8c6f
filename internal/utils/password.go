package utils

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

// CheckSecret compares a submitted password against the configured admin
// secret. The secret may be a bcrypt hash ($2a$/$2b$ prefix) or a plain
// value; plain comparison is constant-time.
func CheckSecret(configured, submitted string) bool {
	if configured == "" {
		return false
	}
	if strings.HasPrefix(configured, "$2a$") || strings.HasPrefix(configured, "$2b$") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(submitted)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(submitted)) == 1
}
