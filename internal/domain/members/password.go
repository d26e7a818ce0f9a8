package members

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func isHashed(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$")
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether password opens the member's account. Plain
// stored passwords must match exactly.
func VerifyPassword(member FamilyMember, password string) bool {
	if isHashed(member.Password) {
		return bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(member.Password), []byte(password)) == 1
}

// PasswordHint returns the plaintext password for the demo login screen.
// Hashed passwords have no hint.
func PasswordHint(member FamilyMember) (string, bool) {
	if member.Password == "" || isHashed(member.Password) {
		return "", false
	}
	return member.Password, true
}
