// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// InviteAlphabet omits I, O, 0 and 1 so codes survive being read aloud.
const InviteAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// InviteCodeLength is the number of characters in an invite code
const InviteCodeLength = 6

// GenerateInviteCode creates a random invite code over InviteAlphabet.
// Uniqueness is the caller's concern; collisions are caught by the store.
func GenerateInviteCode() (string, error) {
	b := make([]byte, InviteCodeLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate invite code: %w", err)
	}
	// 256 is a multiple of 32, so the modulo is unbiased
	for i := range b {
		b[i] = InviteAlphabet[int(b[i])%len(InviteAlphabet)]
	}
	return string(b), nil
}

// NormalizeInviteCode trims whitespace and uppercases a user-entered code.
func NormalizeInviteCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidInviteCode reports whether a normalized code has the right length
// and only uses the invite alphabet.
func ValidInviteCode(code string) bool {
	if len(code) != InviteCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(InviteAlphabet, code[i]) < 0 {
			return false
		}
	}
	return true
}

var nameSeparators = regexp.MustCompile(`[._\-]+`)

// DeriveFirstName picks a display name for a new profile. A full name wins;
// otherwise the email local part is cleaned up and capitalized. Falls back
// to "Player".
func DeriveFirstName(fullName, email string) string {
	if fields := strings.Fields(fullName); len(fields) > 0 {
		return fields[0]
	}

	local, _, _ := strings.Cut(email, "@")
	local = strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, local)

	for _, part := range nameSeparators.Split(local, -1) {
		if part == "" {
			continue
		}
		runes := []rune(strings.ToLower(part))
		runes[0] = unicode.ToUpper(runes[0])
		return string(runes)
	}
	return "Player"
}

// HashAdminPassword hashes a password for the admin-password-hash setting.
func HashAdminPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(h), nil
}

// CheckAdminPassword compares a password against a bcrypt hash.
// An empty hash disables the password gate.
func CheckAdminPassword(hash, password string) error {
	if hash == "" {
		return nil
	}
	if password == "" {
		return ErrAdminPasswordRequired
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrAdminPasswordRequired
	}
	return nil
}
