package domain

import (
	"regexp"
	"unicode"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether the address has a basic local@domain.tld shape
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Password strength labels
const (
	StrengthWeak   = "weak"
	StrengthMedium = "medium"
	StrengthStrong = "strong"
)

// PasswordStrength scores a password: it must be at least 8 characters and
// contain at least 2 of {uppercase, lowercase, digit, symbol} to be
// acceptable.
func PasswordStrength(password string) (valid bool, strength string) {
	if len(password) < 8 {
		return false, StrengthWeak
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}

	score := 0
	for _, ok := range []bool{hasUpper, hasLower, hasDigit, hasSymbol} {
		if ok {
			score++
		}
	}

	switch {
	case score < 2:
		return false, StrengthWeak
	case score < 3:
		return true, StrengthMedium
	default:
		return true, StrengthStrong
	}
}
