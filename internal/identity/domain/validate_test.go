package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"alice@example.com", true},
		{"a@b.co", true},
		{"first.last@sub.domain.org", true},
		{"bad-email", false},
		{"", false},
		{"@example.com", false},
		{"alice@example", false},
		{"alice @example.com", false},
		{"alice@ example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.email))
		})
	}
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
		strength string
	}{
		{"too short", "Ab1!", false, StrengthWeak},
		{"long but one class", "aaaaaaaa", false, StrengthWeak},
		{"two classes", "abcdefg1", true, StrengthMedium},
		{"upper and lower", "Abcdefgh", true, StrengthMedium},
		{"three classes", "Abcdefg1", true, StrengthStrong},
		{"all classes", "Abcdef1!", true, StrengthStrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, strength := PasswordStrength(tt.password)
			assert.Equal(t, tt.valid, valid)
			assert.Equal(t, tt.strength, strength)
		})
	}
}
