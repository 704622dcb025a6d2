package services

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

const (
	minPasswordLength = 8
	// bcrypt rejects anything longer.
	maxPasswordBytes = 72
)

var ErrWeakPassword = errors.New("weak password")

type passwordClasses struct {
	upper bool
	lower bool
	digit bool
}

func classifyPassword(password string) passwordClasses {
	classes := passwordClasses{}
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			classes.upper = true
		case unicode.IsLower(char):
			classes.lower = true
		case unicode.IsDigit(char):
			classes.digit = true
		}
	}
	return classes
}

// ValidatePasswordStrength requires 8 to 72 bytes mixing upper case, lower
// case and digits.
func ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength || len(password) > maxPasswordBytes {
		return ErrWeakPassword
	}
	classes := classifyPassword(password)
	if !classes.upper || !classes.lower || !classes.digit {
		return ErrWeakPassword
	}
	return nil
}
