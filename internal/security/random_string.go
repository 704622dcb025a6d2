package security

import (
	"crypto/rand"
	"errors"
	"math/big"
	"unicode"
)

const (
	temporaryPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	minTemporaryPassword      = 8
	maxTemporaryAttempts      = 32
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
	errNoMixedClasses = errors.New("could not generate a mixed-class password")
)

// RandomString returns a cryptographically secure, unbiased string of the requested length.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}

	return string(value), nil
}

// TemporaryPassword draws unambiguous characters until the result contains an
// upper case letter, a lower case letter and a digit.
func TemporaryPassword(length int) (string, error) {
	if length < minTemporaryPassword {
		length = minTemporaryPassword
	}

	for attempt := 0; attempt < maxTemporaryAttempts; attempt++ {
		candidate, err := RandomString(length, temporaryPasswordAlphabet)
		if err != nil {
			return "", err
		}
		if hasMixedClasses(candidate) {
			return candidate, nil
		}
	}
	return "", errNoMixedClasses
}

func hasMixedClasses(value string) bool {
	var upper, lower, digit bool
	for _, char := range value {
		switch {
		case unicode.IsUpper(char):
			upper = true
		case unicode.IsLower(char):
			lower = true
		case unicode.IsDigit(char):
			digit = true
		}
	}
	return upper && lower && digit
}
