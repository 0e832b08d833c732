package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is an immutable, validated email address.
type Email struct {
	value string
}

// NewEmail validates the address format and returns an Email value object.
// The stored value is trimmed.
func NewEmail(value string) (Email, error) {
	if !emailPattern.MatchString(value) {
		return Email{}, fmt.Errorf("%w: %q", ErrInvalidEmail, value)
	}
	return Email{value: strings.TrimSpace(value)}, nil
}

// Value returns the email address as a string.
func (e Email) Value() string {
	return e.value
}

// Equals compares two emails by value.
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

// IsZero reports whether the email was not constructed via NewEmail.
func (e Email) IsZero() bool {
	return e.value == ""
}

func (e Email) String() string {
	return e.value
}
