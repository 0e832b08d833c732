package domain

import (
	"fmt"
	"strings"
)

// Name is an immutable person name with a first and last part.
type Name struct {
	first string
	last  string
}

// NewName validates and trims both name parts.
func NewName(first, last string) (Name, error) {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)
	if first == "" {
		return Name{}, fmt.Errorf("%w: first name cannot be empty", ErrInvalidName)
	}
	if last == "" {
		return Name{}, fmt.Errorf("%w: last name cannot be empty", ErrInvalidName)
	}
	return Name{first: first, last: last}, nil
}

// First returns the first name.
func (n Name) First() string {
	return n.first
}

// Last returns the last name.
func (n Name) Last() string {
	return n.last
}

// FullName returns "first last".
func (n Name) FullName() string {
	return n.first + " " + n.last
}

// Equals compares two names by both parts.
func (n Name) Equals(other Name) bool {
	return n.first == other.first && n.last == other.last
}

// IsZero reports whether the name was not constructed via NewName.
func (n Name) IsZero() bool {
	return n.first == "" && n.last == ""
}

func (n Name) String() string {
	return n.FullName()
}
