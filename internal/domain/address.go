package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// 5-digit postal code
var postalCodePattern = regexp.MustCompile(`^\d{5}$`)

// Address is an immutable postal address.
type Address struct {
	country    string
	city       string
	street     string
	postalCode string
}

// NewAddress validates all address fields and returns an Address value object.
func NewAddress(country, city, street, postalCode string) (Address, error) {
	if strings.TrimSpace(country) == "" {
		return Address{}, fmt.Errorf("%w: country cannot be empty", ErrInvalidAddress)
	}
	if strings.TrimSpace(city) == "" {
		return Address{}, fmt.Errorf("%w: city cannot be empty", ErrInvalidAddress)
	}
	if strings.TrimSpace(street) == "" {
		return Address{}, fmt.Errorf("%w: street cannot be empty", ErrInvalidAddress)
	}
	if !postalCodePattern.MatchString(postalCode) {
		return Address{}, fmt.Errorf("%w: postal code %q is invalid", ErrInvalidAddress, postalCode)
	}
	return Address{
		country:    country,
		city:       city,
		street:     street,
		postalCode: postalCode,
	}, nil
}

// Country returns the country name.
func (a Address) Country() string {
	return a.country
}

// City returns the city name.
func (a Address) City() string {
	return a.city
}

// Street returns the street name.
func (a Address) Street() string {
	return a.street
}

// PostalCode returns the postal code.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Equals compares two addresses by all fields.
func (a Address) Equals(other Address) bool {
	return a == other
}

// IsZero reports whether the address was not constructed via NewAddress.
func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) String() string {
	return a.street + ", " + a.city + ", " + a.country + " - " + a.postalCode
}
