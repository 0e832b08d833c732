package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress_Valid(t *testing.T) {
	address, err := NewAddress("Ukraine", "Kyiv", "Street 1", "12345")

	require.NoError(t, err)
	assert.Equal(t, "Ukraine", address.Country())
	assert.Equal(t, "Kyiv", address.City())
	assert.Equal(t, "Street 1", address.Street())
	assert.Equal(t, "12345", address.PostalCode())
	assert.Equal(t, "Street 1, Kyiv, Ukraine - 12345", address.String())
}

func TestNewAddress_InvalidPostalCode(t *testing.T) {
	_, err := NewAddress("Ukraine", "Kyiv", "Street 1", "invalid")

	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestNewAddress_PostalCodeWrongLength(t *testing.T) {
	_, err := NewAddress("Ukraine", "Kyiv", "Street 1", "1234")
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = NewAddress("Ukraine", "Kyiv", "Street 1", "123456")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestNewAddress_PostalCodeNonDigits(t *testing.T) {
	_, err := NewAddress("Ukraine", "Kyiv", "Street 1", "12a45")

	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestNewAddress_EmptyFields(t *testing.T) {
	_, err := NewAddress("  ", "Kyiv", "Street 1", "12345")
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = NewAddress("Ukraine", "", "Street 1", "12345")
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = NewAddress("Ukraine", "Kyiv", "   ", "12345")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestAddress_Equals(t *testing.T) {
	a, err := NewAddress("Ukraine", "Kyiv", "Street 1", "12345")
	require.NoError(t, err)
	b, err := NewAddress("Ukraine", "Kyiv", "Street 1", "12345")
	require.NoError(t, err)
	c, err := NewAddress("Ukraine", "Lviv", "Street 1", "12345")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
