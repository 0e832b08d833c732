package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDimensions_Valid(t *testing.T) {
	dims, err := NewDimensions(10.0, 5.0, 2.0)

	require.NoError(t, err)
	assert.Equal(t, 10.0, dims.Length())
	assert.Equal(t, 5.0, dims.Width())
	assert.Equal(t, 2.0, dims.Height())
	assert.Equal(t, 100.0, dims.Volume())
}

func TestNewDimensions_NegativeAxis(t *testing.T) {
	_, err := NewDimensions(-1.0, 5.0, 2.0)

	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestNewDimensions_ZeroAxis(t *testing.T) {
	_, err := NewDimensions(10.0, 0, 2.0)

	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestNewDimensions_ExceedsMaximum(t *testing.T) {
	_, err := NewDimensions(101.0, 5.0, 2.0)
	assert.ErrorIs(t, err, ErrDimensionExceeded)

	_, err = NewDimensions(10.0, 100.5, 2.0)
	assert.ErrorIs(t, err, ErrDimensionExceeded)

	_, err = NewDimensions(10.0, 5.0, 200.0)
	assert.ErrorIs(t, err, ErrDimensionExceeded)
}

func TestNewDimensions_AtMaximum(t *testing.T) {
	dims, err := NewDimensions(MaxLength, MaxWidth, MaxHeight)

	require.NoError(t, err)
	assert.Equal(t, 1000000.0, dims.Volume())
}

func TestDimensions_Equals(t *testing.T) {
	a, err := NewDimensions(10.0, 5.0, 2.0)
	require.NoError(t, err)
	b, err := NewDimensions(10.0, 5.0, 2.0)
	require.NoError(t, err)
	c, err := NewDimensions(10.0, 5.0, 3.0)
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
