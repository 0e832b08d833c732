package domain

import "fmt"

// Maximum allowed size per axis.
const (
	MaxLength = 100.0
	MaxWidth  = 100.0
	MaxHeight = 100.0
)

// Dimensions is an immutable length/width/height triple.
type Dimensions struct {
	length float64
	width  float64
	height float64
}

// NewDimensions validates that every axis is positive and within the maximum
// allowed size.
func NewDimensions(length, width, height float64) (Dimensions, error) {
	if length <= 0 || width <= 0 || height <= 0 {
		return Dimensions{}, fmt.Errorf("%w: dimensions must be greater than zero", ErrInvalidDimension)
	}
	if length > MaxLength || width > MaxWidth || height > MaxHeight {
		return Dimensions{}, fmt.Errorf("%w: %.1fx%.1fx%.1f", ErrDimensionExceeded, length, width, height)
	}
	return Dimensions{length: length, width: width, height: height}, nil
}

// Length returns the length axis.
func (d Dimensions) Length() float64 {
	return d.length
}

// Width returns the width axis.
func (d Dimensions) Width() float64 {
	return d.width
}

// Height returns the height axis.
func (d Dimensions) Height() float64 {
	return d.height
}

// Volume returns length * width * height.
func (d Dimensions) Volume() float64 {
	return d.length * d.width * d.height
}

// Equals compares all three axes.
func (d Dimensions) Equals(other Dimensions) bool {
	return d == other
}

func (d Dimensions) String() string {
	return fmt.Sprintf("Dimensions{length=%g, width=%g, height=%g}", d.length, d.width, d.height)
}
