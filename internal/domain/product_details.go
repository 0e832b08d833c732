package domain

import (
	"fmt"
	"strings"
)

// shortDescriptionLimit is the cutoff applied by ShortDescription.
const shortDescriptionLimit = 50

// ProductDetails describes a product: a required name plus an optional
// description and optional dimensions.
type ProductDetails struct {
	name        string
	description string
	dimensions  *Dimensions
}

// NewProductDetails validates the product name. Description may be empty and
// dimensions may be nil.
func NewProductDetails(name, description string, dimensions *Dimensions) (ProductDetails, error) {
	if strings.TrimSpace(name) == "" {
		return ProductDetails{}, fmt.Errorf("%w: product name cannot be empty", ErrInvalidProductDetails)
	}
	return ProductDetails{
		name:        name,
		description: description,
		dimensions:  dimensions,
	}, nil
}

// Name returns the product name.
func (p ProductDetails) Name() string {
	return p.name
}

// Description returns the full description, which may be empty.
func (p ProductDetails) Description() string {
	return p.description
}

// Dimensions returns the product dimensions, or nil when unknown.
func (p ProductDetails) Dimensions() *Dimensions {
	return p.dimensions
}

// ShortDescription returns the description truncated to 50 characters with an
// ellipsis appended when longer. The limit counts characters, not bytes, so
// multi-byte descriptions truncate on rune boundaries.
func (p ProductDetails) ShortDescription() string {
	runes := []rune(p.description)
	if len(runes) > shortDescriptionLimit {
		return string(runes[:shortDescriptionLimit]) + "..."
	}
	return p.description
}

// Equals compares name, description, and dimensions.
func (p ProductDetails) Equals(other ProductDetails) bool {
	if p.name != other.name || p.description != other.description {
		return false
	}
	if p.dimensions == nil || other.dimensions == nil {
		return p.dimensions == other.dimensions
	}
	return p.dimensions.Equals(*other.dimensions)
}

// IsZero reports whether the details were not constructed via NewProductDetails.
func (p ProductDetails) IsZero() bool {
	return p.name == ""
}
