package domain

import "errors"

var (
	// ErrInvalidEmail is returned when an email address fails format validation
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidName is returned when a first or last name is empty
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidAddress is returned when an address field is empty or the postal code is malformed
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidMoneyOperation is returned for malformed money values or mixed-currency arithmetic
	ErrInvalidMoneyOperation = errors.New("invalid money operation")

	// ErrInvalidDimension is returned when a dimension is zero or negative
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrDimensionExceeded is returned when a dimension exceeds the maximum allowed size
	ErrDimensionExceeded = errors.New("dimension exceeds maximum allowed size")

	// ErrInvalidStockOperation is returned for negative stock or invalid add/reduce amounts
	ErrInvalidStockOperation = errors.New("invalid stock operation")

	// ErrInvalidProductDetails is returned when product details fail validation
	ErrInvalidProductDetails = errors.New("invalid product details")

	// ErrInvalidOrderItem is returned when an order item fails validation
	ErrInvalidOrderItem = errors.New("invalid order item")

	// ErrIllegalStateTransition is returned when an order mutation violates its lifecycle rules
	ErrIllegalStateTransition = errors.New("illegal state transition")

	// ErrInvalidArgument is returned when a required argument is missing or out of range
	ErrInvalidArgument = errors.New("invalid argument")
)
