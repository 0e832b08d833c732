package domain

import "fmt"

// Stock is an immutable, non-negative stock quantity. Mutations return a new
// Stock value.
type Stock struct {
	quantity int
}

// NewStock returns a Stock with the given quantity, which must not be negative.
func NewStock(quantity int) (Stock, error) {
	if quantity < 0 {
		return Stock{}, fmt.Errorf("%w: stock quantity cannot be negative", ErrInvalidStockOperation)
	}
	return Stock{quantity: quantity}, nil
}

// Quantity returns the current quantity.
func (s Stock) Quantity() int {
	return s.quantity
}

// Reduce returns a new Stock with the amount removed. The amount must be
// positive and not exceed the available quantity.
func (s Stock) Reduce(amount int) (Stock, error) {
	if amount <= 0 {
		return Stock{}, fmt.Errorf("%w: amount to reduce must be positive", ErrInvalidStockOperation)
	}
	if amount > s.quantity {
		return Stock{}, fmt.Errorf("%w: not enough stock available", ErrInvalidStockOperation)
	}
	return Stock{quantity: s.quantity - amount}, nil
}

// Add returns a new Stock with the amount added. The amount must be positive.
func (s Stock) Add(amount int) (Stock, error) {
	if amount <= 0 {
		return Stock{}, fmt.Errorf("%w: amount to add must be positive", ErrInvalidStockOperation)
	}
	return Stock{quantity: s.quantity + amount}, nil
}

// Equals compares two stock levels.
func (s Stock) Equals(other Stock) bool {
	return s.quantity == other.quantity
}

func (s Stock) String() string {
	return fmt.Sprintf("Stock{quantity=%d}", s.quantity)
}
