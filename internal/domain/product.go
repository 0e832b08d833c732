package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Product is the aggregate root for a catalog product: details, a positive
// price, and a non-negative stock level.
type Product struct {
	id      uuid.UUID
	details ProductDetails
	price   Money
	stock   Stock
}

// NewProduct creates a product from mandatory, already-validated parts. The
// price must be positive.
func NewProduct(id uuid.UUID, details ProductDetails, price Money, stock Stock) (*Product, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: product ID cannot be empty", ErrInvalidArgument)
	}
	if details.IsZero() {
		return nil, fmt.Errorf("%w: product details cannot be empty", ErrInvalidArgument)
	}
	if price.IsZero() || !price.IsPositive() {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalidArgument)
	}
	return &Product{
		id:      id,
		details: details,
		price:   price,
		stock:   stock,
	}, nil
}

// ID returns the product identifier.
func (p *Product) ID() uuid.UUID {
	return p.id
}

// Details returns the product details.
func (p *Product) Details() ProductDetails {
	return p.details
}

// Price returns the current price.
func (p *Product) Price() Money {
	return p.price
}

// Stock returns the current stock level.
func (p *Product) Stock() Stock {
	return p.stock
}

// ReduceStock removes the quantity from stock if enough is available.
// It reports whether the reduction happened; on false the stock is unchanged.
// Non-positive quantities report false.
func (p *Product) ReduceStock(quantity int) bool {
	if !p.HasSufficientStock(quantity) {
		return false
	}
	next, err := p.stock.Reduce(quantity)
	if err != nil {
		return false
	}
	p.stock = next
	return true
}

// AddStock increases the stock level by the given positive quantity.
func (p *Product) AddStock(quantity int) error {
	next, err := p.stock.Add(quantity)
	if err != nil {
		return err
	}
	p.stock = next
	return nil
}

// HasSufficientStock reports whether at least quantity units are in stock.
func (p *Product) HasSufficientStock(quantity int) bool {
	return p.stock.Quantity() >= quantity
}

// UpdatePrice replaces the price. The new price must be positive.
func (p *Product) UpdatePrice(newPrice Money) error {
	if newPrice.IsZero() || !newPrice.IsPositive() {
		return fmt.Errorf("%w: price must be positive", ErrInvalidArgument)
	}
	p.price = newPrice
	return nil
}

func (p *Product) String() string {
	return fmt.Sprintf("Product{id=%s, name=%s, price=%s, stock=%s}", p.id, p.details.Name(), p.price, p.stock)
}
