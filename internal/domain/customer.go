package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Customer is the aggregate root for a customer and their order history.
// The address is replaceable; orders are append-only.
type Customer struct {
	id      uuid.UUID
	name    Name
	email   Email
	address Address
	orders  []*Order
}

// NewCustomer creates a customer from mandatory, already-validated value
// objects.
func NewCustomer(id uuid.UUID, name Name, email Email, address Address) (*Customer, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: customer ID cannot be empty", ErrInvalidArgument)
	}
	if name.IsZero() {
		return nil, fmt.Errorf("%w: customer name cannot be empty", ErrInvalidArgument)
	}
	if email.IsZero() {
		return nil, fmt.Errorf("%w: customer email cannot be empty", ErrInvalidArgument)
	}
	if address.IsZero() {
		return nil, fmt.Errorf("%w: customer address cannot be empty", ErrInvalidArgument)
	}
	return &Customer{
		id:      id,
		name:    name,
		email:   email,
		address: address,
	}, nil
}

// ID returns the customer identifier.
func (c *Customer) ID() uuid.UUID {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() Name {
	return c.name
}

// Email returns the customer's email.
func (c *Customer) Email() Email {
	return c.email
}

// Address returns the customer's current address.
func (c *Customer) Address() Address {
	return c.address
}

// AddOrder appends an order to the customer's history.
func (c *Customer) AddOrder(order *Order) error {
	if order == nil {
		return fmt.Errorf("%w: order cannot be nil", ErrInvalidArgument)
	}
	c.orders = append(c.orders, order)
	return nil
}

// ChangeAddress replaces the customer's address.
func (c *Customer) ChangeAddress(newAddress Address) error {
	if newAddress.IsZero() {
		return fmt.Errorf("%w: new address cannot be empty", ErrInvalidArgument)
	}
	c.address = newAddress
	return nil
}

// HasActiveOrders reports whether any order has not yet completed.
func (c *Customer) HasActiveOrders() bool {
	for _, order := range c.orders {
		if !order.Status().IsCompleted() {
			return true
		}
	}
	return false
}

// Orders returns an independent snapshot of the order list. Mutating the
// returned slice does not affect the customer.
func (c *Customer) Orders() []*Order {
	snapshot := make([]*Order, len(c.orders))
	copy(snapshot, c.orders)
	return snapshot
}

func (c *Customer) String() string {
	return fmt.Sprintf("Customer{id=%s, name=%s, email=%s, address=%s}", c.id, c.name, c.email, c.address)
}
