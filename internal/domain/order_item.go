package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// OrderItemDetails is an immutable order line: a product, a quantity, and the
// unit price at the time the line was created.
type OrderItemDetails struct {
	productID uuid.UUID
	quantity  int
	price     Money
}

// NewOrderItemDetails validates the line. The product ID must be set, the
// quantity at least 1, and the price a constructed Money value.
func NewOrderItemDetails(productID uuid.UUID, quantity int, price Money) (OrderItemDetails, error) {
	if productID == uuid.Nil {
		return OrderItemDetails{}, fmt.Errorf("%w: product ID cannot be empty", ErrInvalidOrderItem)
	}
	if quantity < 1 {
		return OrderItemDetails{}, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidOrderItem)
	}
	if price.IsZero() {
		return OrderItemDetails{}, fmt.Errorf("%w: price cannot be empty", ErrInvalidOrderItem)
	}
	return OrderItemDetails{
		productID: productID,
		quantity:  quantity,
		price:     price,
	}, nil
}

// ProductID returns the product identifier.
func (i OrderItemDetails) ProductID() uuid.UUID {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i OrderItemDetails) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i OrderItemDetails) Price() Money {
	return i.price
}

// TotalPrice returns unit price times quantity, in the price's currency.
func (i OrderItemDetails) TotalPrice() Money {
	return i.price.MultiplyInt(i.quantity)
}

// Equals compares product, quantity, and price.
func (i OrderItemDetails) Equals(other OrderItemDetails) bool {
	return i.productID == other.productID &&
		i.quantity == other.quantity &&
		i.price.Equals(other.price)
}

// IsZero reports whether the item was not constructed via NewOrderItemDetails.
func (i OrderItemDetails) IsZero() bool {
	return i.productID == uuid.Nil
}

func (i OrderItemDetails) String() string {
	return fmt.Sprintf("OrderItemDetails{productID=%s, quantity=%d, price=%s}", i.productID, i.quantity, i.price)
}
