package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Order is the aggregate root for a customer order. It starts NEW with no
// items and a zero total; the total is always recomputed from the items, and
// status/address changes go through guarded mutators.
type Order struct {
	id              uuid.UUID
	customer        *Customer
	shippingAddress Address
	items           []OrderItemDetails
	totalPrice      Money
	status          OrderStatus
}

// NewOrder creates an empty order for the customer. The currency fixes the
// order's total; every item added later must be priced in it.
func NewOrder(id uuid.UUID, customer *Customer, shippingAddress Address, currency string) (*Order, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: order ID cannot be empty", ErrInvalidArgument)
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer cannot be nil", ErrInvalidArgument)
	}
	if shippingAddress.IsZero() {
		return nil, fmt.Errorf("%w: shipping address cannot be empty", ErrInvalidArgument)
	}
	total, err := ZeroMoney(currency)
	if err != nil {
		return nil, err
	}
	return &Order{
		id:              id,
		customer:        customer,
		shippingAddress: shippingAddress,
		totalPrice:      total,
		status:          OrderStatusNew,
	}, nil
}

// ID returns the order identifier.
func (o *Order) ID() uuid.UUID {
	return o.id
}

// Customer returns the customer who placed the order.
func (o *Order) Customer() *Customer {
	return o.customer
}

// ShippingAddress returns the current shipping address.
func (o *Order) ShippingAddress() Address {
	return o.shippingAddress
}

// Status returns the current lifecycle state.
func (o *Order) Status() OrderStatus {
	return o.status
}

// TotalPrice returns the sum of all item totals.
func (o *Order) TotalPrice() Money {
	return o.totalPrice
}

// Items returns an independent snapshot of the order lines.
func (o *Order) Items() []OrderItemDetails {
	snapshot := make([]OrderItemDetails, len(o.items))
	copy(snapshot, o.items)
	return snapshot
}

// AddItem appends an order line and recomputes the total from scratch. The
// line must be priced in the order's currency.
func (o *Order) AddItem(item OrderItemDetails) error {
	if item.IsZero() {
		return fmt.Errorf("%w: item cannot be empty", ErrInvalidOrderItem)
	}
	if item.Price().Currency() != o.totalPrice.Currency() {
		return fmt.Errorf("%w: item priced in %s, order totals in %s",
			ErrInvalidMoneyOperation, item.Price().Currency(), o.totalPrice.Currency())
	}
	o.items = append(o.items, item)
	o.recalculateTotalPrice()
	return nil
}

// recalculateTotalPrice sums every item total from scratch. All items share
// the order's currency, so the additions cannot fail.
func (o *Order) recalculateTotalPrice() {
	total, _ := ZeroMoney(o.totalPrice.Currency())
	for _, item := range o.items {
		total, _ = total.Add(item.TotalPrice())
	}
	o.totalPrice = total
}

// ChangeStatus moves the order to a new lifecycle state. Once shipped, the
// only legal next state is DELIVERED.
func (o *Order) ChangeStatus(newStatus OrderStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("%w: unknown order status %q", ErrInvalidArgument, string(newStatus))
	}
	if o.status == OrderStatusShipped && newStatus != OrderStatusDelivered {
		return fmt.Errorf("%w: cannot revert from %s to %s", ErrIllegalStateTransition, o.status, newStatus)
	}
	o.status = newStatus
	return nil
}

// ChangeShippingAddress replaces the shipping address. Rejected once the
// order has shipped.
func (o *Order) ChangeShippingAddress(newAddress Address) error {
	if o.status == OrderStatusShipped || o.status == OrderStatusDelivered {
		return fmt.Errorf("%w: cannot change address after shipping", ErrIllegalStateTransition)
	}
	if newAddress.IsZero() {
		return fmt.Errorf("%w: new address cannot be empty", ErrInvalidArgument)
	}
	o.shippingAddress = newAddress
	return nil
}

func (o *Order) String() string {
	return fmt.Sprintf("Order{id=%s, totalPrice=%s, status=%s}", o.id, o.totalPrice, o.status)
}
