package domain

import "fmt"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
)

// ParseOrderStatus converts a string into a known OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	status := OrderStatus(value)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: unknown order status %q", ErrInvalidArgument, value)
	}
	return status, nil
}

// IsValid reports whether the status is one of the known lifecycle states.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusNew, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// IsCompleted reports whether the order has reached its final state.
func (s OrderStatus) IsCompleted() bool {
	return s == OrderStatusDelivered
}

func (s OrderStatus) String() string {
	return string(s)
}
