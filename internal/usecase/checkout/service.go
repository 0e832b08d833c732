package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Pesokrava/commerce_core/internal/domain"
	"github.com/Pesokrava/commerce_core/internal/pkg/logger"
	pkgvalidator "github.com/Pesokrava/commerce_core/internal/pkg/validator"
)

var (
	// ErrUnknownProduct is returned when an order line references a product
	// that is not in the offered set
	ErrUnknownProduct = errors.New("unknown product")

	// ErrInsufficientStock is returned when a product cannot cover the
	// requested quantity
	ErrInsufficientStock = errors.New("insufficient stock")
)

// OrderLine is one requested product/quantity pair.
type OrderLine struct {
	ProductID uuid.UUID `validate:"required"`
	Quantity  int       `validate:"required,min=1"`
}

// PlaceOrderInput describes an order to be placed.
type PlaceOrderInput struct {
	Currency string      `validate:"required,notblank"`
	Lines    []OrderLine `validate:"required,min=1,dive"`
}

// Service orchestrates order placement and lifecycle transitions over
// customer and product aggregates supplied by the caller.
type Service struct {
	validate *validator.Validate
	logger   *logger.Logger
}

// NewService creates a new checkout service
func NewService(log *logger.Logger) *Service {
	return &Service{
		validate: pkgvalidator.Get(),
		logger:   log,
	}
}

// PlaceOrder builds a new order for the customer from the requested lines,
// reducing product stock as it goes. Nothing is mutated unless every line can
// be satisfied: all products must exist, be priced in the order currency, and
// have sufficient stock.
func (s *Service) PlaceOrder(ctx context.Context, customer *domain.Customer, products map[uuid.UUID]*domain.Product, input PlaceOrderInput) (*domain.Order, error) {
	if err := s.validate.Struct(input); err != nil {
		s.logger.Error("Order input validation failed", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer cannot be nil", domain.ErrInvalidArgument)
	}

	// Check every line before touching any stock. Quantities are summed per
	// product so duplicate lines cannot pass individually and fail mid-way.
	needed := make(map[uuid.UUID]int, len(input.Lines))
	for _, line := range input.Lines {
		product, ok := products[line.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, line.ProductID)
		}
		if product.Price().Currency() != input.Currency {
			return nil, fmt.Errorf("%w: product %s priced in %s, order in %s",
				domain.ErrInvalidMoneyOperation, line.ProductID, product.Price().Currency(), input.Currency)
		}
		needed[line.ProductID] += line.Quantity
		if !product.HasSufficientStock(needed[line.ProductID]) {
			return nil, fmt.Errorf("%w: product %s has %d, requested %d",
				ErrInsufficientStock, line.ProductID, product.Stock().Quantity(), needed[line.ProductID])
		}
	}

	order, err := domain.NewOrder(uuid.New(), customer, customer.Address(), input.Currency)
	if err != nil {
		return nil, err
	}

	for _, line := range input.Lines {
		product := products[line.ProductID]
		item, err := domain.NewOrderItemDetails(product.ID(), line.Quantity, product.Price())
		if err != nil {
			return nil, err
		}
		if err := order.AddItem(item); err != nil {
			return nil, err
		}
		if !product.ReduceStock(line.Quantity) {
			return nil, fmt.Errorf("%w: product %s", ErrInsufficientStock, line.ProductID)
		}
	}

	if err := customer.AddOrder(order); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"order_id":    order.ID(),
		"customer_id": customer.ID(),
		"total":       order.TotalPrice().String(),
		"lines":       len(input.Lines),
	}).Info("Order placed successfully")

	return order, nil
}

// Confirm moves the order to CONFIRMED.
func (s *Service) Confirm(ctx context.Context, order *domain.Order) error {
	return s.transition(order, domain.OrderStatusConfirmed)
}

// Ship moves the order to SHIPPED.
func (s *Service) Ship(ctx context.Context, order *domain.Order) error {
	return s.transition(order, domain.OrderStatusShipped)
}

// Deliver moves the order to DELIVERED.
func (s *Service) Deliver(ctx context.Context, order *domain.Order) error {
	return s.transition(order, domain.OrderStatusDelivered)
}

func (s *Service) transition(order *domain.Order, status domain.OrderStatus) error {
	if order == nil {
		return fmt.Errorf("%w: order cannot be nil", domain.ErrInvalidArgument)
	}
	if err := order.ChangeStatus(status); err != nil {
		s.logger.Error("Order status change rejected", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"order_id": order.ID(),
		"status":   status.String(),
	}).Info("Order status changed")

	return nil
}
