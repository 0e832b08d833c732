package catalog

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Pesokrava/commerce_core/internal/domain"
	"github.com/Pesokrava/commerce_core/internal/pkg/logger"
	pkgvalidator "github.com/Pesokrava/commerce_core/internal/pkg/validator"
)

// DimensionsInput carries optional product dimensions.
type DimensionsInput struct {
	Length float64 `validate:"required,gt=0"`
	Width  float64 `validate:"required,gt=0"`
	Height float64 `validate:"required,gt=0"`
}

// RegisterProductInput describes a product to be registered.
type RegisterProductInput struct {
	Name        string `validate:"required,notblank"`
	Description string
	Currency    string `validate:"required,notblank"`
	Price       string `validate:"required"`
	Stock       int    `validate:"min=0"`
	Dimensions  *DimensionsInput
}

// Service handles product catalog operations: registration, pricing, and
// restocking of product aggregates supplied by the caller.
type Service struct {
	validate *validator.Validate
	logger   *logger.Logger
}

// NewService creates a new catalog service
func NewService(log *logger.Logger) *Service {
	return &Service{
		validate: pkgvalidator.Get(),
		logger:   log,
	}
}

// RegisterProduct assembles the value objects for a new product, assigns it
// an identifier, and returns the aggregate.
func (s *Service) RegisterProduct(ctx context.Context, input RegisterProductInput) (*domain.Product, error) {
	if err := s.validate.Struct(input); err != nil {
		s.logger.Error("Product input validation failed", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}

	price, err := domain.NewMoneyFromString(input.Currency, input.Price)
	if err != nil {
		return nil, err
	}

	var dims *domain.Dimensions
	if input.Dimensions != nil {
		d, err := domain.NewDimensions(input.Dimensions.Length, input.Dimensions.Width, input.Dimensions.Height)
		if err != nil {
			return nil, err
		}
		dims = &d
	}

	details, err := domain.NewProductDetails(input.Name, input.Description, dims)
	if err != nil {
		return nil, err
	}

	stock, err := domain.NewStock(input.Stock)
	if err != nil {
		return nil, err
	}

	product, err := domain.NewProduct(uuid.New(), details, price, stock)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": product.ID(),
		"name":       details.Name(),
		"price":      price.String(),
		"stock":      stock.Quantity(),
	}).Info("Product registered successfully")

	return product, nil
}

// ChangePrice reprices the product in its current currency.
func (s *Service) ChangePrice(ctx context.Context, product *domain.Product, amount string) error {
	if product == nil {
		return fmt.Errorf("%w: product cannot be nil", domain.ErrInvalidArgument)
	}

	newPrice, err := domain.NewMoneyFromString(product.Price().Currency(), amount)
	if err != nil {
		return err
	}
	if err := product.UpdatePrice(newPrice); err != nil {
		s.logger.Error("Price update rejected", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": product.ID(),
		"price":      newPrice.String(),
	}).Info("Product price updated")

	return nil
}

// Restock adds the quantity to the product's stock.
func (s *Service) Restock(ctx context.Context, product *domain.Product, quantity int) error {
	if product == nil {
		return fmt.Errorf("%w: product cannot be nil", domain.ErrInvalidArgument)
	}

	if err := product.AddStock(quantity); err != nil {
		s.logger.Error("Restock rejected", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": product.ID(),
		"stock":      product.Stock().Quantity(),
	}).Info("Product restocked")

	return nil
}
