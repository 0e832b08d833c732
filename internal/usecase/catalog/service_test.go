package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/commerce_core/internal/domain"
	"github.com/Pesokrava/commerce_core/internal/pkg/logger"
)

func TestService_RegisterProduct_Success(t *testing.T) {
	log := logger.New("test", "")
	service := NewService(log)

	product, err := service.RegisterProduct(context.Background(), RegisterProductInput{
		Name:        "Keyboard",
		Description: "A mechanical keyboard",
		Currency:    "USD",
		Price:       "50.00",
		Stock:       10,
		Dimensions:  &DimensionsInput{Length: 36.0, Width: 14.0, Height: 4.0},
	})

	require.NoError(t, err)
	assert.Equal(t, "Keyboard", product.Details().Name())
	assert.Equal(t, 10, product.Stock().Quantity())
	assert.Equal(t, "USD", product.Price().Currency())
	require.NotNil(t, product.Details().Dimensions())
	assert.Equal(t, 36.0, product.Details().Dimensions().Length())
}

func TestService_RegisterProduct_WithoutDimensions(t *testing.T) {
	log := logger.New("test", "")
	service := NewService(log)

	product, err := service.RegisterProduct(context.Background(), RegisterProductInput{
		Name:     "Keyboard",
		Currency: "USD",
		Price:    "50.00",
		Stock:    0,
	})

	require.NoError(t, err)
	assert.Nil(t, product.Details().Dimensions())
	assert.Equal(t, 0, product.Stock().Quantity())
}

func TestService_RegisterProduct_MissingName(t *testing.T) {
	log := logger.New("test", "")
	service := NewService(log)

	_, err := service.RegisterProduct(context.Background(), RegisterProductInput{
		Currency: "USD",
		Price:    "50.00",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestService_RegisterProduct_BlankName(t *testing.T) {
	log := logger.New("test", "")
	service := NewService(log)

	_, err := service.RegisterProduct(context.Background(), RegisterProductInput{
		Name:     "   ",
		Currency: "USD",
		Price:    "50.00",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestService_RegisterProduct_MalformedPrice(t *testing.T) {
	log := logger.New("test", "")
	service := NewService(log)

	_, err := service.RegisterProduct(context.Background(), RegisterProductInput{
		Name:     "Keyboard",
		Currency: "USD",
		Price:    "fifty",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidMoneyOperation)
}

func TestService_RegisterProduct_NonPositivePrice(t *testing.T) {
	log := logger.New("test", "")
	service := NewService(log)

	_, err := service.RegisterProduct(context.Background(), RegisterProductInput{
		Name:     "Keyboard",
		Currency: "USD",
		Price:    "0",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestService_RegisterProduct_DimensionExceeded(t *testing.T) {
	log := logger.New("test", "")
	service := NewService(log)

	_, err := service.RegisterProduct(context.Background(), RegisterProductInput{
		Name:       "Keyboard",
		Currency:   "USD",
		Price:      "50.00",
		Dimensions: &DimensionsInput{Length: 101.0, Width: 5.0, Height: 2.0},
	})

	assert.ErrorIs(t, err, domain.ErrDimensionExceeded)
}

func TestService_ChangePrice(t *testing.T) {
	log := logger.New("test", "")
	service := NewService(log)
	product, err := service.RegisterProduct(context.Background(), RegisterProductInput{
		Name:     "Keyboard",
		Currency: "USD",
		Price:    "50.00",
		Stock:    10,
	})
	require.NoError(t, err)

	require.NoError(t, service.ChangePrice(context.Background(), product, "79.99"))
	expected, err := domain.NewMoneyFromString("USD", "79.99")
	require.NoError(t, err)
	assert.True(t, product.Price().Equals(expected))
}

func TestService_ChangePrice_NonPositive(t *testing.T) {
	log := logger.New("test", "")
	service := NewService(log)
	product, err := service.RegisterProduct(context.Background(), RegisterProductInput{
		Name:     "Keyboard",
		Currency: "USD",
		Price:    "50.00",
		Stock:    10,
	})
	require.NoError(t, err)

	err = service.ChangePrice(context.Background(), product, "-1")

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	original, reqErr := domain.NewMoneyFromString("USD", "50.00")
	require.NoError(t, reqErr)
	assert.True(t, product.Price().Equals(original))
}

func TestService_Restock(t *testing.T) {
	log := logger.New("test", "")
	service := NewService(log)
	product, err := service.RegisterProduct(context.Background(), RegisterProductInput{
		Name:     "Keyboard",
		Currency: "USD",
		Price:    "50.00",
		Stock:    10,
	})
	require.NoError(t, err)

	require.NoError(t, service.Restock(context.Background(), product, 5))
	assert.Equal(t, 15, product.Stock().Quantity())

	err = service.Restock(context.Background(), product, -5)
	assert.ErrorIs(t, err, domain.ErrInvalidStockOperation)
	assert.Equal(t, 15, product.Stock().Quantity())
}

func TestService_NilProduct(t *testing.T) {
	log := logger.New("test", "")
	service := NewService(log)

	err := service.ChangePrice(context.Background(), nil, "10.00")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	err = service.Restock(context.Background(), nil, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
