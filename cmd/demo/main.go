package main

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/Pesokrava/commerce_core/internal/config"
	"github.com/Pesokrava/commerce_core/internal/domain"
	"github.com/Pesokrava/commerce_core/internal/pkg/logger"
	"github.com/Pesokrava/commerce_core/internal/usecase/catalog"
	"github.com/Pesokrava/commerce_core/internal/usecase/checkout"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env, cfg.LogLevel)
	appLogger.Info("Starting commerce core demo...")

	catalogService := catalog.NewService(appLogger)
	checkoutService := checkout.NewService(appLogger)
	ctx := context.Background()

	customer, err := buildCustomer(cfg)
	if err != nil {
		appLogger.Fatal("Failed to build customer", err)
	}
	appLogger.Infof("Customer created: %s <%s>", customer.Name().FullName(), customer.Email())

	product, err := catalogService.RegisterProduct(ctx, catalog.RegisterProductInput{
		Name:        "Mechanical Keyboard",
		Description: "Tenkeyless mechanical keyboard with hot-swappable switches and PBT keycaps.",
		Currency:    cfg.Demo.Currency,
		Price:       "50.00",
		Stock:       10,
		Dimensions:  &catalog.DimensionsInput{Length: 36.0, Width: 14.0, Height: 4.0},
	})
	if err != nil {
		appLogger.Fatal("Failed to register product", err)
	}

	products := map[uuid.UUID]*domain.Product{product.ID(): product}

	order, err := checkoutService.PlaceOrder(ctx, customer, products, checkout.PlaceOrderInput{
		Currency: cfg.Demo.Currency,
		Lines: []checkout.OrderLine{
			{ProductID: product.ID(), Quantity: 2},
		},
	})
	if err != nil {
		appLogger.Fatal("Failed to place order", err)
	}
	appLogger.Infof("Order total: %s, remaining stock: %d", order.TotalPrice(), product.Stock().Quantity())

	if err := checkoutService.Confirm(ctx, order); err != nil {
		appLogger.Fatal("Failed to confirm order", err)
	}
	if err := checkoutService.Ship(ctx, order); err != nil {
		appLogger.Fatal("Failed to ship order", err)
	}

	// An order cannot leave SHIPPED except to DELIVERED.
	if err := order.ChangeStatus(domain.OrderStatusConfirmed); err != nil {
		appLogger.Infof("Revert rejected as expected: %v", err)
	}

	if err := checkoutService.Deliver(ctx, order); err != nil {
		appLogger.Fatal("Failed to deliver order", err)
	}

	appLogger.Infof("Customer has active orders: %v", customer.HasActiveOrders())
	appLogger.Info("Demo finished")
}

func buildCustomer(cfg *config.Config) (*domain.Customer, error) {
	name, err := domain.NewName("Olena", "Kovalenko")
	if err != nil {
		return nil, err
	}
	email, err := domain.NewEmail("olena.kovalenko@example.com")
	if err != nil {
		return nil, err
	}
	address, err := domain.NewAddress(cfg.Demo.Country, cfg.Demo.City, "Khreshchatyk 1", "01001")
	if err != nil {
		return nil, err
	}
	return domain.NewCustomer(uuid.New(), name, email, address)
}
