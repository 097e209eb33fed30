package service

import (
	"context"

	"foodfriend/catalog"
	"foodfriend/order-svc/internal/domain"
	"foodfriend/remote"
)

type OrderServiceInterface interface {
	Place(ctx context.Context, req remote.PlaceOrderRequest) (*domain.Order, error)
	List() ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error)
}

type NutritionServiceInterface interface {
	Generate(ctx context.Context, portions []catalog.Portion) (catalog.Report, error)
	ItemFacts(itemID int) (domain.ItemFacts, error)
}

type OrderRepository interface {
	InsertOrder(order *domain.Order) error
	ListOrders() ([]domain.Order, error)
	UpdateStatus(id, status string) (*domain.Order, error)
}

type NutritionCache interface {
	NutritionKey(portions []catalog.Portion) string
	GetReport(ctx context.Context, key string) (*catalog.Report, error)
	SetReport(ctx context.Context, key string, report catalog.Report) error
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event remote.OrderEvent) error
}

var (
	_ OrderServiceInterface     = (*OrderService)(nil)
	_ NutritionServiceInterface = (*NutritionService)(nil)
)
