package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"foodfriend/order-svc/internal/domain"
	"foodfriend/remote"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidOrder  = errors.New("invalid order")
	ErrInvalidStatus = errors.New("invalid order status")
)

type OrderService struct {
	repository OrderRepository
	publisher  OrderPublisher
	log        logrus.FieldLogger
	now        func() time.Time
}

// NewOrderService accepts a nil publisher when no broker is configured.
func NewOrderService(repository OrderRepository, publisher OrderPublisher, log logrus.FieldLogger) *OrderService {
	return &OrderService{
		repository: repository,
		publisher:  publisher,
		log:        log,
		now:        time.Now,
	}
}

// Place stores a confirmed order under the client-generated id.
func (s *OrderService) Place(ctx context.Context, req remote.PlaceOrderRequest) (*domain.Order, error) {
	if err := validatePlacement(req); err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:          strings.TrimSpace(req.OrderID),
		Items:       req.Items,
		Total:       req.Total,
		Status:      domain.StatusConfirmed,
		TableNumber: req.TableNumber,
	}
	if err := s.repository.InsertOrder(order); err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"order": order.ID,
		"table": order.TableNumber,
		"total": order.Total,
	}).Info("order placed")

	s.publish(ctx, remote.OrderEvent{
		Type:        remote.EventOrderPlaced,
		OrderID:     order.ID,
		Status:      order.Status,
		TableNumber: order.TableNumber,
		Timestamp:   s.now(),
	})
	return order, nil
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.repository.ListOrders()
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error) {
	if !domain.ValidStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	order, err := s.repository.UpdateStatus(orderID, status)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"order": orderID, "status": status}).Info("order status changed")

	s.publish(ctx, remote.OrderEvent{
		Type:        remote.EventOrderStatusChanged,
		OrderID:     order.ID,
		Status:      order.Status,
		TableNumber: order.TableNumber,
		Timestamp:   s.now(),
	})
	return order, nil
}

// publish never fails the request; the kitchen also polls.
func (s *OrderService) publish(ctx context.Context, event remote.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.log.WithError(err).WithField("order", event.OrderID).Warn("failed to publish order event")
	}
}

func validatePlacement(req remote.PlaceOrderRequest) error {
	switch {
	case strings.TrimSpace(req.OrderID) == "":
		return fmt.Errorf("%w: missing orderId", ErrInvalidOrder)
	case req.TableNumber < 1 || req.TableNumber > 100:
		return fmt.Errorf("%w: table number must be 1-100", ErrInvalidOrder)
	case len(req.Items) == 0:
		return fmt.Errorf("%w: no items", ErrInvalidOrder)
	case req.Total < 0 || math.IsNaN(req.Total):
		return fmt.Errorf("%w: negative total", ErrInvalidOrder)
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return fmt.Errorf("%w: item %d has quantity %d", ErrInvalidOrder, item.ID, item.Quantity)
		}
	}
	return nil
}
