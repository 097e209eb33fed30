package domain

import (
	"errors"
	"time"

	"foodfriend/remote"
)

var (
	ErrOrderExists   = errors.New("order id already exists")
	ErrOrderNotFound = errors.New("order not found")
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
)

// ValidStatus reports whether s is one of the five order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered:
		return true
	}
	return false
}

// Order is a stored order record. Items are the cart snapshot taken when the
// diner placed the order.
type Order struct {
	ID          string             `json:"id"`
	Items       []remote.OrderItem `json:"items"`
	Total       float64            `json:"total"`
	Status      string             `json:"status"`
	TableNumber int                `json:"tableNumber,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ItemFacts is the per-serving nutrition of one menu dish.
type ItemFacts struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fat      float64  `json:"fat"`
	Fiber    float64  `json:"fiber"`
	Sugar    float64  `json:"sugar"`
	Vitamins []string `json:"vitamins"`
}
