package remote

import "time"

// Event types published on the order events topic.
const (
	EventOrderPlaced        = "order_placed"
	EventOrderStatusChanged = "order_status_changed"
)

// OrderEvent is a notification only; consumers re-read the order list.
type OrderEvent struct {
	Type        string    `json:"type"`
	OrderID     string    `json:"order_id"`
	Status      string    `json:"status"`
	TableNumber int       `json:"table_number,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
