// Package remote holds the wire contract of the order, chat and nutrition
// API and an HTTP client for it.
package remote

import (
	"time"

	"foodfriend/catalog"
)

// OrderItem is one cart line as sent to and returned by the order API.
type OrderItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Emoji    string  `json:"emoji,omitempty"`
}

type PlaceOrderRequest struct {
	Items       []OrderItem `json:"items"`
	TableNumber int         `json:"tableNumber"`
	Total       float64     `json:"total"`
	OrderID     string      `json:"orderId"`
}

// Order is a record returned by GET /orders.
type Order struct {
	ID          string      `json:"id"`
	Items       []OrderItem `json:"items"`
	Total       float64     `json:"total"`
	Status      string      `json:"status"`
	TableNumber int         `json:"tableNumber,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type StatusUpdate struct {
	Status string `json:"status"`
}

// Ack is the generic acknowledgement body.
type Ack struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId,omitempty"`
	Error   string `json:"error,omitempty"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type LoverConfig struct {
	Gender             string `json:"gender"`
	RelationshipStatus string `json:"relationshipStatus"`
}

type ChatRequest struct {
	Message             string       `json:"message"`
	Persona             string       `json:"persona"`
	LoverConfig         *LoverConfig `json:"loverConfig,omitempty"`
	OrderContext        *Order       `json:"orderContext,omitempty"`
	ConversationHistory []ChatTurn   `json:"conversationHistory"`
}

type ChatResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

type NutritionRequest struct {
	Items []catalog.Portion `json:"items"`
}
