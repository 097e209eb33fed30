package domain

import (
	"time"

	"foodfriend/catalog"
)

// Step is the top-level screen of a diner session.
type Step string

const (
	StepScanning       Step = "scanning"
	StepMenu           Step = "menu"
	StepOrderConfirmed Step = "order_confirmed"
	StepChatting       Step = "chatting"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered:
		return true
	}
	return false
}

const (
	MinTable = 1
	MaxTable = 100
)

func ValidTable(n int) bool {
	return n >= MinTable && n <= MaxTable
}

type CartItem struct {
	catalog.MenuItem
	Quantity int `json:"quantity"`
}

// Order is an immutable snapshot taken when the diner places the cart.
type Order struct {
	ID          string      `json:"id"`
	Items       []CartItem  `json:"items"`
	Total       float64     `json:"total"`
	Status      OrderStatus `json:"status"`
	TableNumber int         `json:"tableNumber"`
	PlacedAt    time.Time   `json:"placedAt"`
}

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type PopupStep string

const (
	PopupPrompt           PopupStep = "prompt"
	PopupPersonaSelection PopupStep = "persona_selection"
)

// MaxDismissals suppresses the popup for the rest of the session once reached.
const MaxDismissals = 3

type EngagementState struct {
	PopupVisible    bool         `json:"popupVisible"`
	PopupStep       PopupStep    `json:"popupStep"`
	DismissalCount  int          `json:"dismissalCount"`
	SelectedPersona *PersonaKind `json:"selectedPersona,omitempty"`
}
