// Package portal keeps the kitchen's view of the order list. The remote
// order store is authoritative: every change is followed by a full
// re-fetch and nothing is updated locally ahead of it.
package portal

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"foodfriend/remote"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidFilter = errors.New("invalid status filter")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrOrderNotFound = errors.New("order not found")
	ErrNoTransition  = errors.New("order has no next status")
)

var orderStatuses = map[string]bool{
	"pending":       true,
	StatusConfirmed: true,
	StatusPreparing: true,
	StatusReady:     true,
	StatusDelivered: true,
}

type OrderSource interface {
	ListOrders(ctx context.Context) ([]remote.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
}

var _ OrderSource = (*remote.Client)(nil)

// Option configures the board.
type Option func(*Board)

// WithPollInterval sets how often the order list is fetched.
func WithPollInterval(d time.Duration) Option {
	return func(b *Board) {
		b.interval = d
	}
}

type Board struct {
	source   OrderSource
	log      logrus.FieldLogger
	interval time.Duration
	nudge    chan struct{}

	mu         sync.RWMutex
	orders     []remote.Order
	loading    bool
	lastError  string
	fetchedAt  time.Time
	fetchSeq   uint64
	appliedSeq uint64
}

func NewBoard(source OrderSource, log logrus.FieldLogger, opts ...Option) *Board {
	b := &Board{
		source:   source,
		log:      log,
		interval: 5 * time.Second,
		nudge:    make(chan struct{}, 1),
		loading:  true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Refresh fetches the full order list. A failed fetch keeps the previous
// list; either way the board stops loading after the first attempt.
// Fetches are numbered when they start, and a result is dropped once a
// later fetch has been applied.
func (b *Board) Refresh(ctx context.Context) error {
	b.mu.Lock()
	b.fetchSeq++
	seq := b.fetchSeq
	b.mu.Unlock()

	orders, err := b.source.ListOrders(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.loading = false
	if seq < b.appliedSeq {
		b.log.WithField("fetch", seq).Debug("dropping stale order list")
		return err
	}
	if err != nil {
		b.lastError = err.Error()
		b.log.WithError(err).Warn("failed to fetch orders")
		return err
	}
	if orders == nil {
		orders = []remote.Order{}
	}
	b.orders = orders
	b.appliedSeq = seq
	b.lastError = ""
	b.fetchedAt = time.Now()
	return nil
}

// UpdateStatus asks the order store for a new status and re-fetches
// whether or not the update succeeded.
func (b *Board) UpdateStatus(ctx context.Context, orderID, status string) error {
	if !orderStatuses[status] {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	err := b.source.UpdateStatus(ctx, orderID, status)
	if err != nil {
		b.log.WithError(err).WithFields(logrus.Fields{"order": orderID, "status": status}).
			Warn("failed to update order status")
	}
	b.Refresh(ctx)
	return err
}

// Advance moves an order one step along confirmed, preparing, ready, delivered.
func (b *Board) Advance(ctx context.Context, orderID string) error {
	b.mu.RLock()
	var current string
	found := false
	for _, o := range b.orders {
		if o.ID == orderID {
			current, found = o.Status, true
			break
		}
	}
	b.mu.RUnlock()

	if !found {
		return ErrOrderNotFound
	}
	next, ok := Next(current)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoTransition, current)
	}
	return b.UpdateStatus(ctx, orderID, next.Status)
}

// Nudge requests an immediate re-fetch from the poll loop.
func (b *Board) Nudge() {
	select {
	case b.nudge <- struct{}{}:
	default:
	}
}

// Run fetches immediately, then on every tick or nudge until ctx ends.
func (b *Board) Run(ctx context.Context) {
	b.Refresh(ctx)

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-b.nudge:
		}
		b.Refresh(ctx)
	}
}

type Card struct {
	remote.Order
	Color string      `json:"color"`
	Emoji string      `json:"emoji"`
	Next  *Transition `json:"next,omitempty"`
}

type Tab struct {
	Filter string `json:"filter"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

type Snapshot struct {
	Filter    string    `json:"filter"`
	Loading   bool      `json:"loading"`
	Orders    []Card    `json:"orders"`
	Tabs      []Tab     `json:"tabs"`
	LastError string    `json:"lastError,omitempty"`
	FetchedAt time.Time `json:"fetchedAt,omitempty"`
}

// Snapshot returns the board filtered by status; "" means all.
func (b *Board) Snapshot(filter string) (Snapshot, error) {
	if filter == "" {
		filter = FilterAll
	}
	if !validFilter(filter) {
		return Snapshot{}, fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	counts := map[string]int{FilterAll: len(b.orders)}
	cards := []Card{}
	for _, o := range b.orders {
		counts[o.Status]++
		if filter != FilterAll && o.Status != filter {
			continue
		}
		card := Card{Order: o, Color: Color(o.Status), Emoji: Emoji(o.Status)}
		if next, ok := Next(o.Status); ok {
			card.Next = &next
		}
		cards = append(cards, card)
	}

	tabs := make([]Tab, 0, len(Filters))
	for _, f := range Filters {
		tabs = append(tabs, Tab{Filter: f, Label: TabLabel(f), Count: counts[f]})
	}

	return Snapshot{
		Filter:    filter,
		Loading:   b.loading,
		Orders:    cards,
		Tabs:      tabs,
		LastError: b.lastError,
		FetchedAt: b.fetchedAt,
	}, nil
}
