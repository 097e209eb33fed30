// Package session owns one diner's ordering session: table, cart, placed
// order, nutrition summary, chat invitation and conversation. All state
// changes go through the Session lock; remote calls run outside it and
// are discarded when the session was reset in the meantime.
package session

import (
	"context"
	"sync"
	"time"

	"foodfriend/diner-svc/internal/cart"
	"foodfriend/diner-svc/internal/chat"
	"foodfriend/diner-svc/internal/domain"
	"foodfriend/diner-svc/internal/engagement"
	"foodfriend/diner-svc/internal/nutrition"
	"foodfriend/diner-svc/internal/qr"
	"foodfriend/diner-svc/internal/speech"
	"foodfriend/diner-svc/internal/telemetry"
	"foodfriend/remote"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

type OrderSubmitter interface {
	PlaceOrder(ctx context.Context, req remote.PlaceOrderRequest) error
}

// Deps are shared by every session of a process.
type Deps struct {
	Orders     OrderSubmitter
	Chat       chat.Service
	Nutrition  *nutrition.Fetcher
	Reporter   telemetry.Reporter
	Clock      clockwork.Clock
	Log        logrus.FieldLogger
	PopupDelay time.Duration
	OrderIDs   *OrderIDs
	// Run starts background work. Defaults to a new goroutine.
	Run func(func())
}

func (d *Deps) defaults() {
	if d.Clock == nil {
		d.Clock = clockwork.NewRealClock()
	}
	if d.Log == nil {
		d.Log = logrus.StandardLogger()
	}
	if d.Run == nil {
		d.Run = func(f func()) { go f() }
	}
	if d.OrderIDs == nil {
		d.OrderIDs = &OrderIDs{}
	}
	if d.PopupDelay <= 0 {
		d.PopupDelay = 5 * time.Second
	}
}

type Session struct {
	id     string
	deps   Deps
	log    logrus.FieldLogger
	speech *speech.Queue
	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	epoch       uint64
	closed      bool
	lastSeen    time.Time
	step        domain.Step
	table       int
	cart        *cart.Cart
	cartOpen    bool
	order       *domain.Order
	nutrition   nutrition.Summary
	engagement  *engagement.Flow
	chat        *chat.Session
	scanError   string
	manualEntry bool
	popupTimer  clockwork.Timer
	popupGen    uint64
}

func New(id string, deps Deps) *Session {
	deps.defaults()
	ctx, cancel := context.WithCancel(context.Background())
	log := deps.Log.WithField("session", id)
	return &Session{
		id:         id,
		deps:       deps,
		log:        log,
		speech:     speech.NewQueue(log, deps.Clock.Now),
		ctx:        ctx,
		cancel:     cancel,
		lastSeen:   deps.Clock.Now(),
		step:       domain.StepScanning,
		cart:       cart.New(nil),
		engagement: engagement.New(),
	}
}

func (s *Session) ID() string { return s.id }

// job is background work started once the lock is released.
type job func()

// do runs fn under the lock, then starts the jobs it queued.
func (s *Session) do(fn func() ([]job, error)) (View, error) {
	s.mu.Lock()
	s.lastSeen = s.deps.Clock.Now()
	jobs, err := fn()
	view := s.viewLocked()
	s.mu.Unlock()

	for _, j := range jobs {
		s.deps.Run(j)
	}
	return view, err
}

func (s *Session) View() View {
	v, _ := s.do(func() ([]job, error) { return nil, nil })
	return v
}

// Scan accepts a decoded QR payload.
func (s *Session) Scan(payload string) (View, error) {
	return s.do(func() ([]job, error) {
		if s.step != domain.StepScanning {
			return nil, domain.ErrStepMismatch
		}
		table, err := qr.Parse(payload)
		if err != nil {
			s.scanError = qr.InvalidScanMessage
			s.manualEntry = true
			return nil, err
		}
		s.enterTableLocked(table)
		return nil, nil
	})
}

// ScanFailed records why the camera could not start and offers manual entry.
func (s *Session) ScanFailed(kind qr.CameraErrorKind) (View, error) {
	return s.do(func() ([]job, error) {
		if s.step != domain.StepScanning {
			return nil, domain.ErrStepMismatch
		}
		s.scanError = qr.DescribeCameraError(kind)
		s.manualEntry = true
		return nil, nil
	})
}

// EnterTable accepts a typed table number.
func (s *Session) EnterTable(input string) (View, error) {
	return s.do(func() ([]job, error) {
		if s.step != domain.StepScanning {
			return nil, domain.ErrStepMismatch
		}
		table, err := qr.ParseManual(input)
		if err != nil {
			s.scanError = qr.InvalidManualMessage
			s.manualEntry = true
			return nil, err
		}
		s.enterTableLocked(table)
		return nil, nil
	})
}

func (s *Session) enterTableLocked(table int) {
	s.table = table
	s.scanError = ""
	s.manualEntry = false
	s.step = domain.StepMenu
	s.log.WithField("table", table).Info("table identified")
}

func (s *Session) AddItem(itemID int) (View, error) {
	return s.do(func() ([]job, error) {
		if s.step != domain.StepMenu {
			return nil, domain.ErrStepMismatch
		}
		s.cart.Add(itemID)
		return nil, nil
	})
}

func (s *Session) RemoveItem(itemID int) (View, error) {
	return s.do(func() ([]job, error) {
		if s.step != domain.StepMenu {
			return nil, domain.ErrStepMismatch
		}
		s.cart.Remove(itemID)
		return nil, nil
	})
}

func (s *Session) OpenCart() (View, error) {
	return s.setCartOpen(true)
}

func (s *Session) CloseCart() (View, error) {
	return s.setCartOpen(false)
}

func (s *Session) setCartOpen(open bool) (View, error) {
	return s.do(func() ([]job, error) {
		if s.step != domain.StepMenu {
			return nil, domain.ErrStepMismatch
		}
		s.cartOpen = open
		return nil, nil
	})
}

// PlaceOrder snapshots the cart and confirms the order locally. Submission
// and the nutrition fetch run in the background; an empty cart is a no-op.
func (s *Session) PlaceOrder() (View, error) {
	return s.do(func() ([]job, error) {
		if s.step != domain.StepMenu {
			return nil, domain.ErrStepMismatch
		}
		if s.cart.Empty() || s.table == 0 {
			return nil, nil
		}

		now := s.deps.Clock.Now()
		order := domain.Order{
			ID:          s.deps.OrderIDs.Next(now),
			Items:       s.cart.Items(),
			Total:       s.cart.Total(),
			Status:      domain.StatusConfirmed,
			TableNumber: s.table,
			PlacedAt:    now,
		}
		s.order = &order
		s.cart.Clear()
		s.cartOpen = false
		s.step = domain.StepOrderConfirmed
		s.nutrition.Begin()
		s.deps.Reporter.OrderPlaced(order.ID, order.TableNumber)

		return []job{s.submitJob(order), s.nutritionJob(s.epoch, order)}, nil
	})
}

func (s *Session) submitJob(order domain.Order) job {
	req := placeOrderRequest(order)
	return func() {
		if err := s.deps.Orders.PlaceOrder(s.ctx, req); err != nil {
			s.deps.Reporter.RemoteFailure(telemetry.OpPlaceOrder, err, logrus.Fields{
				"session": s.id,
				"order":   order.ID,
				"table":   order.TableNumber,
			})
		}
	}
}

func (s *Session) nutritionJob(epoch uint64, order domain.Order) job {
	portions := nutrition.Portions(order.Items)
	return func() {
		report, fallback := s.deps.Nutrition.Fetch(s.ctx, portions)

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.epoch != epoch {
			return
		}
		if s.nutrition.Complete(report, fallback) {
			s.armPopupLocked()
		}
	}
}

// NewOrder starts over at the menu and keeps the table.
func (s *Session) NewOrder() (View, error) {
	return s.do(func() ([]job, error) {
		if s.table == 0 {
			return nil, domain.ErrStepMismatch
		}
		s.resetLocked(true)
		return nil, nil
	})
}

// Reset returns to the scanner and forgets the table.
func (s *Session) Reset() (View, error) {
	return s.do(func() ([]job, error) {
		s.resetLocked(false)
		return nil, nil
	})
}

func (s *Session) resetLocked(keepTable bool) {
	s.epoch++
	s.cancelPopupLocked()
	s.speech.Cancel()
	s.cart.Clear()
	s.cartOpen = false
	s.order = nil
	s.nutrition.Reset()
	s.engagement = engagement.New()
	s.chat = nil
	s.scanError = ""
	s.manualEntry = false
	if keepTable {
		s.step = domain.StepMenu
		return
	}
	s.table = 0
	s.step = domain.StepScanning
}

func (s *Session) armPopupLocked() {
	if s.closed || s.popupTimer != nil {
		return
	}
	if s.step != domain.StepOrderConfirmed || !s.nutrition.Loaded() || !s.engagement.CanShow() {
		return
	}
	s.popupGen++
	epoch, gen := s.epoch, s.popupGen
	s.popupTimer = s.deps.Clock.AfterFunc(s.deps.PopupDelay, func() {
		s.firePopup(epoch, gen)
	})
}

func (s *Session) cancelPopupLocked() {
	s.popupGen++
	if s.popupTimer != nil {
		s.popupTimer.Stop()
		s.popupTimer = nil
	}
}

func (s *Session) firePopup(epoch, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.epoch != epoch || s.popupGen != gen {
		return
	}
	s.popupTimer = nil
	if s.step != domain.StepOrderConfirmed {
		return
	}
	if s.engagement.Show() {
		s.deps.Reporter.PopupShown()
	}
}

func (s *Session) popup(fn func(f *engagement.Flow) error) (View, error) {
	return s.do(func() ([]job, error) {
		if s.step != domain.StepOrderConfirmed {
			return nil, domain.ErrStepMismatch
		}
		return nil, fn(s.engagement)
	})
}

func (s *Session) AcceptPopup() (View, error) {
	return s.popup((*engagement.Flow).Accept)
}

func (s *Session) DismissPopup() (View, error) {
	return s.popup(func(f *engagement.Flow) error {
		out, err := f.Dismiss()
		if err != nil {
			return err
		}
		if out.Speak != "" {
			s.speech.Speak(out.Speak)
		}
		return nil
	})
}

func (s *Session) PopupLater() (View, error) {
	return s.popup((*engagement.Flow).Later)
}

func (s *Session) PopupBack() (View, error) {
	return s.popup((*engagement.Flow).Back)
}

// SelectPersona closes the popup and opens the chat with that persona.
func (s *Session) SelectPersona(kind domain.PersonaKind) (View, error) {
	return s.do(func() ([]job, error) {
		if s.step != domain.StepOrderConfirmed {
			return nil, domain.ErrStepMismatch
		}
		if err := s.engagement.SelectPersona(kind); err != nil {
			return nil, err
		}
		s.speech.Cancel()
		s.cancelPopupLocked()
		s.step = domain.StepChatting

		var placed *remote.Order
		if s.order != nil {
			o := remoteOrder(*s.order)
			placed = &o
		}
		s.chat = chat.New(kind, placed, uuid.NewString, s.deps.Clock.Now)
		s.log.WithField("persona", kind).Info("chat opened")
		return s.greetingJobs(), nil
	})
}

func (s *Session) greetingJobs() []job {
	c := s.chat
	req, ok := c.BeginGreeting()
	if !ok {
		return nil
	}
	return []job{func() {
		resp, err := s.deps.Chat.Chat(s.ctx, req)
		if err != nil {
			s.deps.Reporter.RemoteFailure(telemetry.OpGreeting, err, logrus.Fields{"session": s.id})
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.chat != c {
			return
		}
		c.CompleteGreeting(resp, err)
	}}
}

func (s *Session) chatting(fn func(c *chat.Session) ([]job, error)) (View, error) {
	return s.do(func() ([]job, error) {
		if s.step != domain.StepChatting || s.chat == nil {
			return nil, domain.ErrStepMismatch
		}
		return fn(s.chat)
	})
}

func (s *Session) SelectGender(g domain.Gender) (View, error) {
	return s.chatting(func(c *chat.Session) ([]job, error) {
		return nil, c.SelectGender(g)
	})
}

func (s *Session) SelectRelationshipStatus(st domain.RelationshipStatus) (View, error) {
	return s.chatting(func(c *chat.Session) ([]job, error) {
		if err := c.SelectStatus(st); err != nil {
			return nil, err
		}
		return s.greetingJobs(), nil
	})
}

// ChatBack steps back through onboarding and leaves the chat from its first step.
func (s *Session) ChatBack() (View, error) {
	return s.chatting(func(c *chat.Session) ([]job, error) {
		if c.Back() {
			s.closeChatLocked()
		}
		return nil, nil
	})
}

// SendMessage appends the diner's message and asks for a reply in the
// background. Blank text changes nothing.
func (s *Session) SendMessage(text string) (View, error) {
	return s.chatting(func(c *chat.Session) ([]job, error) {
		req, ok, err := c.BeginSend(text)
		if err != nil || !ok {
			return nil, err
		}
		return []job{func() {
			resp, err := s.deps.Chat.Chat(s.ctx, req)
			if err != nil {
				s.deps.Reporter.RemoteFailure(telemetry.OpChat, err, logrus.Fields{"session": s.id})
			}

			s.mu.Lock()
			defer s.mu.Unlock()
			if s.chat != c {
				return
			}
			c.CompleteSend(resp, err)
		}}, nil
	})
}

// CloseChat returns to the confirmation screen. Requests still in flight
// complete into the discarded conversation.
func (s *Session) CloseChat() (View, error) {
	return s.chatting(func(c *chat.Session) ([]job, error) {
		s.closeChatLocked()
		return nil, nil
	})
}

func (s *Session) closeChatLocked() {
	s.speech.Cancel()
	s.chat = nil
	s.step = domain.StepOrderConfirmed
	s.armPopupLocked()
}

func (s *Session) StopSpeech() (View, error) {
	return s.do(func() ([]job, error) {
		s.speech.Cancel()
		return nil, nil
	})
}

// LastSeen is the time of the most recent call.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Close stops the popup timer and abandons background work.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.epoch++
	s.cancelPopupLocked()
	s.speech.Cancel()
	s.cancel()
}

func remoteOrder(o domain.Order) remote.Order {
	items := make([]remote.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, remote.OrderItem{
			ID:       item.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Emoji:    item.Emoji,
		})
	}
	return remote.Order{
		ID:          o.ID,
		Items:       items,
		Total:       o.Total,
		Status:      string(o.Status),
		TableNumber: o.TableNumber,
		CreatedAt:   o.PlacedAt,
	}
}

func placeOrderRequest(o domain.Order) remote.PlaceOrderRequest {
	r := remoteOrder(o)
	return remote.PlaceOrderRequest{
		Items:       r.Items,
		TableNumber: o.TableNumber,
		Total:       o.Total,
		OrderID:     o.ID,
	}
}
