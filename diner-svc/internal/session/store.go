package session

import (
	"context"
	"sync"
	"time"

	"foodfriend/diner-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// StoreOption configures the store.
type StoreOption func(*Store)

// WithTTL sets how long an idle session is kept.
func WithTTL(d time.Duration) StoreOption {
	return func(s *Store) {
		s.ttl = d
	}
}

// WithSweepInterval sets how often idle sessions are collected.
func WithSweepInterval(d time.Duration) StoreOption {
	return func(s *Store) {
		s.sweepInterval = d
	}
}

// WithIDs replaces the uuid generator.
func WithIDs(newID func() string) StoreOption {
	return func(s *Store) {
		s.newID = newID
	}
}

// Store keeps the live sessions of this process.
type Store struct {
	deps          Deps
	log           logrus.FieldLogger
	ttl           time.Duration
	sweepInterval time.Duration
	newID         func() string

	mu       sync.RWMutex
	sessions map[string]*Session
	running  bool
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewStore(deps Deps, opts ...StoreOption) *Store {
	deps.defaults()
	s := &Store{
		deps:          deps,
		log:           deps.Log,
		ttl:           2 * time.Hour,
		sweepInterval: 5 * time.Minute,
		newID:         uuid.NewString,
		sessions:      make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Create() *Session {
	sess := New(s.newID(), s.deps)

	s.mu.Lock()
	s.sessions[sess.ID()] = sess
	s.mu.Unlock()

	s.log.WithField("session", sess.ID()).Info("session created")
	return sess
}

func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep closes and drops every session idle for longer than the TTL.
func (s *Store) Sweep() int {
	now := s.deps.Clock.Now()

	var expired []*Session
	s.mu.Lock()
	for id, sess := range s.sessions {
		if now.Sub(sess.LastSeen()) > s.ttl {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.Close()
	}
	if len(expired) > 0 {
		s.log.WithField("count", len(expired)).Info("expired sessions removed")
	}
	return len(expired)
}

// Start begins the background sweep loop. Non-blocking.
func (s *Store) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.log.Warn("session sweeper already running")
		return
	}
	childCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.running = true
	s.done = make(chan struct{})

	go s.loop(childCtx, s.done)
}

// Stop ends the sweep loop and closes every remaining session.
func (s *Store) Stop() {
	s.mu.Lock()
	if s.running {
		s.cancel()
		s.running = false
	}
	done := s.done
	sessions := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	if done != nil {
		<-done
	}
	for _, sess := range sessions {
		sess.Close()
	}
}

func (s *Store) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
