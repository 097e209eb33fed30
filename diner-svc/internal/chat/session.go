// Package chat holds one persona-scoped conversation and builds the
// requests sent to the remote chat service.
package chat

import (
	"context"
	"strings"
	"time"

	"foodfriend/diner-svc/internal/domain"
	"foodfriend/remote"
)

const (
	GreetingSentinel = "START_CONVERSATION"

	EmptyGreetingReply = "Hey! What's up? 🎉"
	FailedGreeting     = "Hey there! Ready to chat? 🎉"
	EmptyReply         = "Hmm, let me think..."
)

type Service interface {
	Chat(ctx context.Context, req remote.ChatRequest) (remote.ChatResponse, error)
}

// Stage is the onboarding position inside the chat screen.
type Stage string

const (
	StageLoverGender Stage = "lover_gender"
	StageLoverStatus Stage = "lover_status"
	StageChatting    Stage = "chatting"
)

// Session is not safe for concurrent use; the owner serializes access.
type Session struct {
	persona domain.Persona
	stage   Stage
	order   *remote.Order
	history []domain.Message
	pending int
	greeted bool
	ready   bool

	newID func() string
	now   func() time.Time
}

// New starts a conversation. The lover persona begins in onboarding.
func New(kind domain.PersonaKind, order *remote.Order, newID func() string, now func() time.Time) *Session {
	s := &Session{
		persona: domain.Persona{Kind: kind},
		stage:   StageChatting,
		order:   order,
		newID:   newID,
		now:     now,
	}
	if kind == domain.PersonaLover {
		s.stage = StageLoverGender
	}
	return s
}

func (s *Session) Persona() domain.Persona {
	p := s.persona
	if p.Lover != nil {
		cfg := *p.Lover
		p.Lover = &cfg
	}
	return p
}

func (s *Session) Stage() Stage { return s.stage }

// Typing is true while any request is outstanding.
func (s *Session) Typing() bool { return s.pending > 0 }

func (s *Session) History() []domain.Message {
	out := make([]domain.Message, len(s.history))
	copy(out, s.history)
	return out
}

// SelectGender records the lover's gender; the status defaults to single
// until chosen.
func (s *Session) SelectGender(g domain.Gender) error {
	if s.stage != StageLoverGender {
		return domain.ErrStepMismatch
	}
	s.persona.Lover = &domain.LoverConfig{Gender: g, RelationshipStatus: domain.StatusSingle}
	s.stage = StageLoverStatus
	return nil
}

func (s *Session) SelectStatus(st domain.RelationshipStatus) error {
	if s.stage != StageLoverStatus {
		return domain.ErrStepMismatch
	}
	if s.persona.Lover == nil {
		s.persona.Lover = &domain.LoverConfig{Gender: domain.GenderOther}
	}
	s.persona.Lover.RelationshipStatus = st
	s.stage = StageChatting
	return nil
}

// Back steps back through onboarding. It reports true when the diner
// backed out of the chat entirely.
func (s *Session) Back() bool {
	switch s.stage {
	case StageLoverStatus:
		s.stage = StageLoverGender
		return false
	default:
		return true
	}
}

// BeginGreeting returns the one greeting request, once onboarding is done.
func (s *Session) BeginGreeting() (remote.ChatRequest, bool) {
	if s.stage != StageChatting || s.greeted {
		return remote.ChatRequest{}, false
	}
	s.greeted = true
	s.pending++
	return s.request(GreetingSentinel, []remote.ChatTurn{}), true
}

// CompleteGreeting seeds the history with the greeting or a canned one.
func (s *Session) CompleteGreeting(resp remote.ChatResponse, err error) {
	s.pending--
	s.ready = true

	text := resp.Response
	switch {
	case err != nil:
		text = FailedGreeting
	case text == "":
		text = EmptyGreetingReply
	}
	s.append(domain.SenderBot, text)
}

// BeginSend appends the diner's message and returns the request carrying
// the history that preceded it. Blank text is ignored.
func (s *Session) BeginSend(text string) (remote.ChatRequest, bool, error) {
	if strings.TrimSpace(text) == "" {
		return remote.ChatRequest{}, false, nil
	}
	if s.stage != StageChatting || !s.ready {
		return remote.ChatRequest{}, false, domain.ErrChatNotReady
	}

	history := make([]remote.ChatTurn, 0, len(s.history))
	for _, m := range s.history {
		role := remote.RoleAssistant
		if m.Sender == domain.SenderUser {
			role = remote.RoleUser
		}
		history = append(history, remote.ChatTurn{Role: role, Content: m.Text})
	}

	s.append(domain.SenderUser, text)
	s.pending++
	return s.request(text, history), true, nil
}

// CompleteSend appends the reply after whatever is already in the history.
// A failed request leaves the history untouched.
func (s *Session) CompleteSend(resp remote.ChatResponse, err error) {
	s.pending--
	if err != nil {
		return
	}
	text := resp.Response
	if text == "" {
		text = EmptyReply
	}
	s.append(domain.SenderBot, text)
}

func (s *Session) append(sender domain.Sender, text string) {
	s.history = append(s.history, domain.Message{
		ID:        s.newID(),
		Sender:    sender,
		Text:      text,
		Timestamp: s.now(),
	})
}

func (s *Session) request(message string, history []remote.ChatTurn) remote.ChatRequest {
	req := remote.ChatRequest{
		Message:             message,
		OrderContext:        s.order,
		ConversationHistory: history,
	}
	switch s.persona.Kind {
	case domain.PersonaLover:
		req.Persona = string(domain.PersonaLover)
		if cfg := s.persona.Lover; cfg != nil {
			req.LoverConfig = &remote.LoverConfig{
				Gender:             string(cfg.Gender),
				RelationshipStatus: string(cfg.RelationshipStatus),
			}
		}
	default:
		req.Persona = string(s.persona.Kind)
	}
	return req
}
