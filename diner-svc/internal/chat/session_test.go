package chat

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"foodfriend/diner-svc/internal/domain"
	"foodfriend/remote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(kind domain.PersonaKind) *Session {
	n := 0
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return New(kind, &remote.Order{ID: "ORD-1"}, func() string {
		n++
		return fmt.Sprintf("msg-%d", n)
	}, func() time.Time { return now })
}

func TestSession_Greeting(t *testing.T) {
	tests := []struct {
		name string
		resp remote.ChatResponse
		err  error
		text string
	}{
		{name: "reply", resp: remote.ChatResponse{Response: "Yo! Hungry?"}, text: "Yo! Hungry?"},
		{name: "empty_reply", text: EmptyGreetingReply},
		{name: "failure", err: errors.New("boom"), text: FailedGreeting},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			s := newTestSession(domain.PersonaFriend)

			req, ok := s.BeginGreeting()
			require.True(t, ok)
			assert.Equal(t, GreetingSentinel, req.Message)
			assert.Equal(t, "friend", req.Persona)
			assert.Empty(t, req.ConversationHistory)
			assert.NotNil(t, req.ConversationHistory)
			assert.Nil(t, req.LoverConfig)
			assert.Equal(t, "ORD-1", req.OrderContext.ID)
			assert.True(t, s.Typing())

			_, again := s.BeginGreeting()
			assert.False(t, again)

			s.CompleteGreeting(testCase.resp, testCase.err)
			assert.False(t, s.Typing())
			history := s.History()
			require.Len(t, history, 1)
			assert.Equal(t, domain.SenderBot, history[0].Sender)
			assert.Equal(t, testCase.text, history[0].Text)
		})
	}
}

func TestSession_SendMessage(t *testing.T) {
	s := newTestSession(domain.PersonaTherapist)
	_, _, err := s.BeginSend("hello")
	assert.ErrorIs(t, err, domain.ErrChatNotReady)

	s.BeginGreeting()
	s.CompleteGreeting(remote.ChatResponse{Response: "How are you feeling?"}, nil)

	req, ok, err := s.BeginSend("  tired  ")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "  tired  ", req.Message)
	assert.Equal(t, []remote.ChatTurn{{Role: remote.RoleAssistant, Content: "How are you feeling?"}}, req.ConversationHistory)
	assert.True(t, s.Typing())
	assert.Len(t, s.History(), 2)

	s.CompleteSend(remote.ChatResponse{Response: "Tell me more."}, nil)
	assert.False(t, s.Typing())

	req, _, _ = s.BeginSend("ok")
	assert.Equal(t, []remote.ChatTurn{
		{Role: remote.RoleAssistant, Content: "How are you feeling?"},
		{Role: remote.RoleUser, Content: "  tired  "},
		{Role: remote.RoleAssistant, Content: "Tell me more."},
	}, req.ConversationHistory)

	s.CompleteSend(remote.ChatResponse{}, errors.New("gateway timeout"))
	history := s.History()
	require.Len(t, history, 4)
	assert.Equal(t, "ok", history[3].Text)
	assert.False(t, s.Typing())
}

func TestSession_BlankMessageIgnored(t *testing.T) {
	s := newTestSession(domain.PersonaFriend)
	s.BeginGreeting()
	s.CompleteGreeting(remote.ChatResponse{Response: "hi"}, nil)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, ok, err := s.BeginSend(text)
		assert.NoError(t, err)
		assert.False(t, ok)
	}
	assert.Len(t, s.History(), 1)
	assert.False(t, s.Typing())
}

func TestSession_EmptyReply(t *testing.T) {
	s := newTestSession(domain.PersonaFriend)
	s.BeginGreeting()
	s.CompleteGreeting(remote.ChatResponse{Response: "hi"}, nil)

	s.BeginSend("what's good here?")
	s.CompleteSend(remote.ChatResponse{}, nil)

	history := s.History()
	assert.Equal(t, EmptyReply, history[len(history)-1].Text)
}

func TestSession_OutOfOrderRepliesAppend(t *testing.T) {
	s := newTestSession(domain.PersonaComedian)
	s.BeginGreeting()
	s.CompleteGreeting(remote.ChatResponse{Response: "hi"}, nil)

	s.BeginSend("first")
	s.BeginSend("second")
	assert.True(t, s.Typing())

	s.CompleteSend(remote.ChatResponse{Response: "reply to second"}, nil)
	assert.True(t, s.Typing())
	s.CompleteSend(remote.ChatResponse{Response: "reply to first"}, nil)
	assert.False(t, s.Typing())

	var texts []string
	for _, m := range s.History() {
		texts = append(texts, m.Text)
	}
	assert.Equal(t, []string{"hi", "first", "second", "reply to second", "reply to first"}, texts)
}

func TestSession_LoverOnboarding(t *testing.T) {
	s := newTestSession(domain.PersonaLover)
	assert.Equal(t, StageLoverGender, s.Stage())

	_, ok := s.BeginGreeting()
	assert.False(t, ok)
	assert.ErrorIs(t, s.SelectStatus(domain.StatusMarried), domain.ErrStepMismatch)

	require.NoError(t, s.SelectGender(domain.GenderFemale))
	assert.Equal(t, StageLoverStatus, s.Stage())
	assert.Equal(t, domain.StatusSingle, s.Persona().Lover.RelationshipStatus)

	assert.False(t, s.Back())
	assert.Equal(t, StageLoverGender, s.Stage())
	require.NoError(t, s.SelectGender(domain.GenderMale))
	require.NoError(t, s.SelectStatus(domain.StatusMarried))
	assert.Equal(t, StageChatting, s.Stage())

	req, ok := s.BeginGreeting()
	require.True(t, ok)
	assert.Equal(t, "lover", req.Persona)
	require.NotNil(t, req.LoverConfig)
	assert.Equal(t, remote.LoverConfig{Gender: "male", RelationshipStatus: "married"}, *req.LoverConfig)
}

func TestSession_BackFromGenderLeavesChat(t *testing.T) {
	s := newTestSession(domain.PersonaLover)
	assert.True(t, s.Back())

	friend := newTestSession(domain.PersonaFriend)
	assert.True(t, friend.Back())
}
