package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"foodfriend/remote"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

type countingBoard struct{ nudges int }

func (b *countingBoard) Nudge() { b.nudges++ }

// scriptedReader replays messages, then cancels the consumer.
type scriptedReader struct {
	messages []kafka.Message
	errs     []error
	cancel   context.CancelFunc
}

func (r *scriptedReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.errs) > 0 {
		err := r.errs[0]
		r.errs = r.errs[1:]
		return kafka.Message{}, err
	}
	if len(r.messages) == 0 {
		r.cancel()
		return kafka.Message{}, ctx.Err()
	}
	m := r.messages[0]
	r.messages = r.messages[1:]
	return m, nil
}

func encode(t *testing.T, event remote.OrderEvent) kafka.Message {
	b, err := json.Marshal(event)
	assert.NoError(t, err)
	return kafka.Message{Value: b}
}

func TestConsumer_Process(t *testing.T) {
	tests := []struct {
		name   string
		event  remote.OrderEvent
		nudges int
	}{
		{name: "order_placed", event: remote.OrderEvent{Type: remote.EventOrderPlaced, OrderID: "ORD-1"}, nudges: 1},
		{name: "status_changed", event: remote.OrderEvent{Type: remote.EventOrderStatusChanged, OrderID: "ORD-1", Status: "ready"}, nudges: 1},
		{name: "unknown_type", event: remote.OrderEvent{Type: "new_review"}, nudges: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			log, _ := test.NewNullLogger()
			board := &countingBoard{}
			NewConsumer(nil, board, log).Process(testCase.event)
			assert.Equal(t, testCase.nudges, board.nudges)
		})
	}
}

func TestConsumer_Start(t *testing.T) {
	log, hook := test.NewNullLogger()
	ctx, cancel := context.WithCancel(context.Background())
	board := &countingBoard{}

	reader := &scriptedReader{
		errs: []error{errors.New("broker unavailable")},
		messages: []kafka.Message{
			encode(t, remote.OrderEvent{Type: remote.EventOrderPlaced, OrderID: "ORD-1"}),
			{Value: []byte("not json")},
			encode(t, remote.OrderEvent{Type: remote.EventOrderStatusChanged, OrderID: "ORD-1"}),
		},
		cancel: cancel,
	}

	NewConsumer(reader, board, log).Start(ctx)

	assert.Equal(t, 2, board.nudges)
	warnings := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings++
		}
	}
	assert.Equal(t, 2, warnings)
}
