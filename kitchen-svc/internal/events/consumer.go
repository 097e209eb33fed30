// Package events turns order notifications into board re-fetches.
package events

import (
	"context"
	"encoding/json"
	"errors"

	"foodfriend/remote"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

var _ MessageReader = (*kafka.Reader)(nil)

type Nudger interface {
	Nudge()
}

type Consumer struct {
	Reader MessageReader
	Board  Nudger
	Log    logrus.FieldLogger
}

func NewConsumer(reader MessageReader, board Nudger, log logrus.FieldLogger) *Consumer {
	return &Consumer{
		Reader: reader,
		Board:  board,
		Log:    log,
	}
}

// Start reads until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	c.Log.Info("starting order events consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			c.Log.WithError(err).Warn("error reading message")
			continue
		}

		var event remote.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.Log.WithError(err).Warn("error unmarshaling message")
			continue
		}
		c.Process(event)
	}
}

// Process nudges the board for order events and ignores anything else.
func (c *Consumer) Process(event remote.OrderEvent) {
	switch event.Type {
	case remote.EventOrderPlaced, remote.EventOrderStatusChanged:
		c.Log.WithFields(logrus.Fields{"order": event.OrderID, "type": event.Type}).Debug("order event received")
		c.Board.Nudge()
	}
}
