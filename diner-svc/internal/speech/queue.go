// Package speech is the voice side channel. Cues are queued for the diner's
// page to play and can be cancelled when the diner leaves the context that
// produced them.
package speech

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Speaker is what the session needs from the voice channel.
type Speaker interface {
	Speak(text string)
	Cancel()
}

type Cue struct {
	Seq      int       `json:"seq"`
	Text     string    `json:"text"`
	QueuedAt time.Time `json:"queuedAt"`
}

var _ Speaker = (*Queue)(nil)

// Queue keeps at most one pending utterance: speaking interrupts whatever
// was still waiting.
type Queue struct {
	log logrus.FieldLogger
	now func() time.Time

	mu        sync.Mutex
	seq       int
	pending   []Cue
	cancelled int
}

func NewQueue(log logrus.FieldLogger, now func() time.Time) *Queue {
	if now == nil {
		now = time.Now
	}
	return &Queue{log: log, now: now}
}

func (q *Queue) Speak(text string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.cancelled += len(q.pending)
	q.seq++
	q.pending = []Cue{{Seq: q.seq, Text: text, QueuedAt: q.now()}}
	q.log.WithField("cue", q.seq).Debug("speech cue queued")
}

func (q *Queue) Cancel() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return
	}
	q.cancelled += len(q.pending)
	q.pending = nil
	q.log.Debug("speech cancelled")
}

// Pending returns a copy of the cues not yet played or cancelled.
func (q *Queue) Pending() []Cue {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Cue, len(q.pending))
	copy(out, q.pending)
	return out
}

// Cancelled counts cues dropped by Cancel or by a newer Speak.
func (q *Queue) Cancelled() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.cancelled
}
