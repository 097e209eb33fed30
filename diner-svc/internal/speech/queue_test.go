package speech

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_SpeakReplacesPending(t *testing.T) {
	log, _ := test.NewNullLogger()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	q := NewQueue(log, func() time.Time { return now })

	q.Speak("first")
	q.Speak("second")

	pending := q.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, "second", pending[0].Text)
	assert.Equal(t, 2, pending[0].Seq)
	assert.Equal(t, now, pending[0].QueuedAt)
	assert.Equal(t, 1, q.Cancelled())
}

func TestQueue_Cancel(t *testing.T) {
	log, _ := test.NewNullLogger()
	q := NewQueue(log, nil)

	q.Cancel()
	assert.Equal(t, 0, q.Cancelled())

	q.Speak("hello")
	q.Cancel()
	assert.Empty(t, q.Pending())
	assert.Equal(t, 1, q.Cancelled())
}
