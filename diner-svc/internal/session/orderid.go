package session

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// OrderIDs hands out "ORD-" + base36 milliseconds, bumped forward so two
// orders placed in the same millisecond still differ.
type OrderIDs struct {
	mu   sync.Mutex
	last int64
}

func (g *OrderIDs) Next(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := now.UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return "ORD-" + strings.ToUpper(strconv.FormatInt(ms, 36))
}
