package ledger

import (
	"time"
)

// IDGenerator hands out creation-timestamp IDs in Unix milliseconds.
// IDs are strictly increasing: when the clock has not advanced past the last
// issued or observed ID, the next ID is last+1.
type IDGenerator struct {
	now  func() time.Time
	last int64
}

// NewIDGenerator creates a generator reading time from now, or time.Now when nil.
func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

// Next returns a fresh ID
func (g *IDGenerator) Next() int64 {
	id := g.Peek()
	g.last = id
	return id
}

// Peek returns the ID Next would return without consuming it
func (g *IDGenerator) Peek() int64 {
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	return id
}

// Observe records an existing ID so that later IDs never collide with it
func (g *IDGenerator) Observe(id int64) {
	if id > g.last {
		g.last = id
	}
}
