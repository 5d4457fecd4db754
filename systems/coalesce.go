package systems

import "time"

// PointerCoalescer merges bursts of pointer-move events. The first event of a
// window is held for the window's delay and then applied; every event that
// arrives while one is held is discarded.
type PointerCoalescer struct {
	delay   time.Duration
	pending bool
	due     time.Duration
	x, y    float64
	dropped int
}

// NewPointerCoalescer creates a coalescer with the given window.
func NewPointerCoalescer(delay time.Duration) *PointerCoalescer {
	return &PointerCoalescer{delay: delay}
}

// Offer submits a pointer event observed at now.
func (c *PointerCoalescer) Offer(x, y float64, now time.Duration) {
	if c.pending {
		c.dropped++
		return
	}
	c.pending = true
	c.due = now + c.delay
	c.x, c.y = x, y
}

// Poll returns the held coordinates once the window has elapsed.
func (c *PointerCoalescer) Poll(now time.Duration) (x, y float64, ok bool) {
	if !c.pending || now < c.due {
		return 0, 0, false
	}
	c.pending = false
	return c.x, c.y, true
}

// Pending reports whether an event is being held.
func (c *PointerCoalescer) Pending() bool {
	return c.pending
}

// Dropped returns how many events were discarded so far.
func (c *PointerCoalescer) Dropped() int {
	return c.dropped
}
