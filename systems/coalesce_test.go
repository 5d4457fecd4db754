package systems

import (
	"testing"
	"time"
)

func TestCoalescerAppliesFirstEventOfWindow(t *testing.T) {
	c := NewPointerCoalescer(10 * time.Millisecond)

	c.Offer(1, 1, 0)
	c.Offer(2, 2, 3*time.Millisecond)
	c.Offer(3, 3, 9*time.Millisecond)

	if _, _, ok := c.Poll(9 * time.Millisecond); ok {
		t.Fatal("applied before the window elapsed")
	}

	x, y, ok := c.Poll(10 * time.Millisecond)
	if !ok {
		t.Fatal("expected held event after 10ms")
	}
	if x != 1 || y != 1 {
		t.Errorf("applied (%v, %v), want first event (1, 1)", x, y)
	}
	if c.Dropped() != 2 {
		t.Errorf("dropped = %d, want 2", c.Dropped())
	}

	if _, _, ok := c.Poll(20 * time.Millisecond); ok {
		t.Error("a window applies at most once")
	}
}

func TestCoalescerOpensNewWindow(t *testing.T) {
	c := NewPointerCoalescer(10 * time.Millisecond)

	c.Offer(1, 1, 0)
	c.Poll(10 * time.Millisecond)

	c.Offer(5, 6, 12*time.Millisecond)
	if !c.Pending() {
		t.Fatal("expected new window to open")
	}
	x, y, ok := c.Poll(22 * time.Millisecond)
	if !ok || x != 5 || y != 6 {
		t.Errorf("Poll = (%v, %v, %v), want (5, 6, true)", x, y, ok)
	}
}

func TestCoalescerIdle(t *testing.T) {
	c := NewPointerCoalescer(10 * time.Millisecond)
	if _, _, ok := c.Poll(time.Second); ok {
		t.Error("idle coalescer should not produce events")
	}
}
