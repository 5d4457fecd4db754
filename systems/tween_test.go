package systems

import (
	"math"
	"testing"
)

func TestTweenSettlesOnTarget(t *testing.T) {
	tw := NewTween(60, 10, 1, 0)
	if !tw.Settled() {
		t.Fatal("new tween should be at rest")
	}

	tw.SetTarget(50)
	prev := tw.Value()
	for i := 0; i < 240; i++ {
		v := tw.Step()
		if v < prev-1e-9 {
			t.Fatalf("critically damped tween moved backwards: %f -> %f", prev, v)
		}
		prev = v
	}
	if tw.Value() != 50 || !tw.Settled() {
		t.Errorf("value = %f settled = %v, want 50 and settled", tw.Value(), tw.Settled())
	}
}

func TestTweenRetarget(t *testing.T) {
	tw := NewTween(60, 10, 1, 0)
	tw.SetTarget(1)
	for i := 0; i < 5; i++ {
		tw.Step()
	}
	mid := tw.Value()
	if mid <= 0 || mid >= 1 {
		t.Fatalf("expected value part-way to 1, got %f", mid)
	}

	tw.SetTarget(0)
	for i := 0; i < 240; i++ {
		tw.Step()
	}
	if math.Abs(tw.Value()) > 1e-9 {
		t.Errorf("value = %f, want 0 after retarget", tw.Value())
	}
}
