package components

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if r.Top() != 20 || r.Bottom() != 60 {
		t.Errorf("edges = (%v, %v), want (20, 60)", r.Top(), r.Bottom())
	}

	moved := r.Translate(0, -25)
	if moved.Top() != -5 || moved.Bottom() != 35 {
		t.Errorf("translated edges = (%v, %v), want (-5, 35)", moved.Top(), moved.Bottom())
	}
	if r.Y != 20 {
		t.Error("Translate must not mutate the receiver")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		p    Position
		want bool
	}{
		{Position{5, 5}, true},
		{Position{0, 0}, true},
		{Position{10, 10}, true},
		{Position{-1, 5}, false},
		{Position{5, 11}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
