package systems

import (
	"testing"
	"time"

	"github.com/pthm-cable/folio/components"
)

func TestDoubleClick(t *testing.T) {
	ms := time.Millisecond
	tests := []struct {
		name  string
		first components.Position
		gap   time.Duration
		next  components.Position
		want  bool
	}{
		{"quick same spot", components.Position{X: 10, Y: 10}, 200 * ms, components.Position{X: 10, Y: 10}, true},
		{"at threshold", components.Position{X: 10, Y: 10}, 500 * ms, components.Position{X: 12, Y: 13}, true},
		{"too slow", components.Position{X: 10, Y: 10}, 501 * ms, components.Position{X: 10, Y: 10}, false},
		{"too far", components.Position{X: 10, Y: 10}, 100 * ms, components.Position{X: 20, Y: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDoubleClickDetector(500*ms, 5)
			if d.Press(tt.first, time.Second) {
				t.Fatal("single press reported as double-click")
			}
			if got := d.Press(tt.next, time.Second+tt.gap); got != tt.want {
				t.Errorf("second press = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDoubleClickConsumesPair(t *testing.T) {
	d := NewDoubleClickDetector(500*time.Millisecond, 5)
	p := components.Position{X: 1, Y: 1}

	d.Press(p, 0)
	if !d.Press(p, 100*time.Millisecond) {
		t.Fatal("expected double-click")
	}
	if d.Press(p, 200*time.Millisecond) {
		t.Error("third press must start a new pair")
	}
	if !d.Press(p, 300*time.Millisecond) {
		t.Error("fourth press should complete the new pair")
	}
}
