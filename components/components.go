// Package components defines the small value types shared by the trail and
// mascot systems.
package components

// Position represents a point in screen or page coordinates.
type Position struct {
	X, Y float64
}

// Velocity represents per-tick displacement.
type Velocity struct {
	X, Y float64
}

// Rect is an axis-aligned box. Top/Bottom follow screen convention (Y grows down).
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Top returns the Y coordinate of the upper edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the Y coordinate of the lower edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Contains reports whether p lies inside the rect.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Translate returns the rect shifted by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}
