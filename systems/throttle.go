package systems

// ScrollThrottle collapses any number of scroll events into at most one
// recompute per frame.
type ScrollThrottle struct {
	pending   bool
	requested int
	flushed   int
}

// Request marks a recompute as needed. It returns true only for the request
// that actually scheduled one.
func (t *ScrollThrottle) Request() bool {
	t.requested++
	if t.pending {
		return false
	}
	t.pending = true
	return true
}

// Flush runs fn if a recompute is pending and clears the flag.
func (t *ScrollThrottle) Flush(fn func()) bool {
	if !t.pending {
		return false
	}
	t.pending = false
	t.flushed++
	fn()
	return true
}

// Pending reports whether a recompute is scheduled.
func (t *ScrollThrottle) Pending() bool {
	return t.pending
}

// Counts returns total requests and total recomputes.
func (t *ScrollThrottle) Counts() (requested, flushed int) {
	return t.requested, t.flushed
}
