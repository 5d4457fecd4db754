package systems

import (
	"sort"
	"time"
)

type deferred struct {
	due time.Duration
	seq uint64
	fn  func()
}

// Scheduler runs fire-and-forget callbacks from the frame loop. There is no
// cancellation; callbacks still queued when the program exits never run.
type Scheduler struct {
	now     time.Duration
	queue   []deferred
	nextSeq uint64
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler clock as of the last Advance.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After queues fn to run once the clock reaches Now()+d.
func (s *Scheduler) After(d time.Duration, fn func()) {
	s.queue = append(s.queue, deferred{due: s.now + d, seq: s.nextSeq, fn: fn})
	s.nextSeq++
	sort.SliceStable(s.queue, func(i, j int) bool {
		if s.queue[i].due != s.queue[j].due {
			return s.queue[i].due < s.queue[j].due
		}
		return s.queue[i].seq < s.queue[j].seq
	})
}

// Advance moves the clock to now and runs every due callback in order.
// Callbacks may schedule further work; anything already due runs in the same call.
func (s *Scheduler) Advance(now time.Duration) int {
	if now > s.now {
		s.now = now
	}
	ran := 0
	for len(s.queue) > 0 && s.queue[0].due <= s.now {
		d := s.queue[0]
		s.queue = s.queue[1:]
		d.fn()
		ran++
	}
	return ran
}

// Len returns the number of queued callbacks.
func (s *Scheduler) Len() int {
	return len(s.queue)
}
