package systems

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/pthm-cable/folio/config"
)

// MotionState is the scroll-driven animation state of the mascot.
type MotionState uint8

const (
	MotionIdle MotionState = iota
	MotionRunning
)

func (m MotionState) String() string {
	if m == MotionRunning {
		return "running"
	}
	return "idle"
}

// JutsuState guards the clone effect. Only Ready accepts a trigger.
type JutsuState uint8

const (
	JutsuReady JutsuState = iota
	JutsuCloning
)

func (j JutsuState) String() string {
	if j == JutsuCloning {
		return "cloning"
	}
	return "ready"
}

// Facing is the horizontal orientation of the character graphic.
type Facing int8

const (
	FacingRight Facing = 1
	FacingLeft  Facing = -1
)

// ScrollViewport is the page state the mascot maps onto the screen.
type ScrollViewport interface {
	Offset() float64
	MaxOffset() float64
	ViewportWidth() float64
}

// MascotParams holds the controller constants.
type MascotParams struct {
	EdgeMargin    float64
	WidthInset    float64
	RunThreshold  float64
	PulseDuration time.Duration
	CloneDuration time.Duration
	CloneOffset   float64
	CloneMessage  string
	FPS           int
}

// MascotParamsFromConfig returns controller params from the loaded config.
func MascotParamsFromConfig(cfg *config.Config) MascotParams {
	return MascotParams{
		EdgeMargin:    cfg.Mascot.EdgeMargin,
		WidthInset:    cfg.Mascot.WidthInset,
		RunThreshold:  cfg.Mascot.RunThreshold,
		PulseDuration: cfg.Derived.PulseDuration,
		CloneDuration: cfg.Derived.CloneDuration,
		CloneOffset:   cfg.Mascot.CloneOffset,
		CloneMessage:  cfg.Mascot.CloneMessage,
		FPS:           cfg.Screen.TargetFPS,
	}
}

// MascotX maps scroll progress onto the mascot's left edge. A page that cannot
// scroll (maxOffset <= 0) counts as fully at the top.
func MascotX(offset, maxOffset, viewportW, margin, inset float64) float64 {
	avail := viewportW - inset
	frac := 0.0
	if maxOffset > 0 {
		frac = offset / maxOffset
	}
	return math.Min(math.Max(margin, frac*avail), avail)
}

// MascotView is a read-only snapshot for rendering.
type MascotView struct {
	X            float64
	Motion       MotionState
	Facing       Facing
	Jutsu        JutsuState
	Section      string
	Message      string
	Enthusiastic bool
	CloneOpacity float64
	CloneOffset  float64
}

// MascotStats counts controller transitions.
type MascotStats struct {
	RunStarts    int
	Messages     int
	Clones       int
	ClonesDenied int
}

// Mascot is the scroll-following character controller. Motion (idle/running)
// and jutsu (ready/cloning) are independent state machines.
type Mascot struct {
	params   MascotParams
	sections *SectionDetector
	messages map[string][]string
	sched    *Scheduler
	rng      *rand.Rand

	x            float64
	lastOffset   float64
	motion       MotionState
	facing       Facing
	jutsu        JutsuState
	section      string
	message      string
	enthusiastic bool

	cloneOpacity Tween
	cloneOffset  Tween

	stats MascotStats
}

// NewMascot creates the controller. Every section the detector tracks must
// have a message set, and so must config.DefaultSection.
func NewMascot(params MascotParams, sections *SectionDetector, messages map[string][]string, sched *Scheduler, rng *rand.Rand) (*Mascot, error) {
	if sections == nil {
		return nil, fmt.Errorf("mascot: nil section detector")
	}
	if len(messages[config.DefaultSection]) == 0 {
		return nil, fmt.Errorf("mascot: no %s messages", config.DefaultSection)
	}
	for _, id := range sections.order {
		if len(messages[id]) == 0 {
			return nil, fmt.Errorf("mascot: no messages for section %q", id)
		}
	}
	fps := params.FPS
	if fps <= 0 {
		fps = 60
	}
	return &Mascot{
		params:       params,
		sections:     sections,
		messages:     messages,
		sched:        sched,
		rng:          rng,
		facing:       FacingRight,
		section:      config.DefaultSection,
		message:      messages[config.DefaultSection][0],
		cloneOpacity: NewTween(fps, 10, 1, 0),
		cloneOffset:  NewTween(fps, 10, 1, 0),
	}, nil
}

// Reset aligns the controller with the current scroll position without
// treating it as movement.
func (m *Mascot) Reset(v ScrollViewport) {
	m.lastOffset = v.Offset()
	m.OnScroll(v)
}

// OnScroll recomputes position and motion state for the current scroll offset.
func (m *Mascot) OnScroll(v ScrollViewport) {
	offset := v.Offset()
	m.x = MascotX(offset, v.MaxOffset(), v.ViewportWidth(), m.params.EdgeMargin, m.params.WidthInset)

	delta := offset - m.lastOffset
	if math.Abs(delta) > m.params.RunThreshold {
		if m.motion != MotionRunning {
			m.motion = MotionRunning
			m.stats.RunStarts++
		}
		if delta > 0 {
			m.facing = FacingRight
		} else {
			m.facing = FacingLeft
		}

		m.section = m.sections.Current()
		m.message = m.randomMessage(m.section)
		m.stats.Messages++

		m.enthusiastic = true
		m.sched.After(m.params.PulseDuration, func() {
			m.enthusiastic = false
		})
	} else {
		m.motion = MotionIdle
	}

	m.lastOffset = offset
}

// TriggerClone starts the shadow clone effect. It returns false and does
// nothing while an effect is already running.
func (m *Mascot) TriggerClone() bool {
	if m.jutsu == JutsuCloning {
		m.stats.ClonesDenied++
		return false
	}
	m.jutsu = JutsuCloning
	m.stats.Clones++

	m.message = m.params.CloneMessage
	m.cloneOpacity.SetTarget(1)
	m.cloneOffset.SetTarget(m.params.CloneOffset)
	slog.Debug("clone started", "x", m.x)

	m.sched.After(m.params.CloneDuration, func() {
		m.cloneOpacity.SetTarget(0)
		m.cloneOffset.SetTarget(0)
		m.section = m.sections.Current()
		m.message = m.randomMessage(m.section)
		m.jutsu = JutsuReady
		slog.Debug("clone finished", "section", m.section)
	})
	return true
}

// Animate steps the clone visual toward its targets by one frame.
func (m *Mascot) Animate() {
	m.cloneOpacity.Step()
	m.cloneOffset.Step()
}

func (m *Mascot) randomMessage(section string) string {
	set := m.messages[section]
	if len(set) == 0 {
		set = m.messages[config.DefaultSection]
	}
	return set[m.rng.Intn(len(set))]
}

// View returns the current render state.
func (m *Mascot) View() MascotView {
	return MascotView{
		X:            m.x,
		Motion:       m.motion,
		Facing:       m.facing,
		Jutsu:        m.jutsu,
		Section:      m.section,
		Message:      m.message,
		Enthusiastic: m.enthusiastic,
		CloneOpacity: m.cloneOpacity.Value(),
		CloneOffset:  m.cloneOffset.Value(),
	}
}

// Stats returns transition counters.
func (m *Mascot) Stats() MascotStats {
	return m.stats
}
