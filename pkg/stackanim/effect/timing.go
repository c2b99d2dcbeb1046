package effect

import (
	"math"
	"time"

	"go.uber.org/atomic"
)

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(t float64) float64

// EaseOutExpo decelerates exponentially towards the end value.
func EaseOutExpo(t float64) float64 {
	if t >= 1 {
		return 1
	}
	if t <= 0 {
		return 0
	}
	return 1 - math.Pow(2, -10*t)
}

// Linear is the identity curve.
func Linear(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// Timing drives a value from From to To over Duration.
// It does nothing until Start is called, and Start only has an effect once.
type Timing struct {
	From     float64
	To       float64
	Duration time.Duration
	Curve    Curve

	value    float64
	elapsed  time.Duration
	started  atomic.Bool
	finished atomic.Bool
	stopped  atomic.Bool
	onDone   func()
}

// NewTiming creates a Timing using EaseOutExpo.
func NewTiming(from, to float64, duration time.Duration) *Timing {
	return &Timing{
		From:     from,
		To:       to,
		Duration: duration,
		Curve:    EaseOutExpo,
		value:    from,
	}
}

// Start begins the animation. onDone runs once when the value reaches To,
// unless the timing is stopped first. Returns false if it was already started.
func (t *Timing) Start(onDone func()) bool {
	if !t.started.CompareAndSwap(false, true) {
		return false
	}
	t.onDone = onDone
	return true
}

// Tick advances the animation by dt. On completion the value is pinned to To.
func (t *Timing) Tick(dt time.Duration) {
	if !t.started.Load() || t.stopped.Load() || t.finished.Load() {
		return
	}

	t.elapsed += dt
	if t.elapsed >= t.Duration {
		t.value = t.To
		t.finished.Store(true)
		if t.onDone != nil {
			t.onDone()
		}
		return
	}

	curve := t.Curve
	if curve == nil {
		curve = EaseOutExpo
	}
	progress := curve(float64(t.elapsed) / float64(t.Duration))
	t.value = t.From + (t.To-t.From)*progress
}

// Stop halts the animation where it is. The completion callback will not run.
func (t *Timing) Stop() {
	t.stopped.Store(true)
}

// Value returns the current driven value.
func (t *Timing) Value() float64 {
	return t.value
}

// Elapsed returns how much time has been ticked since Start.
func (t *Timing) Elapsed() time.Duration {
	return t.elapsed
}

// Started reports whether Start has been called.
func (t *Timing) Started() bool {
	return t.started.Load()
}

// Finished reports whether the animation completed naturally.
func (t *Timing) Finished() bool {
	return t.finished.Load()
}
