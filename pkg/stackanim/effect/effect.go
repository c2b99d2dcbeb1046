package effect

import (
	"context"
	"time"
)

// Props configures an effect instance.
type Props struct {
	ContainerWidth  float64       // Travel distance for horizontal slides
	ContainerHeight float64       // Travel distance for vertical slides
	Duration        time.Duration // Time from start to rest
	OnFinish        func()        // Called once on natural completion, may be nil
}

// Effect is a node that transforms its child over time.
//
// Start must be idempotent: re-rendering or re-mounting an effect never restarts it.
// Tick advances the effect's clock. Stop interrupts it without calling OnFinish.
type Effect interface {
	Node
	Start()
	Tick(dt time.Duration)
	Stop()
	Done() bool
}

// Constructor builds an effect around child content.
type Constructor func(p Props, child Node) Effect

func (c Constructor) constructor() Constructor { return c }

type applyFunc func(value float64, t Transform) Transform

func translateX(v float64, t Transform) Transform { return t.Translate(v, 0) }
func translateY(v float64, t Transform) Transform { return t.Translate(0, v) }
func opacity(v float64, t Transform) Transform    { return t.Fade(v) }

// primitive is the shared shape of every built-in effect: one Timing applied to one axis.
type primitive struct {
	child    Node
	timing   *Timing
	apply    applyFunc
	onFinish func()
}

func newPrimitive(p Props, child Node, from, to float64, apply applyFunc) *primitive {
	return &primitive{
		child:    child,
		timing:   NewTiming(from, to, p.Duration),
		apply:    apply,
		onFinish: p.OnFinish,
	}
}

func (e *primitive) Start() {
	e.timing.Start(func() {
		if e.onFinish != nil {
			e.onFinish()
		}
	})
}

func (e *primitive) Tick(dt time.Duration) {
	e.timing.Tick(dt)
}

func (e *primitive) Stop() {
	e.timing.Stop()
}

func (e *primitive) Done() bool {
	return e.timing.Finished()
}

// Value returns the currently driven offset or opacity.
func (e *primitive) Value() float64 {
	return e.timing.Value()
}

// Render starts the effect on first use and draws the child at the current value.
func (e *primitive) Render(ctx context.Context, t Transform) {
	e.Start()
	if e.child == nil {
		return
	}
	e.child.Render(ctx, e.apply(e.timing.Value(), t))
}

// SlideLeftIn enters from the right edge, moving left into place.
func SlideLeftIn(p Props, child Node) Effect {
	return newPrimitive(p, child, p.ContainerWidth, 0, translateX)
}

// SlideLeftOut leaves towards the right edge.
func SlideLeftOut(p Props, child Node) Effect {
	return newPrimitive(p, child, 0, p.ContainerWidth, translateX)
}

// SlideRightIn enters from the left edge, moving right into place.
func SlideRightIn(p Props, child Node) Effect {
	return newPrimitive(p, child, -p.ContainerWidth, 0, translateX)
}

// SlideRightOut leaves towards the left edge.
func SlideRightOut(p Props, child Node) Effect {
	return newPrimitive(p, child, 0, -p.ContainerWidth, translateX)
}

// SlideUpIn enters from the bottom edge.
func SlideUpIn(p Props, child Node) Effect {
	return newPrimitive(p, child, p.ContainerHeight, 0, translateY)
}

// SlideUpOut leaves towards the bottom edge.
func SlideUpOut(p Props, child Node) Effect {
	return newPrimitive(p, child, 0, p.ContainerHeight, translateY)
}

// SlideDownIn enters from the top edge.
func SlideDownIn(p Props, child Node) Effect {
	return newPrimitive(p, child, -p.ContainerHeight, 0, translateY)
}

// SlideDownOut leaves towards the top edge.
func SlideDownOut(p Props, child Node) Effect {
	return newPrimitive(p, child, 0, -p.ContainerHeight, translateY)
}

// FadeIn raises opacity from 0 to 1.
func FadeIn(p Props, child Node) Effect {
	return newPrimitive(p, child, 0, 1, opacity)
}

// FadeOut lowers opacity from 1 to 0.
func FadeOut(p Props, child Node) Effect {
	return newPrimitive(p, child, 1, 0, opacity)
}
