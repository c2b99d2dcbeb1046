// Package effect provides the one-shot transitions the stack wraps around screens,
// together with the small render contract they share with the host.
//
// An effect drives a single value (an axis offset or an opacity) from a start to an
// end value over a duration using an ease-out curve. It starts once, ticks forward
// with the host clock and reports completion exactly once.
//
// # Catalog
//
// Effects are selected by name or supplied as a custom Constructor:
//
//	in, out := effect.Resolve(effect.SlideUpInName, nil, effect.SlideLeftInName)
//	// out is SlideDownOut, the visual opposite of SlideUpIn
//
// Custom effects only need to satisfy the Effect interface:
//
//	var Spin effect.Constructor = func(p effect.Props, child effect.Node) effect.Effect {
//	    ...
//	}
package effect

import "context"

// Transform is the accumulated placement of a node for one frame.
// Offsets are in layout units, Opacity is a multiplier in [0, 1].
// Width and Height clamp the drawable area, anchored at ClipX, ClipY, when non-zero.
type Transform struct {
	X       float64
	Y       float64
	Opacity float64
	Width   float64
	Height  float64
	ClipX   float64
	ClipY   float64
}

// Identity returns a Transform with no offset, full opacity and no clamp.
func Identity() Transform {
	return Transform{Opacity: 1}
}

// Translate returns t moved by dx, dy.
func (t Transform) Translate(dx, dy float64) Transform {
	t.X += dx
	t.Y += dy
	return t
}

// Fade returns t with its opacity multiplied by alpha.
func (t Transform) Fade(alpha float64) Transform {
	t.Opacity *= alpha
	return t
}

// Clamp returns t restricted to a width x height area at its current offset.
func (t Transform) Clamp(width, height float64) Transform {
	t.ClipX = t.X
	t.ClipY = t.Y
	t.Width = width
	t.Height = height
	return t
}

// Node is anything the stack can render.
type Node interface {
	Render(ctx context.Context, t Transform)
}

// NodeFunc adapts a function to a Node.
type NodeFunc func(ctx context.Context, t Transform)

// Render calls f(ctx, t).
func (f NodeFunc) Render(ctx context.Context, t Transform) {
	f(ctx, t)
}

// Group renders its nodes in order, each with the same transform.
type Group []Node

// Render draws every non-nil node of g.
func (g Group) Render(ctx context.Context, t Transform) {
	for _, n := range g {
		if n != nil {
			n.Render(ctx, t)
		}
	}
}
