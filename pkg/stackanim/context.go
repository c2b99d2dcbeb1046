package stackanim

import (
	"context"
	"fmt"
)

// Animation is what a Stack hands to everything it renders.
type Animation[P any] struct {
	Handle[P]
	IsAnimating bool // True while a transition is in flight; useful to ignore input
}

type animationKey struct{}

type propsKey struct{}

type propsValue struct {
	props any
}

func withAnimation[P any](ctx context.Context, a Animation[P]) context.Context {
	return context.WithValue(ctx, animationKey{}, a)
}

// UseStackAnimation returns the nearest enclosing Stack's handle and animating flag.
// It returns ErrNoStack when ctx was not produced by a Stack render.
func UseStackAnimation[P any](ctx context.Context) (Animation[P], error) {
	v := ctx.Value(animationKey{})
	if v == nil {
		return Animation[P]{}, ErrNoStack
	}
	a, ok := v.(Animation[P])
	if !ok {
		return Animation[P]{}, fmt.Errorf("%w: got %T", ErrStackType, v)
	}
	return a, nil
}

// MustUseStackAnimation is like UseStackAnimation but panics on error.
func MustUseStackAnimation[P any](ctx context.Context) Animation[P] {
	a, err := UseStackAnimation[P](ctx)
	if err != nil {
		panic(err)
	}
	return a
}

// WithProps returns a context carrying props for the screen rendered beneath it.
func WithProps(ctx context.Context, props any) context.Context {
	return context.WithValue(ctx, propsKey{}, propsValue{props: props})
}

// UseProps returns the props of the screen being rendered.
// It reports false, with the zero value, when no props were provided or they are not a P.
func UseProps[P any](ctx context.Context) (P, bool) {
	v, ok := ctx.Value(propsKey{}).(propsValue)
	if !ok {
		var zero P
		return zero, false
	}
	p, ok := v.props.(P)
	return p, ok
}
