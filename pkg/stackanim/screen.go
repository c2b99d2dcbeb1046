package stackanim

import (
	"context"

	"github.com/BrandonKowalski/stackanim/pkg/stackanim/effect"
)

// Screen declares one named, navigable unit of a Stack.
// Its content is either static or built from the props of the current visit.
type Screen[P any] struct {
	name         string
	content      effect.Node
	build        func(props P) effect.Node
	initialProps P
}

// NewScreen declares a screen with static content.
func NewScreen[P any](name string, content effect.Node, initialProps P) *Screen[P] {
	return &Screen[P]{name: name, content: content, initialProps: initialProps}
}

// NewScreenFunc declares a screen whose content depends on its props.
func NewScreenFunc[P any](name string, build func(props P) effect.Node, initialProps P) *Screen[P] {
	return &Screen[P]{name: name, build: build, initialProps: initialProps}
}

// Name returns the screen's unique name within its stack.
func (s *Screen[P]) Name() string {
	return s.name
}

// InitialProps returns the props used when a visit does not provide any.
func (s *Screen[P]) InitialProps() P {
	return s.initialProps
}

// Render resolves props from ctx and draws the screen's content.
// Outside of a Stack the props are the zero value.
func (s *Screen[P]) Render(ctx context.Context, t effect.Transform) {
	node := s.content
	if s.build != nil {
		props, _ := UseProps[P](ctx)
		node = s.build(props)
	}
	if node != nil {
		node.Render(ctx, t)
	}
}

// StackAnimation creates stacks and screens that share one props type.
type StackAnimation[P any] struct{}

// CreateStackAnimation returns a factory for stacks whose screens take props of type P.
func CreateStackAnimation[P any]() StackAnimation[P] {
	return StackAnimation[P]{}
}

// Stack creates a stack over the given children. See NewStack.
func (StackAnimation[P]) Stack(opts Options, children ...effect.Node) *Stack[P] {
	return NewStack[P](opts, children...)
}

// Screen declares a screen with static content.
func (StackAnimation[P]) Screen(name string, content effect.Node, initialProps P) *Screen[P] {
	return NewScreen(name, content, initialProps)
}

// ScreenFunc declares a screen whose content depends on its props.
func (StackAnimation[P]) ScreenFunc(name string, build func(props P) effect.Node, initialProps P) *Screen[P] {
	return NewScreenFunc(name, build, initialProps)
}
