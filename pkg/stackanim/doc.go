// Package stackanim provides a screen stack that animates between named screens.
//
// A Stack holds a set of declared screens, shows one of them at a time and slides or
// fades between them on request. It keeps a navigation history so the previous screen
// can be restored, and it hands an imperative handle to everything it renders.
//
// # Basic Usage
//
//	type Props struct {
//	    Game string
//	}
//
//	anim := stackanim.CreateStackAnimation[Props]()
//
//	stack := anim.Stack(stackanim.Options{InitialScreen: "list"},
//	    anim.Screen("list", listView, Props{}),
//	    anim.ScreenFunc("detail", func(p Props) effect.Node {
//	        return detailView(p.Game)
//	    }, Props{}),
//	)
//
//	// Navigate forward, overriding the screen's initial props for this visit
//	stack.AnimateTo("detail", stackanim.ToParams[Props]{
//	    Params: stackanim.Params{InEffect: effect.SlideUpInName},
//	    Props:  &Props{Game: "Portal"},
//	})
//
//	// Navigate back to the previous history entry
//	stack.AnimateBack(stackanim.Params{})
//
// # Host Loop
//
// The stack does not own a clock or a window. The host reports the container size,
// advances time and renders every frame:
//
//	stack.OnLayout(width, height)
//	for running {
//	    stack.Advance(frameDelta)
//	    stack.Render(ctx, effect.Identity())
//	}
//
// See the sdlstage package for an SDL2 host.
//
// # Transitions
//
// A transition wraps the current screen in an out effect and the target screen in an
// in effect. The out effect runs for Params.Timing (800ms by default) and the in effect
// for half of that. When the in effect completes the stack collapses back to a single
// screen and calls Params.OnAnimationFinish.
//
// Only one transition runs at a time. AnimateTo and AnimateBack calls made while a
// transition is in flight, for unknown screens, or with no history to go back to are
// logged as warnings and ignored.
//
// # Screens and Context
//
// Everything rendered by a Stack receives a context carrying the stack's Animation and
// the props of its screen:
//
//	a, err := stackanim.UseStackAnimation[Props](ctx) // ErrNoStack outside a Stack
//	props, ok := stackanim.UseProps[Props](ctx)       // zero value outside a Stack
package stackanim
