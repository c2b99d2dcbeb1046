package stackanim

import (
	"time"

	"github.com/BrandonKowalski/stackanim/pkg/stackanim/effect"
)

// Params configures a single transition.
type Params struct {
	Timing            time.Duration   // Outgoing effect duration; the incoming effect gets half. Zero uses the default.
	InEffect          effect.Selector // Effect for the screen being navigated to. Nil uses the default direction.
	OutEffect         effect.Selector // Effect for the screen being navigated from. Nil derives it from InEffect.
	OnAnimationFinish func()          // Called after the stack settles on the new screen
}

// ToParams configures AnimateTo. Props, when set, replaces the target screen's initial props
// for this visit.
type ToParams[P any] struct {
	Params
	Props *P
}

// Handle is the imperative navigation surface of a Stack.
type Handle[P any] interface {
	AnimateTo(name string, params ToParams[P])
	AnimateBack(params Params)
}
