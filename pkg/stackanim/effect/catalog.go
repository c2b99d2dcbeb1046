package effect

// Selector picks an effect: a named in effect, a named out effect or a custom Constructor.
type Selector interface {
	constructor() Constructor
}

// InName names a built-in effect for the screen being navigated to.
type InName string

// OutName names a built-in effect for the screen being navigated from.
type OutName string

const (
	SlideLeftInName  InName = "SlideLeftIn"
	SlideRightInName InName = "SlideRightIn"
	SlideUpInName    InName = "SlideUpIn"
	SlideDownInName  InName = "SlideDownIn"
	FadeInName       InName = "FadeIn"
)

const (
	SlideLeftOutName  OutName = "SlideLeftOut"
	SlideRightOutName OutName = "SlideRightOut"
	SlideUpOutName    OutName = "SlideUpOut"
	SlideDownOutName  OutName = "SlideDownOut"
	FadeOutName       OutName = "FadeOut"
)

var inEffects = map[InName]Constructor{
	SlideLeftInName:  SlideLeftIn,
	SlideRightInName: SlideRightIn,
	SlideUpInName:    SlideUpIn,
	SlideDownInName:  SlideDownIn,
	FadeInName:       FadeIn,
}

var outEffects = map[OutName]Constructor{
	SlideLeftOutName:  SlideLeftOut,
	SlideRightOutName: SlideRightOut,
	SlideUpOutName:    SlideUpOut,
	SlideDownOutName:  SlideDownOut,
	FadeOutName:       FadeOut,
}

// opposites pairs each in effect with the out effect that completes the push illusion.
var opposites = map[InName]OutName{
	SlideLeftInName:  SlideRightOutName,
	SlideRightInName: SlideLeftOutName,
	SlideUpInName:    SlideDownOutName,
	SlideDownInName:  SlideUpOutName,
	FadeInName:       FadeOutName,
}

func (n InName) constructor() Constructor  { return LookupIn(n) }
func (n OutName) constructor() Constructor { return LookupOut(n) }

// Valid reports whether n is one of the built-in in effects.
func (n InName) Valid() bool {
	_, ok := inEffects[n]
	return ok
}

// Valid reports whether n is one of the built-in out effects.
func (n OutName) Valid() bool {
	_, ok := outEffects[n]
	return ok
}

// LookupIn returns the built-in in effect for name, falling back to SlideLeftIn.
func LookupIn(name InName) Constructor {
	if c, ok := inEffects[name]; ok {
		return c
	}
	return SlideLeftIn
}

// LookupOut returns the built-in out effect for name, falling back to SlideRightOut.
func LookupOut(name OutName) Constructor {
	if c, ok := outEffects[name]; ok {
		return c
	}
	return SlideRightOut
}

// DeriveOut returns the default out effect for an in effect.
// Unknown or empty names derive SlideRightOut.
func DeriveOut(in InName) OutName {
	if out, ok := opposites[in]; ok {
		return out
	}
	return SlideRightOutName
}

// Resolve picks the in and out constructors for one transition.
//
// A nil in selector uses fallback. An explicit out selector always wins; otherwise the
// out effect is derived from the named in effect, or from fallback when in is custom.
func Resolve(in, out Selector, fallback InName) (Constructor, Constructor) {
	var inC Constructor
	derived := DeriveOut(fallback)

	switch v := in.(type) {
	case nil:
		inC = LookupIn(fallback)
	case InName:
		inC = LookupIn(v)
		derived = DeriveOut(v)
	default:
		inC = v.constructor()
	}
	if inC == nil {
		inC = LookupIn(fallback)
	}

	if out != nil {
		if outC := out.constructor(); outC != nil {
			return inC, outC
		}
	}
	return inC, LookupOut(derived)
}
