package stackanim

import (
	"context"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/stackanim/pkg/stackanim/effect"
	"github.com/BrandonKowalski/stackanim/pkg/stackanim/internal"
	"github.com/BrandonKowalski/stackanim/pkg/stackanim/internal/keyed"
	"go.uber.org/atomic"
)

// Options configures a Stack.
type Options struct {
	InitialScreen  string       // Screen shown first; defaults to the first declared screen
	ContainerStyle any          // Passed through to the host untouched
	Logger         *slog.Logger // Defaults to the shared stackanim logger
	Config         Config       // Defaults for timing and effects; zero fields use built-ins
}

// Size is the measured size of the stack's container in layout units.
type Size struct {
	Width  float64
	Height float64
}

// entry is one screen in the view or the history.
// History entries are never wrapped: node is the screen itself and fx is nil.
type entry[P any] struct {
	name   string
	screen *Screen[P]
	node   effect.Node
	props  P
	fx     effect.Effect
}

func newEntry[P any](screen *Screen[P], props P) entry[P] {
	return entry[P]{name: screen.name, screen: screen, node: screen, props: props}
}

// Stack renders one screen at a time and animates between screens.
//
// A Stack is Idle while its view holds one entry and Transitioning while it holds two:
// index 0 is the outgoing screen and index 1 the incoming one. Only one transition can
// be in flight; requests made while Transitioning are logged and dropped.
//
// A Stack is not safe for concurrent use. The host calls Render, Advance and OnLayout
// from its frame loop, and navigation is expected from the same goroutine.
type Stack[P any] struct {
	opts       Options
	logger     *slog.Logger
	children   []effect.Node
	screens    []*Screen[P]
	view       *keyed.Map[entry[P]]
	history    *keyed.Map[entry[P]]
	size       Size
	generation uint64
	dirty      bool // screens were re-declared mid-transition
}

// NewStack creates a Stack over children. Children that are *Screen[P] become the
// navigable screens; with no screens at all the stack renders its children unchanged.
func NewStack[P any](opts Options, children ...effect.Node) *Stack[P] {
	s := &Stack[P]{
		opts:    opts,
		logger:  opts.Logger,
		view:    keyed.New[entry[P]](),
		history: keyed.New[entry[P]](),
	}
	if s.logger == nil {
		s.logger = internal.GetLogger()
	}

	s.declare(children)
	s.seed()
	return s
}

func (s *Stack[P]) declare(children []effect.Node) {
	s.children = children
	s.screens = s.screens[:0]

	for _, child := range children {
		screen, ok := child.(*Screen[P])
		if !ok || screen == nil {
			continue
		}
		if screen.name == "" {
			s.logger.Warn("Ignoring screen without a name")
			continue
		}
		if s.find(screen.name) != nil {
			s.logger.Warn("Ignoring duplicate screen", "screen", screen.name)
			continue
		}
		s.screens = append(s.screens, screen)
	}
}

// seed installs the initial screen as both the view and the only history entry.
func (s *Stack[P]) seed() {
	if len(s.screens) == 0 {
		s.logger.Warn("Stack must have at least one screen")
		return
	}

	initial := s.screens[0]
	if s.opts.InitialScreen != "" {
		if screen := s.find(s.opts.InitialScreen); screen != nil {
			initial = screen
		} else {
			s.logger.Warn("Initial screen not found, using first screen",
				"screen", s.opts.InitialScreen, "fallback", initial.name)
		}
	}

	s.history = keyed.CreateFrom([]entry[P]{newEntry(initial, initial.initialProps)})
	s.install(s.history.Clone())
}

func (s *Stack[P]) find(name string) *Screen[P] {
	for _, screen := range s.screens {
		if screen.name == name {
			return screen
		}
	}
	return nil
}

// install replaces the view and starts any effects it carries.
func (s *Stack[P]) install(view *keyed.Map[entry[P]]) {
	s.view = view
	s.generation++
	for _, key := range view.Keys() {
		if e, _ := view.Get(key); e.fx != nil {
			e.fx.Start()
		}
	}
}

// wrap returns e rendered through an effect built by c, or by fallback if c yields nothing.
func (s *Stack[P]) wrap(e entry[P], c, fallback effect.Constructor, d time.Duration, onFinish func()) entry[P] {
	props := effect.Props{
		ContainerWidth:  s.size.Width,
		ContainerHeight: s.size.Height,
		Duration:        d,
		OnFinish:        onFinish,
	}

	fx := c(props, e.screen)
	if fx == nil {
		s.logger.Warn("Custom effect returned nil, using default", "screen", e.name)
		fx = fallback(props, e.screen)
	}
	e.fx = fx
	e.node = fx
	return e
}

// AnimateTo transitions to the named screen and records it in the history.
// The request is ignored when a transition is in flight or the screen is unknown.
func (s *Stack[P]) AnimateTo(name string, params ToParams[P]) {
	if s.IsAnimating() {
		s.logger.Warn("Animation already in progress", "screen", name)
		return
	}

	screen := s.find(name)
	if screen == nil {
		s.logger.Warn("Screen not found", "screen", name)
		return
	}

	keys := s.view.Keys()
	if len(keys) == 0 {
		s.logger.Warn("Current screen not found", "screen", name)
		return
	}
	currentKey := keys[0]
	current, _ := s.view.Get(currentKey)

	fallback := s.opts.Config.inFallback()
	inC, outC := effect.Resolve(params.InEffect, params.OutEffect, fallback)
	timing := s.opts.Config.timing(params.Timing)

	props := screen.initialProps
	if params.Props != nil {
		props = *params.Props
	}
	target := newEntry(screen, props)

	next := keyed.New[entry[P]]()
	next.Add(s.wrap(current, outC, effect.LookupOut(effect.DeriveOut(fallback)), timing, nil), currentKey)
	targetKey := next.Add(s.wrap(target, inC, effect.LookupIn(fallback), timing/2, s.collapser(params.OnAnimationFinish)), "")

	s.history.Add(target, targetKey)
	s.install(next)

	s.logger.Debug("Animating to screen",
		"from", current.name, "to", name, "timing", timing, "history_len", s.history.Len())
}

// AnimateBack transitions to the previous history entry and drops the current one.
// The request is ignored when a transition is in flight or there is nothing to go back to.
func (s *Stack[P]) AnimateBack(params Params) {
	if s.IsAnimating() {
		s.logger.Warn("Animation already in progress")
		return
	}

	currentKey, current, _ := s.history.Last()
	previousKey, previous, ok := s.history.Previous()
	if !ok {
		s.logger.Warn("No previous screen to go back to", "history_len", s.history.Len())
		return
	}

	fallback := s.opts.Config.backFallback()
	inC, outC := effect.Resolve(params.InEffect, params.OutEffect, fallback)
	timing := s.opts.Config.timing(params.Timing)

	next := keyed.New[entry[P]]()
	next.Add(s.wrap(current, outC, effect.LookupOut(effect.DeriveOut(fallback)), timing, nil), currentKey)
	next.Add(s.wrap(previous, inC, effect.LookupIn(fallback), timing/2, s.collapser(params.OnAnimationFinish)), previousKey)

	s.history.Delete(currentKey)
	s.install(next)

	s.logger.Debug("Animating back",
		"from", current.name, "to", previous.name, "timing", timing, "history_len", s.history.Len())
}

// collapser returns the completion callback for one transition's incoming effect.
// It runs at most once even if a custom effect reports completion repeatedly.
func (s *Stack[P]) collapser(onFinish func()) func() {
	var fired atomic.Bool
	return func() {
		if !fired.CompareAndSwap(false, true) {
			return
		}
		s.collapse(onFinish)
	}
}

// collapse settles the view on the last history entry, unwrapped.
func (s *Stack[P]) collapse(onFinish func()) {
	if key, e, ok := s.history.Last(); ok {
		previous := s.view

		next := keyed.New[entry[P]]()
		next.Add(newEntry(e.screen, e.props), key)
		s.install(next.Clone())

		for _, k := range previous.Keys() {
			if old, _ := previous.Get(k); old.fx != nil {
				old.fx.Stop()
			}
		}
	}

	if s.dirty {
		s.dirty = false
		s.resync()
	}

	if onFinish != nil {
		onFinish()
	}
}

// SetChildren re-declares the stack's children. While Idle the visible screen is
// refreshed right away; while Transitioning the refresh waits for the next collapse.
func (s *Stack[P]) SetChildren(children ...effect.Node) {
	s.declare(children)

	if s.view.Len() == 0 {
		s.seed()
		return
	}
	if s.IsAnimating() {
		s.dirty = true
		return
	}
	s.resync()
}

// resync replaces the current entry with its freshly declared screen, if it still exists.
func (s *Stack[P]) resync() {
	key, current, ok := s.history.Last()
	if !ok || s.IsAnimating() {
		return
	}

	screen := s.find(current.name)
	if screen == nil {
		return
	}

	fresh := newEntry(screen, screen.initialProps)
	s.history.Set(key, fresh)

	next := keyed.New[entry[P]]()
	next.Set(key, fresh)
	s.install(next)
}

// Advance moves every running effect forward by dt.
// Completion callbacks, including the collapse back to Idle, run inside Advance.
func (s *Stack[P]) Advance(dt time.Duration) {
	view := s.view
	for _, key := range view.Keys() {
		if e, _ := view.Get(key); e.fx != nil {
			e.fx.Tick(dt)
		}
	}
}

// OnLayout records the container size. Sizes reported while Transitioning are ignored
// so a transition keeps the travel distance it started with.
func (s *Stack[P]) OnLayout(width, height float64) {
	if s.IsAnimating() {
		s.logger.Debug("Ignoring layout during transition", "width", width, "height", height)
		return
	}
	s.size = Size{Width: width, Height: height}
}

// Render draws the view. Each entry is rendered with its own props and with the
// stack's Animation available through UseStackAnimation.
func (s *Stack[P]) Render(ctx context.Context, t effect.Transform) {
	if s.view.Len() == 0 {
		for _, child := range s.children {
			if child != nil {
				child.Render(ctx, t)
			}
		}
		return
	}

	if s.IsAnimating() {
		t = t.Clamp(s.size.Width, s.size.Height)
	}

	// Screens may navigate while rendering; finish drawing the view this frame started with.
	view := s.view
	ctx = withAnimation(ctx, Animation[P]{Handle: s, IsAnimating: s.IsAnimating()})
	for _, key := range view.Keys() {
		e, _ := view.Get(key)
		e.node.Render(WithProps(ctx, e.props), t)
	}
}

// Ref returns the stack's imperative handle.
func (s *Stack[P]) Ref() Handle[P] {
	return s
}

// IsAnimating reports whether a transition is in flight.
func (s *Stack[P]) IsAnimating() bool {
	return s.view.Len() > 1
}

// Current returns the name of the screen the stack is showing or settling on.
func (s *Stack[P]) Current() string {
	_, e, _ := s.history.Last()
	return e.name
}

// CurrentProps returns the props of the current history entry.
func (s *Stack[P]) CurrentProps() (P, bool) {
	_, e, ok := s.history.Last()
	return e.props, ok
}

// ViewKeys returns the keys of the rendered entries, outgoing first.
func (s *Stack[P]) ViewKeys() []string {
	return s.view.Keys()
}

// ViewNames returns the screen names of the rendered entries, outgoing first.
func (s *Stack[P]) ViewNames() []string {
	return names(s.view)
}

// HistoryKeys returns the history keys in visit order.
func (s *Stack[P]) HistoryKeys() []string {
	return s.history.Keys()
}

// HistoryNames returns the visited screen names in visit order.
func (s *Stack[P]) HistoryNames() []string {
	return names(s.history)
}

// HistoryLen returns the number of history entries.
func (s *Stack[P]) HistoryLen() int {
	return s.history.Len()
}

// ContainerSize returns the size transitions will use.
func (s *Stack[P]) ContainerSize() Size {
	return s.size
}

// ContainerStyle returns Options.ContainerStyle.
func (s *Stack[P]) ContainerStyle() any {
	return s.opts.ContainerStyle
}

// Generation increases every time the view is replaced.
func (s *Stack[P]) Generation() uint64 {
	return s.generation
}

func names[P any](m *keyed.Map[entry[P]]) []string {
	out := make([]string, 0, m.Len())
	for _, key := range m.Keys() {
		e, _ := m.Get(key)
		out = append(out, e.name)
	}
	return out
}
