// Package sdlstage hosts a stackanim.Stack in an SDL2 window.
//
// The stage owns the window, the renderer and the frame loop. Each frame it polls
// events, reports size changes to the stack, advances the stack's clock by the real
// frame delta, and renders it.
package sdlstage

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/BrandonKowalski/stackanim/pkg/stackanim/constants"
	"github.com/BrandonKowalski/stackanim/pkg/stackanim/effect"
	"github.com/BrandonKowalski/stackanim/pkg/stackanim/internal"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Host is what the stage drives every frame. *stackanim.Stack satisfies it.
type Host interface {
	Render(ctx context.Context, t effect.Transform)
	Advance(dt time.Duration)
	OnLayout(width, height float64)
}

// Options configures the stage window.
type Options struct {
	Title      string
	Width      int32 // Window width; 0 uses the display width
	Height     int32 // Window height; 0 uses the display height
	Borderless bool  // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable  bool  // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen bool  // Fullscreen mode (SDL_WINDOW_FULLSCREEN)
	Hidden     bool  // Start hidden (omits SDL_WINDOW_SHOWN)
	Theme      Theme
	CacheSize  int               // Max cached textures; 0 uses a default
	OnBack     func()            // Escape or Backspace
	OnKey      func(sdl.Keycode) // Every other key press
	Logger     *slog.Logger      // Defaults to the shared stackanim logger
}

func (o Options) windowFlags() uint32 {
	var flags uint32
	if !o.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if o.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if o.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if o.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	return flags
}

// Stage wraps the SDL window and renderer.
type Stage struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer

	opts            Options
	logger          *slog.Logger
	cache           *textureCache
	fonts           map[int]*ttf.Font
	hasVSync        bool
	lastPresentTime uint64
}

// New initializes SDL and opens the stage window.
func New(opts Options) (*Stage, error) {
	logger := opts.Logger
	if logger == nil {
		logger = internal.GetLogger()
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, newInfrastructureError("init_sdl", err)
	}
	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		logger.Warn("Image formats unavailable", "error", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, newInfrastructureError("init_ttf", err)
	}

	width, height := windowSize(opts, logger)
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	if constants.IsDevMode() {
		opts.Borderless = false
		x, y = 50, 50
	}

	logger.Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(opts.Title, x, y, width, height, opts.windowFlags())
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return nil, newInfrastructureError("create_window", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		ttf.Quit()
		sdl.Quit()
		return nil, newInfrastructureError("create_renderer", err)
	}
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Stage{
		Window:   window,
		Renderer: renderer,
		opts:     opts,
		logger:   logger,
		cache:    newTextureCache(opts.CacheSize),
		fonts:    make(map[int]*ttf.Font),
		hasVSync: vsync,
	}, nil
}

func windowSize(opts Options, logger *slog.Logger) (int32, int32) {
	if constants.IsDevMode() {
		return envSize(constants.WindowWidthEnvVar, constants.DevWindowWidth, logger),
			envSize(constants.WindowHeightEnvVar, constants.DevWindowHeight, logger)
	}

	width, height := opts.Width, opts.Height
	if width > 0 && height > 0 {
		return width, height
	}

	mode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		logger.Error("Failed to get display mode", "error", err)
		return constants.DevWindowWidth, constants.DevWindowHeight
	}
	if width <= 0 {
		width = mode.W
	}
	if height <= 0 {
		height = mode.H
	}
	return width, height
}

func envSize(name string, fallback int32, logger *slog.Logger) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		logger.Warn("Invalid window size; using default", "env", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

// Size returns the current drawable size.
func (s *Stage) Size() (int32, int32) {
	w, h, err := s.Renderer.GetOutputSize()
	if err != nil {
		return s.Window.GetSize()
	}
	return w, h
}

// Run drives host until the window is closed or ctx is cancelled.
func (s *Stage) Run(ctx context.Context, host Host) error {
	w, h := s.Size()
	host.OnLayout(float64(w), float64(h))

	background := s.opts.Theme.BackgroundColor
	if styled, ok := host.(interface{ ContainerStyle() any }); ok {
		if c, ok := styled.ContainerStyle().(sdl.Color); ok {
			background = c
		}
	}

	last := sdl.GetTicks64()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !s.handleEvents(host) {
			return nil
		}

		now := sdl.GetTicks64()
		host.Advance(time.Duration(now-last) * time.Millisecond)
		last = now

		s.Renderer.SetDrawColor(background.R, background.G, background.B, background.A)
		s.Renderer.Clear()
		host.Render(ctx, effect.Identity())
		s.present()
	}
}

func (s *Stage) handleEvents(host Host) bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				host.OnLayout(float64(e.Data1), float64(e.Data2))
			}

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_ESCAPE, sdl.K_BACKSPACE:
				if s.opts.OnBack != nil {
					s.opts.OnBack()
				}
			default:
				if s.opts.OnKey != nil {
					s.opts.OnKey(e.Keysym.Sym)
				}
			}
		}
	}
	return true
}

// present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available.
func (s *Stage) present() {
	s.Renderer.Present()
	if !s.hasVSync {
		interval := uint64(constants.FrameInterval / time.Millisecond)
		now := sdl.GetTicks64()
		if elapsed := now - s.lastPresentTime; elapsed < interval {
			sdl.Delay(uint32(interval - elapsed))
		}
		s.lastPresentTime = sdl.GetTicks64()
	}
}

// Close releases every SDL resource the stage holds.
func (s *Stage) Close() {
	s.cache.destroy()
	for _, font := range s.fonts {
		font.Close()
	}
	s.Renderer.Destroy()
	s.Window.Destroy()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
}

// Theme returns the theme the stage was opened with.
func (s *Stage) Theme() Theme {
	return s.opts.Theme
}
