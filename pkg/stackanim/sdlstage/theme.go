package sdlstage

import "github.com/veandco/go-sdl2/sdl"

// Theme defines the colors and font the stage draws with.
type Theme struct {
	BackgroundColor sdl.Color // Cleared behind the stack every frame
	TextColor       sdl.Color // Default color for Text nodes
	AccentColor     sdl.Color // Highlight color available to screens
	FontPath        string    // TTF font used by Text nodes
}

// DefaultTheme returns a dark palette using the font at fontPath.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		BackgroundColor: HexToColor(0x000000),
		TextColor:       HexToColor(0xFFFFFF),
		AccentColor:     HexToColor(0x008080),
		FontPath:        fontPath,
	}
}

// HexToColor converts 0xRRGGBB to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}
