package sdlstage

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"unsafe"

	"github.com/BrandonKowalski/stackanim/pkg/stackanim/effect"
	"github.com/BrandonKowalski/stackanim/pkg/stackanim/vector"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// alpha converts an opacity multiplier to an SDL alpha value.
func alpha(base uint8, opacity float64) uint8 {
	return uint8(math.Round(float64(base) * math.Max(0, math.Min(1, opacity))))
}

// clip applies the transform's clamp, if any, and returns a func that clears it.
func (s *Stage) clip(t effect.Transform) func() {
	if t.Width <= 0 || t.Height <= 0 {
		return func() {}
	}
	s.Renderer.SetClipRect(&sdl.Rect{
		X: int32(t.ClipX),
		Y: int32(t.ClipY),
		W: int32(t.Width),
		H: int32(t.Height),
	})
	return func() { s.Renderer.SetClipRect(nil) }
}

// FillNode paints a solid rectangle. A zero W or H fills the clamp area or the whole stage.
type FillNode struct {
	stage *Stage
	Color sdl.Color
	X, Y  int32
	W, H  int32
}

// Fill returns a node that paints color over the full area.
func (s *Stage) Fill(color sdl.Color) *FillNode {
	return &FillNode{stage: s, Color: color}
}

// Render draws the rectangle at the transform's offset.
func (n *FillNode) Render(_ context.Context, t effect.Transform) {
	w, h := n.W, n.H
	if w == 0 || h == 0 {
		if t.Width > 0 && t.Height > 0 {
			w, h = int32(t.Width), int32(t.Height)
		} else {
			w, h = n.stage.Size()
		}
	}

	defer n.stage.clip(t)()
	r := n.stage.Renderer
	r.SetDrawColor(n.Color.R, n.Color.G, n.Color.B, alpha(n.Color.A, t.Opacity))
	r.FillRect(&sdl.Rect{X: n.X + int32(t.X), Y: n.Y + int32(t.Y), W: w, H: h})
}

// TextureNode draws a texture at an offset.
type TextureNode struct {
	stage   *Stage
	load    func() (*sdl.Texture, error)
	name    string
	X, Y    int32
	failed  bool
	texture *sdl.Texture
}

func (s *Stage) textureNode(name string, load func() (*sdl.Texture, error)) *TextureNode {
	return &TextureNode{stage: s, name: name, load: load}
}

// Texture returns a node that draws an already loaded texture. The caller keeps ownership.
func (s *Stage) Texture(texture *sdl.Texture) *TextureNode {
	return &TextureNode{stage: s, texture: texture}
}

// At sets the node's offset and returns it.
func (n *TextureNode) At(x, y int32) *TextureNode {
	n.X, n.Y = x, y
	return n
}

func (n *TextureNode) resolve() *sdl.Texture {
	if n.texture != nil || n.load == nil {
		return n.texture
	}
	if cached := n.stage.cache.get(n.name); cached != nil {
		return cached
	}
	if n.failed {
		return nil
	}

	texture, err := n.load()
	if err != nil {
		n.failed = true
		n.stage.logger.Error("Failed to load texture", "name", n.name, "error", err)
		return nil
	}
	n.stage.cache.set(n.name, texture)
	return texture
}

// Render copies the texture with the transform's offset and opacity.
func (n *TextureNode) Render(_ context.Context, t effect.Transform) {
	texture := n.resolve()
	if texture == nil {
		return
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}

	defer n.stage.clip(t)()
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	texture.SetAlphaMod(alpha(255, t.Opacity))
	n.stage.Renderer.Copy(texture, nil, &sdl.Rect{X: n.X + int32(t.X), Y: n.Y + int32(t.Y), W: w, H: h})
}

// Image returns a node that draws the image file at path, loaded on first render.
func (s *Stage) Image(path string) *TextureNode {
	return s.textureNode("image:"+path, func() (*sdl.Texture, error) {
		texture, err := img.LoadTexture(s.Renderer, path)
		if err != nil {
			return nil, newInfrastructureError("load_image", err)
		}
		return texture, nil
	})
}

// Text returns a node that draws text with the theme font at size points.
func (s *Stage) Text(text string, size int, color sdl.Color) *TextureNode {
	key := fmt.Sprintf("text:%d:%02x%02x%02x%02x:%s", size, color.R, color.G, color.B, color.A, text)
	return s.textureNode(key, func() (*sdl.Texture, error) {
		font, err := s.font(size)
		if err != nil {
			return nil, err
		}
		surface, err := font.RenderUTF8Blended(text, color)
		if err != nil {
			return nil, newInfrastructureError("render_text", err)
		}
		defer surface.Free()

		texture, err := s.Renderer.CreateTextureFromSurface(surface)
		if err != nil {
			return nil, newInfrastructureError("create_texture", err)
		}
		return texture, nil
	})
}

// SVG returns a node that draws the SVG file at path rasterized to width x height.
func (s *Stage) SVG(path string, width, height int) *TextureNode {
	key := fmt.Sprintf("svg:%dx%d:%s", width, height, path)
	return s.textureNode(key, func() (*sdl.Texture, error) {
		rgba, err := vector.RasterizeFile(path, width, height)
		if err != nil {
			return nil, newInfrastructureError("load_svg", err)
		}

		surface, err := sdl.CreateRGBSurfaceWithFormatFrom(unsafe.Pointer(&rgba.Pix[0]),
			int32(width), int32(height), 32, int32(rgba.Stride), uint32(sdl.PIXELFORMAT_ABGR8888))
		if err != nil {
			return nil, newInfrastructureError("create_surface", err)
		}
		defer surface.Free()

		texture, err := s.Renderer.CreateTextureFromSurface(surface)
		runtime.KeepAlive(rgba)
		if err != nil {
			return nil, newInfrastructureError("create_texture", err)
		}
		return texture, nil
	})
}

func (s *Stage) font(size int) (*ttf.Font, error) {
	if font, ok := s.fonts[size]; ok {
		return font, nil
	}
	if s.opts.Theme.FontPath == "" {
		return nil, newInfrastructureError("load_font", fmt.Errorf("theme has no font path"))
	}
	font, err := ttf.OpenFont(s.opts.Theme.FontPath, size)
	if err != nil {
		return nil, newInfrastructureError("load_font", err)
	}
	s.fonts[size] = font
	return font, nil
}
