// Package vector rasterizes SVG documents into RGBA images for screen content.
package vector

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterize draws the SVG read from r into a width x height image, scaled to fit.
func Rasterize(r io.Reader, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("vector: invalid size %dx%d", width, height)
	}

	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("vector: parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	return rgba, nil
}

// RasterizeFile is Rasterize for an SVG file on disk.
func RasterizeFile(path string, width, height int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Rasterize(f, width, height)
}
