// Package render rasterizes SVG documents produced by the vector mode,
// so the output of a conversion can be compared visually with its source icon.
//
// Only the path based subset of SVG understood by oksvg is drawn:
// embedded image elements (the raster mode) are ignored.
package render

import (
	"fmt"
	"image"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterize draws the SVG document read from r at the given scale factor.
// A scale of 1 renders the document at its view box size.
func Rasterize(r io.Reader, scale float64) (*image.RGBA, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("scale should be positive, got %v", scale)
	}

	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("error decoding SVG file: %w", err)
	}

	w := int(icon.ViewBox.W * scale)
	h := int(icon.ViewBox.H * scale)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid SVG view box %vx%v", icon.ViewBox.W, icon.ViewBox.H)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
