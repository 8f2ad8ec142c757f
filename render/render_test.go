package render

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/esimov/ico2svg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_VectorOutputMatchesSource(t *testing.T) {
	red := color.NRGBA{R: 0xff, A: 0xff}
	green := color.NRGBA{G: 0xff, A: 0xff}

	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			src.SetNRGBA(x, y, red)
		}
	}
	src.SetNRGBA(2, 0, green)
	src.SetNRGBA(3, 1, color.NRGBA{})

	for _, style := range []ico2svg.Style{ico2svg.StyleRect, ico2svg.StylePath} {
		t.Run(string(style), func(t *testing.T) {
			svg, err := (&ico2svg.VectorEmitter{AlphaThreshold: 16, Style: style}).Emit(src)
			require.NoError(t, err)

			const scale = 8
			img, err := Rasterize(bytes.NewReader(svg), scale)
			require.NoError(t, err)
			require.Equal(t, image.Rect(0, 0, 4*scale, 2*scale), img.Bounds())

			// Sample the center of every source pixel.
			at := func(x, y int) color.RGBA {
				return img.RGBAAt(x*scale+scale/2, y*scale+scale/2)
			}
			assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, at(0, 0))
			assert.Equal(t, color.RGBA{G: 0xff, A: 0xff}, at(2, 0))
			assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, at(3, 0))
			assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, at(0, 1))
			assert.Equal(t, color.RGBA{}, at(3, 1))
		})
	}
}

func TestRender_InvalidInput(t *testing.T) {
	_, err := Rasterize(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 4 4"></svg>`), 0)
	assert.Error(t, err)

	_, err = Rasterize(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`), 1)
	assert.Error(t, err)
}
