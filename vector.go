package ico2svg

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strings"
)

// Style selects how the vector emitter writes its runs.
type Style string

const (
	// StyleRect writes one rect element per run.
	StyleRect Style = "rect"
	// StylePath writes one path element per color holding all runs of that color.
	StylePath Style = "path"
)

// Run is a horizontal strip of same colored pixels on a single row.
// It covers the columns [X, X+Len) of row Y.
type Run struct {
	X, Y, Len int
	Color     color.NRGBA
}

// VectorEmitter converts every row of the bitmap into color runs.
type VectorEmitter struct {
	// AlphaThreshold is the binary opacity cutoff: pixels with a lower alpha
	// are transparent, the others are opaque at their RGB value.
	AlphaThreshold uint8
	// Background, when set, fills the transparent pixels instead of skipping them.
	Background *Background
	Style      Style
}

// Emit implements the Emitter interface.
func (e *VectorEmitter) Emit(img *image.NRGBA) ([]byte, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	runs := Runs(img, e.AlphaThreshold, e.Background)

	var buf bytes.Buffer
	buf.WriteString(svgHeader)
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`+"\n", w, h, w, h)

	switch e.Style {
	case StylePath:
		writePaths(&buf, runs)
	default:
		for _, r := range runs {
			fmt.Fprintf(&buf, `  <rect x="%d" y="%d" width="%d" height="1" fill="%s"/>`+"\n",
				r.X, r.Y, r.Len, hexColor(r.Color.R, r.Color.G, r.Color.B))
		}
	}
	buf.WriteString("</svg>\n")

	return buf.Bytes(), nil
}

// writePaths groups the runs by color, in order of first appearance.
func writePaths(buf *bytes.Buffer, runs []Run) {
	var (
		order  []color.NRGBA
		groups = make(map[color.NRGBA][]Run)
	)
	for _, r := range runs {
		if _, ok := groups[r.Color]; !ok {
			order = append(order, r.Color)
		}
		groups[r.Color] = append(groups[r.Color], r)
	}

	for _, c := range order {
		d := make([]string, 0, len(groups[c]))
		for _, r := range groups[c] {
			d = append(d, fmt.Sprintf("M%d,%dH%dV%dH%dZ", r.X, r.Y, r.X+r.Len, r.Y+1, r.X))
		}
		fmt.Fprintf(buf, `  <path fill="%s" stroke="none" d="%s"/>`+"\n",
			hexColor(c.R, c.G, c.B), strings.Join(d, " "))
	}
}

// Runs scans the bitmap left to right, top to bottom and merges consecutive
// pixels of identical effective color into runs. Pixels whose alpha is below
// the threshold are skipped, or take the background color when bg is not nil.
// Runs never span rows.
func Runs(img *image.NRGBA, threshold uint8, bg *Background) []Run {
	var (
		b    = img.Bounds()
		runs []Run
	)

	for y := 0; y < b.Dy(); y++ {
		var (
			cur    Run
			active bool
		)
		for x := 0; x < b.Dx(); x++ {
			c, ok := effectiveColor(img.NRGBAAt(b.Min.X+x, b.Min.Y+y), threshold, bg)
			if active && ok && c == cur.Color {
				cur.Len++
				continue
			}
			if active {
				runs = append(runs, cur)
			}
			active = ok
			cur = Run{X: x, Y: y, Len: 1, Color: c}
		}
		if active {
			runs = append(runs, cur)
		}
	}
	return runs
}

// effectiveColor returns the opaque color a pixel is drawn with, and false
// if the pixel is not drawn at all.
func effectiveColor(px color.NRGBA, threshold uint8, bg *Background) (color.NRGBA, bool) {
	if px.A < threshold {
		if bg == nil {
			return color.NRGBA{}, false
		}
		return bg.NRGBA, true
	}
	return color.NRGBA{R: px.R, G: px.G, B: px.B, A: 0xff}, true
}
