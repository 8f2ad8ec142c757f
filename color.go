package ico2svg

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Transparent is the background value which leaves the alpha channel untouched.
const Transparent = "transparent"

// Background is a resolved background option. A nil *Background means transparent.
type Background struct {
	color.NRGBA
}

// ParseBackground resolves a CSS color name (e.g. "white") or a hex triplet
// ("#fff", "#ffffff") into an opaque background color.
// An empty string or "transparent" returns nil.
func ParseBackground(s string) (*Background, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == Transparent {
		return nil, nil
	}

	if c, ok := colornames.Map[s]; ok {
		return &Background{color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}}, nil
	}

	hex := s
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil || (len(hex) != 4 && len(hex) != 7) {
		return nil, &ValidationError{Option: "background", Msg: fmt.Sprintf("%q is neither a color name nor a hex color", s)}
	}
	r, g, b := c.RGB255()
	return &Background{color.NRGBA{R: r, G: g, B: b, A: 0xff}}, nil
}

// Hex returns the color as a lower case #rrggbb string.
func (b *Background) Hex() string {
	return hexColor(b.R, b.G, b.B)
}

func hexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
