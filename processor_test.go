package ico2svg

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeIcon stores the icon data in a temporary directory and returns its path.
func writeIcon(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "icon.ico")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func multiSizeIcon(t *testing.T) []byte {
	return buildIcon(
		pngFrame(t, solid(16, 16, red)),
		pngFrame(t, solid(32, 32, blue)),
		pngFrame(t, solid(48, 48, white)),
	)
}

func TestProcessor_ConvertPicksTheRequestedFrame(t *testing.T) {
	src := writeIcon(t, multiSizeIcon(t))
	dst := filepath.Join(t.TempDir(), "icon.svg")

	p := DefaultProcessor()
	p.Mode = Vector
	p.Size = "32"
	require.NoError(t, Convert(src, dst, p))

	svg, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(svg), `viewBox="0 0 32 32"`)
	assert.Len(t, rectRe.FindAllString(string(svg), -1), 32)
	assert.Contains(t, string(svg), `fill="#0000ff"`)
}

func TestProcessor_ConvertDefaultsToLargestRasterFrame(t *testing.T) {
	src := writeIcon(t, multiSizeIcon(t))
	dst := filepath.Join(t.TempDir(), "icon.svg")

	require.NoError(t, Convert(src, dst, nil))

	svg, err := os.ReadFile(dst)
	require.NoError(t, err)
	img := embedded(t, svg)
	assert.Equal(t, 48, img.Bounds().Dx())
	assert.Equal(t, white, img.NRGBAAt(10, 10))
}

func TestProcessor_RasterRoundTripMatchesSelectedFrame(t *testing.T) {
	frame := gradient(24, 24)
	data := buildIcon(pngFrame(t, solid(16, 16, red)), pngFrame(t, frame))

	p := DefaultProcessor()
	p.Size = "24x24"
	svg, err := p.Encode(data)
	require.NoError(t, err)
	assert.Equal(t, frame.Pix, embedded(t, svg).Pix)
}

func TestProcessor_DecodesBitmapFrames(t *testing.T) {
	src := solid(8, 8, color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff})
	src.SetNRGBA(0, 0, color.NRGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff})
	data := buildIcon(dibFrame(src))

	dir, err := ReadCatalog(data)
	require.NoError(t, err)
	img, err := DecodeFrame(data, dir.Frames[0])
	require.NoError(t, err)

	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
	assert.Equal(t, src.NRGBAAt(0, 0), img.NRGBAAt(0, 0))
	assert.Equal(t, src.NRGBAAt(5, 6), img.NRGBAAt(5, 6))
}

func TestProcessor_IsIdempotent(t *testing.T) {
	data := buildIcon(pngFrame(t, gradient(16, 16)))

	for _, mode := range []Mode{Raster, Vector} {
		p := DefaultProcessor()
		p.Mode = mode
		p.Background = "#336699"

		first, err := p.Encode(data)
		require.NoError(t, err)
		second, err := p.Encode(data)
		require.NoError(t, err)
		assert.Equal(t, first, second, string(mode))
	}
}

func TestProcessor_ValidationErrors(t *testing.T) {
	data := multiSizeIcon(t)

	testCases := []struct {
		name string
		p    *Processor
	}{
		{name: "negative threshold", p: &Processor{Mode: Vector, AlphaThreshold: -1}},
		{name: "threshold above 255", p: &Processor{Mode: Vector, AlphaThreshold: 256}},
		{name: "unknown mode", p: &Processor{Mode: "trace"}},
		{name: "unknown style", p: &Processor{Mode: Vector, Style: "curve"}},
		{name: "bad size", p: &Processor{Size: "big"}},
		{name: "bad background", p: &Processor{Background: "nope"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.p.Encode(data)
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr), "expected a ValidationError, got %v", err)
		})
	}
}

func TestProcessor_CorruptFrameFailsWithoutOutput(t *testing.T) {
	corrupt := testFrame{w: 16, h: 16, bpp: 32, payload: append(append([]byte(nil), pngSignature...), "garbage"...)}
	src := writeIcon(t, buildIcon(corrupt))
	dst := filepath.Join(t.TempDir(), "out.svg")

	err := Convert(src, dst, DefaultProcessor())
	var derr *DecodeError
	require.True(t, errors.As(err, &derr), "expected a DecodeError, got %v", err)
	assert.Equal(t, 0, derr.Frame)

	_, statErr := os.Stat(dst)
	assert.True(t, os.IsNotExist(statErr), "no output should be written")

	entries, err := os.ReadDir(filepath.Dir(dst))
	require.NoError(t, err)
	assert.Empty(t, entries, "no temporary file should be left behind")
}

func TestProcessor_EmptyIconFailsSelection(t *testing.T) {
	_, err := DefaultProcessor().Encode(buildIcon())
	var serr *SelectionError
	assert.True(t, errors.As(err, &serr))
}

func TestProcessor_ProcessStreams(t *testing.T) {
	p := DefaultProcessor()
	p.Mode = Vector
	p.Size = "16"

	var out bytes.Buffer
	require.NoError(t, p.Process(bytes.NewReader(multiSizeIcon(t)), &out))
	assert.True(t, strings.HasPrefix(out.String(), `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Len(t, rectRe.FindAllString(out.String(), -1), 16)

	out.Reset()
	err := p.Process(bytes.NewReader([]byte("not an icon")), &out)
	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Zero(t, out.Len())
}

func TestProcessor_Sizes(t *testing.T) {
	src := writeIcon(t, buildIcon(
		sizedFrame(t, 48, 48),
		sizedFrame(t, 16, 16),
		sizedFrame(t, 256, 256),
		sizedFrame(t, 16, 16),
	))

	sizes, err := Sizes(src)
	require.NoError(t, err)
	assert.Equal(t, []Size{{16, 16}, {48, 48}, {256, 256}}, sizes)

	_, err = Sizes(filepath.Join(t.TempDir(), "missing.ico"))
	assert.Error(t, err)
}
