package ico2svg

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// testFrame is a frame to be packed by buildIcon.
type testFrame struct {
	w, h    int
	bpp     int
	payload []byte
}

// buildIcon assembles an icon container holding the given frames in order.
func buildIcon(frames ...testFrame) []byte {
	buf := new(bytes.Buffer)
	le := binary.LittleEndian

	binary.Write(buf, le, uint16(0))
	binary.Write(buf, le, uint16(1))
	binary.Write(buf, le, uint16(len(frames)))

	offset := iconDirSize + iconEntrySize*len(frames)
	for _, f := range frames {
		buf.WriteByte(dimensionByte(f.w))
		buf.WriteByte(dimensionByte(f.h))
		buf.WriteByte(0)
		buf.WriteByte(0)
		binary.Write(buf, le, uint16(1))
		binary.Write(buf, le, uint16(f.bpp))
		binary.Write(buf, le, uint32(len(f.payload)))
		binary.Write(buf, le, uint32(offset))
		offset += len(f.payload)
	}
	for _, f := range frames {
		buf.Write(f.payload)
	}
	return buf.Bytes()
}

// pngFrame returns a 32 bit frame holding img as a PNG stream.
func pngFrame(t *testing.T, img image.Image) testFrame {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("could not encode the test frame: %v", err)
	}
	b := img.Bounds()
	return testFrame{w: b.Dx(), h: b.Dy(), bpp: 32, payload: buf.Bytes()}
}

// sizedFrame returns a solid frame of the given size.
func sizedFrame(t *testing.T, w, h int) testFrame {
	return pngFrame(t, solid(w, h, color.NRGBA{R: 0x20, G: 0x40, B: 0x80, A: 0xff}))
}

// dibFrame encodes img as a 32 bit BITMAPINFOHEADER payload with an all-zero AND mask.
func dibFrame(img *image.NRGBA) testFrame {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	buf := new(bytes.Buffer)
	le := binary.LittleEndian

	binary.Write(buf, le, uint32(40)) // header size
	binary.Write(buf, le, int32(w))   // width
	binary.Write(buf, le, int32(2*h)) // XOR + AND height
	binary.Write(buf, le, uint16(1))  // planes
	binary.Write(buf, le, uint16(32)) // bit count
	binary.Write(buf, le, uint32(0))  // BI_RGB
	binary.Write(buf, le, uint32(0))  // image size
	binary.Write(buf, le, int32(0))   // x pixels per meter
	binary.Write(buf, le, int32(0))   // y pixels per meter
	binary.Write(buf, le, uint32(0))  // colors used
	binary.Write(buf, le, uint32(0))  // important colors

	// Rows are stored bottom-up in BGRA order.
	for y := h - 1; y >= 0; y-- {
		for x := 0; x < w; x++ {
			c := img.NRGBAAt(x, y)
			buf.Write([]byte{c.B, c.G, c.R, c.A})
		}
	}
	maskStride := ((w + 31) / 32) * 4
	buf.Write(make([]byte, maskStride*h))

	return testFrame{w: w, h: h, bpp: 32, payload: buf.Bytes()}
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
