package ico2svg

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"
)

// pngSignature prefixes frames stored as PNG streams (Vista and later icons).
var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// DecodeFrame decodes the payload of the frame described by fd into an NRGBA
// bitmap with its origin at (0, 0).
func DecodeFrame(data []byte, fd FrameDescriptor) (*image.NRGBA, error) {
	if fd.Offset < 0 || fd.Length <= 0 || fd.Offset+fd.Length > len(data) {
		return nil, &DecodeError{Frame: fd.Index, cause: errors.New("frame payload out of range")}
	}
	payload := data[fd.Offset : fd.Offset+fd.Length]

	var (
		img image.Image
		err error
	)
	if bytes.HasPrefix(payload, pngSignature) {
		img, err = imaging.Decode(bytes.NewReader(payload))
	} else {
		img, err = ico.Decode(bytes.NewReader(singleFrameIcon(payload, fd)))
	}
	if err != nil {
		return nil, &DecodeError{Frame: fd.Index, cause: err}
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &DecodeError{Frame: fd.Index, cause: errors.New("empty bitmap")}
	}
	return imgToNRGBA(img), nil
}

// singleFrameIcon wraps a DIB payload into an icon container holding only
// that frame, so the icon codec decodes exactly the selected bitmap.
func singleFrameIcon(payload []byte, fd FrameDescriptor) []byte {
	buf := new(bytes.Buffer)
	buf.Grow(iconDirSize + iconEntrySize + len(payload))

	le := binary.LittleEndian
	binary.Write(buf, le, uint16(0))        // reserved
	binary.Write(buf, le, uint16(typeIcon)) // type
	binary.Write(buf, le, uint16(1))        // count

	buf.WriteByte(dimensionByte(fd.Width))
	buf.WriteByte(dimensionByte(fd.Height))
	buf.WriteByte(byte(fd.Colors))
	buf.WriteByte(0)
	binary.Write(buf, le, uint16(fd.Planes))
	binary.Write(buf, le, uint16(fd.BitCount))
	binary.Write(buf, le, uint32(len(payload)))
	binary.Write(buf, le, uint32(iconDirSize+iconEntrySize))

	buf.Write(payload)
	return buf.Bytes()
}

// dimensionByte is the inverse of dimension: 256 is stored as 0.
func dimensionByte(n int) byte {
	if n >= 256 {
		return 0
	}
	return byte(n)
}

// imgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func imgToNRGBA(img image.Image) *image.NRGBA {
	if src, ok := img.(*image.NRGBA); ok && src.Bounds().Min == (image.Point{}) {
		return src
	}
	return imaging.Clone(img)
}
