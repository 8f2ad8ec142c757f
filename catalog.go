package ico2svg

import (
	"encoding/binary"
	"fmt"
)

const (
	iconDirSize   = 6
	iconEntrySize = 16

	// typeIcon is the resource type stored in the header of .ico files (2 is used by cursors).
	typeIcon = 1
)

// FrameDescriptor describes one bitmap embedded in an icon container,
// as declared by its directory entry.
type FrameDescriptor struct {
	Index    int
	Width    int
	Height   int
	Colors   int
	Planes   int
	BitCount int
	Offset   int
	Length   int
}

// Size returns the frame dimensions.
func (fd FrameDescriptor) Size() Size {
	return Size{Width: fd.Width, Height: fd.Height}
}

func (fd FrameDescriptor) area() int {
	return fd.Width * fd.Height
}

func (fd FrameDescriptor) square() bool {
	return fd.Width == fd.Height
}

// IconDirectory holds the frame entries of an icon file in file order.
type IconDirectory struct {
	Type   int
	Frames []FrameDescriptor
}

// ReadCatalog parses the icon directory of the raw .ico data.
// Only the header and the entry table are inspected; frame payloads are
// range checked against the data length but not decoded.
func ReadCatalog(data []byte) (*IconDirectory, error) {
	if len(data) < iconDirSize {
		return nil, &ParseError{Msg: fmt.Sprintf("file too short for icon header (%d bytes)", len(data))}
	}

	le := binary.LittleEndian
	reserved := le.Uint16(data[0:2])
	typ := le.Uint16(data[2:4])
	count := int(le.Uint16(data[4:6]))

	if reserved != 0 || typ != typeIcon {
		return nil, &ParseError{Msg: fmt.Sprintf("invalid icon signature (reserved=%d, type=%d)", reserved, typ)}
	}

	end := iconDirSize + count*iconEntrySize
	if len(data) < end {
		return nil, &ParseError{Msg: fmt.Sprintf("directory declares %d entries but file holds %d bytes", count, len(data))}
	}

	dir := &IconDirectory{
		Type:   int(typ),
		Frames: make([]FrameDescriptor, 0, count),
	}
	for i := 0; i < count; i++ {
		e := data[iconDirSize+i*iconEntrySize : iconDirSize+(i+1)*iconEntrySize]
		fd := FrameDescriptor{
			Index:    i,
			Width:    dimension(e[0]),
			Height:   dimension(e[1]),
			Colors:   int(e[2]),
			Planes:   int(le.Uint16(e[4:6])),
			BitCount: int(le.Uint16(e[6:8])),
			Length:   int(le.Uint32(e[8:12])),
			Offset:   int(le.Uint32(e[12:16])),
		}
		if fd.Length == 0 {
			return nil, &ParseError{Msg: fmt.Sprintf("entry #%d has an empty payload", i)}
		}
		// Compare in int64 space, offsets come straight from the file.
		if int64(fd.Offset)+int64(fd.Length) > int64(len(data)) {
			return nil, &ParseError{Msg: fmt.Sprintf(
				"entry #%d byte range [%d, %d) exceeds file length %d",
				i, fd.Offset, int64(fd.Offset)+int64(fd.Length), len(data),
			)}
		}
		dir.Frames = append(dir.Frames, fd)
	}

	return dir, nil
}

// dimension converts a stored width or height byte, where 0 means 256.
func dimension(b byte) int {
	if b == 0 {
		return 256
	}
	return int(b)
}
