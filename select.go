package ico2svg

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Size is a width and height pair in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ParseSize parses a size request like "256" (square) or "32x64".
// An empty string means no request and returns nil.
func ParseSize(s string) (*Size, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return nil, nil
	}

	var (
		w, h int
		err  error
	)
	if strings.Contains(s, "x") {
		parts := strings.Split(s, "x")
		if len(parts) != 2 {
			return nil, &ValidationError{Option: "size", Msg: fmt.Sprintf("%q must be like 256 or 256x256", s)}
		}
		if w, err = strconv.Atoi(parts[0]); err != nil {
			return nil, &ValidationError{Option: "size", Msg: fmt.Sprintf("bad width %q", parts[0])}
		}
		if h, err = strconv.Atoi(parts[1]); err != nil {
			return nil, &ValidationError{Option: "size", Msg: fmt.Sprintf("bad height %q", parts[1])}
		}
	} else {
		if w, err = strconv.Atoi(s); err != nil {
			return nil, &ValidationError{Option: "size", Msg: fmt.Sprintf("%q must be like 256 or 256x256", s)}
		}
		h = w
	}

	if w <= 0 || h <= 0 {
		return nil, &ValidationError{Option: "size", Msg: fmt.Sprintf("dimensions must be positive, got %dx%d", w, h)}
	}
	return &Size{Width: w, Height: h}, nil
}

// Select picks the frame matching the requested size:
//  1. the exact (width, height) match;
//  2. otherwise the smallest frame covering the request in both dimensions,
//     preferring square frames and then the smaller width on equal area;
//  3. otherwise (or when req is nil) the largest frame, preferring square
//     frames and then the larger width on equal area.
//
// Frames of identical size are ordered by bit depth, then by file position.
func Select(frames []FrameDescriptor, req *Size) (FrameDescriptor, error) {
	if len(frames) == 0 {
		return FrameDescriptor{}, &SelectionError{Msg: "no frames available in icon"}
	}

	if req != nil {
		var exact []FrameDescriptor
		for _, fd := range frames {
			if fd.Width == req.Width && fd.Height == req.Height {
				exact = append(exact, fd)
			}
		}
		if len(exact) > 0 {
			return best(exact, func(a, b FrameDescriptor) bool { return false }), nil
		}

		var larger []FrameDescriptor
		for _, fd := range frames {
			if fd.Width >= req.Width && fd.Height >= req.Height {
				larger = append(larger, fd)
			}
		}
		if len(larger) > 0 {
			return best(larger, nearerLarger), nil
		}
	}

	return best(frames, largerFrame), nil
}

// nearerLarger reports whether a is a closer fit than b among frames covering the request.
func nearerLarger(a, b FrameDescriptor) bool {
	if a.area() != b.area() {
		return a.area() < b.area()
	}
	if a.square() != b.square() {
		return a.square()
	}
	return a.Width < b.Width
}

// largerFrame reports whether a ranks above b when falling back to the largest frame.
func largerFrame(a, b FrameDescriptor) bool {
	if a.area() != b.area() {
		return a.area() > b.area()
	}
	if a.square() != b.square() {
		return a.square()
	}
	return a.Width > b.Width
}

// best returns the first frame according to the less ordering, breaking the
// remaining ties by higher bit depth and then by directory index.
func best(frames []FrameDescriptor, less func(a, b FrameDescriptor) bool) FrameDescriptor {
	sel := frames[0]
	for _, fd := range frames[1:] {
		switch {
		case less(fd, sel):
			sel = fd
		case less(sel, fd):
		case fd.BitCount > sel.BitCount:
			sel = fd
		case fd.BitCount == sel.BitCount && fd.Index < sel.Index:
			sel = fd
		}
	}
	return sel
}

// distinctSizes returns the distinct frame sizes ordered by area, width and height.
func distinctSizes(frames []FrameDescriptor) []Size {
	sizes := make([]Size, 0, len(frames))
	for _, fd := range frames {
		if !slices.Contains(sizes, fd.Size()) {
			sizes = append(sizes, fd.Size())
		}
	}
	slices.SortFunc(sizes, func(a, b Size) int {
		if d := a.Width*a.Height - b.Width*b.Height; d != 0 {
			return d
		}
		if d := a.Width - b.Width; d != 0 {
			return d
		}
		return a.Height - b.Height
	})
	return sizes
}
