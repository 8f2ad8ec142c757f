package ico2svg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Mode selects the emitter used for the conversion.
type Mode string

const (
	// Raster embeds the frame as a base64 encoded PNG.
	Raster Mode = "raster"
	// Vector writes the frame as per-row color runs.
	Vector Mode = "vector"
)

// DefaultAlphaThreshold is the opacity cutoff used by the vector mode.
const DefaultAlphaThreshold = 16

// Processor options
type Processor struct {
	Mode           Mode
	Style          Style
	Background     string
	Size           string
	AlphaThreshold int
}

// DefaultProcessor returns a processor with the default conversion options:
// raster mode, transparent background, largest frame.
func DefaultProcessor() *Processor {
	return &Processor{
		Mode:           Raster,
		Style:          StyleRect,
		Background:     Transparent,
		AlphaThreshold: DefaultAlphaThreshold,
	}
}

// Validate checks the options and resolves them into an emitter and a size request.
func (p *Processor) Validate() (Emitter, *Size, error) {
	if p.AlphaThreshold < 0 || p.AlphaThreshold > 255 {
		return nil, nil, &ValidationError{Option: "alpha threshold", Msg: fmt.Sprintf("%d is outside 0-255", p.AlphaThreshold)}
	}
	bg, err := ParseBackground(p.Background)
	if err != nil {
		return nil, nil, err
	}
	req, err := ParseSize(p.Size)
	if err != nil {
		return nil, nil, err
	}

	switch p.Mode {
	case Raster, "":
		return &RasterEmitter{Background: bg}, req, nil
	case Vector:
		style := p.Style
		switch style {
		case "":
			style = StyleRect
		case StyleRect, StylePath:
		default:
			return nil, nil, &ValidationError{Option: "style", Msg: fmt.Sprintf("%q should be rect or path", p.Style)}
		}
		return &VectorEmitter{
			AlphaThreshold: uint8(p.AlphaThreshold),
			Background:     bg,
			Style:          style,
		}, req, nil
	default:
		return nil, nil, &ValidationError{Option: "mode", Msg: fmt.Sprintf("%q should be raster or vector", p.Mode)}
	}
}

// Encode converts the raw icon data into an SVG document.
func (p *Processor) Encode(data []byte) ([]byte, error) {
	emitter, req, err := p.Validate()
	if err != nil {
		return nil, err
	}

	dir, err := ReadCatalog(data)
	if err != nil {
		return nil, err
	}
	fd, err := Select(dir.Frames, req)
	if err != nil {
		return nil, err
	}
	img, err := DecodeFrame(data, fd)
	if err != nil {
		return nil, err
	}
	return emitter.Emit(img)
}

// Process is the main entry point for the stream based conversion.
// The source is read in full before parsing begins and nothing is written
// to w unless the conversion succeeds.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("could not read the source icon: %w", err)
	}
	svg, err := p.Encode(data)
	if err != nil {
		return err
	}
	_, err = w.Write(svg)
	return err
}

// Convert converts the icon at src into an SVG document written to dst.
// The destination is replaced atomically; on failure it is left untouched.
func Convert(src, dst string, p *Processor) error {
	if p == nil {
		p = DefaultProcessor()
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to open the source file: %w", err)
	}
	svg, err := p.Encode(data)
	if err != nil {
		return err
	}
	return writeFileAtomic(dst, svg)
}

// Catalog reads the frame directory of the icon at src.
func Catalog(src string) (*IconDirectory, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("unable to open the source file: %w", err)
	}
	return ReadCatalog(data)
}

// Sizes returns the distinct frame sizes of the icon at src, ordered by area.
func Sizes(src string) ([]Size, error) {
	dir, err := Catalog(src)
	if err != nil {
		return nil, err
	}
	return dir.Sizes(), nil
}

// Sizes returns the distinct frame sizes of the directory, ordered by area.
func (d *IconDirectory) Sizes() []Size {
	return distinctSizes(d.Frames)
}

// writeFileAtomic writes data to a temporary file next to dst and renames it into place.
func writeFileAtomic(dst string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*")
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("unable to write the destination file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("unable to write the destination file: %w", err)
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	return nil
}
