package ico2svg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

const svgHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Emitter turns a decoded bitmap into an SVG document.
type Emitter interface {
	Emit(img *image.NRGBA) ([]byte, error)
}

var (
	_ Emitter = (*RasterEmitter)(nil)
	_ Emitter = (*VectorEmitter)(nil)
)

// RasterEmitter embeds the bitmap as a base64 encoded PNG image element.
type RasterEmitter struct {
	// Background, when set, is painted under the bitmap before encoding.
	Background *Background
}

// Emit implements the Emitter interface.
func (e *RasterEmitter) Emit(img *image.NRGBA) ([]byte, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	src := img
	if e.Background != nil {
		src = flatten(img, e.Background)
	}

	var enc bytes.Buffer
	if err := imaging.Encode(&enc, src, imaging.PNG); err != nil {
		return nil, fmt.Errorf("could not encode the bitmap as png: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(svgHeader)
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", w, h, w, h)
	buf.WriteString(`  <image href="data:image/png;base64,`)
	buf.WriteString(base64.StdEncoding.EncodeToString(enc.Bytes()))
	fmt.Fprintf(&buf, `" x="0" y="0" width="%d" height="%d"/>`+"\n", w, h)
	buf.WriteString("</svg>\n")

	return buf.Bytes(), nil
}

// flatten composites the bitmap over a solid canvas of the background color
// using the source-over-destination operator.
func flatten(img *image.NRGBA, bg *Background) *image.NRGBA {
	canvas := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), bg.NRGBA)
	return imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)
}
