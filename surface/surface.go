// seehuhn.de/go/sketch - a freehand annotation engine
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package surface implements the raster surface strokes are drawn on: a
// fixed-size RGBA pixel buffer together with a small stateful drawing
// context in the style of an HTML canvas.
package surface

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/sketch/raster"
)

// ErrSize is returned by New for surfaces without pixels.
var ErrSize = errors.New("surface: width and height must be positive")

// Surface is a pixel buffer with a drawing context.  The buffer starts out
// fully transparent.  Drawing only ever adds to or removes from the
// current pixels; there is no history.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	img *image.RGBA
	r   *raster.Rasteriser

	op        CompositeOp
	color     color.NRGBA
	lineWidth float64
	lineCap   graphics.LineCapStyle

	path path.Data
}

// New allocates a transparent surface of the given size.  The context is
// initialised to paint opaque black with a line width of 1, butt caps
// and SourceOver compositing.
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w (got %dx%d)", ErrSize, width, height)
	}
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	return &Surface{
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		r:         raster.NewRasteriser(clip),
		op:        SourceOver,
		color:     color.NRGBA{A: 255},
		lineWidth: 1,
		lineCap:   graphics.LineCapButt,
	}, nil
}

// Bounds returns the pixel rectangle of the surface.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Rect
}

// SetComposite sets the compositing operation used by Stroke.
func (s *Surface) SetComposite(op CompositeOp) {
	s.op = op
}

// Composite returns the current compositing operation.
func (s *Surface) Composite() CompositeOp {
	return s.op
}

// SetStrokeColor sets the colour used by Stroke.
func (s *Surface) SetStrokeColor(c color.Color) {
	s.color = color.NRGBAModel.Convert(c).(color.NRGBA)
}

// StrokeColor returns the current stroke colour.
func (s *Surface) StrokeColor() color.NRGBA {
	return s.color
}

// SetLineWidth sets the stroke width in pixels.  Values which are not
// positive are ignored.
func (s *Surface) SetLineWidth(w float64) {
	if w > 0 {
		s.lineWidth = w
	}
}

// LineWidth returns the current stroke width.
func (s *Surface) LineWidth() float64 {
	return s.lineWidth
}

// SetLineCap sets the cap style for the ends of stroked segments.
func (s *Surface) SetLineCap(c graphics.LineCapStyle) {
	s.lineCap = c
}

// LineCap returns the current cap style.
func (s *Surface) LineCap() graphics.LineCapStyle {
	return s.lineCap
}

// BeginPath discards the current path.
func (s *Surface) BeginPath() {
	s.path.Cmds = s.path.Cmds[:0]
	s.path.Coords = s.path.Coords[:0]
}

// MoveTo starts a new subpath at p.
func (s *Surface) MoveTo(p vec.Vec2) {
	s.path.MoveTo(p)
}

// LineTo adds a straight line from the current point to p.  If there is
// no current point, LineTo behaves like MoveTo.
func (s *Surface) LineTo(p vec.Vec2) {
	if len(s.path.Cmds) == 0 {
		s.path.MoveTo(p)
		return
	}
	s.path.LineTo(p)
}

// Stroke draws the current path with the current line width, cap style,
// colour and compositing operation.  The path is kept, so that a
// following Stroke draws it again.
func (s *Surface) Stroke() {
	if len(s.path.Cmds) == 0 {
		return
	}
	s.r.Width = s.lineWidth
	s.r.Cap = s.lineCap
	blend := s.op.blender(s.color)
	s.r.Stroke(&s.path, func(y, xMin int, coverage []float32) {
		row := s.img.Pix[s.img.PixOffset(xMin, y):]
		for i, c := range coverage {
			blend(row[4*i:4*i+4], c)
		}
	})
}

// Clear makes every pixel fully transparent.
func (s *Surface) Clear() {
	clear(s.img.Pix)
}

// Snapshot returns a copy of the current pixels.  Later drawing does not
// affect the copy.
func (s *Surface) Snapshot() *image.RGBA {
	pix := make([]uint8, len(s.img.Pix))
	copy(pix, s.img.Pix)
	return &image.RGBA{
		Pix:    pix,
		Stride: s.img.Stride,
		Rect:   s.img.Rect,
	}
}

// EncodePNG encodes the current pixels as a PNG image.  The pixels are
// read before EncodePNG returns.
func (s *Surface) EncodePNG() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, s.img); err != nil {
		return nil, fmt.Errorf("surface: encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// At returns the colour of pixel (x, y).
func (s *Surface) At(x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(s.img.RGBAAt(x, y)).(color.NRGBA)
}
