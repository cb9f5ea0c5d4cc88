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

// Package overlay implements the pointer indicator, a circle which
// follows the pointer and shows the size of the active tool.
package overlay

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/stroke"
)

// MinSize is the smallest indicator diameter, in pixels.
const MinSize = 10

// sizeFactor relates the tool width to the indicator diameter.
const sizeFactor = 5

// ringWidth is the line width of the indicator outline.
const ringWidth = 1

// EraserColor is the indicator colour while erasing.
var EraserColor = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// Size returns the indicator diameter for the given tool.
func Size(t stroke.Tool) float64 {
	return max(sizeFactor*t.Width(), MinSize)
}

// Indicator describes the indicator as it should be shown.
type Indicator struct {
	Center   vec.Vec2
	Diameter float64
	Color    color.NRGBA

	// Visible is false until the pointer has moved after the last
	// reset.
	Visible bool
}

// Overlay tracks the pointer position.  The position is updated for
// every move event, whether or not a stroke is in progress.
//
// The zero value is a hidden indicator for a zero-width tool.  Use New
// to get an overlay for a specific tool.
type Overlay struct {
	tool    stroke.Tool
	pos     vec.Vec2
	visible bool
}

// New returns a hidden overlay for tool t.
func New(t stroke.Tool) *Overlay {
	return &Overlay{tool: t}
}

// Move sets the pointer position and makes the indicator visible.
func (o *Overlay) Move(x, y float64) {
	o.pos = vec.Vec2{X: x, Y: y}
	o.visible = true
}

// Reset hides the indicator until the next move and switches to tool t.
func (o *Overlay) Reset(t stroke.Tool) {
	o.tool = t
	o.visible = false
}

// Indicator returns the current state of the indicator.
func (o *Overlay) Indicator() Indicator {
	col := o.tool.Color
	if o.tool.Erase {
		col = EraserColor
	}
	return Indicator{
		Center:   o.pos,
		Diameter: Size(o.tool),
		Color:    col,
		Visible:  o.visible,
	}
}

// Draw paints the indicator outline onto dst.  Nothing is drawn while
// the indicator is hidden.
func (o *Overlay) Draw(dst draw.Image) {
	ind := o.Indicator()
	if !ind.Visible {
		return
	}
	b := dst.Bounds()
	if b.Empty() {
		return
	}

	r := vector.NewRasterizer(b.Dx(), b.Dy())
	cx := float32(ind.Center.X) - float32(b.Min.X)
	cy := float32(ind.Center.Y) - float32(b.Min.Y)
	radius := float32(ind.Diameter / 2)
	addCircle(r, cx, cy, radius+ringWidth/2., false)
	addCircle(r, cx, cy, radius-ringWidth/2., true)
	r.Draw(dst, b, image.NewUniform(ind.Color), image.Point{})
}

// addCircle appends a circle made of four cubic Bézier quarter arcs.
// Circles of opposite orientation cancel where they overlap.
func addCircle(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	r.MoveTo(cx, cy-radius)
	if clockwise {
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
