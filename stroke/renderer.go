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

package stroke

import (
	"image/color"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/sketch/surface"
)

// Context is the drawing context segments are rendered to.
// *surface.Surface implements this interface.
type Context interface {
	SetComposite(op surface.CompositeOp)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	SetLineCap(c graphics.LineCapStyle)
	BeginPath()
	MoveTo(p vec.Vec2)
	LineTo(p vec.Vec2)
	Stroke()
}

var _ Context = (*surface.Surface)(nil)

// eraserColor is used for erasing, so that the eraser always removes
// pixels completely, whatever the pen colour is.
var eraserColor = color.NRGBA{A: 255}

// Renderer draws stroke segments to a Context.
type Renderer struct {
	ctx Context

	// Commit, if set, is called after every segment drawn.
	Commit func(seg Segment, t Tool)
}

// NewRenderer returns a Renderer which draws to ctx.
func NewRenderer(ctx Context) *Renderer {
	return &Renderer{ctx: ctx}
}

// Draw renders seg as a single straight line with round caps.  The pen
// paints over the existing pixels with the tool colour; the eraser
// removes pixels under the line.  The context settings are updated
// before every segment, so that earlier segments are never affected by
// changes to t.
func (r *Renderer) Draw(seg Segment, t Tool) {
	ctx := r.ctx
	if t.Erase {
		ctx.SetComposite(surface.DestinationOut)
		ctx.SetStrokeColor(eraserColor)
		ctx.SetLineWidth(t.EraserWidth)
	} else {
		ctx.SetComposite(surface.SourceOver)
		ctx.SetStrokeColor(t.Color)
		ctx.SetLineWidth(t.LineWidth)
	}
	ctx.SetLineCap(graphics.LineCapRound)

	ctx.BeginPath()
	ctx.MoveTo(seg.From)
	ctx.LineTo(seg.To)
	ctx.Stroke()

	if r.Commit != nil {
		r.Commit(seg, t)
	}
}
