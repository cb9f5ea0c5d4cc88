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

// Package raster converts polygonal paths and stroked polylines into
// anti-aliased pixel coverage.
//
// Coordinates are surface pixels with the origin in the top-left corner;
// pixel (x, y) covers the square [x, x+1) × [y, y+1).  Quadratic and
// cubic Bézier segments are flattened into straight lines.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline.  Coverage values are in
// the range [0, 1]; coverage[i] belongs to pixel (xMin+i, y).  The slice
// is only valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a polygon edge in surface coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasteriser turns paths into coverage values.  A Rasteriser keeps its
// scratch buffers between calls, so a single instance should be reused
// for all drawing operations on a surface.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// Clip bounds the output.  Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in pixels, between a curve, round
	// cap or join and the polygon approximating it.  Must be positive.
	Flatness float64

	// Width is the stroke width in pixels.  Must be positive for Stroke.
	Width float64

	// Cap is the style used at both ends of every stroked segment.
	Cap graphics.LineCapStyle

	cover     []float32
	area      []float32
	edges     []edge
	active    []int
	crossings []float64

	outline []vec.Vec2 // vertices of the polygon under construction

	bboxEmpty bool
	bboxXMin  float64
	bboxXMax  float64
	bboxYMin  float64
	bboxYMax  float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle.
// Strokes default to a width of one pixel with round caps.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		Clip:     clip,
		Flatness: defaultFlatness,
		Width:    1,
		Cap:      graphics.LineCapRound,
	}
}

// FillNonZero fills the closed polygons described by p, using the nonzero
// winding rule.  Open subpaths are closed implicitly.
func (r *Rasteriser) FillNonZero(p *path.Data, emit EmitFunc) {
	r.resetEdges()

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addEdge)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if current != start {
		r.addEdge(current, start)
	}

	r.fill(emit)
}

func (r *Rasteriser) resetEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge appends the edge a→b to the edge list.  Horizontal edges do not
// contribute to coverage and are dropped, as are edges with NaN or
// infinite coordinates.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	if !isFinite(a) || !isFinite(b) {
		return
	}
	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / dy,
	})

	if r.bboxEmpty {
		r.bboxXMin, r.bboxXMax = min(a.X, b.X), max(a.X, b.X)
		r.bboxYMin, r.bboxYMax = min(a.Y, b.Y), max(a.Y, b.Y)
		r.bboxEmpty = false
		return
	}
	r.bboxXMin = min(r.bboxXMin, a.X, b.X)
	r.bboxXMax = max(r.bboxXMax, a.X, b.X)
	r.bboxYMin = min(r.bboxYMin, a.Y, b.Y)
	r.bboxYMax = max(r.bboxYMax, a.Y, b.Y)
}

// bounds returns the pixel range touched by the collected edges, clamped
// to the clip rectangle.
func (r *Rasteriser) bounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	// Clamp before converting, so that huge coordinates cannot overflow.
	xMin = int(max(math.Floor(r.bboxXMin), r.Clip.LLx))
	xMax = int(min(math.Floor(r.bboxXMax)+1, r.Clip.URx))
	yMin = int(max(math.Floor(r.bboxYMin), r.Clip.LLy))
	yMax = int(min(math.Floor(r.bboxYMax)+1, r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Coverage is computed from two per-pixel accumulators:
//
//	cover[i]: signed vertical extent of all edge pieces inside column i
//	area[i]:  cover weighted by the part of the pixel right of the edge
//
// Scanning a row from left to right, the coverage of pixel i is the sum
// of cover over all columns left of i plus area[i].  Edges left of the
// clip rectangle are folded into column 0 with full weight.

// fill scan-converts the collected edges, one row at a time, using an
// active edge list.
func (r *Rasteriser) fill(emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.bounds()
	if !ok {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)

		for next < len(r.edges) && r.edges[next].top() < yf+1 {
			r.active = append(r.active, next)
			next++
		}
		keep := r.active[:0]
		for _, i := range r.active {
			if r.edges[i].bottom() > yf {
				keep = append(keep, i)
			}
		}
		r.active = keep
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], y, xMin, xMax)
		}
		integrateNonZero(r.cover, r.area)

		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the part of e inside scanline y to the accumulators.
func (r *Rasteriser) accumulate(e *edge, y, xMin, xMax int) {
	yTop := max(float64(y), e.top())
	yBot := min(float64(y+1), e.bottom())
	if yBot <= yTop {
		return
	}

	sign := 1.0
	if e.y1 < e.y0 {
		sign = -1
	}

	// Columns left of the clip all fold into column 0 and columns right
	// of it are discarded, so only crossings in [xMin, xMax] matter.
	xTop := e.xAt(yTop)
	xBot := e.xAt(yBot)
	pixLeft := clampColumn(min(xTop, xBot), xMin-1, xMax)
	pixRight := clampColumn(max(xTop, xBot), xMin-1, xMax)

	if pixLeft == pixRight {
		r.deposit(pixLeft, sign*(yBot-yTop), (xTop+xBot)/2, xMin, xMax)
		return
	}

	// split the piece where it crosses vertical pixel boundaries
	r.crossings = append(r.crossings[:0], yTop, yBot)
	for x := pixLeft + 1; x <= pixRight; x++ {
		yx := e.y0 + (float64(x)-e.x0)/e.dxdy
		if yx > yTop && yx < yBot {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)

	for i := range len(r.crossings) - 1 {
		a, b := r.crossings[i], r.crossings[i+1]
		if b <= a {
			continue
		}
		xMid := e.xAt((a + b) / 2)
		r.deposit(int(math.Floor(xMid)), sign*(b-a), xMid, xMin, xMax)
	}
}

// deposit records a piece of edge with vertical extent dy, located in
// pixel column pix at horizontal position xMid.
func (r *Rasteriser) deposit(pix int, dy, xMid float64, xMin, xMax int) {
	switch {
	case pix < xMin:
		r.cover[0] += float32(dy)
		r.area[0] += float32(dy)
	case pix < xMax:
		i := pix - xMin
		r.cover[i] += float32(dy)
		r.area[i] += float32(dy * (1 - (xMid - float64(pix))))
	}
}

// clampColumn returns the pixel column containing x, limited to [lo, hi].
func clampColumn(x float64, lo, hi int) int {
	return int(min(max(math.Floor(x), float64(lo)), float64(hi)))
}

func isFinite(v vec.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// integrateNonZero turns the accumulators into coverage values, in place
// in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros strips zero coverage from both ends of a row.
// If the whole row is zero, nil is returned.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness keeps round caps within a quarter pixel of a true
	// circle, which is below what can be seen.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the smallest vertical extent for which an
	// edge contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the shortest segment that has a direction.
	zeroLengthThreshold = 1e-10
)
