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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke renders the open polylines in p using Width and Cap.
//
// Every segment is outlined separately, with caps at both ends, and all
// outlines are filled together with the nonzero rule.  Interior vertices
// are joined with round joins.  A subpath consisting of a single point is
// drawn as a dot if Cap is round, and ignored otherwise.  Close commands
// add the closing segment.  Curves are flattened first and each piece is
// treated as a segment of its own.
func (r *Rasteriser) Stroke(p *path.Data, emit EmitFunc) {
	r.resetEdges()
	d := r.Width / 2
	if !(d > 0) {
		return
	}

	var current, start vec.Vec2
	inSubpath := false
	hasSegment := false
	endSubpath := func() {
		if inSubpath && !hasSegment && r.Cap == graphics.LineCapRound {
			r.addDisc(start, d)
		}
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			endSubpath()
			current = p.Coords[k]
			start = current
			inSubpath = true
			hasSegment = false
			k++
		case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
			n := 1
			if cmd == path.CmdQuadTo {
				n = 2
			} else if cmd == path.CmdCubeTo {
				n = 3
			}
			pts := p.Coords[k : k+n]
			k += n
			if !inSubpath {
				continue
			}
			segment := func(a, b vec.Vec2) {
				if r.addSegment(a, b, d, hasSegment) {
					hasSegment = true
				}
			}
			switch n {
			case 1:
				segment(current, pts[0])
			case 2:
				r.flattenQuadratic(current, pts[0], pts[1], segment)
			case 3:
				r.flattenCubic(current, pts[0], pts[1], pts[2], segment)
			}
			current = pts[n-1]
		case path.CmdClose:
			if !inSubpath {
				continue
			}
			if current != start && r.addSegment(current, start, d, hasSegment) {
				hasSegment = true
			}
			current = start
		}
	}
	endSubpath()

	r.fill(emit)
}

// addSegment adds the outline of the segment a→b.  If joinAtStart is set,
// a round join is added at a.  The return value reports whether the
// segment was long enough to have a direction.
func (r *Rasteriser) addSegment(a, b vec.Vec2, d float64, joinAtStart bool) bool {
	delta := b.Sub(a)
	length := delta.Length()
	if !(length >= zeroLengthThreshold) || math.IsInf(length, 0) {
		return false
	}
	t := delta.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}

	// One closed polygon: the +n side from a to b, the cap at b, the -n
	// side back to a, the cap at a.  All outlines share the same
	// orientation, so overlaps do not cancel.
	r.outline = append(r.outline[:0], a.Add(n.Mul(d)), b.Add(n.Mul(d)))
	r.addCap(b, t, d)
	r.outline = append(r.outline, b.Sub(n.Mul(d)), a.Sub(n.Mul(d)))
	r.addCap(a, t.Mul(-1), d)
	r.addOutline()

	if joinAtStart && r.Cap != graphics.LineCapRound {
		r.addDisc(a, d)
	}
	return true
}

// addCap appends the cap at point p to the outline.  The outline must
// end in p+n*d, where n is the normal 90° counter-clockwise from the
// outward direction t; afterwards the outline ends in p-n*d.
func (r *Rasteriser) addCap(p, t vec.Vec2, d float64) {
	n := vec.Vec2{X: -t.Y, Y: t.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := p.Add(t.Mul(d))
		r.outline = append(r.outline, ext.Add(n.Mul(d)), ext.Sub(n.Mul(d)))
	case graphics.LineCapRound:
		r.addArc(p, d, n, -math.Pi)
	}
}

// addDisc adds a full circle around center as a separate polygon.
func (r *Rasteriser) addDisc(center vec.Vec2, radius float64) {
	startDir := vec.Vec2{X: 1, Y: 0}
	r.outline = append(r.outline[:0], center.Add(startDir.Mul(radius)))
	r.addArc(center, radius, startDir, -2*math.Pi)
	r.addOutline()
}

// addArc appends the points of a circular arc to the outline.  The arc
// starts at center+radius*startDir, a point the outline already ends in,
// and sweeps the given angle in radians.  Negative angles turn from the
// x axis away from the y axis.
func (r *Rasteriser) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	// A chord spanning the angle θ deviates from the circle by at most
	// radius*(1-cos(θ/2)).
	n := 1
	if radius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/radius)
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	dt := sweep / float64(n)
	for i := 1; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}

// addOutline adds the edges of the closed polygon r.outline.
func (r *Rasteriser) addOutline() {
	if len(r.outline) < 3 {
		return
	}
	for i := 1; i < len(r.outline); i++ {
		r.addEdge(r.outline[i-1], r.outline[i])
	}
	r.addEdge(r.outline[len(r.outline)-1], r.outline[0])
}
