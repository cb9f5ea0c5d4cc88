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

	"seehuhn.de/go/geom/vec"
)

// maxCurvePieces bounds the number of lines a single curve is split into.
const maxCurvePieces = 1 << 12

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2 by
// straight lines and calls emit for each of them.  The lines stay within
// Flatness of the curve.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// the distance between curve and chord is at most |p0 - 2p1 + p2| / 4
	dev := p0.Sub(p1.Mul(2)).Add(p2).Length() / 4
	n := pieces(math.Sqrt(dev / r.Flatness))

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier curve p0, p1, p2, p3 by
// straight lines and calls emit for each of them.  The number of lines
// follows Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	m := max(d1.Length(), d2.Length())
	n := pieces(math.Sqrt(3 * m / (4 * r.Flatness)))

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// pieces converts a fractional line count into the number of lines to
// use.  NaN and values below one give a single line.
func pieces(x float64) int {
	if !(x > 1) {
		return 1
	}
	return int(min(math.Ceil(x), maxCurvePieces))
}
