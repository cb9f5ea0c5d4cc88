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

package scenarios

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/input"
)

var gestureCases = []Scenario{
	{
		Name:   "touch_zigzag",
		Width:  96,
		Height: 48,
		Caps:   input.StaticCapabilities{TouchPoints: 10},
		Mode:   input.Touch,
		Tool:   pen(blue, 5),
		Steps: drag(touch,
			pt(8, 40), pt(24, 8), pt(40, 40),
			pt(56, 8), pt(72, 40), pt(88, 8)),
		Segments: 5,
		Probes: []Probe{
			{X: 24, Y: 9, Ink: true},
			{X: 56, Y: 9, Ink: true},
			{X: 40, Y: 12, Ink: false},
		},
	},
	{
		Name:     "pen_spiral",
		Width:    128,
		Height:   128,
		Caps:     input.StaticCapabilities{TouchPoints: 10, Pointer: true},
		Mode:     input.Pen,
		Tool:     pen(red, 2),
		Steps:    drag(penEvent, spiral(pt(64, 64), 4, 56, 3, 120)...),
		Segments: 119,
		Probes: []Probe{
			{X: 2, Y: 2, Ink: false},
		},
	},
	{
		Name:   "fast_chord",
		Width:  64,
		Height: 64,
		Mode:   input.Mouse,
		Tool:   pen(black, 3),
		Steps:  drag(mouse, pt(4, 4), pt(60, 60)),
		// Rapid motion gives a single straight chord.
		Segments: 1,
		Probes: []Probe{
			{X: 32, Y: 32, Ink: true},
			{X: 48, Y: 16, Ink: false},
		},
	},
}

// spiral returns n points along an Archimedean spiral around c
// from radius r0 to r1, making the given number of turns.
func spiral(c vec.Vec2, r0, r1, turns float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		t := float64(i) / float64(n-1)
		r := r0 + t*(r1-r0)
		phi := 2 * math.Pi * turns * t
		pts[i] = c.Add(vec.Vec2{X: r * math.Cos(phi), Y: r * math.Sin(phi)})
	}
	return pts
}
