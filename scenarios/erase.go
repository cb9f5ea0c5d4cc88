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

import "seehuhn.de/go/sketch/input"

var eraseCases = []Scenario{
	{
		Name:   "erase_through_ink",
		Width:  64,
		Height: 32,
		Mode:   input.Mouse,
		Tool:   pen(red, 10),
		Steps: concat(
			drag(mouse, pt(4, 16), pt(60, 16)),
			[]Step{Reconfigure{Mode: input.Mouse, Tool: eraser(8)}},
			drag(mouse, pt(32, 2), pt(32, 30)),
		),
		Segments: 2,
		Probes: []Probe{
			{X: 32, Y: 16, Ink: false},
			{X: 10, Y: 16, Ink: true},
			{X: 54, Y: 16, Ink: true},
		},
	},
	{
		Name:   "erase_then_draw",
		Width:  64,
		Height: 32,
		Caps:   input.StaticCapabilities{Pointer: true},
		Mode:   input.Pen,
		Tool:   pen(blue, 10),
		Steps: concat(
			drag(penEvent, pt(4, 16), pt(60, 16)),
			[]Step{Reconfigure{Mode: input.Pen, Tool: eraser(16)}},
			drag(penEvent, pt(20, 16), pt(44, 16)),
			[]Step{Reconfigure{Mode: input.Pen, Tool: pen(red, 4)}},
			drag(penEvent, pt(32, 4), pt(32, 28)),
		),
		Segments: 3,
		Probes: []Probe{
			{X: 26, Y: 16, Ink: false},
			{X: 32, Y: 16, Ink: true},
			{X: 8, Y: 16, Ink: true},
		},
	},
}
