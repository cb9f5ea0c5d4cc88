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
	"image/color"

	"seehuhn.de/go/sketch/input"
)

var basicCases = []Scenario{
	{
		Name:   "mouse_segment",
		Width:  32,
		Height: 20,
		Mode:   input.Mouse,
		Tool:   pen(color.NRGBA{R: 0xff, A: 0xff}, 4),
		Steps: []Step{
			mouse(input.Start, pt(10, 10)),
			mouse(input.Move, pt(20, 10)),
			mouse(input.End, pt(20, 10)),
		},
		Segments: 1,
		Probes: []Probe{
			{X: 15, Y: 10, Ink: true},
			{X: 15, Y: 16, Ink: false},
			{X: 2, Y: 10, Ink: false},
		},
	},
	{
		Name:   "pen_erase_segment",
		Width:  32,
		Height: 32,
		Caps:   input.StaticCapabilities{Pointer: true},
		Mode:   input.Pen,
		Tool:   eraser(20),
		Steps: []Step{
			pointer(input.PointerPen, input.Start, pt(5, 5)),
			pointer(input.PointerPen, input.Move, pt(15, 5)),
		},
		Segments: 1,
		Active:   true,
		Probes: []Probe{
			{X: 10, Y: 5, Ink: false},
		},
	},
	{
		Name:   "polyline",
		Width:  64,
		Height: 64,
		Mode:   input.Mouse,
		Tool:   pen(blue, 3),
		Steps: drag(mouse,
			pt(8, 8), pt(56, 8), pt(56, 56), pt(8, 56)),
		Segments: 3,
		Probes: []Probe{
			{X: 32, Y: 8, Ink: true},
			{X: 56, Y: 32, Ink: true},
			{X: 32, Y: 56, Ink: true},
			{X: 8, Y: 32, Ink: false},
			{X: 32, Y: 32, Ink: false},
		},
	},
	{
		Name:   "press_without_move",
		Width:  16,
		Height: 16,
		Mode:   input.Mouse,
		Tool:   pen(black, 6),
		Steps: []Step{
			mouse(input.Start, pt(8, 8)),
			mouse(input.End, pt(8, 8)),
		},
		Segments: 0,
		Probes: []Probe{
			{X: 8, Y: 8, Ink: false},
		},
	},
	{
		Name:   "idle_moves",
		Width:  32,
		Height: 32,
		Mode:   input.Mouse,
		Tool:   pen(black, 6),
		Steps: []Step{
			mouse(input.Move, pt(4, 4)),
			mouse(input.Move, pt(28, 28)),
			mouse(input.End, pt(28, 28)),
			mouse(input.Move, pt(4, 28)),
		},
		Segments: 0,
		Probes: []Probe{
			{X: 16, Y: 16, Ink: false},
		},
	},
}
