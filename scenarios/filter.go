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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/input"
)

var filterCases = []Scenario{
	{
		Name:   "mouse_in_touch_mode",
		Width:  32,
		Height: 20,
		Caps:   input.StaticCapabilities{TouchPoints: 5},
		Mode:   input.Touch,
		Tool:   pen(red, 4),
		Steps: []Step{
			mouse(input.Start, pt(10, 10)),
			mouse(input.Move, pt(20, 10)),
		},
		Segments: 0,
		Probes: []Probe{
			{X: 15, Y: 10, Ink: false},
		},
	},
	{
		Name:   "stylus_reported_as_touch",
		Width:  32,
		Height: 20,
		Caps:   input.StaticCapabilities{TouchPoints: 5, Pointer: true},
		Mode:   input.Pen,
		Tool:   pen(red, 4),
		Steps:  drag(touchPointer, pt(4, 10), pt(28, 10)),
		Probes: []Probe{
			{X: 16, Y: 10, Ink: false},
		},
	},
	{
		Name:   "foreign_moves_mid_stroke",
		Width:  40,
		Height: 40,
		Caps:   input.StaticCapabilities{TouchPoints: 5},
		Mode:   input.Mouse,
		Tool:   pen(red, 4),
		Steps: []Step{
			mouse(input.Start, pt(5, 10)),
			touch(input.Move, pt(30, 30)),
			mouse(input.Move, pt(15, 10)),
			mouse(input.End, pt(15, 10)),
		},
		Segments: 1,
		Probes: []Probe{
			{X: 10, Y: 10, Ink: true},
			{X: 20, Y: 20, Ink: false},
			{X: 30, Y: 30, Ink: false},
		},
	},
	{
		Name:   "end_from_other_device",
		Width:  40,
		Height: 20,
		Caps:   input.StaticCapabilities{TouchPoints: 5},
		Mode:   input.Mouse,
		Tool:   pen(red, 4),
		Steps: []Step{
			mouse(input.Start, pt(5, 10)),
			mouse(input.Move, pt(15, 10)),
			touch(input.End, pt(15, 10)),
			mouse(input.Move, pt(30, 10)),
		},
		Segments: 1,
		Probes: []Probe{
			{X: 10, Y: 10, Ink: true},
			{X: 24, Y: 10, Ink: false},
		},
	},
	{
		Name:   "touch_start_mouse_move",
		Width:  32,
		Height: 32,
		Caps:   input.StaticCapabilities{TouchPoints: 5},
		Mode:   input.Touch,
		Tool:   pen(blue, 4),
		Steps: []Step{
			touch(input.Start, pt(4, 16)),
			mouse(input.Move, pt(28, 16)),
			touch(input.Move, pt(16, 16)),
		},
		Segments: 1,
		Active:   true,
		Probes: []Probe{
			{X: 10, Y: 16, Ink: true},
			{X: 24, Y: 16, Ink: false},
		},
	},
}

// touchPointer builds pointer events of a stylus which reports itself
// as a touch device.
func touchPointer(phase input.Phase, p vec.Vec2) Dispatch {
	return pointer(input.PointerTouch, phase, p)
}
