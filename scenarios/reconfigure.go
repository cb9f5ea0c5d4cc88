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

var reconfigureCases = []Scenario{
	{
		Name:   "mode_switch_while_drawing",
		Width:  32,
		Height: 32,
		Caps:   input.StaticCapabilities{Pointer: true},
		Mode:   input.Pen,
		Tool:   pen(black, 4),
		Steps: []Step{
			pointer(input.PointerPen, input.Start, pt(0, 0)),
			Reconfigure{Mode: input.Mouse, Tool: pen(black, 4)},
			mouse(input.Move, pt(20, 20)),
			pointer(input.PointerPen, input.Move, pt(20, 0)),
		},
		Segments: 0,
		Probes: []Probe{
			{X: 10, Y: 10, Ink: false},
			{X: 10, Y: 0, Ink: false},
		},
	},
	{
		Name:   "tool_change_while_drawing",
		Width:  40,
		Height: 20,
		Mode:   input.Mouse,
		Tool:   pen(red, 4),
		Steps: []Step{
			mouse(input.Start, pt(5, 10)),
			mouse(input.Move, pt(15, 10)),
			Reconfigure{Mode: input.Mouse, Tool: pen(blue, 4)},
			mouse(input.Move, pt(30, 10)),
			mouse(input.End, pt(30, 10)),
		},
		Segments: 1,
		Probes: []Probe{
			{X: 10, Y: 10, Ink: true},
			{X: 24, Y: 10, Ink: false},
		},
	},
	{
		Name:   "earlier_strokes_unchanged",
		Width:  40,
		Height: 40,
		Mode:   input.Mouse,
		Tool:   pen(red, 4),
		Steps: concat(
			drag(mouse, pt(4, 10), pt(36, 10)),
			[]Step{Reconfigure{Mode: input.Mouse, Tool: pen(blue, 12)}},
			drag(mouse, pt(4, 30), pt(36, 30)),
		),
		Segments: 2,
		Probes: []Probe{
			{X: 20, Y: 10, Ink: true},
			{X: 20, Y: 14, Ink: false},
			{X: 20, Y: 30, Ink: true},
		},
	},
	{
		Name:   "restart_after_switch",
		Width:  40,
		Height: 40,
		Caps:   input.StaticCapabilities{TouchPoints: 2, Pointer: true},
		Mode:   input.Touch,
		Tool:   pen(red, 4),
		Steps: concat(
			[]Step{
				touch(input.Start, pt(4, 4)),
				Reconfigure{Mode: input.Pen, Tool: pen(red, 4)},
				touch(input.Move, pt(36, 4)),
			},
			drag(penEvent, pt(4, 30), pt(36, 30)),
		),
		Segments: 1,
		Probes: []Probe{
			{X: 20, Y: 4, Ink: false},
			{X: 20, Y: 30, Ink: true},
		},
	},
}
