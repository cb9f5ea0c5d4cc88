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

var exportCases = []Scenario{
	{
		Name:   "snapshot_at_call_time",
		Width:  40,
		Height: 40,
		Mode:   input.Mouse,
		Tool:   pen(red, 4),
		Steps: concat(
			drag(mouse, pt(4, 10), pt(36, 10)),
			[]Step{Export{Name: "first.png"}},
			drag(mouse, pt(4, 30), pt(36, 30)),
			[]Step{Export{Name: "second.png"}},
		),
		Segments: 2,
		Probes: []Probe{
			{Export: "first.png", X: 20, Y: 10, Ink: true},
			{Export: "first.png", X: 20, Y: 30, Ink: false},
			{Export: "second.png", X: 20, Y: 10, Ink: true},
			{Export: "second.png", X: 20, Y: 30, Ink: true},
		},
	},
	{
		Name:   "export_during_stroke",
		Width:  40,
		Height: 20,
		Mode:   input.Mouse,
		Tool:   pen(blue, 4),
		Steps: []Step{
			mouse(input.Start, pt(4, 10)),
			mouse(input.Move, pt(18, 10)),
			Export{Name: "partial.png"},
			mouse(input.Move, pt(36, 10)),
			mouse(input.End, pt(36, 10)),
		},
		Segments: 2,
		Probes: []Probe{
			{Export: "partial.png", X: 10, Y: 10, Ink: true},
			{Export: "partial.png", X: 30, Y: 10, Ink: false},
			{X: 30, Y: 10, Ink: true},
		},
	},
}
