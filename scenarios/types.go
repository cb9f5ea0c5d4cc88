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

// Package scenarios contains scripted input sessions, used to test the
// canvas and to produce example images.
package scenarios

import (
	"image/color"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/input"
	"seehuhn.de/go/sketch/stroke"
)

// Scenario is a scripted sequence of input events and user actions,
// together with the expected outcome.
type Scenario struct {
	Name   string // lowercase a-z and _ only
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels

	Caps input.StaticCapabilities // platform capabilities
	Mode input.Mode               // initial device mode
	Tool stroke.Tool              // initial tool

	Steps []Step

	Segments int     // number of segments drawn
	Active   bool    // whether a stroke is in progress after the last step
	Probes   []Probe // pixels to check
}

// Step is a single action in a scenario.
type Step interface {
	isStep()
}

// Dispatch delivers a native input event.
type Dispatch input.Event

func (Dispatch) isStep() {}

// Reconfigure changes the device mode and the tool, as if the user had
// used the toolbar.
type Reconfigure struct {
	Mode input.Mode
	Tool stroke.Tool
}

func (Reconfigure) isStep() {}

// Export saves the current surface under the given name.
type Export struct {
	Name string
}

func (Export) isStep() {}

// Probe checks whether a pixel carries ink.
type Probe struct {
	// Export names the exported image to check.  If Export is empty, the
	// surface after the last step is checked.
	Export string

	X, Y int
	Ink  bool
}

var (
	red   = color.NRGBA{R: 0xd0, G: 0x20, B: 0x20, A: 0xff}
	blue  = color.NRGBA{R: 0x20, G: 0x40, B: 0xd0, A: 0xff}
	black = color.NRGBA{A: 0xff}
)

func pen(c color.NRGBA, width float64) stroke.Tool {
	return stroke.Tool{Color: c, LineWidth: width, EraserWidth: 20}
}

func eraser(width float64) stroke.Tool {
	return stroke.Tool{Color: black, LineWidth: 2, EraserWidth: width, Erase: true}
}

// pt is a shorthand for a point in device pixels.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func mouse(phase input.Phase, p vec.Vec2) Dispatch {
	return Dispatch{Source: input.SourceMouse, Phase: phase, X: p.X, Y: p.Y}
}

func touch(phase input.Phase, p vec.Vec2) Dispatch {
	return Dispatch{Source: input.SourceTouch, Phase: phase, X: p.X, Y: p.Y}
}

func pointer(kind string, phase input.Phase, p vec.Vec2) Dispatch {
	return Dispatch{Source: input.SourcePointer, Phase: phase, X: p.X, Y: p.Y, PointerType: kind}
}

// drag returns a complete gesture through the given points: a start
// event at the first point, a move to each further point and an end
// event.  The events are built by ev.
func drag(ev func(input.Phase, vec.Vec2) Dispatch, pts ...vec.Vec2) []Step {
	steps := make([]Step, 0, len(pts)+1)
	for i, p := range pts {
		phase := input.Move
		if i == 0 {
			phase = input.Start
		}
		steps = append(steps, ev(phase, p))
	}
	return append(steps, ev(input.End, pts[len(pts)-1]))
}

// penEvent builds stylus events, for use with drag.
func penEvent(phase input.Phase, p vec.Vec2) Dispatch {
	return pointer(input.PointerPen, phase, p)
}

// concat joins step lists.
func concat(parts ...[]Step) []Step {
	var steps []Step
	for _, p := range parts {
		steps = append(steps, p...)
	}
	return steps
}
