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

package input

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Source identifies the native event family an event was delivered by.
type Source int

// These are the event families a host can deliver.
const (
	SourceMouse Source = iota
	SourceTouch
	SourcePointer
)

func (s Source) String() string {
	switch s {
	case SourceMouse:
		return "mouse"
	case SourceTouch:
		return "touch"
	case SourcePointer:
		return "pointer"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// Phase is the position of an event within a gesture.
type Phase int

// These are the gesture phases.
const (
	Start Phase = iota
	Move
	End
)

func (p Phase) String() string {
	switch p {
	case Start:
		return "start"
	case Move:
		return "move"
	case End:
		return "end"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Pointer types carried by SourcePointer events.
const (
	PointerPen   = "pen"
	PointerTouch = "touch"
	PointerMouse = "mouse"
)

// Event is a single native input event, in surface-local pixel
// coordinates.
type Event struct {
	Source Source
	Phase  Phase
	X, Y   float64

	// PointerType is set for SourcePointer events and names the physical
	// device, for example PointerPen.
	PointerType string
}

// Point returns the event position.
func (ev Event) Point() vec.Vec2 {
	return vec.Vec2{X: ev.X, Y: ev.Y}
}

func (ev Event) String() string {
	if ev.Source == SourcePointer {
		return fmt.Sprintf("%s/%s(%s) (%g,%g)", ev.Source, ev.Phase, ev.PointerType, ev.X, ev.Y)
	}
	return fmt.Sprintf("%s/%s (%g,%g)", ev.Source, ev.Phase, ev.X, ev.Y)
}
