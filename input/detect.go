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

// Capabilities describes the input hardware a host platform reports.
type Capabilities interface {
	// MaxTouchPoints is the number of simultaneous touch contacts the
	// platform supports.  Zero means there is no touch screen.
	MaxTouchPoints() int

	// PointerEvents reports whether the platform delivers pointer events
	// which identify the pointer type, as needed for stylus input.
	PointerEvents() bool
}

// StaticCapabilities is a Capabilities with fixed values.
type StaticCapabilities struct {
	TouchPoints int
	Pointer     bool
}

// MaxTouchPoints implements Capabilities.
func (c StaticCapabilities) MaxTouchPoints() int {
	return c.TouchPoints
}

// PointerEvents implements Capabilities.
func (c StaticCapabilities) PointerEvents() bool {
	return c.Pointer
}

// Detect returns the usable device modes, in the order they should be
// offered to the user.  Mouse is always first.  A nil c is treated as a
// platform without touch or pointer support.
func Detect(c Capabilities) []Mode {
	modes := []Mode{Mouse}
	if c == nil {
		return modes
	}
	if c.MaxTouchPoints() > 0 {
		modes = append(modes, Touch)
	}
	if c.PointerEvents() {
		modes = append(modes, Pen)
	}
	return modes
}
