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

package stroke

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidWidth is returned by Tool.Validate for widths which are not
// positive finite numbers.
var ErrInvalidWidth = errors.New("stroke: invalid width")

// Tool holds the drawing parameters chosen by the user.  Exactly one of
// the pen and the eraser settings is live at any time, selected by Erase.
type Tool struct {
	Color       color.NRGBA
	LineWidth   float64
	EraserWidth float64
	Erase       bool
}

// DefaultTool is a thin opaque black pen.
var DefaultTool = Tool{
	Color:       color.NRGBA{A: 255},
	LineWidth:   2,
	EraserWidth: 20,
}

// Width returns the width of the live tool.
func (t Tool) Width() float64 {
	if t.Erase {
		return t.EraserWidth
	}
	return t.LineWidth
}

// Validate checks that both widths are usable.
func (t Tool) Validate() error {
	if !validWidth(t.LineWidth) {
		return fmt.Errorf("%w: line width %g", ErrInvalidWidth, t.LineWidth)
	}
	if !validWidth(t.EraserWidth) {
		return fmt.Errorf("%w: eraser width %g", ErrInvalidWidth, t.EraserWidth)
	}
	return nil
}

func validWidth(w float64) bool {
	return w > 0 && !math.IsInf(w, 0)
}

func (t Tool) String() string {
	if t.Erase {
		return fmt.Sprintf("eraser %g", t.EraserWidth)
	}
	c := t.Color
	return fmt.Sprintf("pen #%02x%02x%02x%02x %g", c.R, c.G, c.B, c.A, t.LineWidth)
}
