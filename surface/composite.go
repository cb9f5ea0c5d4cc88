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

package surface

import (
	"fmt"
	"image/color"
	"math"
)

// CompositeOp selects how stroked pixels are combined with the pixels
// already on the surface.
type CompositeOp int

const (
	// SourceOver paints the stroke colour over the existing pixels.
	SourceOver CompositeOp = iota

	// DestinationOut removes existing pixels under the stroke, in
	// proportion to the stroke's alpha and coverage.  The stroke colour
	// itself is not painted.
	DestinationOut
)

func (op CompositeOp) String() string {
	switch op {
	case SourceOver:
		return "source-over"
	case DestinationOut:
		return "destination-out"
	default:
		return fmt.Sprintf("CompositeOp(%d)", int(op))
	}
}

// blender returns a function which combines one premultiplied RGBA pixel
// with the colour c at the given coverage.
func (op CompositeOp) blender(c color.NRGBA) func(px []uint8, coverage float32) {
	alpha := float32(c.A) / 255

	if op == DestinationOut {
		return func(px []uint8, coverage float32) {
			keep := 1 - alpha*coverage
			for i := range 4 {
				px[i] = scale(px[i], keep)
			}
		}
	}

	// premultiplied source colour
	src := [4]float32{
		float32(c.R) * alpha,
		float32(c.G) * alpha,
		float32(c.B) * alpha,
		float32(c.A),
	}
	return func(px []uint8, coverage float32) {
		keep := 1 - alpha*coverage
		for i := range 4 {
			v := src[i]*coverage + float32(px[i])*keep
			px[i] = uint8(min(math.Round(float64(v)), 255))
		}
	}
}

func scale(v uint8, f float32) uint8 {
	return uint8(math.Round(float64(float32(v) * f)))
}
