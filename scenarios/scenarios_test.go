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
	"math"
	"regexp"
	"testing"

	"seehuhn.de/go/sketch/input"
)

func TestDrag(t *testing.T) {
	steps := drag(mouse, pt(1, 2), pt(3, 4), pt(5, 6))
	want := []Dispatch{
		mouse(input.Start, pt(1, 2)),
		mouse(input.Move, pt(3, 4)),
		mouse(input.Move, pt(5, 6)),
		mouse(input.End, pt(5, 6)),
	}
	if len(steps) != len(want) {
		t.Fatalf("got %d steps, want %d", len(steps), len(want))
	}
	for i, s := range steps {
		if s != want[i] {
			t.Errorf("step %d: got %v, want %v", i, s, want[i])
		}
	}
}

func TestSpiral(t *testing.T) {
	pts := spiral(pt(10, 20), 1, 5, 2, 9)
	if len(pts) != 9 {
		t.Fatalf("got %d points, want 9", len(pts))
	}
	first, last := pts[0], pts[len(pts)-1]
	if first != pt(11, 20) {
		t.Errorf("first point %v, want (11, 20)", first)
	}
	if math.Abs(last.X-15) > 1e-9 || math.Abs(last.Y-20) > 1e-9 {
		t.Errorf("last point %v, want (15, 20)", last)
	}
	for i, p := range pts {
		r := p.Sub(pt(10, 20)).Length()
		want := 1 + 4*float64(i)/8
		if math.Abs(r-want) > 1e-9 {
			t.Errorf("point %d: radius %g, want %g", i, r, want)
		}
	}
}

func TestNames(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z_]+$`)
	for category, cases := range All {
		seen := make(map[string]bool)
		for _, sc := range cases {
			if !valid.MatchString(sc.Name) {
				t.Errorf("%s: invalid name %q", category, sc.Name)
			}
			if seen[sc.Name] {
				t.Errorf("%s: duplicate name %q", category, sc.Name)
			}
			seen[sc.Name] = true
			if len(sc.Steps) == 0 {
				t.Errorf("%s/%s: no steps", category, sc.Name)
			}
		}
	}
}
