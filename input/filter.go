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

// Accept reports whether ev was produced by the device selected by mode.
//
// The rules are strict: in Pen mode only pointer events of pointer type
// "pen" are accepted, in Touch mode only touch events, and in Mouse mode
// only mouse events.  In particular a stylus which reports itself as
// "touch" is ignored in Pen mode.  Unknown modes accept nothing.
//
// Accept only makes sense for Start and Move events.  End events must
// always terminate a gesture, and callers should not filter them.
func Accept(mode Mode, ev Event) bool {
	switch mode {
	case Pen:
		return ev.Source == SourcePointer && ev.PointerType == PointerPen
	case Touch:
		return ev.Source == SourceTouch
	case Mouse:
		return ev.Source == SourceMouse
	default:
		return false
	}
}
