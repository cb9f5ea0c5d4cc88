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

// Package input classifies the pointer events delivered by a host window
// system.  It decides which input devices are usable, which events belong
// to the device the user selected, and routes events to listeners.
package input

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for unrecognised names.
var ErrUnknownMode = errors.New("input: unknown device mode")

// Mode is the input device selected by the user.  Only events coming
// from the selected device are used for drawing.
type Mode int

// These are the supported device modes.
const (
	Mouse Mode = iota
	Touch
	Pen
)

func (m Mode) String() string {
	switch m {
	case Mouse:
		return "mouse"
	case Touch:
		return "touch"
	case Pen:
		return "pen"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name, as returned by String, back into a Mode.
// Case is ignored.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mouse":
		return Mouse, nil
	case "touch":
		return Touch, nil
	case "pen", "stylus":
		return Pen, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case Mouse, Touch, Pen:
		return []byte(m.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
