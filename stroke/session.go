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

// Package stroke turns a sequence of accepted pointer positions into
// straight line segments and draws them.
package stroke

import (
	"github.com/google/uuid"

	"seehuhn.de/go/geom/vec"
)

// Segment is a straight piece of a stroke.
type Segment struct {
	From, To vec.Vec2
}

// Session tracks a single continuous gesture.  A session is either idle
// or drawing; while drawing it remembers the last point, so that every
// new point can be joined to it.
//
// The zero value is an idle session.
type Session struct {
	active bool
	last   vec.Vec2
	id     uuid.UUID
}

// Begin starts drawing at p.  A stroke which is already in progress is
// dropped and a new one starts at p.
func (s *Session) Begin(p vec.Vec2) {
	s.active = true
	s.last = p
	s.id = uuid.New()
}

// Extend continues the stroke to p and returns the segment from the
// previous point to p.  If the session is idle, Extend does nothing and
// returns false.
func (s *Session) Extend(p vec.Vec2) (Segment, bool) {
	if !s.active {
		return Segment{}, false
	}
	seg := Segment{From: s.last, To: p}
	s.last = p
	return seg, true
}

// End finishes the stroke.  It reports whether a stroke was in progress.
func (s *Session) End() bool {
	wasActive := s.active
	s.reset()
	return wasActive
}

// Abort abandons the stroke in progress, without drawing anything.  It
// reports whether a stroke was in progress.
func (s *Session) Abort() bool {
	return s.End()
}

func (s *Session) reset() {
	s.active = false
	s.last = vec.Vec2{}
	s.id = uuid.Nil
}

// Active reports whether a stroke is in progress.
func (s *Session) Active() bool {
	return s.active
}

// LastPoint returns the most recent point of the stroke in progress.
// The second return value is false if the session is idle.
func (s *Session) LastPoint() (vec.Vec2, bool) {
	return s.last, s.active
}

// ID identifies the stroke in progress.  It is uuid.Nil while idle.
func (s *Session) ID() uuid.UUID {
	return s.id
}
