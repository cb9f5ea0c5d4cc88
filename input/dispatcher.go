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

// Handler is called for every event a listener is registered for.
type Handler func(Event)

// ListenerID identifies a registered listener.  The zero value is never
// returned by AddListener.
type ListenerID uint64

// Target is a source of native input events, such as a window or a
// widget.
type Target interface {
	// AddListener registers h for events with the given source and phase.
	AddListener(src Source, phase Phase, h Handler) ListenerID

	// RemoveListener unregisters a listener.  Unknown ids are ignored.
	// Once RemoveListener returns, the handler is not called again, even
	// if an event is currently being dispatched.
	RemoveListener(id ListenerID)
}

type listener struct {
	id      ListenerID
	src     Source
	phase   Phase
	h       Handler
	removed bool
}

// Dispatcher is an in-process Target.  Hosts feed it events with
// Dispatch.  Listeners are called in registration order.
//
// A Dispatcher is not safe for concurrent use.
type Dispatcher struct {
	next      ListenerID
	listeners []*listener
}

// NewDispatcher returns a Dispatcher without listeners.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// AddListener implements Target.
func (d *Dispatcher) AddListener(src Source, phase Phase, h Handler) ListenerID {
	d.next++
	d.listeners = append(d.listeners, &listener{
		id:    d.next,
		src:   src,
		phase: phase,
		h:     h,
	})
	return d.next
}

// RemoveListener implements Target.
func (d *Dispatcher) RemoveListener(id ListenerID) {
	for i, l := range d.listeners {
		if l.id == id {
			l.removed = true
			d.listeners = append(d.listeners[:i:i], d.listeners[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered listeners.
func (d *Dispatcher) Len() int {
	return len(d.listeners)
}

// Dispatch delivers ev to every listener registered for its source and
// phase.  Listeners added during the dispatch see only later events;
// listeners removed during the dispatch are skipped.
func (d *Dispatcher) Dispatch(ev Event) {
	var todo []*listener
	for _, l := range d.listeners {
		if l.src == ev.Source && l.phase == ev.Phase {
			todo = append(todo, l)
		}
	}
	for _, l := range todo {
		if l.removed {
			continue
		}
		l.h(ev)
	}
}
