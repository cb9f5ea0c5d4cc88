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

package sketch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"seehuhn.de/go/sketch/export"
	"seehuhn.de/go/sketch/input"
	"seehuhn.de/go/sketch/overlay"
	"seehuhn.de/go/sketch/stroke"
	"seehuhn.de/go/sketch/surface"
)

var (
	// ErrNoSurface is returned by New if the drawing surface cannot be
	// created.
	ErrNoSurface = errors.New("sketch: drawing surface unavailable")

	// ErrClosed is returned by methods of a closed Canvas.
	ErrClosed = errors.New("sketch: canvas closed")
)

// sources lists the event families a Canvas listens to.
var sources = []input.Source{
	input.SourceMouse,
	input.SourceTouch,
	input.SourcePointer,
}

// State is the configuration chosen by the user.  Event handlers read
// the current State whenever an event arrives.
type State struct {
	Mode input.Mode
	Tool stroke.Tool
}

// Canvas is a drawing surface driven by input events.
type Canvas struct {
	target   input.Target
	surf     *surface.Surface
	renderer *stroke.Renderer
	session  stroke.Session
	overlay  *overlay.Overlay
	exporter *export.Service
	logger   *slog.Logger

	state *State
	modes []input.Mode
	bound []input.ListenerID

	closed bool
}

// New creates a Canvas of the given size and starts listening to events
// from target.  The device modes offered are determined from caps.
//
// If the surface cannot be created, New returns an error wrapping
// ErrNoSurface and no listeners are registered.
func New(target input.Target, caps input.Capabilities, width, height int, opts ...Option) (*Canvas, error) {
	o := &options{
		tool: stroke.DefaultTool,
		mode: input.Mouse,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := o.tool.Validate(); err != nil {
		return nil, err
	}

	surf, err := surface.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoSurface, err)
	}

	c := &Canvas{
		target:   target,
		surf:     surf,
		renderer: stroke.NewRenderer(surf),
		overlay:  overlay.New(o.tool),
		exporter: export.NewService(surf, o.sink, o.logger),
		logger:   o.logger,
		state:    &State{Mode: o.mode, Tool: o.tool},
		modes:    input.Detect(caps),
	}
	c.renderer.Commit = o.commit
	c.bind()

	c.logger.Debug("canvas created",
		"width", width,
		"height", height,
		"modes", c.modes,
		"mode", o.mode)
	return c, nil
}

// bind registers a fresh set of listeners.
func (c *Canvas) bind() {
	for _, src := range sources {
		c.bound = append(c.bound,
			c.target.AddListener(src, input.Start, c.onStart),
			c.target.AddListener(src, input.Move, c.onMove),
			c.target.AddListener(src, input.End, c.onEnd),
		)
	}
}

// unbind removes all listeners registered by bind.
func (c *Canvas) unbind() {
	for _, id := range c.bound {
		c.target.RemoveListener(id)
	}
	c.bound = c.bound[:0]
}

func (c *Canvas) onStart(ev input.Event) {
	if !input.Accept(c.state.Mode, ev) {
		return
	}
	if c.session.Active() {
		c.logger.Debug("stroke restarted", "stroke", c.session.ID())
	}
	c.session.Begin(ev.Point())
	c.logger.Debug("stroke begin",
		"stroke", c.session.ID(),
		"mode", c.state.Mode,
		"tool", c.state.Tool)
}

func (c *Canvas) onMove(ev input.Event) {
	c.overlay.Move(ev.X, ev.Y)
	if !input.Accept(c.state.Mode, ev) {
		return
	}
	seg, ok := c.session.Extend(ev.Point())
	if !ok {
		return
	}
	c.renderer.Draw(seg, c.state.Tool)
}

func (c *Canvas) onEnd(input.Event) {
	id := c.session.ID()
	if c.session.End() {
		c.logger.Debug("stroke end", "stroke", id)
	}
}

// Reconfigure switches to a new device mode and tool.  A stroke in
// progress is abandoned, all event listeners are replaced and the
// pointer indicator is hidden until the pointer moves again.
//
// If t is not valid, an error wrapping stroke.ErrInvalidWidth is
// returned and the configuration is unchanged.
func (c *Canvas) Reconfigure(mode input.Mode, t stroke.Tool) error {
	if c.closed {
		return ErrClosed
	}
	if err := t.Validate(); err != nil {
		return err
	}

	id := c.session.ID()
	if c.session.Abort() {
		c.logger.Debug("stroke aborted", "stroke", id)
	}
	c.unbind()
	c.state.Mode = mode
	c.state.Tool = t
	c.bind()
	c.overlay.Reset(t)

	c.logger.Debug("reconfigured", "mode", mode, "tool", t)
	return nil
}

// SetMode changes the device mode and keeps the tool.
func (c *Canvas) SetMode(mode input.Mode) error {
	return c.Reconfigure(mode, c.state.Tool)
}

// SetTool changes the tool and keeps the device mode.
func (c *Canvas) SetTool(t stroke.Tool) error {
	return c.Reconfigure(c.state.Mode, t)
}

// State returns the current configuration.
func (c *Canvas) State() State {
	return *c.state
}

// Modes returns the device modes usable on this platform, Mouse first.
func (c *Canvas) Modes() []input.Mode {
	return slices.Clone(c.modes)
}

// Surface returns the drawing surface.  It returns nil after Close.
func (c *Canvas) Surface() *surface.Surface {
	return c.surf
}

// Overlay returns the pointer indicator.
func (c *Canvas) Overlay() *overlay.Overlay {
	return c.overlay
}

// Session returns the stroke session.
func (c *Canvas) Session() *stroke.Session {
	return &c.session
}

// Export encodes the current surface as PNG and starts storing it under
// the given name.  Strokes drawn after Export returns are not part of
// the image.
func (c *Canvas) Export(ctx context.Context, name string) (*export.Job, error) {
	if c.closed {
		return nil, ErrClosed
	}
	return c.exporter.Export(ctx, name)
}

// Save exports the surface and waits until the image is stored.
func (c *Canvas) Save(ctx context.Context, name string) error {
	if c.closed {
		return ErrClosed
	}
	return c.exporter.Save(ctx, name)
}

// Close removes all event listeners, waits for running exports to finish
// and releases the surface.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.session.Abort()
	c.unbind()
	c.exporter.Wait()
	c.surf = nil
	c.logger.Debug("canvas closed")
	return nil
}
