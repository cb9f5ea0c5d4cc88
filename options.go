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
	"log/slog"

	"seehuhn.de/go/sketch/export"
	"seehuhn.de/go/sketch/input"
	"seehuhn.de/go/sketch/stroke"
)

// Option configures a Canvas.
type Option func(*options)

type options struct {
	logger *slog.Logger
	sink   export.Sink
	commit func(stroke.Segment, stroke.Tool)
	tool   stroke.Tool
	mode   input.Mode
}

// WithLogger sets the logger.  By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSink sets where exported images are stored.  Without a sink,
// Export fails with export.ErrNoSink.
func WithSink(sink export.Sink) Option {
	return func(o *options) {
		o.sink = sink
	}
}

// WithCommitHook registers a function which is called for every segment
// drawn, together with the tool used to draw it.
func WithCommitHook(hook func(stroke.Segment, stroke.Tool)) Option {
	return func(o *options) {
		o.commit = hook
	}
}

// WithTool sets the initial tool.  The default is stroke.DefaultTool.
func WithTool(t stroke.Tool) Option {
	return func(o *options) {
		o.tool = t
	}
}

// WithMode sets the initial device mode.  The default is input.Mouse.
func WithMode(m input.Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}
