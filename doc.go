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

// Package sketch implements a freehand drawing and annotation surface.
//
// A [Canvas] listens to the mouse, touch and stylus events of an
// [input.Target].  Only events from the device the user selected are
// used for drawing.  Each pointer move while a stroke is in progress adds
// one straight, round-capped segment to a raster [surface.Surface], either
// painting with the pen colour or erasing.  A pointer indicator follows
// every move, and the surface can be exported as a PNG image at any time.
//
// Changing the device mode or the tool goes through [Canvas.Reconfigure].
// This abandons a stroke in progress and replaces all event listeners,
// so that no stroke started under one configuration continues under
// another.
//
// The Canvas is driven from the host's event loop and is not safe for
// concurrent use.  Only the storage step of an export runs in the
// background.
package sketch
