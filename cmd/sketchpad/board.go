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

package main

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/input"
)

// board is a fyne widget which shows a sketch.Canvas and feeds it with
// the window system's pointer events.
type board struct {
	widget.BaseWidget

	events *input.Dispatcher
	canvas *sketch.Canvas
	size   fyne.Size

	// touching is set between TouchDown and TouchUp, so that drag events
	// can be attributed to the touch screen.
	touching bool
}

var (
	_ fyne.Widget       = (*board)(nil)
	_ fyne.Draggable    = (*board)(nil)
	_ desktop.Mouseable = (*board)(nil)
	_ desktop.Hoverable = (*board)(nil)
	_ mobile.Touchable  = (*board)(nil)
)

func newBoard(events *input.Dispatcher, c *sketch.Canvas) *board {
	b := c.Surface().Bounds()
	w := &board{
		events: events,
		canvas: c,
		size:   fyne.NewSize(float32(b.Dx()), float32(b.Dy())),
	}
	w.ExtendBaseWidget(w)
	return w
}

func (w *board) dispatch(src input.Source, phase input.Phase, pos fyne.Position) {
	w.events.Dispatch(input.Event{
		Source: src,
		Phase:  phase,
		X:      float64(pos.X),
		Y:      float64(pos.Y),
	})
	w.Refresh()
}

// MouseDown implements desktop.Mouseable.
func (w *board) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.dispatch(input.SourceMouse, input.Start, e.Position)
	}
}

// MouseUp implements desktop.Mouseable.
func (w *board) MouseUp(e *desktop.MouseEvent) {
	w.dispatch(input.SourceMouse, input.End, e.Position)
}

// MouseIn implements desktop.Hoverable.
func (w *board) MouseIn(e *desktop.MouseEvent) {
	w.dispatch(input.SourceMouse, input.Move, e.Position)
}

// MouseMoved implements desktop.Hoverable.
func (w *board) MouseMoved(e *desktop.MouseEvent) {
	w.dispatch(input.SourceMouse, input.Move, e.Position)
}

// MouseOut implements desktop.Hoverable.
func (w *board) MouseOut() {}

// Dragged implements fyne.Draggable.
func (w *board) Dragged(e *fyne.DragEvent) {
	src := input.SourceMouse
	if w.touching {
		src = input.SourceTouch
	}
	w.dispatch(src, input.Move, e.Position)
}

// DragEnd implements fyne.Draggable.
func (w *board) DragEnd() {
	src := input.SourceMouse
	if w.touching {
		src = input.SourceTouch
	}
	last, _ := w.canvas.Session().LastPoint()
	w.dispatch(src, input.End, fyne.NewPos(float32(last.X), float32(last.Y)))
}

// TouchDown implements mobile.Touchable.
func (w *board) TouchDown(e *mobile.TouchEvent) {
	w.touching = true
	w.dispatch(input.SourceTouch, input.Start, e.Position)
}

// TouchUp implements mobile.Touchable.
func (w *board) TouchUp(e *mobile.TouchEvent) {
	w.touching = false
	w.dispatch(input.SourceTouch, input.End, e.Position)
}

// TouchCancel implements mobile.Touchable.
func (w *board) TouchCancel(e *mobile.TouchEvent) {
	w.touching = false
	w.dispatch(input.SourceTouch, input.End, e.Position)
}

// CreateRenderer implements fyne.Widget.
func (w *board) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{
		board:      w,
		background: canvas.NewRectangle(color.White),
		image:      canvas.NewImageFromImage(w.frame()),
	}
	r.image.FillMode = canvas.ImageFillStretch
	r.image.ScaleMode = canvas.ImageScalePixels
	return r
}

// frame returns the current surface with the pointer indicator on top.
func (w *board) frame() image.Image {
	surf := w.canvas.Surface()
	if surf == nil {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	img := surf.Snapshot()
	w.canvas.Overlay().Draw(img)
	return img
}

type boardRenderer struct {
	board      *board
	background *canvas.Rectangle
	image      *canvas.Image
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.image}
}

func (r *boardRenderer) Layout(fyne.Size) {
	r.background.Resize(r.board.size)
	r.image.Resize(r.board.size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return r.board.size
}

func (r *boardRenderer) Refresh() {
	r.image.Image = r.board.frame()
	r.image.Refresh()
}

func (r *boardRenderer) Destroy() {}
