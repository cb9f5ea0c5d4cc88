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

// Command sketchpad opens a window with a drawing surface.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/config"
	"seehuhn.de/go/sketch/export"
	"seehuhn.de/go/sketch/input"
	"seehuhn.de/go/sketch/stroke"
)

// fyneCaps reports the input hardware known to fyne.  Fyne does not
// identify stylus input, so Pen mode is never offered.
type fyneCaps struct{}

func (fyneCaps) MaxTouchPoints() int {
	if fyne.CurrentDevice().IsMobile() {
		return 10
	}
	return 0
}

func (fyneCaps) PointerEvents() bool {
	return false
}

func main() {
	configFile := flag.String("config", "sketch.toml", "configuration file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := cfg.Log.NewLogger(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a := app.New()
	win := a.NewWindow("Sketchpad")

	var sink export.Sink = export.FileSink{Dir: cfg.Export.Dir}
	if cfg.Export.PDF {
		sink = export.Tee(sink, export.PDFSink{Next: sink})
	}
	events := input.NewDispatcher()
	c, err := sketch.New(events, fyneCaps{}, cfg.Canvas.Width, cfg.Canvas.Height,
		sketch.WithLogger(logger),
		sketch.WithSink(sink),
		sketch.WithMode(cfg.Tool.Mode),
		sketch.WithTool(cfg.Tool.Tool()))
	if err != nil {
		logger.Error("cannot create canvas", "error", err)
		os.Exit(1)
	}
	defer c.Close()

	b := newBoard(events, c)
	status := widget.NewLabel("Ready")
	toolbar := newToolbar(c, b, win, status, cfg.Export.Name, logger)

	win.SetContent(container.NewBorder(toolbar, status, nil, nil, b))
	win.ShowAndRun()
}

var palette = []struct {
	name  string
	color config.Color
}{
	{"black", config.Color{A: 0xff}},
	{"red", config.Color{R: 0xd0, G: 0x20, B: 0x20, A: 0xff}},
	{"green", config.Color{R: 0x20, G: 0xa0, B: 0x40, A: 0xff}},
	{"blue", config.Color{R: 0x20, G: 0x40, B: 0xd0, A: 0xff}},
}

func newToolbar(c *sketch.Canvas, b *board, win fyne.Window, status *widget.Label, exportName string, logger *slog.Logger) fyne.CanvasObject {
	setTool := func(update func(t *stroke.Tool)) {
		t := c.State().Tool
		update(&t)
		if err := c.SetTool(t); err != nil {
			dialog.ShowError(err, win)
		}
		b.Refresh()
	}

	var modeNames []string
	for _, m := range c.Modes() {
		modeNames = append(modeNames, m.String())
	}
	modeSelect := widget.NewSelect(modeNames, func(name string) {
		m, err := input.ParseMode(name)
		if err == nil {
			err = c.SetMode(m)
		}
		if err != nil {
			dialog.ShowError(err, win)
		}
		b.Refresh()
	})
	modeSelect.SetSelected(c.State().Mode.String())

	var colorNames []string
	for _, p := range palette {
		colorNames = append(colorNames, p.name)
	}
	colorSelect := widget.NewSelect(colorNames, func(name string) {
		for _, p := range palette {
			if p.name == name {
				setTool(func(t *stroke.Tool) { t.Color = p.color.NRGBA() })
			}
		}
	})

	width := widget.NewSlider(1, 60)
	width.Value = c.State().Tool.Width()
	width.OnChanged = func(v float64) {
		setTool(func(t *stroke.Tool) {
			if t.Erase {
				t.EraserWidth = v
			} else {
				t.LineWidth = v
			}
		})
	}

	eraser := widget.NewCheck("Eraser", func(on bool) {
		setTool(func(t *stroke.Tool) { t.Erase = on })
		width.SetValue(c.State().Tool.Width())
	})

	clearButton := widget.NewButton("Clear", func() {
		c.Surface().Clear()
		b.Refresh()
	})

	exportButton := widget.NewButton("Export", func() {
		job, err := c.Export(context.Background(), exportName)
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		status.SetText("Exporting " + exportName + " ...")
		go func() {
			err := job.Wait()
			fyne.Do(func() {
				if err != nil {
					status.SetText("Export failed")
					dialog.ShowError(err, win)
					return
				}
				status.SetText(fmt.Sprintf("Exported %s (%d bytes)", exportName, len(job.Data)))
			})
		}()
		logger.Debug("export requested", "name", exportName)
	})

	widthBox := container.NewGridWrap(fyne.NewSize(160, width.MinSize().Height), width)
	return container.NewHBox(modeSelect, colorSelect, widthBox, eraser, clearButton, exportButton)
}
