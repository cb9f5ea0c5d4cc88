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
	"bytes"
	"context"
	"errors"
	"image/color"
	"image/png"
	"log/slog"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/export"
	"seehuhn.de/go/sketch/input"
	"seehuhn.de/go/sketch/scenarios"
	"seehuhn.de/go/sketch/stroke"
	"seehuhn.de/go/sketch/surface"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

type commit struct {
	seg  stroke.Segment
	tool stroke.Tool
}

// setup returns a canvas listening to a fresh dispatcher, together with
// the list of committed segments.
func setup(t *testing.T, caps input.Capabilities, opts ...Option) (*Canvas, *input.Dispatcher, *[]commit) {
	t.Helper()
	var commits []commit
	d := input.NewDispatcher()
	opts = append(opts, WithCommitHook(func(seg stroke.Segment, tool stroke.Tool) {
		commits = append(commits, commit{seg, tool})
	}))
	c, err := New(d, caps, 64, 64, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c, d, &commits
}

func ev(src input.Source, phase input.Phase, x, y float64) input.Event {
	e := input.Event{Source: src, Phase: phase, X: x, Y: y}
	if src == input.SourcePointer {
		e.PointerType = input.PointerPen
	}
	return e
}

func hasInk(t *testing.T, data []byte, x, y int) bool {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	_, _, _, a := img.At(x, y).RGBA()
	return a != 0
}

func TestScenarios(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(scenarios.All)) {
		for _, sc := range scenarios.All[category] {
			t.Run(category+"_"+sc.Name, func(t *testing.T) {
				res, err := Play(context.Background(), sc)
				require.NoError(t, err)
				defer res.Canvas.Close()

				assert.Len(t, res.Segments, sc.Segments)
				assert.Equal(t, sc.Active, res.Canvas.Session().Active())
				_, hasLast := res.Canvas.Session().LastPoint()
				assert.Equal(t, sc.Active, hasLast)

				for _, p := range sc.Probes {
					var ink bool
					if p.Export == "" {
						ink = res.Canvas.Surface().At(p.X, p.Y).A != 0
					} else {
						data, ok := res.Exports[p.Export]
						require.True(t, ok, "missing export %q", p.Export)
						ink = hasInk(t, data, p.X, p.Y)
					}
					assert.Equal(t, p.Ink, ink, "probe %+v", p)
				}
			})
		}
	}
}

// TestMouseSegment draws a single red segment with the mouse.
func TestMouseSegment(t *testing.T) {
	tool := stroke.Tool{Color: red, LineWidth: 4, EraserWidth: 20}
	c, d, commits := setup(t, nil, WithTool(tool))

	d.Dispatch(ev(input.SourceMouse, input.Start, 10, 10))
	d.Dispatch(ev(input.SourceMouse, input.Move, 20, 10))
	d.Dispatch(ev(input.SourceMouse, input.End, 20, 10))

	require.Len(t, *commits, 1)
	got := (*commits)[0]
	assert.Equal(t, stroke.Segment{From: vec.Vec2{X: 10, Y: 10}, To: vec.Vec2{X: 20, Y: 10}}, got.seg)
	assert.Equal(t, tool, got.tool)
	assert.False(t, c.Session().Active())
	assert.Equal(t, red, c.Surface().At(15, 10))
}

// TestPenEraserSegment erases with a stylus.
func TestPenEraserSegment(t *testing.T) {
	tool := stroke.Tool{Color: red, LineWidth: 4, EraserWidth: 20, Erase: true}
	c, d, commits := setup(t, input.StaticCapabilities{Pointer: true},
		WithMode(input.Pen), WithTool(tool))

	d.Dispatch(ev(input.SourcePointer, input.Start, 5, 5))
	d.Dispatch(ev(input.SourcePointer, input.Move, 15, 5))

	require.Len(t, *commits, 1)
	got := (*commits)[0]
	assert.Equal(t, stroke.Segment{From: vec.Vec2{X: 5, Y: 5}, To: vec.Vec2{X: 15, Y: 5}}, got.seg)
	assert.True(t, got.tool.Erase)
	assert.Equal(t, 20.0, got.tool.Width())
	assert.True(t, c.Session().Active())
}

func TestEndIsNeverFiltered(t *testing.T) {
	caps := input.StaticCapabilities{TouchPoints: 5, Pointer: true}
	starts := map[input.Mode]input.Source{
		input.Mouse: input.SourceMouse,
		input.Touch: input.SourceTouch,
		input.Pen:   input.SourcePointer,
	}
	for mode, own := range starts {
		for _, src := range []input.Source{input.SourceMouse, input.SourceTouch, input.SourcePointer} {
			c, d, _ := setup(t, caps, WithMode(mode))
			d.Dispatch(ev(own, input.Start, 1, 1))
			require.True(t, c.Session().Active(), "mode %s", mode)

			end := ev(src, input.End, 1, 1)
			end.PointerType = input.PointerMouse
			d.Dispatch(end)
			assert.False(t, c.Session().Active(), "mode %s, end from %s", mode, src)
		}
	}
}

// TestIgnoredMovesLeaveSurfaceUnchanged checks moves while idle and
// moves from the wrong device.  Only the pointer indicator follows them.
func TestIgnoredMovesLeaveSurfaceUnchanged(t *testing.T) {
	c, d, commits := setup(t, input.StaticCapabilities{TouchPoints: 1, Pointer: true},
		WithMode(input.Touch))
	before := c.Surface().Snapshot()

	d.Dispatch(ev(input.SourceTouch, input.Move, 10, 10))
	assert.Equal(t, vec.Vec2{X: 10, Y: 10}, c.Overlay().Indicator().Center)

	d.Dispatch(ev(input.SourceTouch, input.Start, 5, 5))
	d.Dispatch(ev(input.SourceMouse, input.Move, 40, 40))
	d.Dispatch(ev(input.SourcePointer, input.Move, 50, 20))
	ind := c.Overlay().Indicator()
	assert.True(t, ind.Visible)
	assert.Equal(t, vec.Vec2{X: 50, Y: 20}, ind.Center)

	assert.Empty(t, *commits)
	assert.Equal(t, before.Pix, c.Surface().Snapshot().Pix)
	last, ok := c.Session().LastPoint()
	assert.True(t, ok)
	assert.Equal(t, vec.Vec2{X: 5, Y: 5}, last)
}

func TestModeSwitchAbortsStroke(t *testing.T) {
	c, d, commits := setup(t, input.StaticCapabilities{Pointer: true}, WithMode(input.Pen))

	d.Dispatch(ev(input.SourcePointer, input.Start, 0, 0))
	require.True(t, c.Session().Active())

	require.NoError(t, c.SetMode(input.Mouse))
	assert.False(t, c.Session().Active())
	_, ok := c.Session().LastPoint()
	assert.False(t, ok)

	d.Dispatch(ev(input.SourceMouse, input.Move, 20, 20))
	assert.Empty(t, *commits)
	assert.Equal(t, input.Mouse, c.State().Mode)
}

// TestNoStaleHandlers reconfigures several times and checks that every
// event is handled exactly once, under the newest configuration.
func TestNoStaleHandlers(t *testing.T) {
	c, d, commits := setup(t, nil)
	require.Equal(t, 9, d.Len())

	for _, w := range []float64{1, 2, 3, 5} {
		require.NoError(t, c.SetTool(stroke.Tool{Color: blue, LineWidth: w, EraserWidth: 10}))
		assert.Equal(t, 9, d.Len())
	}

	d.Dispatch(ev(input.SourceMouse, input.Start, 4, 4))
	d.Dispatch(ev(input.SourceMouse, input.Move, 30, 4))
	require.Len(t, *commits, 1)
	assert.Equal(t, 5.0, (*commits)[0].tool.LineWidth)
}

// TestReconfigureDuringDispatch changes the mode from a listener which
// sees the event before the canvas does, as a host toolbar might.  The
// canvas handlers bound before the change must not see that event.
func TestReconfigureDuringDispatch(t *testing.T) {
	d := input.NewDispatcher()
	var c *Canvas
	d.AddListener(input.SourceMouse, input.Move, func(input.Event) {
		if c.State().Mode == input.Mouse {
			require.NoError(t, c.SetMode(input.Pen))
		}
	})
	commits := 0
	c, err := New(d, input.StaticCapabilities{Pointer: true}, 64, 64,
		WithCommitHook(func(stroke.Segment, stroke.Tool) { commits++ }))
	require.NoError(t, err)
	defer c.Close()

	d.Dispatch(ev(input.SourceMouse, input.Start, 4, 4))
	require.True(t, c.Session().Active())
	d.Dispatch(ev(input.SourceMouse, input.Move, 30, 4))

	assert.Zero(t, commits)
	assert.False(t, c.Session().Active())
	assert.Equal(t, input.Pen, c.State().Mode)
	assert.Equal(t, 10, d.Len())
}

func TestStrokesAreImmutable(t *testing.T) {
	c, d, _ := setup(t, nil, WithTool(stroke.Tool{Color: red, LineWidth: 6, EraserWidth: 10}))

	d.Dispatch(ev(input.SourceMouse, input.Start, 4, 10))
	d.Dispatch(ev(input.SourceMouse, input.Move, 60, 10))
	d.Dispatch(ev(input.SourceMouse, input.End, 60, 10))
	require.Equal(t, red, c.Surface().At(30, 10))

	require.NoError(t, c.SetTool(stroke.Tool{Color: blue, LineWidth: 20, EraserWidth: 30}))
	require.NoError(t, c.SetTool(stroke.Tool{Color: blue, LineWidth: 20, EraserWidth: 30, Erase: true}))
	assert.Equal(t, red, c.Surface().At(30, 10))
}

func TestReconfigureInvalidTool(t *testing.T) {
	tool := stroke.Tool{Color: red, LineWidth: 4, EraserWidth: 20}
	c, d, _ := setup(t, nil, WithTool(tool))
	d.Dispatch(ev(input.SourceMouse, input.Start, 4, 4))

	err := c.Reconfigure(input.Touch, stroke.Tool{Color: blue, LineWidth: 0, EraserWidth: 5})
	assert.ErrorIs(t, err, stroke.ErrInvalidWidth)
	assert.Equal(t, State{Mode: input.Mouse, Tool: tool}, c.State())
	assert.True(t, c.Session().Active(), "a rejected change must not abort the stroke")
}

func TestReconfigureResetsOverlay(t *testing.T) {
	c, d, _ := setup(t, nil, WithTool(stroke.Tool{Color: red, LineWidth: 2, EraserWidth: 6}))
	d.Dispatch(ev(input.SourceMouse, input.Move, 3, 3))
	ind := c.Overlay().Indicator()
	require.True(t, ind.Visible)
	assert.Equal(t, 10.0, ind.Diameter)
	assert.Equal(t, red, ind.Color)

	require.NoError(t, c.SetTool(stroke.Tool{Color: red, LineWidth: 2, EraserWidth: 6, Erase: true}))
	ind = c.Overlay().Indicator()
	assert.False(t, ind.Visible)
	assert.Equal(t, 30.0, ind.Diameter)
	assert.Equal(t, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}, ind.Color)
}

func TestNewWithoutSurface(t *testing.T) {
	d := input.NewDispatcher()
	c, err := New(d, nil, 0, 100)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrNoSurface)
	assert.ErrorIs(t, err, surface.ErrSize)
	assert.Zero(t, d.Len(), "a failed canvas must not listen to events")

	_, err = New(d, nil, 10, 10, WithTool(stroke.Tool{LineWidth: -1, EraserWidth: 1}))
	assert.ErrorIs(t, err, stroke.ErrInvalidWidth)
	assert.Zero(t, d.Len())
}

func TestModes(t *testing.T) {
	c, _, _ := setup(t, input.StaticCapabilities{TouchPoints: 2, Pointer: true})
	modes := c.Modes()
	assert.Equal(t, []input.Mode{input.Mouse, input.Touch, input.Pen}, modes)
	modes[0] = input.Pen
	assert.Equal(t, input.Mouse, c.Modes()[0])

	c, _, _ = setup(t, nil)
	assert.Equal(t, []input.Mode{input.Mouse}, c.Modes())
}

func TestClose(t *testing.T) {
	d := input.NewDispatcher()
	c, err := New(d, nil, 16, 16)
	require.NoError(t, err)
	d.Dispatch(ev(input.SourceMouse, input.Start, 1, 1))

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.Zero(t, d.Len())
	assert.Nil(t, c.Surface())
	assert.False(t, c.Session().Active())

	assert.ErrorIs(t, c.SetMode(input.Touch), ErrClosed)
	_, err = c.Export(context.Background(), "x.png")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, c.Save(context.Background(), "x.png"), ErrClosed)
}

func TestExportFailure(t *testing.T) {
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	noSpace := errors.New("no space left")
	sink := export.SinkFunc(func(context.Context, string, []byte) error { return noSpace })

	c, d, _ := setup(t, nil, WithLogger(logger), WithSink(sink))
	d.Dispatch(ev(input.SourceMouse, input.Start, 4, 4))
	d.Dispatch(ev(input.SourceMouse, input.Move, 40, 4))

	before := c.Surface().Snapshot()
	err := c.Save(context.Background(), "sketch.png")
	assert.ErrorIs(t, err, noSpace)
	assert.Equal(t, before.Pix, c.Surface().Snapshot().Pix)

	// drawing continues after a failed export
	d.Dispatch(ev(input.SourceMouse, input.Move, 40, 40))
	assert.NotEqual(t, before.Pix, c.Surface().Snapshot().Pix)

	out := logs.String()
	assert.Contains(t, out, "stroke begin")
	assert.Contains(t, out, "export failed")
	assert.Contains(t, out, "no space left")
}

func TestExportWithoutSink(t *testing.T) {
	c, _, _ := setup(t, nil)
	_, err := c.Export(context.Background(), "x.png")
	assert.ErrorIs(t, err, export.ErrNoSink)
}
