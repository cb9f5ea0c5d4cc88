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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/sketch/export"
	"seehuhn.de/go/sketch/input"
	"seehuhn.de/go/sketch/scenarios"
	"seehuhn.de/go/sketch/stroke"
)

func TestPlayFailureClosesCanvas(t *testing.T) {
	errSink := errors.New("disk full")
	badTool := stroke.DefaultTool
	badTool.LineWidth = -1

	cases := []struct {
		name  string
		steps []scenarios.Step
		opts  []Option
		want  error
	}{
		{
			name: "invalid_tool",
			steps: []scenarios.Step{
				scenarios.Dispatch{Source: input.SourceMouse, Phase: input.Start, X: 4, Y: 4},
				scenarios.Reconfigure{Mode: input.Mouse, Tool: badTool},
			},
			want: stroke.ErrInvalidWidth,
		},
		{
			name:  "sink_error",
			steps: []scenarios.Step{scenarios.Export{Name: "a.png"}},
			opts: []Option{WithSink(export.SinkFunc(func(context.Context, string, []byte) error {
				return errSink
			}))},
			want: errSink,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sc := scenarios.Scenario{
				Name:   c.name,
				Width:  16,
				Height: 16,
				Mode:   input.Mouse,
				Tool:   stroke.DefaultTool,
				Steps:  c.steps,
			}
			res, err := Play(context.Background(), sc, c.opts...)
			require.ErrorIs(t, err, c.want)
			require.NotNil(t, res)

			assert.Zero(t, res.Target.Len())
			assert.Nil(t, res.Canvas.Surface())
			assert.False(t, res.Canvas.Session().Active())
			_, err = res.Canvas.Export(context.Background(), "late.png")
			assert.ErrorIs(t, err, ErrClosed)
		})
	}
}
