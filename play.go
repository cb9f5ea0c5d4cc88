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

	"seehuhn.de/go/sketch/export"
	"seehuhn.de/go/sketch/input"
	"seehuhn.de/go/sketch/scenarios"
	"seehuhn.de/go/sketch/stroke"
)

// Result is the outcome of Play.
type Result struct {
	// Canvas is the canvas the scenario was played on.  Unless Play
	// failed, it is still open and listening to Target.
	Canvas *Canvas

	// Target is the dispatcher which delivered the scenario events.
	Target *input.Dispatcher

	// Segments lists all segments drawn, in order.
	Segments []stroke.Segment

	// Exports maps the names of the exported images to their data.
	Exports map[string][]byte
}

// discard is the sink used by Play if none is given.
var discard = export.SinkFunc(func(context.Context, string, []byte) error {
	return nil
})

// Play runs a scenario on a new Canvas.  The options are applied after
// the scenario's own settings; a commit hook given in opts is replaced.
// Without a WithSink option, exported images are only kept in memory.
//
// Play waits for all exports to be stored before returning.  If a step
// or an export fails, the canvas is closed and the partial result is
// returned together with the error.
func Play(ctx context.Context, sc scenarios.Scenario, opts ...Option) (*Result, error) {
	res := &Result{
		Target:  input.NewDispatcher(),
		Exports: make(map[string][]byte),
	}

	all := []Option{
		WithMode(sc.Mode),
		WithTool(sc.Tool),
		WithSink(discard),
	}
	all = append(all, opts...)
	all = append(all, WithCommitHook(func(seg stroke.Segment, _ stroke.Tool) {
		res.Segments = append(res.Segments, seg)
	}))

	c, err := New(res.Target, sc.Caps, sc.Width, sc.Height, all...)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	res.Canvas = c

	var jobs []*export.Job
	for i, step := range sc.Steps {
		switch step := step.(type) {
		case scenarios.Dispatch:
			res.Target.Dispatch(input.Event(step))
		case scenarios.Reconfigure:
			err = c.Reconfigure(step.Mode, step.Tool)
		case scenarios.Export:
			var job *export.Job
			job, err = c.Export(ctx, step.Name)
			if err == nil {
				res.Exports[step.Name] = job.Data
				jobs = append(jobs, job)
			}
		default:
			err = fmt.Errorf("unknown step type %T", step)
		}
		if err != nil {
			c.Close()
			return res, fmt.Errorf("scenario %s, step %d: %w", sc.Name, i, err)
		}
	}

	var errs []error
	for _, job := range jobs {
		errs = append(errs, job.Wait())
	}
	if err := errors.Join(errs...); err != nil {
		c.Close()
		return res, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	return res, nil
}
