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

// Package export saves the contents of a drawing surface.
//
// The pixels are read and encoded synchronously when an export is
// requested.  Writing the encoded image happens in the background, so
// that drawing can continue while the data is stored.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// ErrNoSink is returned when an export is requested without a sink.
var ErrNoSink = errors.New("export: no sink configured")

// Source is something which can be encoded as a PNG image.
// *surface.Surface implements this interface.
type Source interface {
	EncodePNG() ([]byte, error)
}

// Service exports a Source to a Sink.
type Service struct {
	src    Source
	sink   Sink
	logger *slog.Logger

	wg sync.WaitGroup
}

// NewService returns a Service which writes images of src to sink.
// If logger is nil, nothing is logged.
func NewService(src Source, sink Sink, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{src: src, sink: sink, logger: logger}
}

// Job is a single export.
type Job struct {
	// Name is the file name passed to the sink.
	Name string

	// Data is the encoded image, as read when the export was started.
	Data []byte

	done chan struct{}
	err  error
}

// Done returns a channel which is closed once the sink has finished.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Wait blocks until the sink has finished and returns its error.
func (j *Job) Wait() error {
	<-j.done
	return j.err
}

// Export encodes the current contents of the source and starts writing
// them to the sink.  Changes to the source after Export returns do not
// affect the exported image.
//
// An error is returned if the image cannot be encoded.  Errors from the
// sink are reported by Job.Wait.
func (s *Service) Export(ctx context.Context, name string) (*Job, error) {
	if s.sink == nil {
		return nil, fmt.Errorf("export %q: %w", name, ErrNoSink)
	}
	data, err := s.src.EncodePNG()
	if err != nil {
		return nil, fmt.Errorf("export %q: %w", name, err)
	}

	job := &Job{
		Name: name,
		Data: data,
		done: make(chan struct{}),
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(job.done)

		start := time.Now()
		err := s.sink.Write(ctx, name, data)
		if err != nil {
			job.err = fmt.Errorf("export %q: %w", name, err)
			s.logger.Error("export failed", "name", name, "error", err)
			return
		}
		s.logger.Info("exported",
			"name", name,
			"bytes", len(data),
			"duration", time.Since(start))
	}()
	return job, nil
}

// Save exports the source and waits for the sink to finish.
func (s *Service) Save(ctx context.Context, name string) error {
	job, err := s.Export(ctx, name)
	if err != nil {
		return err
	}
	return job.Wait()
}

// Wait blocks until all exports started so far have finished.
func (s *Service) Wait() {
	s.wg.Wait()
}
