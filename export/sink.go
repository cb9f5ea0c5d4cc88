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

package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrBadName is returned by FileSink for names which are not plain file
// names.
var ErrBadName = errors.New("export: invalid file name")

// Sink stores exported data under a name.
type Sink interface {
	Write(ctx context.Context, name string, data []byte) error
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(ctx context.Context, name string, data []byte) error

// Write implements Sink.
func (f SinkFunc) Write(ctx context.Context, name string, data []byte) error {
	return f(ctx, name, data)
}

// FileSink writes files into a directory.  Files are written to a
// temporary name first and then renamed, so that readers never see a
// partial file.
type FileSink struct {
	Dir string
}

// Write implements Sink.
func (fs FileSink) Write(ctx context.Context, name string, data []byte) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := fs.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = ctx.Err()
	}
	if err == nil {
		err = os.Chmod(tmpName, 0o644)
	}
	if err == nil {
		err = os.Rename(tmpName, filepath.Join(dir, name))
	}
	if err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Tee returns a Sink which writes to all the given sinks, one after the
// other.  All sinks are tried; the errors are joined.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(ctx context.Context, name string, data []byte) error {
		var errs []error
		for _, s := range sinks {
			if err := s.Write(ctx, name, data); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}
