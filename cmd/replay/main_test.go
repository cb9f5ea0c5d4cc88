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
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/sketch/export"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	fs := export.FileSink{Dir: dir}
	sink := export.Tee(fs, export.PDFSink{Next: fs})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	n, err := run(context.Background(), sink, logger, "snapshot")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	for _, name := range []string{
		"export_snapshot_at_call_time.png",
		"export_snapshot_at_call_time.pdf",
		"export_snapshot_at_call_time_first.png",
		"export_snapshot_at_call_time_first.pdf",
		"export_snapshot_at_call_time_second.png",
		"export_snapshot_at_call_time_second.pdf",
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}
