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

// Command replay plays the built-in scenarios and writes the resulting
// images to a directory.
//
// For every scenario, the final surface is written as
// <category>_<name>.png.  Images exported by the scenario itself are
// written as <category>_<name>_<export name>.  With -pdf, a PDF version
// of every image is written as well.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/config"
	"seehuhn.de/go/sketch/export"
	"seehuhn.de/go/sketch/scenarios"
)

func main() {
	configFile := flag.String("config", "sketch.toml", "configuration file")
	outDir := flag.String("out", "", "output directory (default from the configuration)")
	withPDF := flag.Bool("pdf", false, "also write PDF files")
	only := flag.String("only", "", "only play scenarios whose name contains this string")
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

	dir := cfg.Export.Dir
	if *outDir != "" {
		dir = *outDir
	}
	var sink export.Sink = export.FileSink{Dir: dir}
	if *withPDF || cfg.Export.PDF {
		sink = export.Tee(sink, export.PDFSink{Next: sink})
	}

	n, err := run(context.Background(), sink, logger, *only)
	if err != nil {
		logger.Error("replay failed", "error", err)
		os.Exit(1)
	}
	logger.Info("done", "scenarios", n, "dir", dir)
}

// run plays all matching scenarios and returns how many were played.
func run(ctx context.Context, sink export.Sink, logger *slog.Logger, only string) (int, error) {
	count := 0
	for _, category := range slices.Sorted(maps.Keys(scenarios.All)) {
		for _, sc := range scenarios.All[category] {
			name := category + "_" + sc.Name
			if only != "" && !strings.Contains(name, only) {
				continue
			}

			prefixed := export.SinkFunc(func(ctx context.Context, file string, data []byte) error {
				return sink.Write(ctx, name+"_"+file, data)
			})
			res, err := sketch.Play(ctx, sc,
				sketch.WithSink(prefixed),
				sketch.WithLogger(logger.With("scenario", name)))
			if err != nil {
				return count, err
			}

			data, err := res.Canvas.Surface().EncodePNG()
			if err == nil {
				err = sink.Write(ctx, name+".png", data)
			}
			res.Canvas.Close()
			if err != nil {
				return count, fmt.Errorf("%s: %w", name, err)
			}

			if len(res.Segments) != sc.Segments {
				logger.Warn("unexpected segment count",
					"scenario", name,
					"got", len(res.Segments),
					"want", sc.Segments)
			}
			count++
		}
	}
	return count, nil
}
