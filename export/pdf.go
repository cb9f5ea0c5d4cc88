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
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/png" // register the PNG decoder for image.DecodeConfig
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// pointsPerPixel maps surface pixels to PDF points, assuming 96 pixels
// per inch.
const pointsPerPixel = 72.0 / 96.0

// PDFSink embeds PNG images into single-page PDF documents and passes
// the result on to Next.  The page has the size of the image.  The
// ".png" extension of the name, if any, is replaced by ".pdf".
type PDFSink struct {
	Next Sink
}

// Write implements Sink.
func (ps PDFSink) Write(ctx context.Context, name string, data []byte) error {
	pdfData, err := toPDF(data)
	if err != nil {
		return err
	}
	return ps.Next.Write(ctx, pdfName(name), pdfData)
}

func pdfName(name string) string {
	ext := filepath.Ext(name)
	if strings.EqualFold(ext, ".png") {
		name = name[:len(name)-len(ext)]
	}
	return name + ".pdf"
}

func toPDF(pngData []byte) ([]byte, error) {
	cfg, err := image.DecodeConfig(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	w := float64(cfg.Width) * pointsPerPixel
	h := float64(cfg.Height) * pointsPerPixel

	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("sketch", opt, bytes.NewReader(pngData))
	p.ImageOptions("sketch", 0, 0, w, h, false, opt, 0, "")

	buf := &bytes.Buffer{}
	if err := p.Output(buf); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	return buf.Bytes(), nil
}
