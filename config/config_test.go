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

package config

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/sketch/input"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sketch.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
[canvas]
width = 320

[tool]
mode = "pen"
color = "#d0202080"
line_width = 3.5

[export]
dir = "out"
pdf = true

[log]
level = "debug"
format = "json"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Canvas.Width)
	assert.Equal(t, 600, cfg.Canvas.Height, "default kept")
	assert.Equal(t, input.Pen, cfg.Tool.Mode)

	tool := cfg.Tool.Tool()
	assert.Equal(t, color.NRGBA{R: 0xd0, G: 0x20, B: 0x20, A: 0x80}, tool.Color)
	assert.Equal(t, 3.5, tool.LineWidth)
	assert.Equal(t, Default().Tool.EraserWidth, tool.EraserWidth)
	assert.False(t, tool.Erase)

	assert.Equal(t, "out", cfg.Export.Dir)
	assert.Equal(t, "sketch.png", cfg.Export.Name)
	assert.True(t, cfg.Export.PDF)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":  "[canvas]\ndepth = 3\n",
		"bad mode":     "[tool]\nmode = \"trackpad\"\n",
		"bad colour":   "[tool]\ncolor = \"red\"\n",
		"zero width":   "[tool]\nline_width = 0\n",
		"bad size":     "[canvas]\nheight = -2\n",
		"bad level":    "[log]\nlevel = \"loud\"\n",
		"bad format":   "[log]\nformat = \"xml\"\n",
		"path in name": "[export]\nname = \"../x.png\"\n",
		"syntax":       "[canvas\n",
		"wrong type":   "[canvas]\nwidth = \"wide\"\n",
		"neg eraser":   "[tool]\neraser_width = -4\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, content))
			assert.Error(t, err)
		})
	}

	_, err := Load(writeFile(t, "[tool]\nline_width = -1\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0x80, A: 0xff}, c)

	c, err = ParseColor("#0000FF40")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{B: 0xff, A: 0x40}, c)

	for _, s := range []string{"", "#", "ff8000", "#ff800", "#gg0000", "#+f8000"} {
		_, err := ParseColor(s)
		assert.ErrorIs(t, err, ErrInvalid, "%q", s)
	}
}

func TestEncode(t *testing.T) {
	cfg := Default()
	cfg.Tool.Mode = input.Touch
	cfg.Tool.Color = Color{R: 1, G: 2, B: 3, A: 4}

	buf := &bytes.Buffer{}
	require.NoError(t, cfg.Encode(buf))
	assert.Contains(t, buf.String(), `mode = "touch"`)
	assert.Contains(t, buf.String(), `color = "#01020304"`)

	back, err := Load(writeFile(t, buf.String()))
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := LogConfig{Level: "warn", Format: "json"}.NewLogger(buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "n", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	logger, err = LogConfig{Level: "debug"}.NewLogger(buf)
	require.NoError(t, err)
	logger.Debug("details")
	assert.Contains(t, buf.String(), "msg=details")

	_, err = LogConfig{Format: "xml"}.NewLogger(buf)
	assert.Error(t, err)
}
