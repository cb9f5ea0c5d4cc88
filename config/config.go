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

// Package config reads the TOML configuration of the sketch tools.
//
// A configuration file looks like this:
//
//	[canvas]
//	width = 800
//	height = 600
//
//	[tool]
//	mode = "pen"
//	color = "#d02020"
//	line_width = 3
//	eraser_width = 24
//
//	[export]
//	dir = "out"
//	name = "sketch.png"
//	pdf = true
//
//	[log]
//	level = "debug"
//	format = "json"
//
// All keys are optional; missing keys keep their default values.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/sketch/input"
	"seehuhn.de/go/sketch/stroke"
)

// ErrInvalid is returned for configurations which cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete configuration.
type Config struct {
	Canvas CanvasConfig `toml:"canvas"`
	Tool   ToolConfig   `toml:"tool"`
	Export ExportConfig `toml:"export"`
	Log    LogConfig    `toml:"log"`
}

// CanvasConfig sets the size of the drawing surface, in pixels.
type CanvasConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// ToolConfig sets the initial device mode and tool.
type ToolConfig struct {
	Mode        input.Mode `toml:"mode"`
	Color       Color      `toml:"color"`
	LineWidth   float64    `toml:"line_width"`
	EraserWidth float64    `toml:"eraser_width"`
}

// ExportConfig controls where exported images go.
type ExportConfig struct {
	Dir  string `toml:"dir"`
	Name string `toml:"name"`
	PDF  bool   `toml:"pdf"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{Width: 800, Height: 600},
		Tool: ToolConfig{
			Mode:        input.Mouse,
			Color:       Color(stroke.DefaultTool.Color),
			LineWidth:   stroke.DefaultTool.LineWidth,
			EraserWidth: stroke.DefaultTool.EraserWidth,
		},
		Export: ExportConfig{Dir: ".", Name: "sketch.png"},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads the configuration file at path.  Values from the file
// override the defaults.  If the file does not exist, the defaults are
// returned.  Unknown keys are an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s in %s",
			ErrInvalid, strings.Join(keys, ", "), path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d",
			ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	}
	if _, err := c.Tool.Mode.MarshalText(); err != nil {
		return fmt.Errorf("%w: tool.mode: %w", ErrInvalid, err)
	}
	if err := c.Tool.Tool().Validate(); err != nil {
		return fmt.Errorf("%w: tool: %w", ErrInvalid, err)
	}
	if c.Export.Name == "" || strings.ContainsAny(c.Export.Name, `/\`) {
		return fmt.Errorf("%w: export.name %q", ErrInvalid, c.Export.Name)
	}
	if _, err := c.Log.level(); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// Tool returns the pen and eraser settings.  Erasing is initially off.
func (tc ToolConfig) Tool() stroke.Tool {
	return stroke.Tool{
		Color:       tc.Color.NRGBA(),
		LineWidth:   tc.LineWidth,
		EraserWidth: tc.EraserWidth,
	}
}

// Encode writes the configuration in TOML format.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
