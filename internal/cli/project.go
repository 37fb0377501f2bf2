// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/rendersheet"
)

// Entry kinds understood by the pack command.
const (
	kindRect   = "rect"
	kindCircle = "circle"
	kindLabel  = "label"
)

// project is the TOML file read by the pack command.
//
//	[sheet]
//	max_width = 1024
//	buffer = 2
//
//	[[entry]]
//	name = "dot"
//	kind = "circle"
//	width = 16
//	height = 16
//	color = "#e33"
type project struct {
	Sheet   sheetSection   `toml:"sheet"`
	Font    fontSection    `toml:"font"`
	Entries []entrySection `toml:"entry"`
}

// sheetSection overrides rendersheet.DefaultConfig. Zero values keep the default.
type sheetSection struct {
	MaxWidth   int     `toml:"max_width"`
	MaxHeight  int     `toml:"max_height"`
	Buffer     *int    `toml:"buffer"`
	Scale      float64 `toml:"scale"`
	Resolution float64 `toml:"resolution"`
	TestBoxes  bool    `toml:"test_boxes"`
	NoClip     bool    `toml:"no_clip"`
	Workers    int     `toml:"workers"`
	MaxPages   int     `toml:"max_pages"`
}

type fontSection struct {
	Path string `toml:"path"` // TTF or OTF file; Go Regular when empty
}

type entrySection struct {
	Name   string  `toml:"name"`
	Kind   string  `toml:"kind"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Radius float64 `toml:"radius"`
	Color  string  `toml:"color"`
	Text   string  `toml:"text"`
	Size   float64 `toml:"size"`
}

// loadProject reads and decodes a project file.
func loadProject(path string) (*project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseProject(data)
}

func parseProject(data []byte) (*project, error) {
	var p project
	md, err := toml.Decode(string(data), &p)
	if err != nil {
		return nil, fmt.Errorf("parse project: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("parse project: unknown key %q", undec[0].String())
	}
	return &p, nil
}

// config returns the sheet configuration the project asks for.
func (p *project) config() rendersheet.Config {
	cfg := rendersheet.DefaultConfig()
	s := p.Sheet
	if s.MaxWidth > 0 {
		cfg.MaxPageWidth = s.MaxWidth
	}
	if s.MaxHeight > 0 {
		cfg.MaxPageHeight = s.MaxHeight
	}
	if s.Buffer != nil {
		cfg.Buffer = *s.Buffer
	}
	if s.Scale > 0 {
		cfg.Scale = s.Scale
	}
	if s.Resolution > 0 {
		cfg.Resolution = s.Resolution
	}
	if s.Workers != 0 {
		cfg.Workers = s.Workers
	}
	cfg.TestBoxes = s.TestBoxes
	cfg.ClipEntries = !s.NoClip
	cfg.MaxPages = s.MaxPages
	return cfg
}

// fontSource loads the project font, falling back to Go Regular.
func (p *project) fontSource() (*text.FontSource, error) {
	if p.Font.Path == "" {
		return text.NewFontSource(goregular.TTF)
	}
	return text.NewFontSourceFromFile(p.Font.Path)
}

// populate adds every project entry to sheet.
func (p *project) populate(sheet *rendersheet.Sheet) error {
	var font *text.FontSource
	for i, e := range p.Entries {
		if e.Name == "" {
			return fmt.Errorf("entry %d: missing name", i)
		}
		var (
			d      rendersheet.Drawer
			params any
		)
		switch e.Kind {
		case kindRect, "":
			d = shapeDrawer{kind: kindRect, color: parseColor(e.Color)}
			params = e
		case kindCircle:
			d = shapeDrawer{kind: kindCircle, color: parseColor(e.Color)}
			params = e
		case kindLabel:
			if font == nil {
				f, err := p.fontSource()
				if err != nil {
					return fmt.Errorf("load font: %w", err)
				}
				font = f
			}
			size := e.Size
			if size <= 0 {
				size = 16
			}
			d = &rendersheet.Label{Source: font, Size: size, Color: parseColor(e.Color)}
			params = e.Text
		default:
			return fmt.Errorf("entry %q: unknown kind %q", e.Name, e.Kind)
		}
		if err := sheet.Add(e.Name, d, params); err != nil {
			return err
		}
	}
	return nil
}

func parseColor(s string) gg.RGBA {
	if s == "" {
		return gg.Black
	}
	return gg.Hex(s)
}

// shapeDrawer draws a filled rectangle or circle sized by an entrySection.
type shapeDrawer struct {
	kind  string
	color gg.RGBA
}

func (d shapeDrawer) Measure(_ *gg.Context, params any) (rendersheet.Size, error) {
	e := params.(entrySection)
	if d.kind == kindCircle && e.Radius > 0 {
		return rendersheet.Size{Width: 2 * e.Radius, Height: 2 * e.Radius}, nil
	}
	return rendersheet.Size{Width: e.Width, Height: e.Height}, nil
}

func (d shapeDrawer) Draw(dc *gg.Context, params any) error {
	size, _ := d.Measure(dc, params)
	dc.SetRGBA(d.color.R, d.color.G, d.color.B, d.color.A)
	switch d.kind {
	case kindCircle:
		rx, ry := size.Width/2, size.Height/2
		dc.DrawEllipse(rx, ry, rx, ry)
	default:
		dc.DrawRectangle(0, 0, size.Width, size.Height)
	}
	return dc.Fill()
}
