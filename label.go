// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendersheet

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/cache"
	"github.com/gogpu/gg/text"
)

// ErrNoFont is returned by Label when it has no font source.
var ErrNoFont = errors.New("rendersheet: label has no font source")

// Label is a Drawer that renders a single line of text.
// Its params must be a string or a fmt.Stringer.
//
// The measured height is the face's line height, so labels sharing a
// font size pack into the same row.
//
// A Label must not be copied after first use.
type Label struct {
	Source *text.FontSource
	Size   float64
	Color  gg.RGBA

	once  sync.Once
	faces *cache.ShardedCache[uint64, text.Face] // keyed by size bits
}

// face returns the face for size, shared between passes and workers.
func (l *Label) face(size float64) text.Face {
	l.once.Do(func() {
		l.faces = cache.NewSharded[uint64, text.Face](4, cache.Uint64Hasher)
	})
	return l.faces.GetOrCreate(math.Float64bits(size), func() text.Face {
		return l.Source.Face(size)
	})
}

// Measure reports the advance width and line height of the text.
func (l *Label) Measure(_ *gg.Context, params any) (Size, error) {
	s, err := labelText(params)
	if err != nil {
		return Size{}, err
	}
	if l.Source == nil {
		return Size{}, ErrNoFont
	}
	w, h := text.Measure(s, l.face(l.Size))
	return Size{Width: w, Height: h}, nil
}

// Draw renders the text with its top-left corner at the origin.
//
// Glyphs are rasterized at device resolution: the face is sized by the
// scale of dc's current transform and positioned at the transformed
// baseline.
func (l *Label) Draw(dc *gg.Context, params any) error {
	s, err := labelText(params)
	if err != nil {
		return err
	}
	if l.Source == nil {
		return ErrNoFont
	}
	if s == "" {
		return nil
	}

	ox, oy := dc.TransformPoint(0, 0)
	ux, uy := dc.TransformPoint(1, 0)
	scale := math.Hypot(ux-ox, uy-oy)
	if scale <= 0 {
		return nil
	}

	face := l.face(l.Size * scale)
	x, y := dc.TransformPoint(0, face.Metrics().Ascent/scale)
	dc.SetFont(face)
	dc.SetRGBA(l.Color.R, l.Color.G, l.Color.B, l.Color.A)
	dc.DrawString(s, x, y)
	return nil
}

func labelText(params any) (string, error) {
	switch v := params.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("rendersheet: label params must be a string, got %T", params)
	}
}
