// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendersheet

import (
	"hash/fnv"
	"image"

	"github.com/gogpu/gg"
)

// Rasterizer draws packed entries onto page surfaces.
//
// Surface returns a fresh context for a page of the given size in device
// pixels. DrawEntry renders one entry into frame, where multiplier is the
// sheet's Scale * Resolution. The sheet reads the finished pixels from
// dc.ResizeTarget() and closes the context.
type Rasterizer interface {
	Surface(width, height int) *gg.Context
	DrawEntry(dc *gg.Context, e *Entry, frame image.Rectangle, multiplier float64) error
}

// ContextRasterizer is the default Rasterizer, drawing with gg's software
// renderer.
type ContextRasterizer struct {
	// TestBoxes fills each frame with a colour derived from the entry name
	// before drawing, to make frames visible when debugging.
	TestBoxes bool

	// Clip restricts each entry's drawing to its frame.
	Clip bool
}

// Surface creates a transparent context of at least 1x1 pixels.
func (r *ContextRasterizer) Surface(width, height int) *gg.Context {
	return gg.NewContext(max(width, 1), max(height, 1))
}

// DrawEntry translates dc to frame's corner, scales it by multiplier and
// calls the entry's Draw. Transform and clip are restored afterwards.
func (r *ContextRasterizer) DrawEntry(dc *gg.Context, e *Entry, frame image.Rectangle, multiplier float64) error {
	dc.Push()
	defer dc.Pop()

	x, y := float64(frame.Min.X), float64(frame.Min.Y)
	w, h := float64(frame.Dx()), float64(frame.Dy())
	if r.Clip {
		dc.ClipRect(x, y, w, h)
	}
	dc.Translate(x, y)
	dc.Scale(multiplier, multiplier)

	if r.TestBoxes {
		dc.SetColor(testBoxColor(e.name).Color())
		dc.DrawRectangle(0, 0, w/multiplier, h/multiplier)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return e.drawer.Draw(dc, e.params)
}

// testBoxColor picks a stable colour for name.
func testBoxColor(name string) gg.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name)) // fnv.Write never returns an error
	hue := float64(h.Sum32() % 360)
	return gg.HSL(hue, 0.6, 0.55)
}
