// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package rendersheet packs procedurally drawn graphics into texture atlas
// pages.
//
// # Overview
//
// A Sheet holds named entries. Each entry is a Drawer that can measure
// itself and draw itself with gg. Render packs every entry into one or
// more pages and hands out a Texture per entry that locates it within its
// page. Textures keep their identity across passes, so a renderer can hold
// on to them while the atlas is rebuilt.
//
// # Quick Start
//
//	sheet := rendersheet.NewDefault()
//
//	sheet.AddFunc("dot",
//	    func(dc *gg.Context, _ any) error {
//	        dc.SetRGB(1, 0, 0)
//	        dc.DrawCircle(8, 8, 8)
//	        return dc.Fill()
//	    },
//	    func(*gg.Context, any) (rendersheet.Size, error) {
//	        return rendersheet.Size{Width: 16, Height: 16}, nil
//	    },
//	    nil)
//
//	if err := sheet.Render(ctx); err != nil {
//	    return err
//	}
//	tex := sheet.Texture("dot")
//	u0, v0, u1, v1 := tex.UV()
//
// # Packing
//
// A pass runs in four stages:
//   - measure: every entry reports its size, which is multiplied by
//     Scale * Resolution and rounded up to whole device pixels
//   - sort: entries are ordered by height, then width, ascending; ties keep
//     insertion order
//   - place: entries fill rows left to right with Buffer pixels between
//     them; a row that would cross the bottom of the page moves to the top
//     of a new page
//   - draw: each page is rasterized and every Texture is rebound
//
// Pages are only as large as their contents, never larger than
// MaxPageWidth x MaxPageHeight. An entry that cannot fit on an empty page
// fails the pass with an *EntryTooLargeError.
//
// # Failure
//
// Render is all-or-nothing. If measuring, placing or drawing fails, or ctx
// is cancelled, the previous pages and every Texture stay as they were.
//
// # Logging
//
// The package logs through log/slog and is silent by default. Use
// SetLogger to enable it, or WithLogger for a single Sheet.
package rendersheet
