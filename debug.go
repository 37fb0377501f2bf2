// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendersheet

import (
	"image"
	"strconv"

	"golang.org/x/image/draw"
)

// ContactSheet composes every page into one image for visual inspection.
// Pages are stacked top to bottom, each given an equal share of height and
// scaled to it with its aspect ratio kept, over a translucent background
// so that empty space is visible. Returns nil if there are no pages or
// height is not positive.
func (s *Sheet) ContactSheet(height int) *image.RGBA {
	pages := s.Pages()
	if len(pages) == 0 || height <= 0 {
		return nil
	}

	band := max(height/len(pages), 1)
	type placed struct {
		page *Page
		rect image.Rectangle
	}
	rows := make([]placed, 0, len(pages))
	width := 1
	for i, p := range pages {
		src := p.Image().Bounds()
		w := max(src.Dx()*band/max(src.Dy(), 1), 1)
		top := i * band
		rows = append(rows, placed{page: p, rect: image.Rect(0, top, w, top+band)})
		width = max(width, w)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, band*len(pages)))
	for _, r := range rows {
		bg := testBoxColor(strconv.Itoa(r.page.index))
		bg.A = 0.5
		draw.Draw(dst, r.rect, image.NewUniform(bg.Color()), image.Point{}, draw.Src)
		draw.BiLinear.Scale(dst, r.rect, r.page.Image(), r.page.Image().Bounds(), draw.Over, nil)
	}
	return dst
}

// DescribePages logs the size of every page at debug level.
func (s *Sheet) DescribePages() {
	l := s.log()
	for _, p := range s.Pages() {
		l.Debug("rendersheet: page",
			"index", p.index,
			"width", p.width,
			"height", p.height,
			"entries", p.entries,
			"resolution", p.resolution)
	}
}
