// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendersheet

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"
)

// Page is one rasterized atlas surface.
//
// Pages are immutable once a pass publishes them. Each pass builds a fresh
// set of pages; handles are rebound to the new pages and the old ones are
// simply dropped.
type Page struct {
	index      int
	width      int
	height     int
	resolution float64

	pixmap *gg.Pixmap
	img    *image.RGBA // shares pixmap memory

	entries  int
	usedArea int
}

func newPage(pl PageLayout, pm *gg.Pixmap, resolution float64, usedArea int) *Page {
	return &Page{
		index:      pl.Index,
		width:      pl.Width,
		height:     pl.Height,
		resolution: resolution,
		pixmap:     pm,
		img: &image.RGBA{
			Pix:    pm.Data(),
			Stride: pm.Width() * 4,
			Rect:   image.Rect(0, 0, pm.Width(), pm.Height()),
		},
		entries:  len(pl.Slots),
		usedArea: usedArea,
	}
}

// Index returns the page's position in the sheet's page list.
func (p *Page) Index() int { return p.index }

// Width returns the used width of the page in device pixels.
func (p *Page) Width() int { return p.width }

// Height returns the used height of the page in device pixels.
func (p *Page) Height() int { return p.height }

// Resolution returns the device pixel multiplier the page was drawn at.
func (p *Page) Resolution() float64 { return p.resolution }

// Pixmap returns the page's pixel buffer.
func (p *Page) Pixmap() *gg.Pixmap { return p.pixmap }

// Image returns the page as an *image.RGBA sharing the pixmap's memory.
// Callers must not modify it.
func (p *Page) Image() *image.RGBA { return p.img }

// SavePNG writes the page to a PNG file.
func (p *Page) SavePNG(path string) error {
	return p.pixmap.SavePNG(path)
}

// EntryCount returns the number of entries packed on this page.
func (p *Page) EntryCount() int { return p.entries }

// Utilization returns the fraction of the page covered by entries (0.0 to 1.0).
func (p *Page) Utilization() float64 {
	total := p.width * p.height
	if total <= 0 {
		return 0
	}
	return float64(p.usedArea) / float64(total)
}

// String returns a string representation of the page.
func (p *Page) String() string {
	return fmt.Sprintf("Page(%d %dx%d, %d entries)", p.index, p.width, p.height, p.entries)
}

// TextureDescriptor describes the GPU texture a renderer needs to upload a page.
type TextureDescriptor struct {
	Label         string
	Size          gputypes.Extent3D
	MipLevelCount uint32
	SampleCount   uint32
	Dimension     gputypes.TextureDimension
	Format        gputypes.TextureFormat
	Usage         gputypes.TextureUsage
}

// TextureDescriptor returns the descriptor for uploading this page's
// Pixmap().Data() as a sampled 2D texture.
func (p *Page) TextureDescriptor() TextureDescriptor {
	return TextureDescriptor{
		Label: fmt.Sprintf("rendersheet-page-%d", p.index),
		Size: gputypes.Extent3D{
			Width:              uint32(p.pixmap.Width()),  //nolint:gosec // page sizes are validated to 16384
			Height:             uint32(p.pixmap.Height()), //nolint:gosec // page sizes are validated to 16384
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}
}
