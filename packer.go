// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendersheet

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/gg"
)

// Slot is one entry's outcome from a packing pass.
type Slot struct {
	Entry     *Entry
	Width     int // scaled width in device pixels
	Height    int // scaled height in device pixels
	Placement Placement
}

// PageLayout describes one page produced by a packing pass.
// Width and Height are the extents actually used, not the configured maximum.
type PageLayout struct {
	Index  int
	Width  int
	Height int
	Slots  []int // indices into Layout.Slots, in packing order
}

// Layout is the result of a packing pass.
type Layout struct {
	Pages []PageLayout
	Slots []Slot // in packing order
}

// Packer places measured entries into rows of fixed-size pages.
//
// The algorithm is a shelf packer with page overflow:
//  1. Measure every entry and scale it to device pixels
//  2. Sort by ascending height, then ascending width; ties keep insertion order
//  3. Fill rows left to right; when a row is full, close it and start the
//     next one below. When a closed row would cross the bottom of the page,
//     the whole row moves to the top of a fresh page.
//
// The packer is deterministic and never rotates or splits entries.
type Packer struct {
	maxWidth   int
	maxHeight  int
	buffer     int
	multiplier float64
	maxPages   int
}

// NewPacker creates a packer for the given configuration.
// cfg is assumed to be valid.
func NewPacker(cfg Config) *Packer {
	return &Packer{
		maxWidth:   cfg.MaxPageWidth,
		maxHeight:  cfg.MaxPageHeight,
		buffer:     cfg.Buffer,
		multiplier: cfg.multiplier(),
		maxPages:   cfg.MaxPages,
	}
}

// Pack measures, sorts and places entries. dc is the scratch context handed
// to every Measure call. Entries are not modified; the caller applies the
// returned layout.
func (p *Packer) Pack(dc *gg.Context, entries []*Entry) (*Layout, error) {
	slots, err := p.measure(dc, entries)
	if err != nil {
		return nil, err
	}
	sortSlots(slots)
	return p.place(slots)
}

// measure runs every entry's Measure and converts the result to pixels.
func (p *Packer) measure(dc *gg.Context, entries []*Entry) ([]Slot, error) {
	slots := make([]Slot, 0, len(entries))
	for _, e := range entries {
		size, err := e.drawer.Measure(dc, e.params)
		if err != nil {
			return nil, &MeasurementError{Name: e.name, Err: err}
		}
		if !validExtent(size.Width) || !validExtent(size.Height) {
			return nil, &MeasurementError{Name: e.name, Width: size.Width, Height: size.Height}
		}
		slots = append(slots, Slot{
			Entry:  e,
			Width:  scaleExtent(size.Width, p.multiplier),
			Height: scaleExtent(size.Height, p.multiplier),
		})
	}
	return slots, nil
}

func validExtent(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// scaleExtent returns ceil(v * m), saturating at MaxInt32 so that absurd
// sizes fail the page check instead of overflowing.
func scaleExtent(v, m float64) int {
	s := math.Ceil(v * m)
	if s > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(s)
}

// sortSlots orders slots shortest first, then narrowest first.
func sortSlots(slots []Slot) {
	slices.SortStableFunc(slots, func(a, b Slot) int {
		if c := cmp.Compare(a.Height, b.Height); c != 0 {
			return c
		}
		return cmp.Compare(a.Width, b.Width)
	})
}

// packState is the cursor threaded through the place stage.
type packState struct {
	x, y int

	// Current, still open row.
	row       []int
	rowWidth  int
	rowHeight int

	// Current page and the extents of the rows committed to it.
	page       int
	pageWidth  int
	pageHeight int

	pages []PageLayout
}

// place assigns every sorted slot a page and position.
func (p *Packer) place(slots []Slot) (*Layout, error) {
	st := &packState{}
	for i := range slots {
		s := &slots[i]
		if s.Width+p.buffer > p.maxWidth || s.Height+p.buffer > p.maxHeight {
			return nil, &EntryTooLargeError{
				Name:      s.Entry.name,
				Width:     s.Width,
				Height:    s.Height,
				MaxWidth:  p.maxWidth - p.buffer,
				MaxHeight: p.maxHeight - p.buffer,
			}
		}

		if st.x+s.Width+p.buffer > p.maxWidth {
			if err := p.closeRow(st, slots); err != nil {
				return nil, err
			}
		}

		s.Placement = Placement{Page: st.page, X: st.x, Y: st.y}
		st.row = append(st.row, i)
		st.rowWidth = st.x + s.Width
		st.rowHeight = max(st.rowHeight, s.Height)
		st.x += s.Width + p.buffer
	}

	if len(slots) == 0 {
		return &Layout{}, nil
	}

	// The last row gets the same boundary check as every other row.
	if err := p.closeRow(st, slots); err != nil {
		return nil, err
	}
	st.finishPage()

	for i, s := range slots {
		pg := &st.pages[s.Placement.Page]
		pg.Slots = append(pg.Slots, i)
	}
	return &Layout{Pages: st.pages, Slots: slots}, nil
}

// closeRow commits the open row to the current page, first moving it to
// a new page if it crosses the page's bottom edge.
func (p *Packer) closeRow(st *packState, slots []Slot) error {
	if st.y+st.rowHeight+p.buffer > p.maxHeight {
		if p.maxPages > 0 && st.page+1 >= p.maxPages {
			return fmt.Errorf("%w: more than %d pages needed", ErrTooManyPages, p.maxPages)
		}
		st.finishPage()
		st.page++
		st.y = 0
		for _, i := range st.row {
			slots[i].Placement.Page = st.page
			slots[i].Placement.Y = 0
		}
	}

	st.pageWidth = max(st.pageWidth, st.rowWidth)
	st.pageHeight = max(st.pageHeight, st.y+st.rowHeight)

	st.y += st.rowHeight + p.buffer
	st.x = 0
	st.row = st.row[:0]
	st.rowWidth = 0
	st.rowHeight = 0
	return nil
}

// finishPage records the current page with the extents committed so far.
func (st *packState) finishPage() {
	st.pages = append(st.pages, PageLayout{
		Index:  st.page,
		Width:  st.pageWidth,
		Height: st.pageHeight,
	})
	st.pageWidth = 0
	st.pageHeight = 0
}
