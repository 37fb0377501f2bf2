// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendersheet

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
)

// Size is a measured entry size in unscaled drawing units.
type Size struct {
	Width  float64
	Height float64
}

// Drawer is the capability an entry provides to the sheet.
//
// Measure reports the size Draw will cover, in the same units Draw uses.
// It is called once per pass on a scratch context; anything drawn there
// is discarded. Draw renders the entry with its origin at (0, 0). The
// sheet has already translated and scaled dc, so Draw never needs to know
// where the entry was placed.
//
// params is the value given to Sheet.Add and is passed through untouched.
type Drawer interface {
	Measure(dc *gg.Context, params any) (Size, error)
	Draw(dc *gg.Context, params any) error
}

// DrawerFuncs adapts a pair of ordinary functions to the Drawer interface.
// A nil MeasureFunc or DrawFunc behaves as a zero size or a no-op draw.
type DrawerFuncs struct {
	MeasureFunc func(dc *gg.Context, params any) (Size, error)
	DrawFunc    func(dc *gg.Context, params any) error
}

// Measure calls f.MeasureFunc.
func (f DrawerFuncs) Measure(dc *gg.Context, params any) (Size, error) {
	if f.MeasureFunc == nil {
		return Size{}, nil
	}
	return f.MeasureFunc(dc, params)
}

// Draw calls f.DrawFunc.
func (f DrawerFuncs) Draw(dc *gg.Context, params any) error {
	if f.DrawFunc == nil {
		return nil
	}
	return f.DrawFunc(dc, params)
}

// Placement locates an entry within the atlas, in device pixels.
type Placement struct {
	Page int
	X    int
	Y    int
}

// String returns a string representation of the placement.
func (p Placement) String() string {
	return fmt.Sprintf("page %d @ (%d,%d)", p.Page, p.X, p.Y)
}

// EntryState tracks how current an entry's placement and handle are.
type EntryState int

const (
	// StateRegistered entries have been added but never packed.
	StateRegistered EntryState = iota

	// StatePlaced entries have a placement that the handle may not reflect,
	// typically because the entry was re-added after the last pass.
	StatePlaced

	// StateRendered entries have a handle matching the current pages.
	StateRendered
)

// String returns the state name.
func (s EntryState) String() string {
	switch s {
	case StateRegistered:
		return "Registered"
	case StatePlaced:
		return "Placed"
	case StateRendered:
		return "Rendered"
	default:
		return "Unknown"
	}
}

// Entry is one named drawable registered with a Sheet.
//
// Entry fields are owned by the Sheet. Read them through the accessor
// methods, which are safe to call between passes.
type Entry struct {
	name   string
	drawer Drawer
	params any

	// Pixel size from the last successful pass.
	width  int
	height int

	placement Placement
	placed    bool
	state     EntryState

	texture *Texture
}

// Name returns the entry's registry key.
func (e *Entry) Name() string { return e.name }

// Drawer returns the entry's drawing capability.
func (e *Entry) Drawer() Drawer { return e.drawer }

// Params returns the opaque value handed to Measure and Draw.
func (e *Entry) Params() any { return e.params }

// ScaledSize returns the entry's size in device pixels as of the last pass.
func (e *Entry) ScaledSize() (width, height int) { return e.width, e.height }

// Placement returns the entry's placement and whether it has one.
func (e *Entry) Placement() (Placement, bool) { return e.placement, e.placed }

// Bounds returns the entry's rectangle within its page, or an empty
// rectangle if it has never been placed.
func (e *Entry) Bounds() image.Rectangle {
	if !e.placed {
		return image.Rectangle{}
	}
	return image.Rect(e.placement.X, e.placement.Y, e.placement.X+e.width, e.placement.Y+e.height)
}

// State returns the entry's lifecycle state.
func (e *Entry) State() EntryState { return e.state }

// Texture returns the entry's handle, or nil before its first pass.
func (e *Entry) Texture() *Texture { return e.texture }
