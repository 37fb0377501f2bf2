// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendersheet

import (
	"image"
	"sync"
)

// Texture is the handle a consumer holds for one entry.
//
// A Texture is created on an entry's first pass and is never replaced:
// later passes rebind the same value to the new page and frame, so a
// renderer holding the pointer always sees current geometry. Texture is
// safe for concurrent use.
type Texture struct {
	mu sync.RWMutex

	name       string
	page       *Page
	frame      image.Rectangle
	resolution float64
	source     any
	version    uint64
	detached   bool
}

func newTexture(name string) *Texture {
	return &Texture{name: name, resolution: 1}
}

// bind points the texture at a new page and frame.
func (t *Texture) bind(page *Page, frame image.Rectangle, source any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.page = page
	t.frame = frame
	t.resolution = page.resolution
	t.source = source
	t.version++
}

// detach marks the texture as no longer belonging to a sheet.
func (t *Texture) detach() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.detached = true
}

// Name returns the name of the entry the texture belongs to.
func (t *Texture) Name() string { return t.name }

// Page returns the page the texture currently samples from.
func (t *Texture) Page() *Page {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.page
}

// Frame returns the texture's rectangle within its page, in device pixels.
func (t *Texture) Frame() image.Rectangle {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.frame
}

// Size returns the texture's size in drawing units: the frame size
// divided by the sheet resolution.
func (t *Texture) Size() (width, height float64) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return float64(t.frame.Dx()) / t.resolution, float64(t.frame.Dy()) / t.resolution
}

// UV returns the frame in normalized [0, 1] page coordinates.
func (t *Texture) UV() (u0, v0, u1, v1 float32) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.page == nil {
		return 0, 0, 0, 0
	}
	b := t.page.img.Rect
	w, h := float32(b.Dx()), float32(b.Dy())
	return float32(t.frame.Min.X) / w, float32(t.frame.Min.Y) / h,
		float32(t.frame.Max.X) / w, float32(t.frame.Max.Y) / h
}

// Image returns a view of the texture's pixels within its page, or nil
// before the first pass.
func (t *Texture) Image() image.Image {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.page == nil {
		return nil
	}
	return t.page.img.SubImage(t.frame)
}

// Source returns the value produced by the sheet's TextureFactory.
func (t *Texture) Source() any {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.source
}

// Version returns how many times the texture has been bound.
// It increases by one on every pass that includes the entry.
func (t *Texture) Version() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.version
}

// Valid reports whether the texture is bound and its entry is still registered.
func (t *Texture) Valid() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.page != nil && !t.detached
}

// TextureFactory creates or refreshes the backend object behind a Texture.
//
// CreateOrUpdate is called once per entry per pass with the value it
// returned last time (nil on the first pass), the entry's new page and its
// frame within that page. The returned value is stored on the Texture and
// available through Texture.Source.
type TextureFactory interface {
	CreateOrUpdate(previous any, page *Page, frame image.Rectangle) any
}

// SubImageFactory is the default TextureFactory. It produces an
// image.Image view of the frame that shares the page's pixels.
type SubImageFactory struct{}

// CreateOrUpdate returns page.Image().SubImage(frame).
func (SubImageFactory) CreateOrUpdate(_ any, page *Page, frame image.Rectangle) any {
	return page.Image().SubImage(frame)
}
