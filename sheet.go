// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendersheet

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"sync"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/rendersheet/internal/parallel"
)

// Sheet owns a set of named entries and the atlas pages they are packed into.
//
// Entries are added with Add and packed by Render, which measures, sorts,
// places and draws every entry and then rebinds each entry's Texture.
// A failed Render publishes nothing: the previous pages and handles stay
// exactly as they were.
//
// Sheet is safe for concurrent use. Render holds an exclusive lock for the
// whole pass, so lookups wait for an in-progress pass instead of observing
// a half-built atlas. Drawer callbacks run under that lock and must not
// call back into the Sheet.
type Sheet struct {
	mu sync.RWMutex

	cfg        Config
	registry   *Registry
	packer     *Packer
	rasterizer Rasterizer
	textures   TextureFactory
	logger     *slog.Logger

	pages  []*Page
	passes uint64
}

// New creates a sheet with the given configuration.
func New(cfg Config, opts ...Option) (*Sheet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	rasterizer := options.rasterizer
	if rasterizer == nil {
		rasterizer = &ContextRasterizer{TestBoxes: cfg.TestBoxes, Clip: cfg.ClipEntries}
	}
	textures := options.textures
	if textures == nil {
		textures = SubImageFactory{}
	}

	return &Sheet{
		cfg:        cfg,
		registry:   NewRegistry(),
		packer:     NewPacker(cfg),
		rasterizer: rasterizer,
		textures:   textures,
		logger:     options.logger,
	}, nil
}

// NewDefault creates a sheet with DefaultConfig.
func NewDefault(opts ...Option) *Sheet {
	s, _ := New(DefaultConfig(), opts...)
	return s
}

// MustNew is like New but panics on error.
// Use only when the configuration is a programming constant.
func MustNew(cfg Config, opts ...Option) *Sheet {
	s, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Sheet) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return Logger()
}

// Config returns the sheet configuration.
func (s *Sheet) Config() Config {
	return s.cfg
}

// Add registers d under name with params passed to its Measure and Draw.
// Adding an existing name replaces its drawer and params but keeps its
// Texture, so references handed out earlier stay valid; the entry is
// marked stale until the next Render.
func (s *Sheet) Add(name string, d Drawer, params any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.registry.Add(name, d, params)
	return err
}

// AddFunc registers a pair of functions as an entry. It is shorthand for
// Add(name, DrawerFuncs{MeasureFunc: measure, DrawFunc: draw}, params).
func (s *Sheet) AddFunc(
	name string,
	draw func(dc *gg.Context, params any) error,
	measure func(dc *gg.Context, params any) (Size, error),
	params any,
) error {
	return s.Add(name, DrawerFuncs{MeasureFunc: measure, DrawFunc: draw}, params)
}

// Remove unregisters name. Its Texture stops being Valid and it is left
// out of the next pass. Remove reports whether the name was registered.
func (s *Sheet) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.registry.Remove(name)
	if e == nil {
		return false
	}
	if e.texture != nil {
		e.texture.detach()
	}
	return true
}

// Get returns the entry registered under name, or nil.
func (s *Sheet) Get(name string) *Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry.Get(name)
}

// Texture returns the handle for name. Unknown names are logged as a
// warning and yield nil, so render loops keep going when an asset is
// missing. Known entries return nil until their first Render.
func (s *Sheet) Texture(name string) *Texture {
	tex, err := s.LookupTexture(name)
	if err != nil {
		s.log().Warn("rendersheet: texture not found", "name", name)
		return nil
	}
	return tex
}

// LookupTexture is like Texture but reports unknown names as a
// *NotFoundError instead of logging them.
func (s *Sheet) LookupTexture(name string) (*Texture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e := s.registry.Get(name)
	if e == nil {
		return nil, &NotFoundError{Name: name}
	}
	return e.texture, nil
}

// TextureAt returns the handle of the i-th entry in insertion order,
// or nil if i is out of range or the entry has not been rendered.
func (s *Sheet) TextureAt(i int) *Texture {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e := s.registry.At(i)
	if e == nil {
		return nil
	}
	return e.texture
}

// Len returns the number of registered entries.
func (s *Sheet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry.Len()
}

// Entries returns the registered entries in insertion order.
func (s *Sheet) Entries() []*Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry.Entries()
}

// Pages returns the pages published by the last successful Render.
func (s *Sheet) Pages() []*Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Page, len(s.pages))
	copy(out, s.pages)
	return out
}

// Page returns page i, or nil if i is out of range.
func (s *Sheet) Page(i int) *Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.pages) {
		return nil
	}
	return s.pages[i]
}

// PageCount returns the number of published pages.
func (s *Sheet) PageCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pages)
}

// Passes returns the number of successful Render calls.
func (s *Sheet) Passes() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.passes
}

// Render runs one full pass over every registered entry and publishes the
// resulting pages. Measure, sort and place run synchronously; pages are
// then rasterized, on Config.Workers goroutines when that is above 1.
//
// ctx is checked before each page is rasterized. If ctx is cancelled, or
// any stage fails, Render returns the error and the previous pass stays
// published.
func (s *Sheet) Render(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	entries := s.registry.Entries()

	scratch := gg.NewContext(1, 1)
	layout, err := s.packer.Pack(scratch, entries)
	_ = scratch.Close()
	if err != nil {
		return err
	}
	s.log().Debug("rendersheet: packed",
		"entries", len(entries),
		"pages", len(layout.Pages),
		"elapsed", time.Since(start))

	pages, err := s.rasterize(ctx, layout)
	if err != nil {
		return err
	}

	s.commit(layout, pages)
	s.log().Info("rendersheet: rendered",
		"entries", len(entries),
		"pages", len(pages),
		"pass", s.passes,
		"elapsed", time.Since(start))
	return nil
}

// rasterize draws every page of layout. It does not touch sheet state.
func (s *Sheet) rasterize(ctx context.Context, layout *Layout) ([]*Page, error) {
	pages := make([]*Page, len(layout.Pages))
	jobs := make([]parallel.Job, len(layout.Pages))
	multiplier := s.cfg.multiplier()

	for i := range layout.Pages {
		pl := layout.Pages[i]
		jobs[i] = func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			page, err := s.drawPage(pl, layout.Slots, multiplier)
			if err != nil {
				return err
			}
			pages[i] = page
			return nil
		}
	}

	if err := parallel.Run(s.cfg.Workers, jobs); err != nil {
		return nil, err
	}
	return pages, nil
}

// drawPage rasterizes the slots of one page.
func (s *Sheet) drawPage(pl PageLayout, slots []Slot, multiplier float64) (*Page, error) {
	dc := s.rasterizer.Surface(pl.Width, pl.Height)
	defer func() { _ = dc.Close() }()

	usedArea := 0
	for _, idx := range pl.Slots {
		sl := slots[idx]
		frame := slotFrame(sl)
		if err := s.rasterizer.DrawEntry(dc, sl.Entry, frame, multiplier); err != nil {
			return nil, fmt.Errorf("rendersheet: drawing %q: %w", sl.Entry.name, err)
		}
		usedArea += sl.Width * sl.Height
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("rendersheet: flushing page %d: %w", pl.Index, err)
	}
	return newPage(pl, dc.ResizeTarget(), s.cfg.Resolution, usedArea), nil
}

func slotFrame(sl Slot) image.Rectangle {
	p := sl.Placement
	return image.Rect(p.X, p.Y, p.X+sl.Width, p.Y+sl.Height)
}

// commit writes the layout back to the entries, publishes pages and
// rebinds every handle.
func (s *Sheet) commit(layout *Layout, pages []*Page) {
	for _, sl := range layout.Slots {
		e := sl.Entry
		e.width = sl.Width
		e.height = sl.Height
		e.placement = sl.Placement
		e.placed = true
		e.state = StatePlaced
	}
	s.pages = pages

	for e := range s.registry.All() {
		page := pages[e.placement.Page]
		frame := e.Bounds()
		if e.texture == nil {
			e.texture = newTexture(e.name)
		}
		source := s.textures.CreateOrUpdate(e.texture.Source(), page, frame)
		e.texture.bind(page, frame, source)
		e.state = StateRendered
	}
	s.passes++
}
