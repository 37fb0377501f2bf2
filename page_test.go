// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendersheet

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestPageAccessors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Buffer = 0
	s := newTestSheet(t, cfg)
	mustAdd(t, s, "a", boxDrawer{w: 10, h: 10})
	mustAdd(t, s, "b", boxDrawer{w: 30, h: 10})
	mustRender(t, s)

	p := s.Page(0)
	if p.Width() != 40 || p.Height() != 10 {
		t.Errorf("page = %dx%d, want 40x10", p.Width(), p.Height())
	}
	if p.Pixmap().Width() != 40 || p.Image().Bounds().Dx() != 40 {
		t.Error("pixmap and image do not match the page size")
	}
	if p.EntryCount() != 2 {
		t.Errorf("EntryCount = %d, want 2", p.EntryCount())
	}
	if p.Utilization() != 1 {
		t.Errorf("Utilization = %v, want 1", p.Utilization())
	}
	if !strings.Contains(p.String(), "40x10") {
		t.Errorf("String() = %q", p.String())
	}
	if s.Page(1) != nil || s.Page(-1) != nil {
		t.Error("Page out of range should return nil")
	}
}

func TestPageTextureDescriptor(t *testing.T) {
	s := newTestSheet(t, DefaultConfig())
	mustAdd(t, s, "a", boxDrawer{w: 12, h: 7})
	mustRender(t, s)

	d := s.Page(0).TextureDescriptor()
	if d.Size.Width != 12 || d.Size.Height != 7 || d.Size.DepthOrArrayLayers != 1 {
		t.Errorf("Size = %+v, want 12x7x1", d.Size)
	}
	if d.Format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format = %v, want RGBA8Unorm", d.Format)
	}
	if d.Dimension != gputypes.TextureDimension2D {
		t.Errorf("Dimension = %v, want 2D", d.Dimension)
	}
	if d.Usage&gputypes.TextureUsageTextureBinding == 0 || d.Usage&gputypes.TextureUsageCopyDst == 0 {
		t.Errorf("Usage = %v, want TextureBinding|CopyDst", d.Usage)
	}
	if d.MipLevelCount != 1 || d.SampleCount != 1 {
		t.Errorf("MipLevelCount/SampleCount = %d/%d", d.MipLevelCount, d.SampleCount)
	}
	if d.Label != "rendersheet-page-0" {
		t.Errorf("Label = %q", d.Label)
	}
}

func TestPageSavePNG(t *testing.T) {
	s := newTestSheet(t, DefaultConfig())
	mustAdd(t, s, "a", boxDrawer{w: 6, h: 9})
	mustRender(t, s)

	path := filepath.Join(t.TempDir(), "page.png")
	if err := s.Page(0).SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 6 || cfg.Height != 9 {
		t.Errorf("png is %dx%d, want 6x9", cfg.Width, cfg.Height)
	}
}
