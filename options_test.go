// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendersheet

import (
	"log/slog"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if _, ok := o.textures.(SubImageFactory); !ok {
		t.Errorf("default texture factory = %T, want SubImageFactory", o.textures)
	}
	if o.rasterizer != nil || o.logger != nil {
		t.Error("rasterizer and logger should default to nil")
	}
}

func TestNewUsesConfigForDefaultRasterizer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TestBoxes = true
	cfg.ClipEntries = false
	s := newTestSheet(t, cfg)

	r, ok := s.rasterizer.(*ContextRasterizer)
	if !ok {
		t.Fatalf("rasterizer = %T, want *ContextRasterizer", s.rasterizer)
	}
	if !r.TestBoxes || r.Clip {
		t.Errorf("rasterizer = %+v, want TestBoxes and no Clip", *r)
	}
}

func TestOptionsApplied(t *testing.T) {
	r := &ContextRasterizer{}
	f := &recordingFactory{}
	l := slog.Default()
	s := newTestSheet(t, DefaultConfig(), WithRasterizer(r), WithTextureFactory(f), WithLogger(l))

	if s.rasterizer != r {
		t.Error("WithRasterizer not applied")
	}
	if s.textures != f {
		t.Error("WithTextureFactory not applied")
	}
	if s.log() != l {
		t.Error("WithLogger not applied")
	}
}

func TestNilTextureFactoryFallsBack(t *testing.T) {
	s := newTestSheet(t, DefaultConfig(), WithTextureFactory(nil))
	if _, ok := s.textures.(SubImageFactory); !ok {
		t.Errorf("textures = %T, want SubImageFactory", s.textures)
	}
}
