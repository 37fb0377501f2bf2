// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendersheet

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxPageWidth != 2048 || cfg.MaxPageHeight != 2048 {
		t.Errorf("page size = %dx%d, want 2048x2048", cfg.MaxPageWidth, cfg.MaxPageHeight)
	}
	if cfg.Buffer != 5 {
		t.Errorf("Buffer = %d, want 5", cfg.Buffer)
	}
	if cfg.Scale != 1 || cfg.Resolution != 1 {
		t.Errorf("Scale/Resolution = %v/%v, want 1/1", cfg.Scale, cfg.Resolution)
	}
	if cfg.TestBoxes {
		t.Error("TestBoxes should default to false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"zero width", func(c *Config) { c.MaxPageWidth = 0 }, "MaxPageWidth"},
		{"huge width", func(c *Config) { c.MaxPageWidth = MaxPageSize + 1 }, "MaxPageWidth"},
		{"negative height", func(c *Config) { c.MaxPageHeight = -1 }, "MaxPageHeight"},
		{"huge height", func(c *Config) { c.MaxPageHeight = MaxPageSize + 1 }, "MaxPageHeight"},
		{"negative buffer", func(c *Config) { c.Buffer = -1 }, "Buffer"},
		{"buffer fills page", func(c *Config) { c.MaxPageHeight = 5 }, "Buffer"},
		{"zero scale", func(c *Config) { c.Scale = 0 }, "Scale"},
		{"nan scale", func(c *Config) { c.Scale = math.NaN() }, "Scale"},
		{"inf resolution", func(c *Config) { c.Resolution = math.Inf(1) }, "Resolution"},
		{"negative workers", func(c *Config) { c.Workers = -2 }, "Workers"},
		{"negative max pages", func(c *Config) { c.MaxPages = -1 }, "MaxPages"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("Validate() = %v, want *ConfigError", err)
			}
			if ce.Field != tt.field {
				t.Errorf("Field = %q, want %q", ce.Field, tt.field)
			}
		})
	}
}

func TestConfigValidateEdges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPageWidth = MaxPageSize
	cfg.Buffer = 0
	cfg.Workers = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "Buffer", Reason: "must be non-negative"}
	want := "rendersheet: invalid config.Buffer: must be non-negative"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
