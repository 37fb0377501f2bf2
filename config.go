// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendersheet

import "math"

// Default sheet settings.
const (
	// DefaultPageSize is the default maximum page dimension (2048x2048).
	DefaultPageSize = 2048

	// MaxPageSize is the largest page dimension accepted by Validate.
	MaxPageSize = 16384

	// DefaultBuffer is the default gap in pixels between packed entries.
	DefaultBuffer = 5
)

// Config holds sheet configuration. It is fixed for the lifetime of a Sheet.
type Config struct {
	// MaxPageWidth is the widest a page may grow, in pixels.
	// Default: 2048
	MaxPageWidth int

	// MaxPageHeight is the tallest a page may grow, in pixels.
	// Default: 2048
	MaxPageHeight int

	// Buffer is the number of pixels left between neighbouring entries.
	// Default: 5
	Buffer int

	// Scale multiplies every measured size before packing.
	// Default: 1
	Scale float64

	// Resolution is the device pixel multiplier. Frames are reported in
	// device pixels; Texture.Size divides it back out.
	// Default: 1
	Resolution float64

	// TestBoxes fills each entry's frame with a colour before drawing it.
	// Default: false
	TestBoxes bool

	// ClipEntries clips each Draw call to its entry's frame so that drawing
	// cannot spill onto neighbours.
	// Default: true
	ClipEntries bool

	// Workers is the number of goroutines rasterizing pages. Values above 1
	// require Drawers that are safe for concurrent use. 0 means GOMAXPROCS.
	// Default: 1
	Workers int

	// MaxPages limits the pages a pass may create. 0 means unlimited.
	// Default: 0
	MaxPages int
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		MaxPageWidth:  DefaultPageSize,
		MaxPageHeight: DefaultPageSize,
		Buffer:        DefaultBuffer,
		Scale:         1,
		Resolution:    1,
		ClipEntries:   true,
		Workers:       1,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MaxPageWidth <= 0 {
		return &ConfigError{Field: "MaxPageWidth", Reason: "must be positive"}
	}
	if c.MaxPageWidth > MaxPageSize {
		return &ConfigError{Field: "MaxPageWidth", Reason: "must be at most 16384"}
	}
	if c.MaxPageHeight <= 0 {
		return &ConfigError{Field: "MaxPageHeight", Reason: "must be positive"}
	}
	if c.MaxPageHeight > MaxPageSize {
		return &ConfigError{Field: "MaxPageHeight", Reason: "must be at most 16384"}
	}
	if c.Buffer < 0 {
		return &ConfigError{Field: "Buffer", Reason: "must be non-negative"}
	}
	if c.Buffer >= c.MaxPageWidth || c.Buffer >= c.MaxPageHeight {
		return &ConfigError{Field: "Buffer", Reason: "must be smaller than the page"}
	}
	if !(c.Scale > 0) || math.IsInf(c.Scale, 0) {
		return &ConfigError{Field: "Scale", Reason: "must be positive and finite"}
	}
	if !(c.Resolution > 0) || math.IsInf(c.Resolution, 0) {
		return &ConfigError{Field: "Resolution", Reason: "must be positive and finite"}
	}
	if c.Workers < 0 {
		return &ConfigError{Field: "Workers", Reason: "must be non-negative"}
	}
	if c.MaxPages < 0 {
		return &ConfigError{Field: "MaxPages", Reason: "must be non-negative"}
	}
	return nil
}

// multiplier is the factor applied to measured sizes and drawing
// coordinates.
func (c *Config) multiplier() float64 {
	return c.Scale * c.Resolution
}
