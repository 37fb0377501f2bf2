// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendersheet

import "log/slog"

// Option configures a Sheet's collaborators during creation.
//
// Example:
//
//	// Default software rasterizer and sub-image handles
//	sheet, err := rendersheet.New(rendersheet.DefaultConfig())
//
//	// Custom texture backend (dependency injection)
//	sheet, err := rendersheet.New(cfg, rendersheet.WithTextureFactory(uploader))
type Option func(*sheetOptions)

// sheetOptions holds optional configuration for Sheet creation.
type sheetOptions struct {
	rasterizer Rasterizer
	textures   TextureFactory
	logger     *slog.Logger
}

// defaultOptions returns the default sheet options. The rasterizer is
// filled in from Config by New when none is given.
func defaultOptions() sheetOptions {
	return sheetOptions{
		textures: SubImageFactory{},
	}
}

// WithRasterizer replaces the default ContextRasterizer.
// Config.TestBoxes and Config.ClipEntries only affect the default rasterizer.
func WithRasterizer(r Rasterizer) Option {
	return func(o *sheetOptions) {
		o.rasterizer = r
	}
}

// WithTextureFactory sets the factory that produces each Texture's Source.
func WithTextureFactory(f TextureFactory) Option {
	return func(o *sheetOptions) {
		o.textures = f
	}
}

// WithLogger gives the sheet its own logger instead of the package logger
// set with SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *sheetOptions) {
		o.logger = l
	}
}
