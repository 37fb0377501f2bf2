// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cli implements the rendersheet command-line interface.
//
// The pack command reads a TOML project listing shapes and labels, packs
// them with rendersheet and writes the pages as PNG files next to a JSON
// atlas description.
package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/rendersheet"
)

const appName = "rendersheet"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI whose logger also receives the library's slog output.
func New(w io.Writer, level log.Level) *CLI {
	logger := newLogger(w, level)
	rendersheet.SetLogger(slog.New(logger))
	return &CLI{Logger: logger}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Rendersheet packs drawn graphics into texture atlas pages",
		Version:      version,
		SilenceUsage: true,
	}
	root.AddCommand(c.packCommand())
	return root
}

var version = "dev"

// SetVersion sets the version displayed by --version.
func SetVersion(v string) {
	version = v
}
