// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/rendersheet"
)

const atlasFile = "atlas.json"

// packOpts holds the command-line flags for the pack command.
type packOpts struct {
	output    string // output directory
	contact   int    // contact sheet height in pixels, 0 to skip
	testBoxes bool   // force test boxes on
	workers   int    // overrides the project's worker count when non-zero
}

func (c *CLI) packCommand() *cobra.Command {
	opts := packOpts{output: "."}

	cmd := &cobra.Command{
		Use:   "pack [project.toml]",
		Short: "Pack a project into atlas pages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPack(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output directory")
	cmd.Flags().IntVar(&opts.contact, "contact", 0, "also write contact.png at this height")
	cmd.Flags().BoolVar(&opts.testBoxes, "test-boxes", false, "fill every frame with a debug colour")
	cmd.Flags().IntVarP(&opts.workers, "workers", "j", 0, "pages rasterized in parallel")

	return cmd
}

func (c *CLI) runPack(ctx context.Context, out io.Writer, path string, opts packOpts) error {
	prog := newProgress(c.Logger)

	proj, err := loadProject(path)
	if err != nil {
		return err
	}
	cfg := proj.config()
	if opts.testBoxes {
		cfg.TestBoxes = true
	}
	if opts.workers != 0 {
		cfg.Workers = opts.workers
	}

	sheet, err := rendersheet.New(cfg)
	if err != nil {
		return err
	}
	if err := proj.populate(sheet); err != nil {
		return err
	}
	c.Logger.Debug("project loaded", "path", path, "entries", sheet.Len())

	if err := sheet.Render(ctx); err != nil {
		return err
	}
	sheet.DescribePages()

	files, err := writeSheet(sheet, opts.output, opts.contact)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Packed %d entries", sheet.Len()))

	printSuccess(out, "Packed %d entries into %d pages", sheet.Len(), sheet.PageCount())
	printKeyValue(out, "Page size", fmt.Sprintf("%dx%d", cfg.MaxPageWidth, cfg.MaxPageHeight))
	printKeyValue(out, "Resolution", fmt.Sprint(cfg.Resolution))
	printPages(out, sheet.PageInfos())
	for _, f := range files {
		printFile(out, f)
	}
	return nil
}

// writeSheet writes page-N.png for every page, atlas.json and optionally
// contact.png into dir. It returns the paths written.
func writeSheet(sheet *rendersheet.Sheet, dir string, contactHeight int) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	var files []string
	for _, p := range sheet.Pages() {
		name := filepath.Join(dir, fmt.Sprintf("page-%d.png", p.Index()))
		if err := p.SavePNG(name); err != nil {
			return nil, fmt.Errorf("write page %d: %w", p.Index(), err)
		}
		files = append(files, name)
	}

	data, err := json.MarshalIndent(sheet.Manifest(), "", "  ")
	if err != nil {
		return nil, err
	}
	name := filepath.Join(dir, atlasFile)
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return nil, err
	}
	files = append(files, name)

	if contactHeight > 0 {
		if img := sheet.ContactSheet(contactHeight); img != nil {
			name := filepath.Join(dir, "contact.png")
			if err := writePNG(name, img); err != nil {
				return nil, err
			}
			files = append(files, name)
		}
	}
	return files, nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
