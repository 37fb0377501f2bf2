// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendersheet

import (
	"errors"
	"fmt"
)

// Sentinel errors for rendersheet package.
var (
	// ErrNotFound is matched by lookups of names that were never added.
	ErrNotFound = errors.New("rendersheet: entry not found")

	// ErrEntryTooLarge is matched when an entry cannot fit on an empty page.
	ErrEntryTooLarge = errors.New("rendersheet: entry larger than page")

	// ErrMeasurement is matched when a measure callback fails or reports
	// a non-finite or negative size.
	ErrMeasurement = errors.New("rendersheet: invalid measurement")

	// ErrTooManyPages is returned when a pass needs more pages than Config.MaxPages.
	ErrTooManyPages = errors.New("rendersheet: page limit exceeded")

	// ErrNilDrawer is returned when Add is called without a Drawer.
	ErrNilDrawer = errors.New("rendersheet: nil drawer")

	// ErrEmptyName is returned when Add is called with an empty name.
	ErrEmptyName = errors.New("rendersheet: empty entry name")
)

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "rendersheet: invalid config." + e.Field + ": " + e.Reason
}

// MeasurementError reports an entry whose Measure call failed or returned
// a size that cannot be packed.
type MeasurementError struct {
	Name   string
	Width  float64
	Height float64
	Err    error // error returned by Measure, if any
}

func (e *MeasurementError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rendersheet: measuring %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("rendersheet: entry %q measured %vx%v", e.Name, e.Width, e.Height)
}

func (e *MeasurementError) Unwrap() error { return e.Err }

// Is matches ErrMeasurement.
func (e *MeasurementError) Is(target error) bool { return target == ErrMeasurement }

// EntryTooLargeError reports an entry whose scaled size, plus the buffer,
// exceeds the maximum page size. Entries are never split or rotated.
type EntryTooLargeError struct {
	Name      string
	Width     int
	Height    int
	MaxWidth  int
	MaxHeight int
}

func (e *EntryTooLargeError) Error() string {
	return fmt.Sprintf("rendersheet: entry %q is %dx%d, page allows %dx%d",
		e.Name, e.Width, e.Height, e.MaxWidth, e.MaxHeight)
}

// Is matches ErrEntryTooLarge.
func (e *EntryTooLargeError) Is(target error) bool { return target == ErrEntryTooLarge }

// NotFoundError reports a lookup of an unregistered name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("rendersheet: texture %q not found in sheet", e.Name)
}

// Is matches ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
