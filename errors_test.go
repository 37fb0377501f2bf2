// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendersheet

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorsMatchSentinels(t *testing.T) {
	cause := errors.New("cause")
	tests := []struct {
		name     string
		err      error
		sentinel error
		contains string
	}{
		{"measurement", &MeasurementError{Name: "a", Err: cause}, ErrMeasurement, `measuring "a": cause`},
		{"measurement size", &MeasurementError{Name: "a", Width: -1, Height: 2}, ErrMeasurement, `"a" measured -1x2`},
		{"too large", &EntryTooLargeError{Name: "b", Width: 50, Height: 50, MaxWidth: 40, MaxHeight: 40}, ErrEntryTooLarge, "50x50"},
		{"not found", &NotFoundError{Name: "c"}, ErrNotFound, `"c"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", wrapped, tt.sentinel)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("Error() = %q, want it to contain %q", tt.err.Error(), tt.contains)
			}
		})
	}
}

func TestMeasurementErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := error(&MeasurementError{Name: "a", Err: cause})
	if !errors.Is(err, cause) {
		t.Error("MeasurementError does not unwrap to its cause")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("MeasurementError should not match ErrNotFound")
	}
}
