// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package listing implements the windowed pagination / dual-mode listing
// engine shared by the browse, picker, and conversation views.
package listing

import "testing"

// =============================================================================
// PAGE WINDOW TESTS
// =============================================================================

func TestWindow(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{"first page of 12", 1, 12, []int{1, 2, 3, 4, 5}},
		{"second page clamps left", 2, 12, []int{1, 2, 3, 4, 5}},
		{"centered mid-range", 6, 12, []int{4, 5, 6, 7, 8}},
		{"near end shifts to fill width", 11, 12, []int{8, 9, 10, 11, 12}},
		{"last page of 12", 12, 12, []int{8, 9, 10, 11, 12}},
		{"fewer pages than window", 2, 3, []int{1, 2, 3}},
		{"single page", 1, 1, []int{1}},
		{"exactly window width", 3, 5, []int{1, 2, 3, 4, 5}},
		{"boundary page 10 of 12", 10, 12, []int{8, 9, 10, 11, 12}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Window(tc.current, tc.total)
			if len(got) != len(tc.want) {
				t.Fatalf("Window(%d, %d) = %v, want %v", tc.current, tc.total, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("Window(%d, %d) = %v, want %v", tc.current, tc.total, got, tc.want)
				}
			}
		})
	}
}

// TestWindow_Properties checks the guarantees for every (current, total)
// pair in a representative range: the window has size min(W, total),
// contains current, and never leaves [1, total].
func TestWindow_Properties(t *testing.T) {
	for total := 1; total <= 30; total++ {
		for current := 1; current <= total; current++ {
			got := Window(current, total)

			wantLen := WindowWidth
			if total < WindowWidth {
				wantLen = total
			}
			if len(got) != wantLen {
				t.Fatalf("Window(%d, %d): len = %d, want %d", current, total, len(got), wantLen)
			}

			contains := false
			for i, p := range got {
				if p < 1 || p > total {
					t.Fatalf("Window(%d, %d): page %d out of range", current, total, p)
				}
				if i > 0 && p != got[i-1]+1 {
					t.Fatalf("Window(%d, %d): not contiguous: %v", current, total, got)
				}
				if p == current {
					contains = true
				}
			}
			if !contains {
				t.Fatalf("Window(%d, %d) = %v does not contain current", current, total, got)
			}
		}
	}
}

func TestWindowBounds_DegenerateInputs(t *testing.T) {
	// Out-of-range current values are clamped rather than panicking.
	if start, end := WindowBounds(0, 10); start != 1 || end != 5 {
		t.Errorf("WindowBounds(0, 10) = [%d, %d]", start, end)
	}
	if start, end := WindowBounds(99, 10); start != 6 || end != 10 {
		t.Errorf("WindowBounds(99, 10) = [%d, %d]", start, end)
	}
	if start, end := WindowBounds(1, 0); start != 1 || end != 1 {
		t.Errorf("WindowBounds(1, 0) = [%d, %d]", start, end)
	}
}
