// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package listing implements the windowed pagination / dual-mode listing
// engine shared by the browse, picker, and conversation views.
package listing

// WindowWidth is the number of page buttons shown around the current page.
const WindowWidth = 5

// WindowBounds computes the inclusive page-number window [start, end]
// around current for a listing with total pages.
//
// The window stays centered on current except at the boundaries, where it
// shifts to keep its full width whenever total >= WindowWidth. The final
// re-clamp of start is load-bearing: without it the window renders fewer
// than WindowWidth pages near the last page.
func WindowBounds(current, total int) (start, end int) {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	start = current - WindowWidth/2
	if start < 1 {
		start = 1
	}
	end = start + WindowWidth - 1
	if end > total {
		end = total
	}
	if end-start < WindowWidth-1 {
		start = end - WindowWidth + 1
		if start < 1 {
			start = 1
		}
	}
	return start, end
}

// Window returns the page numbers to render as navigable controls.
// The result always contains current and never exceeds [1, total].
func Window(current, total int) []int {
	start, end := WindowBounds(current, total)
	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}
