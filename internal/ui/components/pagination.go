// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/docchat/docchat-tui/internal/listing"
	"github.com/docchat/docchat-tui/internal/ui/styles"
)

// =============================================================================
// PAGINATION BAR COMPONENT
// =============================================================================

// RenderPagination renders the numbered page bar for a listing. The bar
// shows a sliding window of page numbers around the current page, with
// first/last markers when the window does not touch the edges:
//
//	<< <  [4] [5] [6*] [7] [8]  > >>    Page 6 of 12 (114 items)
func RenderPagination(theme *styles.Theme, current, totalPages, total int) string {
	if totalPages <= 1 {
		info := fmt.Sprintf("%d items", total)
		if total == 1 {
			info = "1 item"
		}
		return theme.PageInfo.Render(info)
	}

	window := listing.Window(current, totalPages)

	var parts []string
	if window[0] > 1 {
		parts = append(parts, theme.PageNumber.Render("<<"))
	}
	if current > 1 {
		parts = append(parts, theme.PageNumber.Render("<"))
	}
	for _, n := range window {
		label := fmt.Sprintf("%d", n)
		if n == current {
			parts = append(parts, theme.PageNumberCurrent.Render(label))
		} else {
			parts = append(parts, theme.PageNumber.Render(label))
		}
	}
	if current < totalPages {
		parts = append(parts, theme.PageNumber.Render(">"))
	}
	if window[len(window)-1] < totalPages {
		parts = append(parts, theme.PageNumber.Render(">>"))
	}

	bar := strings.Join(parts, "")
	info := theme.PageInfo.Render(fmt.Sprintf("Page %d of %d (%d items)", current, totalPages, total))
	return lipgloss.JoinHorizontal(lipgloss.Center, bar, "  ", info)
}
