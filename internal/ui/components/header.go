// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/docchat/docchat-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// RenderHeader renders the application header with the brand on the left
// and a tab per top-level view, the active one highlighted.
func RenderHeader(theme *styles.Theme, width int, tabs []string, active int) string {
	brand := theme.HeaderBrand.Render("docchat")

	var rendered []string
	for i, tab := range tabs {
		if i == active {
			rendered = append(rendered, theme.TabActive.Render(tab))
		} else {
			rendered = append(rendered, theme.TabInactive.Render(tab))
		}
	}
	tabBar := strings.Join(rendered, "")

	gap := width - lipgloss.Width(brand) - lipgloss.Width(tabBar) - 2
	if gap < 1 {
		gap = 1
	}

	return theme.Header.Width(width).Render(brand + strings.Repeat(" ", gap) + tabBar)
}
