// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the docchat TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/docchat/docchat-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Status represents the current application status.
type Status int

const (
	StatusReady Status = iota
	StatusLoading
	StatusSending
	StatusError
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusLoading:
		return "Loading..."
	case StatusSending:
		return "Sending..."
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Shortcut is a key binding hint shown in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// RenderStatusBar renders the bottom status bar: status on the left, key
// hints on the right, padded to the full width.
func RenderStatusBar(theme *styles.Theme, width int, status Status, shortcuts []Shortcut) string {
	left := theme.ModeBadge.Render(status.String())

	var hints []string
	for _, sc := range shortcuts {
		hints = append(hints, theme.ShortcutKey.Render(sc.Key)+" "+theme.ShortcutDesc.Render(sc.Desc))
	}
	right := strings.Join(hints, "  ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return theme.StatusBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
