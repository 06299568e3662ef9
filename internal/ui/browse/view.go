// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package browse provides the document browser view for the TUI.
package browse

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/docchat/docchat-tui/internal/listing"
	"github.com/docchat/docchat-tui/internal/model"
	"github.com/docchat/docchat-tui/internal/ui/components"
	"github.com/docchat/docchat-tui/internal/util"
)

// View renders the document browser.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderModeLine())
	b.WriteString("\n")

	if m.engine.Loading() {
		b.WriteString(m.theme.LoadingText.Render(m.spinner.View() + " Loading documents..."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderRows())
	}

	b.WriteString("\n")
	b.WriteString(components.RenderPagination(m.theme, m.engine.Page(), m.engine.TotalPages(), m.engine.Total()))

	if m.searching {
		b.WriteString("\n")
		b.WriteString(m.renderSearchBar())
	}

	if m.toasts.HasToasts() {
		b.WriteString("\n")
		b.WriteString(components.RenderToasts(m.toasts.TickToasts(), m.width))
	}

	return b.String()
}

// renderModeLine shows the active listing mode and sort order.
func (m Model) renderModeLine() string {
	var mode string
	switch m.engine.Mode() {
	case listing.ModeFilenameSearch:
		mode = "Filename search"
		if q := m.engine.Query(); q != "" {
			mode += ": " + q
		}
	case listing.ModeTagSearch:
		mode = "Tag search"
		if q := m.engine.Query(); q != "" {
			mode += ": " + q
		}
	default:
		mode = "All documents"
		if m.engine.SortOrder() == listing.SortAscending {
			mode += " (oldest first)"
		} else {
			mode += " (newest first)"
		}
	}
	return m.theme.ModeBadge.Render(mode)
}

func (m Model) renderRows() string {
	items := m.engine.Items()
	if len(items) == 0 {
		if m.engine.Mode() == listing.ModePaginated {
			return m.theme.EmptyList.Render("No documents uploaded yet.")
		}
		return m.theme.EmptyList.Render("No documents match.")
	}

	var rows []string
	for i, doc := range items {
		rows = append(rows, m.renderRow(doc, i == m.cursor))
	}
	return strings.Join(rows, "\n") + "\n"
}

func (m Model) renderRow(doc model.Document, selected bool) string {
	nameWidth := m.width - 34
	if nameWidth < 16 {
		nameWidth = 16
	}

	name := util.PadRight(util.TruncateWidth(doc.OriginalFilename, nameWidth), nameWidth)
	size := util.PadRight(doc.FormatSize(), 10)
	date := model.FormatDate(doc.UploadedAt)

	line := name + " " + size + " " + m.theme.ListMeta.Render(date)
	if tags := doc.TagNames(); len(tags) > 0 {
		line += " " + m.theme.TagBadge.Render(strings.Join(tags, ","))
	}

	if selected {
		return m.theme.ListRowSelected.Render("> " + line)
	}
	return m.theme.ListRow.Render("  " + line)
}

func (m Model) renderSearchBar() string {
	label := "filename"
	if m.engine.Mode() == listing.ModeTagSearch {
		label = "tags"
	}
	return lipgloss.JoinHorizontal(lipgloss.Left,
		m.theme.SearchModeLabel.Render(label+" "),
		m.searchInput.View(),
	)
}
