// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package convlist provides the conversation list view for the TUI.
package convlist

import (
	"strings"

	"github.com/docchat/docchat-tui/internal/model"
	"github.com/docchat/docchat-tui/internal/ui/components"
	"github.com/docchat/docchat-tui/internal/util"
)

// View renders the conversation list or the active sub-flow.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.stage == stagePick {
		return m.picker.View()
	}

	var b strings.Builder
	b.WriteString(m.theme.ModeBadge.Render("Conversations"))
	b.WriteString(m.theme.ListMeta.Render("  n: new  e: rename  d: delete  enter: open"))
	b.WriteString("\n")

	if m.stage == stageTitle {
		b.WriteString(m.theme.SearchModeLabel.Render("title ") + m.titleInput.View())
		b.WriteString("\n")
	}

	if m.engine.Loading() {
		b.WriteString(m.theme.LoadingText.Render(m.spinner.View() + " Loading conversations..."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderRows())
	}

	b.WriteString("\n")
	b.WriteString(components.RenderPagination(m.theme, m.engine.Page(), m.engine.TotalPages(), m.engine.Total()))

	if m.stage == stageConfirmDelete {
		b.WriteString("\n")
		b.WriteString(m.theme.ErrorTitle.Render("Delete \"" + util.TruncateWidth(m.deleteTarget.Title, 40) + "\"? (y/N)"))
	}

	if m.toasts.HasToasts() {
		b.WriteString("\n")
		b.WriteString(components.RenderToasts(m.toasts.TickToasts(), m.width))
	}

	return b.String()
}

func (m Model) renderRows() string {
	items := m.engine.Items()
	if len(items) == 0 {
		return m.theme.EmptyList.Render("No conversations yet. Press n to start one.")
	}

	var rows []string
	for i, item := range items {
		rows = append(rows, m.renderRow(item, i == m.cursor))
	}
	return strings.Join(rows, "\n") + "\n"
}

func (m Model) renderRow(item model.ConversationListItem, selected bool) string {
	// The row under edit renders the draft input in place of its title.
	if id, active := m.edit.Editing(); active && id == item.ConversationID {
		return m.theme.RenameInput.Render("> " + m.renameInput.View())
	}

	titleWidth := m.width - 24
	if titleWidth < 16 {
		titleWidth = 16
	}
	line := util.PadRight(util.TruncateWidth(item.Title, titleWidth), titleWidth) +
		" " + m.theme.ListMeta.Render(model.FormatDate(item.UpdatedAt))

	if selected {
		return m.theme.ListRowSelected.Render("> " + line)
	}
	return m.theme.ListRow.Render("  " + line)
}
