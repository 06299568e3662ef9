// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversation detail view for the TUI.
package chat

import (
	"strings"

	"github.com/docchat/docchat-tui/internal/model"
	"github.com/docchat/docchat-tui/internal/ui/components"
	"github.com/docchat/docchat-tui/internal/util"
)

// View renders the chat view.
// Layout: title line + document line + messages viewport + input + status.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.theme.HeaderTitle.Render(util.TruncateWidth(m.title, m.width-4)))
	b.WriteString("\n")
	b.WriteString(m.renderDocumentLine())
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.theme.LoadingText.Render(m.spinner.View() + " Loading messages..."))
	} else {
		b.WriteString(m.viewport.View())
	}
	b.WriteString("\n")

	b.WriteString(m.theme.InputContainer.Width(m.width - 2).Render(
		m.theme.InputPrompt.Render("> ") + m.input.View(),
	))
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())

	if m.toasts.HasToasts() {
		b.WriteString("\n")
		b.WriteString(components.RenderToasts(m.toasts.TickToasts(), m.width))
	}

	return b.String()
}

// renderDocumentLine shows the documents this conversation can answer
// about.
func (m Model) renderDocumentLine() string {
	if len(m.documents) == 0 {
		return m.theme.ListMeta.Render("no attached documents")
	}
	names := make([]string, len(m.documents))
	for i, d := range m.documents {
		names[i] = d.OriginalFilename
	}
	line := "docs: " + strings.Join(names, ", ")
	return m.theme.ListMeta.Render(util.TruncateWidth(line, m.width-2))
}

func (m Model) renderStatusLine() string {
	if m.sync.Sending() {
		return m.theme.LoadingText.Render(m.spinner.View() + " waiting for assistant...")
	}
	return m.theme.ShortcutDesc.Render("enter: send  esc: back  pgup/pgdn: scroll")
}

// refreshViewport re-renders the message log into the viewport.
func (m *Model) refreshViewport() {
	var b strings.Builder
	for _, msg := range m.sync.Messages() {
		b.WriteString(m.renderMessage(msg))
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
}

// renderMessage renders one message bubble. Assistant messages go
// through the markdown renderer; optimistic user messages render dimmed
// until the server confirms them.
func (m Model) renderMessage(msg model.Message) string {
	wrap := m.width - 8
	if wrap < 20 {
		wrap = 20
	}

	stamp := m.theme.MessageTimestamp.Render(model.FormatTime(msg.CreatedAt))

	if msg.Role == model.RoleAssistant {
		content := msg.Content
		if m.renderer != nil {
			if rendered, err := m.renderer.Render(content); err == nil {
				content = strings.TrimRight(rendered, "\n")
			}
		}
		return m.theme.AssistantBubble.MaxWidth(wrap).Render(content) + " " + stamp
	}

	if msg.IsOptimistic() {
		return m.theme.PendingBubble.MaxWidth(wrap).Render(msg.Content) + " " +
			m.theme.MessageTimestamp.Render("sending...")
	}
	return m.theme.UserBubble.MaxWidth(wrap).Render(msg.Content) + " " + stamp
}
