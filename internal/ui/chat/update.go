// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversation detail view for the TUI.
package chat

import (
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat/docchat-tui/internal/convo"
	"github.com/docchat/docchat-tui/internal/ui/components"
)

// Update handles Bubble Tea messages for the chat view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case HistoryLoadedMsg:
		if msg.ConversationID != m.sync.ConversationID() {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.toasts.AddError("Failed to load messages: " + msg.Err.Error())
			return m, components.ToastTickCmd()
		}
		if msg.Title != "" {
			m.title = msg.Title
		}
		m.sync.SetMessages(msg.Messages)
		m.refreshViewport()
		m.viewport.GotoBottom()
		return m, nil

	case DocumentsLoadedMsg:
		if msg.ConversationID != m.sync.ConversationID() {
			return m, nil
		}
		// The header line is cosmetic; a failed fetch just leaves it empty.
		if msg.Err == nil {
			m.documents = msg.Documents
		}
		return m, nil

	case SendFinishedMsg:
		return m.handleSendFinished(msg)

	case components.ToastTickMsg:
		if m.toasts.HasToasts() {
			m.toasts.TickToasts()
			return m, components.ToastTickCmd()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.sync.Sending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleSendFinished reconciles or rolls back the optimistic message.
func (m Model) handleSendFinished(msg SendFinishedMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		restored, ok := m.sync.FailSend(msg.Req)
		if ok {
			// Hand the text back so the user can retry without retyping.
			m.input.SetValue(restored)
			m.input.CursorEnd()
		}
		m.toasts.AddError("Send failed: " + msg.Err.Error())
		m.refreshViewport()
		return m, components.ToastTickCmd()
	}

	m.sync.CompleteSend(msg.Req, msg.Messages)
	m.refreshViewport()
	m.viewport.GotoBottom()
	return m, nil
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submit()

	case "esc":
		return m, func() tea.Msg { return CloseMsg{} }

	case "pgup":
		m.viewport.HalfViewUp()
		return m, nil

	case "pgdown":
		m.viewport.HalfViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts an optimistic send: the placeholder message appears and
// the compose input clears before any network activity.
func (m Model) submit() (Model, tea.Cmd) {
	req, err := m.sync.BeginSend(m.input.Value())
	if err != nil {
		switch {
		case errors.Is(err, convo.ErrSendInFlight):
			m.toasts.AddError("Still sending the previous message")
		case errors.Is(err, convo.ErrEmptyMessage):
			// Swallow empty submits silently, like hitting enter on an
			// empty prompt.
			return m, nil
		default:
			m.toasts.AddError(err.Error())
		}
		return m, components.ToastTickCmd()
	}

	m.input.Reset()
	m.refreshViewport()
	m.viewport.GotoBottom()
	return m, tea.Batch(sendCmd(m.client, req), m.spinner.Tick)
}
