// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package convlist provides the conversation list view for the TUI.
package convlist

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat/docchat-tui/internal/ui/components"
	"github.com/docchat/docchat-tui/internal/ui/picker"
)

// Update handles Bubble Tea messages for the conversation list.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case PageLoadedMsg:
		if err := m.engine.ApplyPage(msg.Req, pageResult(msg.Page), msg.Err); err != nil {
			m.toasts.AddError("Failed to load conversations: " + err.Error())
		}
		m.clampCursor()
		return m, components.ToastTickCmd()

	case RenamedMsg:
		return m.handleRenamed(msg)

	case CreatedMsg:
		if msg.Err != nil {
			m.toasts.AddError("Create failed: " + msg.Err.Error())
			return m, components.ToastTickCmd()
		}
		m.toasts.AddSuccess("Conversation created")
		req := m.engine.Invalidate()
		return m, tea.Batch(fetchCmd(m.client, req), components.ToastTickCmd())

	case DeletedMsg:
		if msg.Err != nil {
			m.toasts.AddError("Delete failed: " + msg.Err.Error())
			return m, components.ToastTickCmd()
		}
		m.toasts.AddSuccess("Conversation deleted")
		req := m.engine.Invalidate()
		return m, tea.Batch(fetchCmd(m.client, req), components.ToastTickCmd())

	case picker.ConfirmedMsg:
		// The picker finished; create with the collected title and IDs.
		if m.stage != stagePick {
			return m, nil
		}
		m.stage = stageList
		return m, createCmd(m.client, m.pendingTitle, msg.DocumentIDs)

	case picker.CancelledMsg:
		if m.stage != stagePick {
			return m, nil
		}
		m.stage = stageList
		return m, nil

	case components.ToastTickMsg:
		if m.toasts.HasToasts() {
			m.toasts.TickToasts()
			return m, components.ToastTickCmd()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.engine.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Delegate remaining messages to whichever sub-flow is active.
	switch m.stage {
	case stagePick:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	case stageRename:
		var cmd tea.Cmd
		m.renameInput, cmd = m.renameInput.Update(msg)
		m.edit.SetDraft(m.renameInput.Value())
		return m, cmd
	case stageTitle:
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleRenamed folds a rename result. Success clears the edit and
// re-fetches the list; failure keeps the edit open with the draft intact
// so the user can correct and retry.
func (m Model) handleRenamed(msg RenamedMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.toasts.AddError("Rename failed: " + msg.Err.Error())
		return m, components.ToastTickCmd()
	}

	m.edit.Clear()
	m.stage = stageList
	m.renameInput.Blur()

	req := m.engine.Invalidate()
	return m, tea.Batch(fetchCmd(m.client, req), components.ToastTickCmd())
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.stage {
	case stagePick:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case stageRename:
		return m.handleRenameKey(msg)

	case stageTitle:
		return m.handleTitleKey(msg)

	case stageConfirmDelete:
		return m.handleDeleteKey(msg)
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.engine.Items())-1 {
			m.cursor++
		}
		return m, nil

	case "left", "h":
		if req, ok := m.engine.PrevPage(); ok {
			m.cursor = 0
			return m, tea.Batch(fetchCmd(m.client, req), m.spinner.Tick)
		}
		return m, nil

	case "right", "l":
		if req, ok := m.engine.NextPage(); ok {
			m.cursor = 0
			return m, tea.Batch(fetchCmd(m.client, req), m.spinner.Tick)
		}
		return m, nil

	case "r":
		req := m.engine.Invalidate()
		return m, tea.Batch(fetchCmd(m.client, req), m.spinner.Tick)

	case "e":
		// Begin inline rename on the row under the cursor. Beginning while
		// another row is being edited abandons that row's draft.
		item, ok := m.Selected()
		if !ok {
			return m, nil
		}
		m.edit.Begin(item.ConversationID, item.Title)
		m.renameInput.SetValue(item.Title)
		m.renameInput.CursorEnd()
		m.stage = stageRename
		return m, m.renameInput.Focus()

	case "n":
		m.titleInput.Reset()
		m.stage = stageTitle
		return m, m.titleInput.Focus()

	case "d":
		item, ok := m.Selected()
		if !ok {
			return m, nil
		}
		m.deleteTarget = item
		m.stage = stageConfirmDelete
		return m, nil

	case "enter":
		if item, ok := m.Selected(); ok {
			return m, func() tea.Msg {
				return OpenConversationMsg{ConversationID: item.ConversationID, Title: item.Title}
			}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleRenameKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		id, title, err := m.edit.Commit()
		if err != nil {
			m.toasts.AddError("Title must not be empty")
			return m, components.ToastTickCmd()
		}
		return m, renameCmd(m.client, id, title)

	case "esc":
		m.edit.Cancel()
		m.stage = stageList
		m.renameInput.Blur()
		return m, nil

	default:
		var cmd tea.Cmd
		m.renameInput, cmd = m.renameInput.Update(msg)
		m.edit.SetDraft(m.renameInput.Value())
		return m, cmd
	}
}

func (m Model) handleTitleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := strings.TrimSpace(m.titleInput.Value())
		if title == "" {
			m.toasts.AddError("Title must not be empty")
			return m, components.ToastTickCmd()
		}
		m.pendingTitle = title
		m.titleInput.Blur()
		m.picker = picker.New(m.client, m.theme, m.pickerSize)
		m.picker.SetSize(m.width, m.height)
		m.stage = stagePick
		return m, m.picker.Init()

	case "esc":
		m.titleInput.Blur()
		m.stage = stageList
		return m, nil

	default:
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		return m, cmd
	}
}

func (m Model) handleDeleteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.stage = stageList
		return m, deleteCmd(m.client, m.deleteTarget.ConversationID)
	default:
		m.stage = stageList
		return m, nil
	}
}
