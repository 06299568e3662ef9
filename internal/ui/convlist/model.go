// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package convlist provides the conversation list view for the TUI.
//
// The list is paginated only (no search modes). It hosts three flows on
// top of the listing: inline rename of the row under the cursor, a
// create flow (title prompt followed by the document picker), and delete
// with confirmation. Create and delete re-fetch the current page through
// the listing engine's Invalidate entry point.
package convlist

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat/docchat-tui/internal/api"
	"github.com/docchat/docchat-tui/internal/convo"
	"github.com/docchat/docchat-tui/internal/listing"
	"github.com/docchat/docchat-tui/internal/model"
	"github.com/docchat/docchat-tui/internal/ui/components"
	"github.com/docchat/docchat-tui/internal/ui/picker"
	"github.com/docchat/docchat-tui/internal/ui/styles"
)

// =============================================================================
// STAGES
// =============================================================================

// stage tracks which flow currently owns the keyboard.
type stage int

const (
	stageList stage = iota
	stageRename
	stageTitle
	stagePick
	stageConfirmDelete
)

// =============================================================================
// CONVLIST MODEL
// =============================================================================

// Model is the Bubble Tea model for the conversation list.
type Model struct {
	// Dependencies
	client *api.Client
	theme  *styles.Theme

	// Listing state
	engine *listing.Engine[model.ConversationListItem]
	cursor int

	// Flow state
	stage stage

	// Inline rename
	edit        convo.Edit
	renameInput textinput.Model

	// Create flow
	titleInput   textinput.Model
	pendingTitle string
	picker       picker.Model
	pickerSize   int

	// Delete confirmation target
	deleteTarget model.ConversationListItem

	// UI components
	spinner spinner.Model
	toasts  *components.ToastManager

	// Dimensions
	width  int
	height int
}

// New creates a conversation list backed by the given client.
func New(client *api.Client, theme *styles.Theme, pageSize, pickerPageSize int) Model {
	rename := textinput.New()
	rename.CharLimit = 120

	title := textinput.New()
	title.Placeholder = "conversation title..."
	title.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return Model{
		client:      client,
		theme:       theme,
		engine:      listing.NewEngine[model.ConversationListItem](pageSize),
		renameInput: rename,
		titleInput:  title,
		pickerSize:  pickerPageSize,
		spinner:     sp,
		toasts:      components.NewToastManager(),
	}
}

// Init issues the initial page fetch.
func (m Model) Init() tea.Cmd {
	req := m.engine.Init()
	return tea.Batch(fetchCmd(m.client, req), m.spinner.Tick)
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.renameInput.Width = width - 12
	m.titleInput.Width = width - 12
	m.picker.SetSize(width, height)
}

// Loading reports whether a page fetch is in flight.
func (m Model) Loading() bool {
	return m.engine.Loading()
}

// Selected returns the conversation under the cursor, if any.
func (m Model) Selected() (model.ConversationListItem, bool) {
	items := m.engine.Items()
	if m.cursor < 0 || m.cursor >= len(items) {
		return model.ConversationListItem{}, false
	}
	return items[m.cursor], true
}

// clampCursor keeps the cursor inside the freshly applied item list.
func (m *Model) clampCursor() {
	if n := len(m.engine.Items()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
