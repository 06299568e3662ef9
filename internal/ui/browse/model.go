// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package browse provides the document browser view for the TUI.
package browse

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat/docchat-tui/internal/api"
	"github.com/docchat/docchat-tui/internal/listing"
	"github.com/docchat/docchat-tui/internal/model"
	"github.com/docchat/docchat-tui/internal/ui/components"
	"github.com/docchat/docchat-tui/internal/ui/styles"
)

// =============================================================================
// BROWSE MODEL
// =============================================================================

// Model is the Bubble Tea model for the document browser.
type Model struct {
	// Dependencies
	client *api.Client
	theme  *styles.Theme

	// Listing state
	engine *listing.Engine[model.Document]

	// Cursor position within the current page
	cursor int

	// Search input, shown while composing a filename or tag query
	searchInput textinput.Model
	searching   bool

	// UI components
	spinner spinner.Model
	toasts  *components.ToastManager

	// Dimensions
	width  int
	height int
}

// New creates a document browser backed by the given client.
func New(client *api.Client, theme *styles.Theme, pageSize int, order listing.SortOrder) Model {
	in := textinput.New()
	in.Placeholder = "search..."
	in.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return Model{
		client:      client,
		theme:       theme,
		engine:      listing.NewEngine[model.Document](pageSize, listing.WithSortOrder(order)),
		searchInput: in,
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
	m.searchInput.Width = width - 10
}

// Engine exposes the listing state for the shell's status line.
func (m Model) Engine() *listing.Engine[model.Document] {
	return m.engine
}

// Selected returns the document under the cursor, if any.
func (m Model) Selected() (model.Document, bool) {
	items := m.engine.Items()
	if m.cursor < 0 || m.cursor >= len(items) {
		return model.Document{}, false
	}
	return items[m.cursor], true
}
