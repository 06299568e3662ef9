// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package browse provides the document browser view for the TUI.
package browse

import (
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat/docchat-tui/internal/listing"
	"github.com/docchat/docchat-tui/internal/ui/components"
)

// Update handles Bubble Tea messages for the browser.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case PageLoadedMsg:
		if err := m.engine.ApplyPage(msg.Req, pageResult(msg.Page), msg.Err); err != nil {
			m.toasts.AddError("Failed to load documents: " + err.Error())
		}
		m.clampCursor()
		return m, components.ToastTickCmd()

	case SearchLoadedMsg:
		if err := m.engine.ApplySearch(msg.Req, searchResult(msg.Result), msg.Err); err != nil {
			m.toasts.AddError("Search failed: " + err.Error())
		}
		m.clampCursor()
		return m, components.ToastTickCmd()

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

	if m.searching {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// While the search input is focused, only enter and esc are ours.
	if m.searching {
		switch msg.String() {
		case "enter":
			return m.submitSearch()
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			m.searchInput.Reset()
			return m, nil
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}
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

	case "s":
		if req, ok := m.engine.ToggleSortOrder(); ok {
			return m, tea.Batch(fetchCmd(m.client, req), m.spinner.Tick)
		}
		return m, nil

	case "/":
		m.engine.SetMode(listing.ModeFilenameSearch)
		m.cursor = 0
		return m.focusSearch()

	case "t":
		m.engine.SetMode(listing.ModeTagSearch)
		m.cursor = 0
		return m.focusSearch()

	case "esc":
		if m.engine.Mode() != listing.ModePaginated {
			req, _ := m.engine.SetMode(listing.ModePaginated)
			m.cursor = 0
			return m, tea.Batch(fetchCmd(m.client, req), m.spinner.Tick)
		}
		return m, nil

	case "r":
		req := m.engine.Invalidate()
		return m, tea.Batch(fetchCmd(m.client, req), m.spinner.Tick)

	case "enter":
		if doc, ok := m.Selected(); ok {
			return m, func() tea.Msg { return OpenDocumentMsg{Document: doc} }
		}
		return m, nil
	}

	return m, nil
}

func (m Model) focusSearch() (Model, tea.Cmd) {
	m.searching = true
	m.searchInput.Reset()
	return m, m.searchInput.Focus()
}

func (m Model) submitSearch() (Model, tea.Cmd) {
	req, err := m.engine.Search(m.searchInput.Value())
	if err != nil {
		switch {
		case errors.Is(err, listing.ErrEmptyQuery):
			m.toasts.AddError("Enter a filename to search for")
		case errors.Is(err, listing.ErrNoTags):
			m.toasts.AddError("Enter at least one tag")
		default:
			m.toasts.AddError(err.Error())
		}
		return m, components.ToastTickCmd()
	}

	m.searching = false
	m.searchInput.Blur()
	m.cursor = 0
	return m, tea.Batch(fetchCmd(m.client, req), m.spinner.Tick)
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
