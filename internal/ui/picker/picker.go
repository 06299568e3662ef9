// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package picker provides the document selector used by the
// create-conversation flow. It reuses the browse listing behavior and adds
// a cross-page selection set: documents stay picked while the user pages
// through results or switches between paginated and search modes.
package picker

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat/docchat-tui/internal/api"
	"github.com/docchat/docchat-tui/internal/listing"
	"github.com/docchat/docchat-tui/internal/model"
	"github.com/docchat/docchat-tui/internal/ui/components"
	"github.com/docchat/docchat-tui/internal/ui/styles"
	"github.com/docchat/docchat-tui/internal/util"
)

// =============================================================================
// MESSAGES
// =============================================================================

// PageLoadedMsg delivers a paginated document response.
type PageLoadedMsg struct {
	Req  listing.Request
	Page *model.PaginatedDocuments
	Err  error
}

// SearchLoadedMsg delivers a search response.
type SearchLoadedMsg struct {
	Req    listing.Request
	Result *model.DocumentSearch
	Err    error
}

// ConfirmedMsg reports the final selection back to the owner.
type ConfirmedMsg struct {
	DocumentIDs []int
}

// CancelledMsg reports that the picker was dismissed without a selection.
type CancelledMsg struct{}

// =============================================================================
// PICKER MODEL
// =============================================================================

// Model is the Bubble Tea model for the document picker.
type Model struct {
	client *api.Client
	theme  *styles.Theme

	engine *listing.Engine[model.Document]
	cursor int

	searchInput textinput.Model
	searching   bool

	spinner spinner.Model
	toasts  *components.ToastManager

	width  int
	height int
}

// New creates a document picker with an empty selection.
func New(client *api.Client, theme *styles.Theme, pageSize int) Model {
	in := textinput.New()
	in.Placeholder = "search..."
	in.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return Model{
		client:      client,
		theme:       theme,
		engine:      listing.NewEngine[model.Document](pageSize, listing.WithSelection()),
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

// SelectionCount returns the number of picked documents.
func (m Model) SelectionCount() int {
	return m.engine.SelectionCount()
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles Bubble Tea messages for the picker.
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

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
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

	case " ":
		// Toggling never touches the listing or triggers a fetch.
		items := m.engine.Items()
		if m.cursor >= 0 && m.cursor < len(items) {
			m.engine.ToggleSelection(items[m.cursor].DocumentID)
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

	case "enter":
		ids := m.engine.Selected()
		if len(ids) == 0 {
			m.toasts.AddError("Pick at least one document")
			return m, components.ToastTickCmd()
		}
		return m, func() tea.Msg { return ConfirmedMsg{DocumentIDs: ids} }

	case "esc":
		if m.engine.Mode() != listing.ModePaginated {
			req, _ := m.engine.SetMode(listing.ModePaginated)
			m.cursor = 0
			return m, tea.Batch(fetchCmd(m.client, req), m.spinner.Tick)
		}
		return m, func() tea.Msg { return CancelledMsg{} }
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

func (m *Model) clampCursor() {
	if n := len(m.engine.Items()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the picker.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.theme.ModeBadge.Render("Pick documents"))
	b.WriteString(m.theme.ListMeta.Render("  space: toggle  enter: confirm  esc: cancel"))
	b.WriteString("\n")

	if m.engine.Loading() {
		b.WriteString(m.theme.LoadingText.Render(m.spinner.View() + " Loading documents..."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderRows())
	}

	b.WriteString("\n")
	b.WriteString(components.RenderPagination(m.theme, m.engine.Page(), m.engine.TotalPages(), m.engine.Total()))
	b.WriteString("  ")
	b.WriteString(m.theme.ListRowChecked.Render(util.IntToString(m.engine.SelectionCount()) + " picked"))

	if m.searching {
		b.WriteString("\n")
		label := "filename"
		if m.engine.Mode() == listing.ModeTagSearch {
			label = "tags"
		}
		b.WriteString(m.theme.SearchModeLabel.Render(label+" ") + m.searchInput.View())
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
		return m.theme.EmptyList.Render("No documents.")
	}

	var rows []string
	for i, doc := range items {
		mark := "[ ]"
		if m.engine.IsSelected(doc.DocumentID) {
			mark = "[x]"
		}

		nameWidth := m.width - 24
		if nameWidth < 16 {
			nameWidth = 16
		}
		line := mark + " " + util.PadRight(util.TruncateWidth(doc.OriginalFilename, nameWidth), nameWidth) +
			" " + doc.FormatSize()

		if i == m.cursor {
			rows = append(rows, m.theme.ListRowSelected.Render("> "+line))
		} else {
			rows = append(rows, m.theme.ListRow.Render("  "+line))
		}
	}
	return strings.Join(rows, "\n") + "\n"
}

// =============================================================================
// COMMAND CREATORS
// =============================================================================

func fetchCmd(client *api.Client, req listing.Request) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		switch req.Kind {
		case listing.KindFilenameSearch:
			res, err := client.SearchDocumentsByFilename(ctx, req.Query)
			return SearchLoadedMsg{Req: req, Result: res, Err: err}

		case listing.KindTagSearch:
			res, err := client.SearchDocumentsByTags(ctx, req.Tags)
			return SearchLoadedMsg{Req: req, Result: res, Err: err}

		default:
			order := api.OrderDescending
			if req.Order == listing.SortAscending {
				order = api.OrderAscending
			}
			res, err := client.DocumentsPage(ctx, req.Page, req.PageSize, order)
			return PageLoadedMsg{Req: req, Page: res, Err: err}
		}
	}
}

func pageResult(p *model.PaginatedDocuments) *listing.PageResult[model.Document] {
	if p == nil {
		return nil
	}
	return &listing.PageResult[model.Document]{
		Items:      p.Items,
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}

func searchResult(s *model.DocumentSearch) *listing.SearchResult[model.Document] {
	if s == nil {
		return nil
	}
	return &listing.SearchResult[model.Document]{
		Items: s.Documents,
		Query: s.Query,
		Total: s.Total,
	}
}
