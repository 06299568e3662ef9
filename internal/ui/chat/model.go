// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversation detail view for the TUI.
package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/docchat/docchat-tui/internal/api"
	"github.com/docchat/docchat-tui/internal/convo"
	"github.com/docchat/docchat-tui/internal/model"
	"github.com/docchat/docchat-tui/internal/ui/components"
	"github.com/docchat/docchat-tui/internal/ui/styles"
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for a single conversation.
type Model struct {
	// Dependencies
	client *api.Client
	theme  *styles.Theme

	// Conversation state
	sync  *convo.Sync
	title string

	// Documents attached to this conversation, shown in the header line.
	documents []model.Document

	// Markdown renderer for assistant messages, rebuilt on resize.
	renderer       *glamour.TermRenderer
	renderMarkdown bool
	rendererWidth  int

	// UI components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	toasts   *components.ToastManager

	// Loading state for the initial history fetch
	loading bool

	// Dimensions
	width  int
	height int
}

// New creates a chat view for the given conversation.
func New(client *api.Client, theme *styles.Theme, conversationID int, title string, renderMarkdown bool) Model {
	in := textinput.New()
	in.Placeholder = "ask about your documents..."
	in.CharLimit = 4000

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return Model{
		client:         client,
		theme:          theme,
		sync:           convo.NewSync(conversationID),
		title:          title,
		renderMarkdown: renderMarkdown,
		viewport:       viewport.New(0, 0),
		input:          in,
		spinner:        sp,
		toasts:         components.NewToastManager(),
		loading:        true,
	}
}

// Init fetches the message history and the attached documents.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadHistoryCmd(m.client, m.sync.ConversationID()),
		loadDocumentsCmd(m.client, m.sync.ConversationID()),
		m.input.Focus(),
		m.spinner.Tick,
	)
}

// ConversationID returns the conversation this view displays.
func (m Model) ConversationID() int {
	return m.sync.ConversationID()
}

// Sending reports whether a send is in flight.
func (m Model) Sending() bool {
	return m.sync.Sending()
}

// Loading reports whether the initial history fetch is still in flight.
func (m Model) Loading() bool {
	return m.loading
}

// SetSize updates the view dimensions and rebuilds the markdown
// renderer when the wrap width changes.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6

	// header + document line + input + status
	viewportHeight := height - 5
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	m.viewport.Width = width
	m.viewport.Height = viewportHeight

	wrap := width - 8
	if wrap < 20 {
		wrap = 20
	}
	if m.renderMarkdown && (m.renderer == nil || m.rendererWidth != wrap) {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
		if err == nil {
			m.renderer = r
			m.rendererWidth = wrap
		}
	}

	m.refreshViewport()
}
