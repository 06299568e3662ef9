// docchat TUI - A terminal interface for the docchat document and AI-chat backend.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat/docchat-tui/internal/api"
	"github.com/docchat/docchat-tui/internal/config"
	"github.com/docchat/docchat-tui/internal/listing"
	"github.com/docchat/docchat-tui/internal/model"
	"github.com/docchat/docchat-tui/internal/ui/browse"
	"github.com/docchat/docchat-tui/internal/ui/chat"
	"github.com/docchat/docchat-tui/internal/ui/components"
	"github.com/docchat/docchat-tui/internal/ui/convlist"
	"github.com/docchat/docchat-tui/internal/ui/profile"
	"github.com/docchat/docchat-tui/internal/ui/styles"
	"github.com/docchat/docchat-tui/internal/util"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	var (
		baseURL       = flag.String("base-url", "", "backend origin (overrides config)")
		sessionCookie = flag.String("session-cookie", "", "session cookie value (overrides config)")
		showVersion   = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("docchat %s (%s, %s)\n", Version, GitCommit, BuildDate)
		return
	}

	// Load configuration at startup
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// CLI args override config
	if *baseURL != "" {
		cfg.Server.BaseURL = *baseURL
	}
	if *sessionCookie != "" {
		cfg.Server.SessionCookie = *sessionCookie
	}
	config.SetGlobal(cfg)

	// First run: write a starter config so the user has a file to paste
	// the session cookie into.
	if path, pathErr := config.ConfigPath(); pathErr == nil {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			if saveErr := config.Save(cfg); saveErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not write %s: %v\n", path, saveErr)
			}
		}
	}

	client := api.NewClient(&api.ClientConfig{
		BaseURL:           cfg.Server.BaseURL,
		SessionCookie:     cfg.Server.SessionCookie,
		SessionCookieName: cfg.Server.SessionCookieName,
		Timeout:           time.Duration(cfg.Server.TimeoutSecs) * time.Second,
		SendTimeout:       time.Duration(cfg.Server.SendTimeoutSecs) * time.Second,
	})

	theme := styles.NewTheme()
	m := NewModel(theme, client, cfg)

	util.Logf("starting docchat %s against %s", Version, cfg.Server.BaseURL)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running docchat: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// APPLICATION MODEL
// =============================================================================

// View identifies a top-level tab.
type View int

const (
	ViewDocuments View = iota
	ViewConversations
	ViewProfile
)

// tabOrder drives the header and tab cycling.
var tabOrder = []View{ViewDocuments, ViewConversations, ViewProfile}

// tabTitles is indexed by View.
var tabTitles = []string{" Documents ", " Conversations ", " Profile "}

// SessionCheckedMsg reports the startup session probe.
type SessionCheckedMsg struct {
	Session *model.Session
	Err     error
}

// LoggedOutMsg reports the server-side logout triggered by ctrl+l.
type LoggedOutMsg struct {
	Err error
}

// Model is the main Bubble Tea model for the application.
type Model struct {
	theme  *styles.Theme
	cfg    *config.Config
	client *api.Client

	view View

	browseView   browse.Model
	convlistView convlist.Model
	profileView  profile.Model

	// Chat overlays the conversation tab while open. A fresh instance is
	// built on every open and dropped on close.
	chatView chat.Model
	chatOpen bool

	// Session state from the startup probe
	sessionErr error

	// One-line notice shown in the status bar until the next key press.
	flash string

	width  int
	height int
}

// NewModel creates the application model. Each tab view is constructed up
// front; a tab switch rebuilds the target view so it starts from a fresh
// fetch.
func NewModel(theme *styles.Theme, client *api.Client, cfg *config.Config) *Model {
	return &Model{
		theme:        theme,
		cfg:          cfg,
		client:       client,
		view:         ViewDocuments,
		browseView:   newBrowse(client, theme, cfg),
		convlistView: newConvlist(client, theme, cfg),
		profileView:  profile.New(client, theme),
	}
}

func newBrowse(client *api.Client, theme *styles.Theme, cfg *config.Config) browse.Model {
	order := listing.SortDescending
	if cfg.Listing.DefaultSortOrder == "asc" {
		order = listing.SortAscending
	}
	return browse.New(client, theme, cfg.Listing.DocumentPageSize, order)
}

func newConvlist(client *api.Client, theme *styles.Theme, cfg *config.Config) convlist.Model {
	return convlist.New(client, theme, cfg.Listing.ConversationPageSize, cfg.Listing.DocumentPageSize)
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init probes the session and starts the initial tab.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.checkSession(), m.browseView.Init())
}

// checkSession verifies the configured cookie before the first fetch lands.
func (m *Model) checkSession() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		session, err := client.CheckSession(ctx)
		return SessionCheckedMsg{Session: session, Err: err}
	}
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)

		contentHeight := msg.Height - 3 // header + blank + status bar
		if contentHeight < 1 {
			contentHeight = 1
		}
		m.browseView.SetSize(msg.Width, contentHeight)
		m.convlistView.SetSize(msg.Width, contentHeight)
		m.profileView.SetSize(msg.Width, contentHeight)
		if m.chatOpen {
			m.chatView.SetSize(msg.Width, contentHeight)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case SessionCheckedMsg:
		if msg.Err != nil {
			m.sessionErr = msg.Err
			util.Logf("session check failed: %v", msg.Err)
		} else {
			m.sessionErr = nil
		}
		return m, nil

	case LoggedOutMsg:
		if msg.Err != nil {
			util.Logf("logout failed: %v", msg.Err)
		}
		return m, tea.Quit

	case browse.OpenDocumentMsg:
		m.flash = documentFlash(msg.Document)
		return m, nil

	case convlist.OpenConversationMsg:
		m.chatView = chat.New(m.client, m.theme, msg.ConversationID, msg.Title, m.cfg.UI.RenderMarkdown)
		m.chatOpen = true
		contentHeight := m.height - 3
		if contentHeight < 1 {
			contentHeight = 1
		}
		m.chatView.SetSize(m.width, contentHeight)
		return m, m.chatView.Init()

	case chat.CloseMsg:
		// Drop the chat instance and rebuild the conversation list so it
		// reflects whatever the chat session changed.
		m.chatOpen = false
		m.convlistView = newConvlist(m.client, m.theme, m.cfg)
		m.convlistView.SetSize(m.width, m.contentHeight())
		m.view = ViewConversations
		return m, m.convlistView.Init()
	}

	return m.forward(msg)
}

// handleKeyPress routes keys: global shortcuts first, then the active view.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+l":
		// End the session server-side, then quit.
		client := m.client
		return m, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return LoggedOutMsg{Err: client.Logout(ctx)}
		}
	}

	// Chat captures everything else while open.
	if m.chatOpen {
		return m.forward(msg)
	}

	switch msg.String() {
	case "tab":
		return m.switchTab(1)
	case "shift+tab":
		return m.switchTab(-1)
	}

	return m.forward(msg)
}

// switchTab moves to the adjacent tab, rebuilding its view so it starts
// with a fresh fetch.
func (m *Model) switchTab(delta int) (tea.Model, tea.Cmd) {
	next := (int(m.view) + delta + len(tabOrder)) % len(tabOrder)
	m.view = tabOrder[next]

	h := m.contentHeight()
	switch m.view {
	case ViewDocuments:
		m.browseView = newBrowse(m.client, m.theme, m.cfg)
		m.browseView.SetSize(m.width, h)
		return m, m.browseView.Init()
	case ViewConversations:
		m.convlistView = newConvlist(m.client, m.theme, m.cfg)
		m.convlistView.SetSize(m.width, h)
		return m, m.convlistView.Init()
	case ViewProfile:
		m.profileView = profile.New(m.client, m.theme)
		m.profileView.SetSize(m.width, h)
		return m, m.profileView.Init()
	}
	return m, nil
}

// forward delivers a message to the view that owns it.
func (m *Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.chatOpen {
		m.chatView, cmd = m.chatView.Update(msg)
		return m, cmd
	}
	switch m.view {
	case ViewDocuments:
		m.browseView, cmd = m.browseView.Update(msg)
	case ViewConversations:
		m.convlistView, cmd = m.convlistView.Update(msg)
	case ViewProfile:
		m.profileView, cmd = m.profileView.Update(msg)
	}
	return m, cmd
}

func (m *Model) contentHeight() int {
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the header, the active view, and the status bar.
func (m *Model) View() string {
	var content string
	if m.chatOpen {
		content = m.chatView.View()
	} else {
		switch m.view {
		case ViewDocuments:
			content = m.browseView.View()
		case ViewConversations:
			content = m.convlistView.View()
		case ViewProfile:
			content = m.profileView.View()
		}
	}

	header := components.RenderHeader(m.theme, m.width, tabTitles, int(m.view))

	if m.sessionErr != nil {
		banner := m.theme.ErrorBox.Render(
			m.theme.ErrorTitle.Render("Session problem") + "\n" +
				m.theme.ErrorMessage.Render(sessionErrorHint(m.sessionErr)))
		return header + "\n" + banner + "\n" + content + "\n" + m.statusBar()
	}

	return header + "\n" + content + "\n" + m.statusBar()
}

func (m *Model) statusBar() string {
	status := components.StatusReady
	switch {
	case m.sessionErr != nil:
		status = components.StatusError
	case m.chatOpen && m.chatView.Sending():
		status = components.StatusSending
	case m.chatOpen && m.chatView.Loading():
		status = components.StatusLoading
	case m.view == ViewDocuments && m.browseView.Engine().Loading():
		status = components.StatusLoading
	case m.view == ViewConversations && m.convlistView.Loading():
		status = components.StatusLoading
	case m.view == ViewProfile && m.profileView.Loading():
		status = components.StatusLoading
	}

	if m.flash != "" {
		return components.RenderStatusBar(m.theme, m.width, status, []components.Shortcut{{Key: "", Desc: m.flash}})
	}
	return components.RenderStatusBar(m.theme, m.width, status, m.shortcuts())
}

func (m *Model) shortcuts() []components.Shortcut {
	if m.chatOpen {
		return []components.Shortcut{
			{Key: "enter", Desc: "send"},
			{Key: "esc", Desc: "back"},
			{Key: "pgup/pgdn", Desc: "scroll"},
		}
	}
	switch m.view {
	case ViewDocuments:
		return []components.Shortcut{
			{Key: "/", Desc: "filename"},
			{Key: "t", Desc: "tags"},
			{Key: "s", Desc: "sort"},
			{Key: "tab", Desc: "next tab"},
		}
	case ViewConversations:
		return []components.Shortcut{
			{Key: "n", Desc: "new"},
			{Key: "e", Desc: "rename"},
			{Key: "d", Desc: "delete"},
			{Key: "tab", Desc: "next tab"},
		}
	default:
		return []components.Shortcut{
			{Key: "r", Desc: "refresh"},
			{Key: "ctrl+l", Desc: "log out"},
			{Key: "tab", Desc: "next tab"},
		}
	}
}

// documentFlash summarizes a document for the status bar.
func documentFlash(doc model.Document) string {
	s := doc.OriginalFilename + " (" + doc.FormatSize() + ")"
	if doc.Summary != "" {
		s += " - " + util.TruncateRunes(doc.Summary, 80)
	}
	return s
}

// sessionErrorHint maps the session probe failure to a user-facing hint.
func sessionErrorHint(err error) string {
	if api.IsSessionExpired(err) {
		return "Your session is missing or expired. Log in through the browser, then copy the session cookie into ~/.docchat/config.toml or DOCCHAT_SESSION_COOKIE."
	}
	return "Could not reach the backend: " + err.Error()
}
