// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat/docchat-tui/internal/api"
	"github.com/docchat/docchat-tui/internal/config"
	"github.com/docchat/docchat-tui/internal/ui/chat"
	"github.com/docchat/docchat-tui/internal/ui/convlist"
	"github.com/docchat/docchat-tui/internal/ui/styles"
)

func newShell(t *testing.T) *Model {
	t.Helper()
	m := NewModel(styles.NewTheme(), nil, config.Default())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(*Model)
}

func TestShell_StartsOnDocuments(t *testing.T) {
	m := newShell(t)
	if m.view != ViewDocuments {
		t.Errorf("initial view = %v, want documents", m.view)
	}
}

func TestShell_TabCyclesViews(t *testing.T) {
	m := newShell(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(*Model)
	if m.view != ViewConversations {
		t.Fatalf("view after tab = %v, want conversations", m.view)
	}
	if cmd == nil {
		t.Error("tab switch should start the new view's fetch")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(*Model)
	if m.view != ViewDocuments {
		t.Errorf("view after shift+tab = %v, want documents", m.view)
	}
}

func TestShell_OpenAndCloseConversation(t *testing.T) {
	m := newShell(t)

	updated, cmd := m.Update(convlist.OpenConversationMsg{ConversationID: 7, Title: "Quarterly report"})
	m = updated.(*Model)
	if !m.chatOpen {
		t.Fatal("chat should be open")
	}
	if m.chatView.ConversationID() != 7 {
		t.Errorf("chat conversation = %d, want 7", m.chatView.ConversationID())
	}
	if cmd == nil {
		t.Error("opening a conversation should fetch its history")
	}

	updated, cmd = m.Update(chat.CloseMsg{})
	m = updated.(*Model)
	if m.chatOpen {
		t.Error("chat should be closed")
	}
	if m.view != ViewConversations {
		t.Errorf("view after close = %v, want conversations", m.view)
	}
	if cmd == nil {
		t.Error("closing chat should re-fetch the conversation list")
	}
}

func TestShell_SessionErrorShowsHint(t *testing.T) {
	m := newShell(t)

	updated, _ := m.Update(SessionCheckedMsg{Err: api.ErrSessionExpired})
	m = updated.(*Model)

	out := m.View()
	if !strings.Contains(out, "Session problem") {
		t.Error("expected the session banner")
	}
	if !strings.Contains(out, "Log in through the browser") {
		t.Error("expected the re-login hint")
	}
}
