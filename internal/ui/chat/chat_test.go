// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat/docchat-tui/internal/convo"
	"github.com/docchat/docchat-tui/internal/model"
	"github.com/docchat/docchat-tui/internal/ui/styles"
)

func loadedChat(t *testing.T) Model {
	t.Helper()
	m := New(nil, styles.NewTheme(), 7, "Quarterly report", false)
	m.SetSize(100, 30)

	m, _ = m.Update(HistoryLoadedMsg{
		ConversationID: 7,
		Messages: []model.Message{
			{MessageID: 1, Role: model.RoleUser, Content: "earlier", CreatedAt: time.Now()},
		},
	})
	return m
}

func TestChat_SubmitAppendsOptimisticAndClearsInput(t *testing.T) {
	m := loadedChat(t)

	m.input.SetValue("hello")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a send command")
	}

	msgs := m.sync.Messages()
	if len(msgs) != 2 || !msgs[1].IsOptimistic() {
		t.Fatalf("messages = %+v", msgs)
	}
	if m.input.Value() != "" {
		t.Error("compose input must clear before the network call")
	}
	if !m.Sending() {
		t.Error("Sending() should report the in-flight send")
	}
}

func TestChat_EmptySubmitIsSilent(t *testing.T) {
	m := loadedChat(t)

	m.input.SetValue("   ")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("blank submit must not issue a command")
	}
	if len(m.sync.Messages()) != 1 {
		t.Error("blank submit must not touch the log")
	}
}

func TestChat_SecondSubmitWhileSendingIsRejected(t *testing.T) {
	m := loadedChat(t)

	m.input.SetValue("first")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m.input.SetValue("second")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if len(m.sync.Messages()) != 2 {
		t.Error("second send must be rejected while one is in flight")
	}
	if !m.toasts.HasToasts() {
		t.Error("expected a toast for the rejected send")
	}
}

func TestChat_SendSuccessReplacesLog(t *testing.T) {
	m := loadedChat(t)

	m.input.SetValue("hello")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	req := lastSendRequest(t, m)
	m, _ = m.Update(SendFinishedMsg{
		Req: req,
		Messages: []model.Message{
			{MessageID: 1, Role: model.RoleUser, Content: "earlier"},
			{MessageID: 2, Role: model.RoleUser, Content: "hello"},
			{MessageID: 3, Role: model.RoleAssistant, Content: "hi"},
		},
	})

	msgs := m.sync.Messages()
	if len(msgs) != 3 {
		t.Fatalf("len(messages) = %d", len(msgs))
	}
	for _, msg := range msgs {
		if msg.IsOptimistic() {
			t.Error("optimistic message survived reconciliation")
		}
	}
	if m.Sending() {
		t.Error("send should be finished")
	}
}

func TestChat_SendFailureRollsBackAndRestoresCompose(t *testing.T) {
	m := loadedChat(t)

	m.input.SetValue("hello")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	req := lastSendRequest(t, m)
	m, _ = m.Update(SendFinishedMsg{Req: req, Err: errors.New("assistant unavailable")})

	msgs := m.sync.Messages()
	if len(msgs) != 1 || msgs[0].MessageID != 1 {
		t.Errorf("log after rollback = %+v", msgs)
	}
	if m.input.Value() != "hello" {
		t.Errorf("compose = %q, want restored text", m.input.Value())
	}
	if !m.toasts.HasToasts() {
		t.Error("expected an error toast")
	}
}

func TestChat_HistoryRefreshesTitle(t *testing.T) {
	m := loadedChat(t)

	m, _ = m.Update(HistoryLoadedMsg{ConversationID: 7, Title: "Quarterly report (final)"})
	if m.title != "Quarterly report (final)" {
		t.Errorf("title = %q, want the server's current title", m.title)
	}
}

func TestChat_HistoryForOtherConversationIgnored(t *testing.T) {
	m := loadedChat(t)

	m, _ = m.Update(HistoryLoadedMsg{
		ConversationID: 99,
		Messages: []model.Message{
			{MessageID: 40, Role: model.RoleUser, Content: "wrong room"},
		},
	})

	msgs := m.sync.Messages()
	if len(msgs) != 1 || msgs[0].MessageID != 1 {
		t.Errorf("stale history applied: %+v", msgs)
	}
}

// lastSendRequest reconstructs the request for the pending optimistic
// message so tests can complete or fail it.
func lastSendRequest(t *testing.T, m Model) convo.SendRequest {
	t.Helper()
	msgs := m.sync.Messages()
	last := msgs[len(msgs)-1]
	if !last.IsOptimistic() {
		t.Fatal("no optimistic message pending")
	}
	return convo.SendRequest{
		ConversationID: m.ConversationID(),
		Content:        last.Content,
		OptimisticID:   last.MessageID,
	}
}
