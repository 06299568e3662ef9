// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package convo

import (
	"errors"
	"testing"
	"time"

	"github.com/docchat/docchat-tui/internal/model"
)

func serverMsg(id int64, role model.Role, content string) model.Message {
	return model.Message{
		MessageID: id,
		Role:      role,
		Content:   content,
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSync_BeginSend_AppendsOptimistic(t *testing.T) {
	s := NewSync(7)
	s.SetMessages([]model.Message{serverMsg(1, model.RoleUser, "earlier")})

	req, err := s.BeginSend("  hello  ")
	if err != nil {
		t.Fatalf("BeginSend: %v", err)
	}
	if req.ConversationID != 7 || req.Content != "hello" {
		t.Errorf("request = %+v", req)
	}
	if req.OptimisticID >= 0 {
		t.Errorf("optimistic ID must be negative, got %d", req.OptimisticID)
	}

	msgs := s.Messages()
	if len(msgs) != 2 {
		t.Fatalf("len(messages) = %d, want 2", len(msgs))
	}
	last := msgs[1]
	if !last.IsOptimistic() || last.Role != model.RoleUser || last.Content != "hello" {
		t.Errorf("optimistic message = %+v", last)
	}
	if !s.Sending() {
		t.Error("Sending() should be true while the request is in flight")
	}
}

func TestSync_BeginSend_Validation(t *testing.T) {
	s := NewSync(1)

	if _, err := s.BeginSend("   "); !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("blank text: err = %v, want ErrEmptyMessage", err)
	}

	if _, err := s.BeginSend("first"); err != nil {
		t.Fatalf("BeginSend: %v", err)
	}
	if _, err := s.BeginSend("second"); !errors.Is(err, ErrSendInFlight) {
		t.Errorf("second send: err = %v, want ErrSendInFlight", err)
	}
	if len(s.Messages()) != 1 {
		t.Error("rejected send must not touch the log")
	}
}

func TestSync_OptimisticIDsStrictlyDecrease(t *testing.T) {
	s := NewSync(1)

	var prev int64
	for i := 0; i < 3; i++ {
		req, err := s.BeginSend("msg")
		if err != nil {
			t.Fatalf("BeginSend #%d: %v", i, err)
		}
		if i > 0 && req.OptimisticID >= prev {
			t.Errorf("ID %d not below previous %d", req.OptimisticID, prev)
		}
		prev = req.OptimisticID

		// Roll back so the next send is allowed; the counter must not
		// reuse the freed ID.
		if _, ok := s.FailSend(req); !ok {
			t.Fatal("FailSend should roll back the pending send")
		}
	}
}

func TestSync_CompleteSend_ReplacesLog(t *testing.T) {
	s := NewSync(7)
	s.SetMessages([]model.Message{serverMsg(1, model.RoleUser, "earlier")})

	req, _ := s.BeginSend("hello")

	reconciled := []model.Message{
		serverMsg(1, model.RoleUser, "earlier"),
		serverMsg(2, model.RoleUser, "hello"),
		serverMsg(3, model.RoleAssistant, "hi there"),
	}
	s.CompleteSend(req, reconciled)

	msgs := s.Messages()
	if len(msgs) != 3 {
		t.Fatalf("len(messages) = %d, want 3", len(msgs))
	}
	for _, m := range msgs {
		if m.IsOptimistic() {
			t.Errorf("optimistic message survived reconciliation: %+v", m)
		}
	}
	if s.State() != SendIdle {
		t.Errorf("state = %v, want SendIdle", s.State())
	}
}

func TestSync_FailSend_RollsBackAndRestoresCompose(t *testing.T) {
	s := NewSync(7)
	s.SetMessages([]model.Message{serverMsg(1, model.RoleUser, "earlier")})

	req, _ := s.BeginSend("hello")
	restored, ok := s.FailSend(req)
	if !ok {
		t.Fatal("FailSend should succeed for the pending send")
	}
	if restored != "hello" {
		t.Errorf("restored compose = %q, want %q", restored, "hello")
	}

	msgs := s.Messages()
	if len(msgs) != 1 || msgs[0].MessageID != 1 {
		t.Errorf("log after rollback = %+v, want the single server message", msgs)
	}
	if s.State() != SendFailed {
		t.Errorf("state = %v, want SendFailed", s.State())
	}

	// The pipeline is free again.
	if _, err := s.BeginSend("retry"); err != nil {
		t.Errorf("send after rollback: %v", err)
	}
}

func TestSync_StaleResultsIgnored(t *testing.T) {
	s := NewSync(7)

	req, _ := s.BeginSend("hello")
	restored, ok := s.FailSend(req)
	if !ok || restored != "hello" {
		t.Fatalf("FailSend = %q, %v", restored, ok)
	}

	// A duplicate failure and a late success for the rolled-back send must
	// both be no-ops.
	if _, ok := s.FailSend(req); ok {
		t.Error("second FailSend for the same request should be ignored")
	}
	s.CompleteSend(req, []model.Message{serverMsg(9, model.RoleUser, "late")})
	if len(s.Messages()) != 0 {
		t.Error("late CompleteSend for a rolled-back send should be ignored")
	}
}

func TestSync_SetMessagesKeepsPendingOnTop(t *testing.T) {
	s := NewSync(7)
	s.SetMessages([]model.Message{serverMsg(1, model.RoleUser, "earlier")})

	if _, err := s.BeginSend("hello"); err != nil {
		t.Fatalf("BeginSend: %v", err)
	}

	// A background refresh lands mid-send.
	s.SetMessages([]model.Message{
		serverMsg(1, model.RoleUser, "earlier"),
		serverMsg(2, model.RoleAssistant, "unrelated"),
	})

	msgs := s.Messages()
	if len(msgs) != 3 {
		t.Fatalf("len(messages) = %d, want 3", len(msgs))
	}
	if !msgs[2].IsOptimistic() || msgs[2].Content != "hello" {
		t.Errorf("pending message should stay last: %+v", msgs[2])
	}
}
