// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package convo

import (
	"errors"
	"strings"
	"time"

	"github.com/docchat/docchat-tui/internal/model"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrEmptyMessage is returned when the compose text is blank after
	// trimming.
	ErrEmptyMessage = errors.New("message must not be empty")

	// ErrSendInFlight is returned when a send is started while another is
	// still pending. The pipeline allows exactly one optimistic message at
	// a time.
	ErrSendInFlight = errors.New("a message is already being sent")
)

// =============================================================================
// SEND STATE
// =============================================================================

// SendState tracks where the current send attempt is in its lifecycle.
type SendState int

const (
	// SendIdle means no send is pending.
	SendIdle SendState = iota
	// SendPending means an optimistic message is displayed and the request
	// is in flight.
	SendPending
	// SendFailed means the last send was rolled back. Cleared on the next
	// successful operation.
	SendFailed
)

// SendRequest describes the network call the owner must run after
// BeginSend. OptimisticID identifies the placeholder to roll back if the
// call fails.
type SendRequest struct {
	ConversationID int
	Content        string
	OptimisticID   int64
}

// =============================================================================
// SYNC
// =============================================================================

// Sync mirrors a conversation's message log and manages the single
// in-flight optimistic send.
type Sync struct {
	conversationID int
	messages       []model.Message
	state          SendState

	// nextOptimisticID decreases monotonically across the Sync's lifetime
	// so a rolled-back ID is never reused, even within one session.
	nextOptimisticID int64

	// pending is the optimistic message currently displayed, valid only in
	// SendPending.
	pending model.Message

	now func() time.Time
}

// NewSync returns a Sync for the given conversation with an empty log.
func NewSync(conversationID int) *Sync {
	return &Sync{
		conversationID:   conversationID,
		nextOptimisticID: -1,
		now:              time.Now,
	}
}

// ConversationID returns the conversation this Sync mirrors.
func (s *Sync) ConversationID() int { return s.conversationID }

// State returns the current send state.
func (s *Sync) State() SendState { return s.state }

// Sending reports whether a send is in flight.
func (s *Sync) Sending() bool { return s.state == SendPending }

// SetMessages replaces the log with the server's authoritative copy.
// Called after the initial history fetch and after any full re-fetch. A
// pending optimistic message stays appended on top so a concurrent
// refresh cannot make the user's text vanish mid-send.
func (s *Sync) SetMessages(msgs []model.Message) {
	s.messages = msgs
	if s.state == SendPending {
		s.messages = append(s.messages, s.pending)
	}
}

// Messages returns the display log: the server messages in server order,
// with the optimistic message (if any) last.
func (s *Sync) Messages() []model.Message {
	return s.messages
}

// BeginSend validates the compose text, appends an optimistic user
// message with a fresh negative ID, and returns the request to run.
// Exactly one send may be in flight; a second BeginSend fails with
// ErrSendInFlight and changes nothing.
func (s *Sync) BeginSend(composeText string) (SendRequest, error) {
	if s.state == SendPending {
		return SendRequest{}, ErrSendInFlight
	}
	content := strings.TrimSpace(composeText)
	if content == "" {
		return SendRequest{}, ErrEmptyMessage
	}

	id := s.nextOptimisticID
	s.nextOptimisticID--

	s.pending = model.Message{
		MessageID: id,
		Role:      model.RoleUser,
		Content:   content,
		CreatedAt: s.now(),
	}
	s.messages = append(s.messages, s.pending)
	s.state = SendPending

	return SendRequest{
		ConversationID: s.conversationID,
		Content:        content,
		OptimisticID:   id,
	}, nil
}

// CompleteSend reconciles a successful send by replacing the whole log
// with the freshly fetched server copy. The optimistic message is gone;
// its authoritative replacement (and the assistant reply) are already in
// msgs. Responses for an already-rolled-back send are ignored.
func (s *Sync) CompleteSend(req SendRequest, msgs []model.Message) {
	if s.state != SendPending || req.OptimisticID != s.pending.MessageID {
		return
	}
	s.messages = msgs
	s.state = SendIdle
	s.pending = model.Message{}
}

// FailSend rolls back the optimistic message identified by the request
// and returns the compose text to restore so the user can retry without
// retyping. A stale failure (the send it belongs to is no longer
// pending) returns ok=false.
func (s *Sync) FailSend(req SendRequest) (restored string, ok bool) {
	if s.state != SendPending || req.OptimisticID != s.pending.MessageID {
		return "", false
	}

	kept := s.messages[:0]
	for _, m := range s.messages {
		if m.MessageID != req.OptimisticID {
			kept = append(kept, m)
		}
	}
	s.messages = kept

	restored = s.pending.Content
	s.pending = model.Message{}
	s.state = SendFailed
	return restored, true
}
