// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the wire-level data structures exchanged with the
// docchat backend.
package model

import (
	"time"

	"github.com/docchat/docchat-tui/internal/util"
)

// =============================================================================
// MESSAGE ROLES
// =============================================================================

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single chat message.
//
// Server-assigned message IDs are always positive. A negative ID marks an
// optimistic message the client appended before the server confirmed the
// send; it exists only between optimistic insertion and reconciliation and
// is never rendered after an authoritative re-fetch.
type Message struct {
	MessageID int64     `json:"message_id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// IsOptimistic reports whether this message is an unconfirmed local insert.
func (m Message) IsOptimistic() bool {
	return m.MessageID < 0
}

// Preview returns a single-line preview of the content, truncated to
// maxRunes characters.
func (m Message) Preview(maxRunes int) string {
	return util.TruncateRunes(util.CollapseWhitespace(m.Content), maxRunes)
}

// =============================================================================
// SEND RESULT
// =============================================================================

// SendResult is the response body of a message send. The reconciliation
// strategy re-fetches the full log instead of patching these in, so the
// fields are informational only.
type SendResult struct {
	UserMessage      Message `json:"user_message"`
	AssistantMessage Message `json:"assistant_message"`
}
