// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversation detail view for the TUI.
//
// This file defines the Bubble Tea message types and command creators.
// The send pipeline runs as one command: POST the message, then re-fetch
// the full log so the optimistic placeholder is replaced by the server's
// authoritative copy in a single state transition.
package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat/docchat-tui/internal/api"
	"github.com/docchat/docchat-tui/internal/convo"
	"github.com/docchat/docchat-tui/internal/model"
)

// =============================================================================
// MESSAGES
// =============================================================================

// HistoryLoadedMsg delivers the initial message history. Title carries
// the server's current title so a rename done elsewhere shows up here.
type HistoryLoadedMsg struct {
	ConversationID int
	Title          string
	Messages       []model.Message
	Err            error
}

// DocumentsLoadedMsg delivers the conversation's attached documents.
type DocumentsLoadedMsg struct {
	ConversationID int
	Documents      []model.Document
	Err            error
}

// SendFinishedMsg delivers the outcome of a send. On success Messages
// holds the re-fetched authoritative log; on failure Err is set and the
// optimistic message must be rolled back.
type SendFinishedMsg struct {
	Req      convo.SendRequest
	Messages []model.Message
	Err      error
}

// CloseMsg asks the shell to leave the chat view.
type CloseMsg struct{}

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// loadHistoryCmd fetches the full conversation record, message log
// included.
func loadHistoryCmd(client *api.Client, conversationID int) tea.Cmd {
	return func() tea.Msg {
		detail, err := client.ConversationDetail(context.Background(), conversationID)
		if err != nil {
			return HistoryLoadedMsg{ConversationID: conversationID, Err: err}
		}
		return HistoryLoadedMsg{
			ConversationID: conversationID,
			Title:          detail.Title,
			Messages:       detail.Messages,
		}
	}
}

// loadDocumentsCmd fetches the conversation's attached documents.
func loadDocumentsCmd(client *api.Client, conversationID int) tea.Cmd {
	return func() tea.Msg {
		docs, err := client.ConversationDocuments(context.Background(), conversationID)
		if err != nil {
			return DocumentsLoadedMsg{ConversationID: conversationID, Err: err}
		}
		return DocumentsLoadedMsg{ConversationID: conversationID, Documents: docs.Documents}
	}
}

// sendCmd posts the message and re-fetches the log. Any failure along the
// way rolls the whole send back; a partial success (posted but re-fetch
// failed) still reports failure so the user retries against the server's
// idempotent message log.
func sendCmd(client *api.Client, req convo.SendRequest) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		if _, err := client.SendMessage(ctx, req.ConversationID, req.Content); err != nil {
			return SendFinishedMsg{Req: req, Err: err}
		}

		msgs, err := client.Messages(ctx, req.ConversationID)
		if err != nil {
			return SendFinishedMsg{Req: req, Err: err}
		}
		return SendFinishedMsg{Req: req, Messages: msgs}
	}
}
