// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package convlist provides the conversation list view for the TUI.
//
// This file defines the Bubble Tea message types and command creators for
// the list and its rename/create/delete flows.
package convlist

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat/docchat-tui/internal/api"
	"github.com/docchat/docchat-tui/internal/listing"
	"github.com/docchat/docchat-tui/internal/model"
)

// =============================================================================
// MESSAGES
// =============================================================================

// PageLoadedMsg delivers a paginated conversation response.
type PageLoadedMsg struct {
	Req  listing.Request
	Page *model.PaginatedConversations
	Err  error
}

// RenamedMsg delivers the result of a rename call.
type RenamedMsg struct {
	ConversationID int
	Item           *model.ConversationListItem
	Err            error
}

// CreatedMsg delivers the result of a create call.
type CreatedMsg struct {
	Created *model.ConversationCreated
	Err     error
}

// DeletedMsg delivers the result of a delete call.
type DeletedMsg struct {
	ConversationID int
	Err            error
}

// OpenConversationMsg asks the shell to open the chat view.
type OpenConversationMsg struct {
	ConversationID int
	Title          string
}

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// fetchCmd runs a listing request against the backend.
func fetchCmd(client *api.Client, req listing.Request) tea.Cmd {
	return func() tea.Msg {
		res, err := client.ConversationsPage(context.Background(), req.Page, req.PageSize)
		return PageLoadedMsg{Req: req, Page: res, Err: err}
	}
}

// renameCmd runs a rename call.
func renameCmd(client *api.Client, conversationID int, title string) tea.Cmd {
	return func() tea.Msg {
		item, err := client.RenameConversation(context.Background(), conversationID, title)
		return RenamedMsg{ConversationID: conversationID, Item: item, Err: err}
	}
}

// createCmd runs a create call.
func createCmd(client *api.Client, title string, documentIDs []int) tea.Cmd {
	return func() tea.Msg {
		created, err := client.CreateConversation(context.Background(), title, documentIDs)
		return CreatedMsg{Created: created, Err: err}
	}
}

// deleteCmd runs a delete call.
func deleteCmd(client *api.Client, conversationID int) tea.Cmd {
	return func() tea.Msg {
		_, err := client.DeleteConversation(context.Background(), conversationID)
		return DeletedMsg{ConversationID: conversationID, Err: err}
	}
}

// pageResult converts the wire envelope into the engine's typed result.
func pageResult(p *model.PaginatedConversations) *listing.PageResult[model.ConversationListItem] {
	if p == nil {
		return nil
	}
	return &listing.PageResult[model.ConversationListItem]{
		Items:      p.Items,
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}
