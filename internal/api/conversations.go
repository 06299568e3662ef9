// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the docchat backend REST API.
package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/docchat/docchat-tui/internal/model"
)

// =============================================================================
// CONVERSATION OPERATIONS
// =============================================================================

// ConversationsPage fetches one page of the user's conversations.
// The server orders them; there is no ascending variant.
func (c *Client) ConversationsPage(ctx context.Context, page, pageSize int) (*model.PaginatedConversations, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))

	var result model.PaginatedConversations
	if err := c.get(ctx, "/aichat/conversations", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateConversation creates a conversation scoped to a document set.
func (c *Client) CreateConversation(ctx context.Context, title string, documentIDs []int) (*model.ConversationCreated, error) {
	body := model.ConversationCreate{Title: title, DocumentIDs: documentIDs}

	var result model.ConversationCreated
	if err := c.post(ctx, "/aichat/conversations", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ConversationDetail fetches the full conversation record.
func (c *Client) ConversationDetail(ctx context.Context, conversationID int) (*model.ConversationDetail, error) {
	var result model.ConversationDetail
	if err := c.get(ctx, "/aichat/conversations/"+strconv.Itoa(conversationID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteConversation deletes a conversation.
func (c *Client) DeleteConversation(ctx context.Context, conversationID int) (*model.ConversationDeleted, error) {
	var result model.ConversationDeleted
	if err := c.delete(ctx, "/aichat/conversations/"+strconv.Itoa(conversationID), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Messages fetches the authoritative, ordered message log of a conversation.
func (c *Client) Messages(ctx context.Context, conversationID int) ([]model.Message, error) {
	var result []model.Message
	if err := c.get(ctx, "/aichat/conversations/"+strconv.Itoa(conversationID)+"/messages", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SendMessage posts a user message and waits for the assistant's reply.
// Callers reconcile by re-fetching Messages rather than patching the
// returned pair into local state.
func (c *Client) SendMessage(ctx context.Context, conversationID int, content string) (*model.SendResult, error) {
	body := struct {
		Content string `json:"content"`
	}{Content: content}

	var result model.SendResult
	path := "/aichat/conversations/" + strconv.Itoa(conversationID) + "/messages"
	if err := c.do(ctx, c.sendClient, "POST", path, nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ConversationDocuments fetches the documents attached to a conversation.
func (c *Client) ConversationDocuments(ctx context.Context, conversationID int) (*model.ConversationDocuments, error) {
	var result model.ConversationDocuments
	if err := c.get(ctx, "/aichat/conversations/"+strconv.Itoa(conversationID)+"/documents", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RenameConversation updates a conversation's title and returns the updated
// list-item projection.
func (c *Client) RenameConversation(ctx context.Context, conversationID int, title string) (*model.ConversationListItem, error) {
	body := struct {
		Title string `json:"title"`
	}{Title: title}

	var result model.ConversationListItem
	if err := c.patch(ctx, "/aichat/conversations/"+strconv.Itoa(conversationID), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
