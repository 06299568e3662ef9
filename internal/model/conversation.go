// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the wire-level data structures exchanged with the
// docchat backend.
package model

import "time"

// =============================================================================
// CONVERSATION TYPES
// =============================================================================

// ConversationListItem is the list-row projection of a conversation.
type ConversationListItem struct {
	ConversationID int       `json:"conversation_id"`
	Title          string    `json:"title"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ItemID returns the stable identifier used by listing state.
func (c ConversationListItem) ItemID() int {
	return c.ConversationID
}

// ConversationDetail is the full conversation record, including its
// message log.
type ConversationDetail struct {
	ConversationID int       `json:"conversation_id"`
	UserID         int       `json:"user_id"`
	Title          string    `json:"title"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Messages       []Message `json:"messages"`
}

// PaginatedConversations is the envelope returned by the conversation
// listing endpoint.
type PaginatedConversations struct {
	Items      []ConversationListItem `json:"items"`
	Total      int                    `json:"total"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"page_size"`
	TotalPages int                    `json:"total_pages"`
}

// =============================================================================
// CONVERSATION REQUESTS AND RESPONSES
// =============================================================================

// ConversationCreate is the request body for creating a conversation.
// At least one document must be attached.
type ConversationCreate struct {
	Title       string `json:"title"`
	DocumentIDs []int  `json:"document_ids"`
}

// ConversationCreated is the response to a successful create.
type ConversationCreated struct {
	ConversationID int       `json:"conversation_id"`
	Title          string    `json:"title"`
	CreatedAt      time.Time `json:"created_at"`
}

// ConversationDeleted is the response to a successful delete.
type ConversationDeleted struct {
	Message        string `json:"message"`
	ConversationID int    `json:"conversation_id"`
}

// ConversationDocuments lists the documents attached to a conversation.
type ConversationDocuments struct {
	ConversationID int        `json:"conversation_id"`
	Documents      []Document `json:"documents"`
}
