// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the wire-level data structures exchanged with the
// docchat backend.
//
// The JSON field names mirror the REST API exactly (snake_case, server-chosen
// identifiers). Types in this package are plain data carriers plus small
// display helpers; all state machines live in the listing and convo packages.
//
// # Key Types
//
//   - Document, Tag: uploaded documents and their tags
//   - ConversationListItem, ConversationDetail: chat conversations
//   - Message: a single chat message; negative IDs mark optimistic
//     (unconfirmed) messages that exist only client-side
//   - PaginatedDocuments, DocumentSearch: the two response shapes the
//     document listing endpoints produce
package model
