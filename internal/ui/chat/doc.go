// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the conversation view for the docchat TUI.

The chat package implements a terminal chat interface using the Bubble Tea
framework. It shows a single conversation's message history, lets the user
compose and send messages, and keeps the local message log consistent with
the server through an optimistic-send pipeline.

# Key Components

## Model (model.go)

The Model struct is the Bubble Tea model that maintains all chat state:
  - Message log, mirrored from the server through convo.Sync
  - Compose input handling
  - Viewport for message scrolling
  - Markdown rendering for assistant replies via glamour

## View Rendering (view.go)

Rendering logic for the complete chat interface:
  - Title line with the conversation name and attached documents
  - Message bubbles with role-specific styling (user, assistant)
  - Pending bubbles for messages still awaiting the server
  - Status line with send progress and shortcuts

## Update Loop (update.go)

Handles all Bubble Tea messages and user interactions:
  - Keyboard input processing
  - Optimistic submit, reconciliation, and rollback on failure
  - History and document loading
  - Window resize handling

# Send Pipeline

Submitting a message appends an optimistic copy to the log immediately and
clears the compose input. When the server acknowledges, the whole log is
replaced with the authoritative copy. When the send fails, the optimistic
message is removed and the typed text is restored to the compose input so
nothing the user wrote is lost. Only one send may be in flight at a time.

# Usage

Create a chat model for a conversation and feed it Bubble Tea messages:

	view := chat.New(client, theme, conversationID, title, true)
	cmd := view.Init()
*/
package chat
