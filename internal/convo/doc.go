// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package convo holds the client-side conversation state machines: the
// optimistic send pipeline (Sync) and the inline title editor (Edit).
//
// Sync mirrors the server's message log and layers a single optimistic
// user message on top while a send is in flight. Optimistic messages
// carry negative IDs so they can never collide with server-assigned
// ones; when the server responds, the whole log is replaced with the
// authoritative copy rather than patched in place. On failure the
// optimistic message is removed and the compose text handed back for
// the user to retry.
//
// Both types are pure state machines. Network calls, rendering, and key
// handling live in the UI layer; handlers call a method, run the
// returned fetch, and fold the result back in. That keeps every
// transition synchronously testable.
package convo
