// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package listing implements the windowed pagination / dual-mode listing
// engine shared by the document browser, the document picker, and the
// conversation browser.
//
// An Engine owns one listing's state: the current result set, the
// pagination cursor, the active mode (full pagination or one of the search
// modes), and — in the picker — the cross-mode selection set. Views drive
// it in two phases: an operation (SetMode, Search, GoToPage, SetSortOrder,
// Invalidate) validates and returns a Request describing the fetch to run;
// when the response arrives, ApplyPage or ApplySearch folds it back in.
// The split keeps the engine free of I/O so its state machine is testable
// synchronously, while the owning view runs the actual network call inside
// a Bubble Tea command.
//
// Every Request carries a sequence number. A response whose sequence is
// older than the newest issued request is discarded on apply, so a slow
// early fetch can never overwrite the result of a later user action.
package listing
