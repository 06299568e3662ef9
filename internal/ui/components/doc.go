// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides reusable UI components for the docchat TUI.

This package contains a collection of styled components built on top of the
Bubble Tea and Lip Gloss libraries, shared across the document browser,
conversation list, and chat views.

# Core Components

Header (header.go) - Application header with brand and view tabs.
StatusBar (statusbar.go) - Bottom status bar with state and key hints.
Pagination (pagination.go) - Numbered page bar with a sliding window.
Toast (toast.go) - Non-blocking corner notifications with auto-dismiss.

# Usage

Components are stateless render functions (plus the ToastManager), driven
by the owning view's Bubble Tea model:

	bar := components.RenderPagination(theme, page, totalPages, total)
	status := components.RenderStatusBar(theme, width, components.StatusReady, shortcuts)
*/
package components
