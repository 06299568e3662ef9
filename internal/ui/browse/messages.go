// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package browse provides the document browser view for the TUI.
//
// This file defines the Bubble Tea message types and command creators for
// the browser. Fetches run inside tea.Cmd closures; each response message
// carries the request it answers so stale responses can be discarded.
package browse

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

// PageLoadedMsg delivers a paginated document response.
type PageLoadedMsg struct {
	Req  listing.Request
	Page *model.PaginatedDocuments
	Err  error
}

// SearchLoadedMsg delivers a filename or tag search response.
type SearchLoadedMsg struct {
	Req    listing.Request
	Result *model.DocumentSearch
	Err    error
}

// OpenDocumentMsg asks the shell to act on the chosen document.
type OpenDocumentMsg struct {
	Document model.Document
}

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// fetchCmd creates a command that runs the listing request against the
// backend and resumes with the matching loaded message.
func fetchCmd(client *api.Client, req listing.Request) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		switch req.Kind {
		case listing.KindFilenameSearch:
			res, err := client.SearchDocumentsByFilename(ctx, req.Query)
			return SearchLoadedMsg{Req: req, Result: res, Err: err}

		case listing.KindTagSearch:
			res, err := client.SearchDocumentsByTags(ctx, req.Tags)
			return SearchLoadedMsg{Req: req, Result: res, Err: err}

		default:
			res, err := client.DocumentsPage(ctx, req.Page, req.PageSize, apiOrder(req.Order))
			return PageLoadedMsg{Req: req, Page: res, Err: err}
		}
	}
}

// apiOrder maps listing sort order onto the client's endpoint selector.
func apiOrder(order listing.SortOrder) api.Order {
	if order == listing.SortAscending {
		return api.OrderAscending
	}
	return api.OrderDescending
}

// pageResult converts the wire envelope into the engine's typed result.
func pageResult(p *model.PaginatedDocuments) *listing.PageResult[model.Document] {
	if p == nil {
		return nil
	}
	return &listing.PageResult[model.Document]{
		Items:      p.Items,
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}

// searchResult converts the wire envelope into the engine's typed result.
func searchResult(s *model.DocumentSearch) *listing.SearchResult[model.Document] {
	if s == nil {
		return nil
	}
	return &listing.SearchResult[model.Document]{
		Items: s.Documents,
		Query: s.Query,
		Total: s.Total,
	}
}
