// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the docchat backend REST API.
package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/docchat/docchat-tui/internal/model"
)

// =============================================================================
// SORT ORDER
// =============================================================================

// Order selects which paginated document endpoint is called. The two
// orders are distinct server endpoints, not a client-side sort.
type Order int

const (
	OrderDescending Order = iota
	OrderAscending
)

func (o Order) String() string {
	if o == OrderAscending {
		return "ascending"
	}
	return "descending"
}

// =============================================================================
// DOCUMENT OPERATIONS
// =============================================================================

// DocumentsPage fetches one page of documents under the given order.
func (c *Client) DocumentsPage(ctx context.Context, page, pageSize int, order Order) (*model.PaginatedDocuments, error) {
	path := "/documents/paginated"
	if order == OrderAscending {
		path = "/documents/paginated/ascending"
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))

	var result model.PaginatedDocuments
	if err := c.get(ctx, path, query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchDocumentsByFilename searches documents by filename substring.
func (c *Client) SearchDocumentsByFilename(ctx context.Context, queryText string) (*model.DocumentSearch, error) {
	query := url.Values{}
	query.Set("query", queryText)

	var result model.DocumentSearch
	if err := c.get(ctx, "/documents/search/filename", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchDocumentsByTags searches documents carrying any of the given tags.
// Tags are sent as one comma-separated query parameter.
func (c *Client) SearchDocumentsByTags(ctx context.Context, tags []string) (*model.DocumentSearch, error) {
	query := url.Values{}
	query.Set("tags", strings.Join(tags, ","))

	var result model.DocumentSearch
	if err := c.get(ctx, "/documents/search/tags", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
