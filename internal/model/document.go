// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the wire-level data structures exchanged with the
// docchat backend.
package model

import (
	"time"

	"github.com/docchat/docchat-tui/internal/util"
)

// =============================================================================
// DOCUMENT TYPES
// =============================================================================

// Tag is a label attached to a document.
type Tag struct {
	TagID int    `json:"tag_id"`
	Name  string `json:"name"`
}

// Document is an uploaded document as the backend reports it.
type Document struct {
	DocumentID       int       `json:"document_id"`
	OriginalFilename string    `json:"original_filename"`
	FileType         string    `json:"file_type"`
	FileSizeKB       int       `json:"file_size_kb"`
	UploadedAt       time.Time `json:"uploaded_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	Summary          string    `json:"summary,omitempty"`
	Tags             []Tag     `json:"tags"`
}

// ItemID returns the stable identifier used by listing state.
func (d Document) ItemID() int {
	return d.DocumentID
}

// TagNames returns the tag names in server order.
func (d Document) TagNames() []string {
	names := make([]string, len(d.Tags))
	for i, t := range d.Tags {
		names[i] = t.Name
	}
	return names
}

// FormatSize renders the file size as "N KB" below one megabyte and
// "N.NN MB" above it.
func (d Document) FormatSize() string {
	if d.FileSizeKB < 1024 {
		return util.IntToString(d.FileSizeKB) + " KB"
	}
	return util.FloatToStringPrec(float64(d.FileSizeKB)/1024, 2) + " MB"
}

// =============================================================================
// DOCUMENT RESPONSE ENVELOPES
// =============================================================================

// PaginatedDocuments is the envelope returned by the paginated document
// endpoints. The server defines the ordering; ascending and descending are
// distinct endpoints, not a client-side sort.
type PaginatedDocuments struct {
	Items      []Document `json:"items"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}

// DocumentSearch is the envelope returned by the filename and tag search
// endpoints. Search results carry no pagination fields; the whole result
// set arrives as one page.
type DocumentSearch struct {
	Documents []Document `json:"documents"`
	Query     string     `json:"query"`
	Total     int        `json:"total"`
}

// FormatDate renders a timestamp the way list rows display it.
func FormatDate(t time.Time) string {
	return t.Format("2006/01/02 15:04")
}

// FormatTime renders a timestamp the way chat bubbles display it.
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}
