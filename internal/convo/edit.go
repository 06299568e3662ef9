// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package convo

import (
	"errors"
	"strings"
)

// ErrEmptyTitle is returned when a rename is committed with a blank
// title.
var ErrEmptyTitle = errors.New("title must not be empty")

// Edit is the inline rename state for a conversation list. At most one
// row is editable at a time; starting an edit on another row implicitly
// cancels the first.
type Edit struct {
	active bool
	id     int
	draft  string
}

// Editing reports whether a row is being edited, and which one.
func (e *Edit) Editing() (id int, active bool) {
	return e.id, e.active
}

// EditingID returns the row under edit, or 0 when inactive.
func (e *Edit) EditingID() int {
	if !e.active {
		return 0
	}
	return e.id
}

// Draft returns the current draft title.
func (e *Edit) Draft() string { return e.draft }

// SetDraft updates the draft as the user types. Ignored when no edit is
// active.
func (e *Edit) SetDraft(text string) {
	if e.active {
		e.draft = text
	}
}

// Begin starts editing the given row, seeding the draft with the current
// title. Beginning an edit while another row is active abandons the
// first row's draft.
func (e *Edit) Begin(id int, currentTitle string) {
	e.active = true
	e.id = id
	e.draft = currentTitle
}

// Commit validates the draft and returns the rename to run. The edit
// stays active until Clear so a failed rename keeps the draft on screen
// for correction.
func (e *Edit) Commit() (id int, title string, err error) {
	if !e.active {
		return 0, "", ErrEmptyTitle
	}
	title = strings.TrimSpace(e.draft)
	if title == "" {
		return 0, "", ErrEmptyTitle
	}
	return e.id, title, nil
}

// Clear ends the edit after a successful rename.
func (e *Edit) Clear() {
	e.active = false
	e.id = 0
	e.draft = ""
}

// Cancel abandons the edit and its draft.
func (e *Edit) Cancel() { e.Clear() }
