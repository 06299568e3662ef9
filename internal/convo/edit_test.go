// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package convo

import (
	"errors"
	"testing"
)

func TestEdit_Lifecycle(t *testing.T) {
	var e Edit

	if _, active := e.Editing(); active {
		t.Error("fresh Edit must be inactive")
	}

	e.Begin(5, "Quarterly report")
	if id, active := e.Editing(); !active || id != 5 {
		t.Errorf("Editing() = %d, %v", id, active)
	}
	if e.Draft() != "Quarterly report" {
		t.Errorf("draft seeded with %q", e.Draft())
	}

	e.SetDraft("Q1 report")
	id, title, err := e.Commit()
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if id != 5 || title != "Q1 report" {
		t.Errorf("Commit = %d, %q", id, title)
	}

	// Still active until Clear, so a failed rename keeps the draft.
	if _, active := e.Editing(); !active {
		t.Error("Commit must not end the edit")
	}
	e.Clear()
	if _, active := e.Editing(); active {
		t.Error("Clear should end the edit")
	}
}

func TestEdit_CommitValidation(t *testing.T) {
	var e Edit

	if _, _, err := e.Commit(); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("inactive commit: err = %v, want ErrEmptyTitle", err)
	}

	e.Begin(3, "Old")
	e.SetDraft("   ")
	if _, _, err := e.Commit(); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("blank draft: err = %v, want ErrEmptyTitle", err)
	}
	// Draft retained for correction.
	if _, active := e.Editing(); !active {
		t.Error("failed commit must keep the edit active")
	}
}

func TestEdit_BeginOnAnotherRowCancelsFirst(t *testing.T) {
	var e Edit

	e.Begin(1, "First")
	e.SetDraft("First, edited")

	e.Begin(2, "Second")
	if id := e.EditingID(); id != 2 {
		t.Errorf("EditingID() = %d, want 2", id)
	}
	if e.Draft() != "Second" {
		t.Errorf("draft = %q, first row's draft must be abandoned", e.Draft())
	}
}

func TestEdit_SetDraftIgnoredWhenInactive(t *testing.T) {
	var e Edit
	e.SetDraft("orphan")
	if e.Draft() != "" {
		t.Error("SetDraft must be a no-op when no edit is active")
	}
}
