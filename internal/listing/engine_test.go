// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package listing

import (
	"errors"
	"testing"
)

// testItem is a minimal Item for engine tests.
type testItem struct {
	id   int
	name string
}

func (t testItem) ItemID() int { return t.id }

func pageOf(ids []int, total, page, totalPages int) *PageResult[testItem] {
	items := make([]testItem, len(ids))
	for i, id := range ids {
		items[i] = testItem{id: id}
	}
	return &PageResult[testItem]{Items: items, Total: total, Page: page, PageSize: 10, TotalPages: totalPages}
}

func searchOf(ids []int, query string) *SearchResult[testItem] {
	items := make([]testItem, len(ids))
	for i, id := range ids {
		items[i] = testItem{id: id}
	}
	return &SearchResult[testItem]{Items: items, Query: query, Total: len(ids)}
}

// =============================================================================
// PAGINATION TESTS
// =============================================================================

func TestEngine_InitAndApply(t *testing.T) {
	e := NewEngine[testItem](10)

	req := e.Init()
	if !e.Loading() {
		t.Error("Init should mark the engine loading")
	}
	if req.Kind != KindPage || req.Page != 1 || req.PageSize != 10 {
		t.Errorf("Init request = %+v", req)
	}

	if err := e.ApplyPage(req, pageOf([]int{1, 2, 3}, 25, 1, 3), nil); err != nil {
		t.Fatalf("ApplyPage: %v", err)
	}
	if e.Loading() {
		t.Error("apply should clear loading")
	}
	if e.Page() != 1 || e.TotalPages() != 3 || e.Total() != 25 || len(e.Items()) != 3 {
		t.Errorf("state after apply: page=%d totalPages=%d total=%d items=%d",
			e.Page(), e.TotalPages(), e.Total(), len(e.Items()))
	}
}

func TestEngine_GoToPage_Bounds(t *testing.T) {
	e := NewEngine[testItem](10)
	req := e.Init()
	e.ApplyPage(req, pageOf([]int{1}, 25, 1, 3), nil)

	if _, ok := e.GoToPage(0); ok {
		t.Error("page 0 must be a no-op")
	}
	if _, ok := e.GoToPage(4); ok {
		t.Error("page beyond totalPages must be a no-op")
	}
	req, ok := e.GoToPage(2)
	if !ok || req.Page != 2 {
		t.Fatalf("GoToPage(2) = %+v, %v", req, ok)
	}
}

// The end-to-end scenario: descending, page 1 of 3 (total=25, pageSize=10).
// "Next" must request page 2 under descending and the window must clamp to
// the full range since totalPages < window width.
func TestEngine_NextPageKeepsSortOrder(t *testing.T) {
	e := NewEngine[testItem](10, WithSortOrder(SortDescending))
	req := e.Init()
	e.ApplyPage(req, pageOf([]int{1, 2}, 25, 1, 3), nil)

	next, ok := e.NextPage()
	if !ok {
		t.Fatal("NextPage should issue a request")
	}
	if next.Page != 2 || next.Order != SortDescending {
		t.Errorf("NextPage request = %+v, want page 2 descending", next)
	}

	e.ApplyPage(next, pageOf([]int{11, 12}, 25, 2, 3), nil)
	window := e.PageWindow()
	want := []int{1, 2, 3}
	if len(window) != len(want) {
		t.Fatalf("PageWindow() = %v, want %v", window, want)
	}
	for i := range want {
		if window[i] != want[i] {
			t.Fatalf("PageWindow() = %v, want %v", window, want)
		}
	}
}

func TestEngine_SetSortOrder(t *testing.T) {
	e := NewEngine[testItem](10)
	req := e.Init()
	e.ApplyPage(req, pageOf([]int{1}, 25, 2, 3), nil)

	req, ok := e.SetSortOrder(SortAscending)
	if !ok {
		t.Fatal("SetSortOrder should re-fetch in paginated mode")
	}
	if req.Order != SortAscending || req.Page != 2 {
		t.Errorf("request = %+v, want current page under ascending", req)
	}

	// Outside paginated mode the order is stored but nothing is fetched.
	e.SetMode(ModeFilenameSearch)
	if _, ok := e.SetSortOrder(SortDescending); ok {
		t.Error("SetSortOrder must not fetch in a search mode")
	}
	if e.SortOrder() != SortDescending {
		t.Error("order should still be stored")
	}
}

// =============================================================================
// MODE SWITCHING TESTS
// =============================================================================

func TestEngine_SetMode(t *testing.T) {
	e := NewEngine[testItem](10)
	req := e.Init()
	e.ApplyPage(req, pageOf([]int{1, 2}, 25, 2, 3), nil)

	// Switching to a search mode clears query/results and waits for Search.
	if _, ok := e.SetMode(ModeTagSearch); ok {
		t.Error("search modes must not auto-fetch")
	}
	if e.Page() != 1 || e.TotalPages() != 1 {
		t.Errorf("search mode invariant violated: page=%d totalPages=%d", e.Page(), e.TotalPages())
	}
	if e.Query() != "" {
		t.Errorf("query should be cleared, got %q", e.Query())
	}

	// Switching back to paginated re-fetches page 1 rather than reusing
	// anything cached.
	req, ok := e.SetMode(ModePaginated)
	if !ok || req.Kind != KindPage || req.Page != 1 {
		t.Fatalf("SetMode(Paginated) = %+v, %v", req, ok)
	}
}

func TestEngine_ModeSwitchPreservesSelection(t *testing.T) {
	e := NewEngine[testItem](10, WithSelection())
	e.ToggleSelection(7)
	e.ToggleSelection(9)

	e.SetMode(ModeFilenameSearch)
	e.SetMode(ModePaginated)

	if !e.IsSelected(7) || !e.IsSelected(9) {
		t.Error("selection must survive mode switches")
	}
}

// =============================================================================
// SEARCH TESTS
// =============================================================================

func TestEngine_Search_Validation(t *testing.T) {
	e := NewEngine[testItem](10)

	e.SetMode(ModeFilenameSearch)
	if _, err := e.Search("   "); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("blank filename query: err = %v, want ErrEmptyQuery", err)
	}

	e.SetMode(ModeTagSearch)
	if _, err := e.Search(" , "); !errors.Is(err, ErrNoTags) {
		t.Errorf("blank tag query: err = %v, want ErrNoTags", err)
	}
}

func TestEngine_Search_TagNormalization(t *testing.T) {
	e := NewEngine[testItem](10)
	e.SetMode(ModeTagSearch)

	req, err := e.Search("a, ,b")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(req.Tags) != 2 || req.Tags[0] != "a" || req.Tags[1] != "b" {
		t.Errorf("Tags = %v, want [a b]", req.Tags)
	}
}

func TestEngine_Search_ApplyForcesSinglePage(t *testing.T) {
	e := NewEngine[testItem](10)
	req := e.Init()
	e.ApplyPage(req, pageOf([]int{1}, 25, 2, 3), nil)

	e.SetMode(ModeFilenameSearch)
	sreq, err := e.Search("report")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if err := e.ApplySearch(sreq, searchOf([]int{4, 5, 6}, "report"), nil); err != nil {
		t.Fatalf("ApplySearch: %v", err)
	}
	if e.Page() != 1 || e.TotalPages() != 1 {
		t.Errorf("search results must be a single page: page=%d totalPages=%d", e.Page(), e.TotalPages())
	}
	if e.Total() != 3 || len(e.Items()) != 3 {
		t.Errorf("total=%d items=%d", e.Total(), len(e.Items()))
	}
}

func TestEngine_FailedSearchKeepsPreviousResults(t *testing.T) {
	e := NewEngine[testItem](10)
	req := e.Init()
	e.ApplyPage(req, pageOf([]int{1, 2}, 2, 1, 1), nil)

	e.SetMode(ModeFilenameSearch)
	sreq, _ := e.Search("report")

	// Search mode entry cleared the listing, so "previous results" here is
	// the empty search-mode state; the fetch failure must not overwrite
	// anything or clear the error path.
	failure := errors.New("boom")
	if err := e.ApplySearch(sreq, nil, failure); !errors.Is(err, failure) {
		t.Errorf("ApplySearch should return the fetch error, got %v", err)
	}
	if e.Loading() {
		t.Error("loading must clear on failure")
	}
}

func TestEngine_FailedPageFetchKeepsItems(t *testing.T) {
	e := NewEngine[testItem](10)
	req := e.Init()
	e.ApplyPage(req, pageOf([]int{1, 2}, 25, 1, 3), nil)

	next, _ := e.GoToPage(2)
	failure := errors.New("connection refused")
	if err := e.ApplyPage(next, nil, failure); !errors.Is(err, failure) {
		t.Errorf("ApplyPage should return the fetch error, got %v", err)
	}
	if len(e.Items()) != 2 || e.Page() != 1 {
		t.Error("failed fetch must leave previous items and page untouched")
	}
}

// =============================================================================
// STALE RESPONSE TESTS
// =============================================================================

func TestEngine_DiscardsStaleResponses(t *testing.T) {
	e := NewEngine[testItem](10)
	first := e.Init()
	e.ApplyPage(first, pageOf([]int{1}, 25, 1, 3), nil)

	slow, _ := e.GoToPage(2)
	fast, _ := e.GoToPage(3)

	// The later request resolves first.
	e.ApplyPage(fast, pageOf([]int{21}, 25, 3, 3), nil)
	if e.Page() != 3 {
		t.Fatalf("page = %d, want 3", e.Page())
	}

	// The slow page-2 response arrives afterward and must be discarded.
	if err := e.ApplyPage(slow, pageOf([]int{11}, 25, 2, 3), nil); err != nil {
		t.Fatalf("stale apply returned error: %v", err)
	}
	if e.Page() != 3 || e.Items()[0].ItemID() != 21 {
		t.Error("stale response overwrote newer state")
	}
}

// =============================================================================
// SELECTION TESTS
// =============================================================================

func TestEngine_Selection(t *testing.T) {
	e := NewEngine[testItem](10, WithSelection())

	e.ToggleSelection(5)
	if !e.IsSelected(5) || e.SelectionCount() != 1 {
		t.Error("toggle on failed")
	}
	e.ToggleSelection(5)
	if e.IsSelected(5) || e.SelectionCount() != 0 {
		t.Error("toggle off failed")
	}

	e.ToggleSelection(9)
	e.ToggleSelection(3)
	ids := e.Selected()
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 9 {
		t.Errorf("Selected() = %v, want [3 9]", ids)
	}
}

func TestEngine_SelectionDisabledWithoutOption(t *testing.T) {
	e := NewEngine[testItem](10)
	e.ToggleSelection(5)
	if e.SelectionCount() != 0 {
		t.Error("selection must be inert without WithSelection")
	}
}

// =============================================================================
// NORMALIZATION TESTS
// =============================================================================

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a, ,b", []string{"a", "b"}},
		{" , ", nil},
		{"", nil},
		{"single", []string{"single"}},
		{"  spaced  ,  tags  ", []string{"spaced", "tags"}},
		{",,,x,,,", []string{"x"}},
	}

	for _, tc := range tests {
		got := NormalizeTags(tc.input)
		if len(got) != len(tc.want) {
			t.Errorf("NormalizeTags(%q) = %v, want %v", tc.input, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("NormalizeTags(%q) = %v, want %v", tc.input, got, tc.want)
			}
		}
	}
}

func TestEngine_Invalidate(t *testing.T) {
	e := NewEngine[testItem](10)
	req := e.Init()
	e.ApplyPage(req, pageOf([]int{1}, 25, 2, 3), nil)

	inv := e.Invalidate()
	if inv.Kind != KindPage || inv.Page != 2 {
		t.Errorf("Invalidate request = %+v, want current page re-fetch", inv)
	}
}
