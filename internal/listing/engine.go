// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package listing implements the windowed pagination / dual-mode listing
// engine shared by the browse, picker, and conversation views.
package listing

import (
	"errors"
	"sort"
	"strings"
)

// =============================================================================
// MODES AND ORDERS
// =============================================================================

// Mode selects which data source the listing is using.
type Mode int

const (
	// ModePaginated browses the full collection page by page.
	ModePaginated Mode = iota
	// ModeFilenameSearch shows the results of one filename search.
	ModeFilenameSearch
	// ModeTagSearch shows the results of one tag search.
	ModeTagSearch
)

func (m Mode) String() string {
	switch m {
	case ModeFilenameSearch:
		return "filename"
	case ModeTagSearch:
		return "tags"
	default:
		return "paginated"
	}
}

// SortOrder selects which paginated endpoint serves the listing. Ordering
// is server-defined; the engine never re-sorts items.
type SortOrder int

const (
	SortDescending SortOrder = iota
	SortAscending
)

func (o SortOrder) String() string {
	if o == SortAscending {
		return "ascending"
	}
	return "descending"
}

// =============================================================================
// VALIDATION ERRORS
// =============================================================================

// Validation failures are local: no network call is issued for them.
var (
	ErrEmptyQuery = errors.New("search text must not be empty")
	ErrNoTags     = errors.New("at least one tag is required")
)

// =============================================================================
// ITEMS, REQUESTS, RESULTS
// =============================================================================

// Item is anything the engine can list. Identifiers are stable ints
// assigned by the server.
type Item interface {
	ItemID() int
}

// RequestKind says which data source a Request targets.
type RequestKind int

const (
	KindPage RequestKind = iota
	KindFilenameSearch
	KindTagSearch
)

// Request describes one fetch the engine has asked its owner to run.
// The owner executes it (inside a Bubble Tea command) and hands the
// outcome back to ApplyPage or ApplySearch together with the Request.
type Request struct {
	Seq      uint64
	Kind     RequestKind
	Page     int
	PageSize int
	Order    SortOrder
	Query    string   // filename search only
	Tags     []string // tag search only
}

// PageResult is the paginated half of the response union.
type PageResult[T Item] struct {
	Items      []T
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// SearchResult is the search half of the response union. Search results
// are never paginated, whatever their size.
type SearchResult[T Item] struct {
	Items []T
	Query string
	Total int
}

// =============================================================================
// ENGINE
// =============================================================================

// Engine owns the state of one listing view. It is not safe for concurrent
// use; each view owns exactly one engine and drives it from the update loop.
type Engine[T Item] struct {
	pageSize   int
	selectable bool

	mode       Mode
	order      SortOrder
	items      []T
	page       int
	total      int
	totalPages int
	query      string
	loading    bool

	// selection is cross-mode: it survives mode switches and searches.
	selection map[int]struct{}

	// seq is the newest issued request; responses older than it are stale.
	seq uint64
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	selectable bool
	order      SortOrder
}

// WithSelection enables the picker's selection set.
func WithSelection() Option {
	return func(o *options) { o.selectable = true }
}

// WithSortOrder sets the initial sort order.
func WithSortOrder(order SortOrder) Option {
	return func(o *options) { o.order = order }
}

// NewEngine creates a listing engine with a fixed page size.
func NewEngine[T Item](pageSize int, opts ...Option) *Engine[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine[T]{
		pageSize:   pageSize,
		selectable: o.selectable,
		order:      o.order,
		page:       1,
		totalPages: 1,
	}
	if o.selectable {
		e.selection = make(map[int]struct{})
	}
	return e
}

// =============================================================================
// OPERATIONS
// =============================================================================

// Init returns the initial fetch for page 1.
func (e *Engine[T]) Init() Request {
	return e.pageRequest(1)
}

// SetMode switches the listing's data source. Query text and search
// results are cleared. Switching to ModePaginated immediately re-issues a
// page-1 fetch (ok=true); the search modes wait for an explicit Search.
func (e *Engine[T]) SetMode(mode Mode) (Request, bool) {
	e.mode = mode
	e.query = ""
	if mode == ModePaginated {
		return e.pageRequest(1), true
	}
	// Search modes start empty until a search is triggered. Page state is
	// pinned to the search-mode invariant: one page, always page one.
	e.items = nil
	e.total = 0
	e.page = 1
	e.totalPages = 1
	e.loading = false
	return Request{}, false
}

// Search validates the raw query text for the current mode and returns
// the fetch to run. Validation failures return an error and issue nothing.
// In ModePaginated, Search re-fetches page 1 (the original browse view's
// search button does this when no search mode is active).
func (e *Engine[T]) Search(raw string) (Request, error) {
	switch e.mode {
	case ModeFilenameSearch:
		query := strings.TrimSpace(raw)
		if query == "" {
			return Request{}, ErrEmptyQuery
		}
		e.query = query
		e.loading = true
		e.seq++
		return Request{Seq: e.seq, Kind: KindFilenameSearch, Query: query}, nil

	case ModeTagSearch:
		tags := NormalizeTags(raw)
		if len(tags) == 0 {
			return Request{}, ErrNoTags
		}
		e.query = strings.Join(tags, ",")
		e.loading = true
		e.seq++
		return Request{Seq: e.seq, Kind: KindTagSearch, Tags: tags}, nil

	default:
		return e.pageRequest(1), nil
	}
}

// GoToPage re-fetches page n. Out-of-range pages are a no-op, as is any
// page move outside paginated mode.
func (e *Engine[T]) GoToPage(n int) (Request, bool) {
	if e.mode != ModePaginated {
		return Request{}, false
	}
	if n < 1 || n > e.totalPages {
		return Request{}, false
	}
	return e.pageRequest(n), true
}

// NextPage and PrevPage are GoToPage conveniences for key bindings.
func (e *Engine[T]) NextPage() (Request, bool) { return e.GoToPage(e.page + 1) }
func (e *Engine[T]) PrevPage() (Request, bool) { return e.GoToPage(e.page - 1) }

// SetSortOrder changes the server ordering. Only paginated mode re-fetches;
// search responses are unordered by the client's choice.
func (e *Engine[T]) SetSortOrder(order SortOrder) (Request, bool) {
	e.order = order
	if e.mode != ModePaginated {
		return Request{}, false
	}
	return e.pageRequest(e.page), true
}

// ToggleSortOrder flips between ascending and descending.
func (e *Engine[T]) ToggleSortOrder() (Request, bool) {
	if e.order == SortDescending {
		return e.SetSortOrder(SortAscending)
	}
	return e.SetSortOrder(SortDescending)
}

// Invalidate re-fetches the current page. Owners call it after an external
// mutation (create, delete, rename) instead of wiring ad hoc refresh
// callbacks.
func (e *Engine[T]) Invalidate() Request {
	page := e.page
	if e.mode != ModePaginated {
		page = 1
	}
	return e.pageRequest(page)
}

func (e *Engine[T]) pageRequest(page int) Request {
	e.mode = ModePaginated
	e.loading = true
	e.seq++
	return Request{
		Seq:      e.seq,
		Kind:     KindPage,
		Page:     page,
		PageSize: e.pageSize,
		Order:    e.order,
	}
}

// =============================================================================
// RESPONSE APPLICATION
// =============================================================================

// ApplyPage folds a paginated response into the engine. Stale responses
// (a newer request was issued while this one was in flight) are discarded
// silently. On error the previous items remain displayed and the error is
// returned for the owner to surface.
func (e *Engine[T]) ApplyPage(req Request, res *PageResult[T], err error) error {
	if req.Seq < e.seq {
		return nil
	}
	e.loading = false
	if err != nil {
		return err
	}

	e.items = res.Items
	e.total = res.Total
	e.totalPages = res.TotalPages
	if e.totalPages < 1 {
		e.totalPages = 1
	}
	e.page = req.Page
	if res.Page > 0 {
		e.page = res.Page
	}
	if e.page > e.totalPages {
		e.page = e.totalPages
	}
	if e.page < 1 {
		e.page = 1
	}
	return nil
}

// ApplySearch folds a search response into the engine. A failed search
// leaves the previous result set and mode untouched.
func (e *Engine[T]) ApplySearch(req Request, res *SearchResult[T], err error) error {
	if req.Seq < e.seq {
		return nil
	}
	e.loading = false
	if err != nil {
		return err
	}

	e.items = res.Items
	e.total = res.Total
	e.page = 1
	e.totalPages = 1
	return nil
}

// =============================================================================
// SELECTION
// =============================================================================

// ToggleSelection adds or removes an item from the selection set. It never
// touches items and never triggers a fetch. No-op unless the engine was
// built with WithSelection.
func (e *Engine[T]) ToggleSelection(id int) {
	if e.selection == nil {
		return
	}
	if _, ok := e.selection[id]; ok {
		delete(e.selection, id)
	} else {
		e.selection[id] = struct{}{}
	}
}

// IsSelected reports whether an item is in the selection set.
func (e *Engine[T]) IsSelected(id int) bool {
	_, ok := e.selection[id]
	return ok
}

// Selected returns the selected identifiers in ascending order.
func (e *Engine[T]) Selected() []int {
	if len(e.selection) == 0 {
		return nil
	}
	ids := make([]int, 0, len(e.selection))
	for id := range e.selection {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// SelectionCount returns the size of the selection set.
func (e *Engine[T]) SelectionCount() int {
	return len(e.selection)
}

// ClearSelection empties the selection set.
func (e *Engine[T]) ClearSelection() {
	if e.selection != nil {
		e.selection = make(map[int]struct{})
	}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Items returns the current result set in server order.
func (e *Engine[T]) Items() []T { return e.items }

// Mode returns the active listing mode.
func (e *Engine[T]) Mode() Mode { return e.mode }

// Page returns the current page, always in [1, TotalPages].
func (e *Engine[T]) Page() int { return e.page }

// PageSize returns the fixed page size.
func (e *Engine[T]) PageSize() int { return e.pageSize }

// Total returns the server-reported total item count.
func (e *Engine[T]) Total() int { return e.total }

// TotalPages returns the page count, always at least 1.
func (e *Engine[T]) TotalPages() int { return e.totalPages }

// SortOrder returns the active sort order.
func (e *Engine[T]) SortOrder() SortOrder { return e.order }

// Query returns the active search query ("" outside search modes).
func (e *Engine[T]) Query() string { return e.query }

// Loading reports whether a fetch is outstanding.
func (e *Engine[T]) Loading() bool { return e.loading }

// PageWindow returns the page numbers to render as pagination controls.
func (e *Engine[T]) PageWindow() []int {
	return Window(e.page, e.totalPages)
}

// =============================================================================
// TAG NORMALIZATION
// =============================================================================

// NormalizeTags splits a comma-separated tag query, trims each segment,
// and drops empties. "a, ,b" normalizes to ["a","b"]; " , " to nil.
func NormalizeTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
