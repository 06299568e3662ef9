// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the wire-level data structures exchanged with the
// docchat backend.
package model

import "sort"

// =============================================================================
// PROFILE STATISTICS
// =============================================================================

// TopicPreference aggregates the tags the user interacted with most over
// the last 30 days.
type TopicPreference struct {
	Topics map[string]int `json:"topics"`
}

// Ranked returns the topics sorted by count descending, name ascending on
// ties, so rendering is deterministic.
func (t TopicPreference) Ranked() []TopicCount {
	ranked := make([]TopicCount, 0, len(t.Topics))
	for name, count := range t.Topics {
		ranked = append(ranked, TopicCount{Name: name, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}

// TopicCount is a single ranked topic.
type TopicCount struct {
	Name  string
	Count int
}

// ActivityPoint is one day of activity.
type ActivityPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ActivityHeatmap aggregates daily activity over the last 365 days.
type ActivityHeatmap struct {
	Activities []ActivityPoint `json:"activities"`
}

// TotalActivity sums all daily counts.
func (a ActivityHeatmap) TotalActivity() int {
	total := 0
	for _, p := range a.Activities {
		total += p.Count
	}
	return total
}

// =============================================================================
// SESSION AND USER
// =============================================================================

// Session identifies the authenticated session.
type Session struct {
	UserID    int    `json:"user_id"`
	SessionID string `json:"session_id"`
}

// User is the authenticated user's profile record.
type User struct {
	UserID    int    `json:"user_id"`
	KakaoID   string `json:"kakao_id"`
	Nickname  string `json:"nickname"`
	CreatedAt string `json:"created_at"`
	Message   string `json:"message,omitempty"`
}
