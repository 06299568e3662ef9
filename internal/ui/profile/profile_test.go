// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package profile

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat/docchat-tui/internal/model"
	"github.com/docchat/docchat-tui/internal/ui/styles"
)

func loadedProfile(t *testing.T) Model {
	t.Helper()
	m := New(nil, styles.NewTheme())
	m.SetSize(100, 30)
	m.loadingTopics = true
	m.loadingHeatmap = true

	m, _ = m.Update(TopicsLoadedMsg{Topics: &model.TopicPreference{
		Topics: map[string]int{"tax": 9, "invoices": 4},
	}})
	m, _ = m.Update(HeatmapLoadedMsg{Heatmap: &model.ActivityHeatmap{
		Activities: []model.ActivityPoint{
			{Date: "2026-08-27", Count: 0},
			{Date: "2026-08-28", Count: 3},
			{Date: "2026-08-29", Count: 12},
		},
	}})
	return m
}

func TestProfile_LoadsBothAggregates(t *testing.T) {
	m := loadedProfile(t)

	if m.Loading() {
		t.Error("view should settle after both responses")
	}

	out := m.View()
	for _, want := range []string{"tax", "invoices", "total actions", "15", "active days", "2"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestProfile_TopicLoadFailureShowsToast(t *testing.T) {
	m := New(nil, styles.NewTheme())
	m.SetSize(100, 30)
	m.loadingTopics = true

	m, _ = m.Update(TopicsLoadedMsg{Err: errors.New("backend down")})

	if m.loadingTopics {
		t.Error("failed load must still clear the loading flag")
	}
	if !m.toasts.HasToasts() {
		t.Error("expected an error toast")
	}
}

func TestProfile_RefreshReloads(t *testing.T) {
	m := loadedProfile(t)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if cmd == nil {
		t.Fatal("r should issue reload commands")
	}
	if !m.Loading() {
		t.Error("refresh should re-enter the loading state")
	}
}

func TestProfile_EmptyStatsRenderPlaceholders(t *testing.T) {
	m := New(nil, styles.NewTheme())
	m.SetSize(80, 24)

	m, _ = m.Update(TopicsLoadedMsg{Topics: &model.TopicPreference{}})
	m, _ = m.Update(HeatmapLoadedMsg{Heatmap: &model.ActivityHeatmap{}})

	out := m.View()
	if !strings.Contains(out, "No topic activity yet") {
		t.Error("expected topic placeholder")
	}
	if !strings.Contains(out, "No activity recorded") {
		t.Error("expected activity placeholder")
	}
}
