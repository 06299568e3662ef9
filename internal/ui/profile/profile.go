// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package profile provides the profile statistics view: topic preferences
// over the last 30 days and daily activity over the last year.
package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat/docchat-tui/internal/api"
	"github.com/docchat/docchat-tui/internal/model"
	"github.com/docchat/docchat-tui/internal/ui/components"
	"github.com/docchat/docchat-tui/internal/ui/styles"
	"github.com/docchat/docchat-tui/internal/util"
)

// =============================================================================
// MESSAGES
// =============================================================================

// TopicsLoadedMsg carries the 30-day topic aggregate.
type TopicsLoadedMsg struct {
	Topics *model.TopicPreference
	Err    error
}

// HeatmapLoadedMsg carries the 365-day activity aggregate.
type HeatmapLoadedMsg struct {
	Heatmap *model.ActivityHeatmap
	Err     error
}

// UserLoadedMsg carries the authenticated user's profile record.
type UserLoadedMsg struct {
	User *model.User
	Err  error
}

func loadTopicsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		topics, err := client.TopicPreference(context.Background())
		return TopicsLoadedMsg{Topics: topics, Err: err}
	}
}

func loadHeatmapCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		heatmap, err := client.ActivityHeatmap(context.Background())
		return HeatmapLoadedMsg{Heatmap: heatmap, Err: err}
	}
}

func loadUserCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		user, err := client.CurrentUser(context.Background())
		return UserLoadedMsg{User: user, Err: err}
	}
}

// =============================================================================
// PROFILE MODEL
// =============================================================================

// maxTopicRows caps how many ranked topics the bar chart shows.
const maxTopicRows = 10

// Model is the Bubble Tea model for the profile statistics view.
type Model struct {
	client *api.Client
	theme  *styles.Theme

	user    *model.User
	topics  *model.TopicPreference
	heatmap *model.ActivityHeatmap

	loadingTopics  bool
	loadingHeatmap bool

	spinner spinner.Model
	toasts  *components.ToastManager

	width  int
	height int
}

// New creates a profile view backed by the given client.
func New(client *api.Client, theme *styles.Theme) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return Model{
		client:  client,
		theme:   theme,
		spinner: sp,
		toasts:  components.NewToastManager(),
	}
}

// Init fetches both aggregates.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refresh(), m.spinner.Tick)
}

func (m *Model) refresh() tea.Cmd {
	m.loadingTopics = true
	m.loadingHeatmap = true
	return tea.Batch(loadTopicsCmd(m.client), loadHeatmapCmd(m.client), loadUserCmd(m.client))
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Loading reports whether either aggregate is still in flight.
func (m Model) Loading() bool {
	return m.loadingTopics || m.loadingHeatmap
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles Bubble Tea messages for the profile view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, tea.Batch(m.refresh(), m.spinner.Tick)
		}
		return m, nil

	case TopicsLoadedMsg:
		m.loadingTopics = false
		if msg.Err != nil {
			m.toasts.AddError("Failed to load topic stats: " + msg.Err.Error())
			return m, components.ToastTickCmd()
		}
		m.topics = msg.Topics
		return m, nil

	case UserLoadedMsg:
		// Cosmetic; a failure leaves the generic heading.
		if msg.Err == nil {
			m.user = msg.User
		}
		return m, nil

	case HeatmapLoadedMsg:
		m.loadingHeatmap = false
		if msg.Err != nil {
			m.toasts.AddError("Failed to load activity stats: " + msg.Err.Error())
			return m, components.ToastTickCmd()
		}
		m.heatmap = msg.Heatmap
		return m, nil

	case components.ToastTickMsg:
		if m.toasts.HasToasts() {
			m.toasts.TickToasts()
			return m, components.ToastTickCmd()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the profile statistics.
func (m Model) View() string {
	var b strings.Builder

	heading := "Your activity"
	if m.user != nil && m.user.Nickname != "" {
		heading = m.user.Nickname
	}
	b.WriteString(m.theme.ListHeader.Render(heading))
	b.WriteString("\n\n")

	if m.Loading() {
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.LoadingText.Render(" Loading statistics..."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderSummary())
		b.WriteString("\n")
		b.WriteString(m.renderTopics())
		b.WriteString("\n")
		b.WriteString(m.renderHeatmap())
	}

	if m.toasts.HasToasts() {
		b.WriteString("\n")
		b.WriteString(components.RenderToasts(m.toasts.TickToasts(), m.width))
	}

	return b.String()
}

func (m Model) renderSummary() string {
	total := 0
	days := 0
	if m.heatmap != nil {
		total = m.heatmap.TotalActivity()
		for _, p := range m.heatmap.Activities {
			if p.Count > 0 {
				days++
			}
		}
	}

	parts := []string{
		m.theme.StatsLabel.Render("total actions ") + m.theme.StatsValue.Render(fmt.Sprintf("%d", total)),
		m.theme.StatsLabel.Render("active days ") + m.theme.StatsValue.Render(fmt.Sprintf("%d", days)),
	}
	return m.theme.StatsBar.Render(strings.Join(parts, "   ")) + "\n"
}

func (m Model) renderTopics() string {
	var b strings.Builder
	b.WriteString(m.theme.StatsLabel.Render("Top topics (30 days)"))
	b.WriteString("\n")

	if m.topics == nil || len(m.topics.Topics) == 0 {
		b.WriteString(m.theme.EmptyList.Render("  No topic activity yet"))
		b.WriteString("\n")
		return b.String()
	}

	ranked := m.topics.Ranked()
	if len(ranked) > maxTopicRows {
		ranked = ranked[:maxTopicRows]
	}
	max := ranked[0].Count

	barWidth := m.width - 30
	if barWidth < 10 {
		barWidth = 10
	}

	for _, topic := range ranked {
		width := 1
		if max > 0 {
			width = topic.Count * barWidth / max
			if width < 1 {
				width = 1
			}
		}
		bar := m.theme.HeatCell.Render(strings.Repeat("█", width))
		label := fmt.Sprintf("  %-14s", truncateTopic(topic.Name, 14))
		b.WriteString(m.theme.StatsLabel.Render(label))
		b.WriteString(bar)
		b.WriteString(m.theme.StatsValue.Render(fmt.Sprintf(" %d", topic.Count)))
		b.WriteString("\n")
	}
	return b.String()
}

// renderHeatmap shows the last weeks of activity as shaded cells, most
// recent day last.
func (m Model) renderHeatmap() string {
	var b strings.Builder
	b.WriteString(m.theme.StatsLabel.Render("Recent activity"))
	b.WriteString("\n")

	if m.heatmap == nil || len(m.heatmap.Activities) == 0 {
		b.WriteString(m.theme.EmptyList.Render("  No activity recorded"))
		b.WriteString("\n")
		return b.String()
	}

	cells := m.width - 6
	if cells < 14 {
		cells = 14
	}
	points := m.heatmap.Activities
	if len(points) > cells {
		points = points[len(points)-cells:]
	}

	var row strings.Builder
	for _, p := range points {
		row.WriteString(heatGlyph(p.Count))
	}
	b.WriteString("  ")
	b.WriteString(m.theme.HeatCell.Render(row.String()))
	b.WriteString("\n")
	if first, last := points[0], points[len(points)-1]; first.Date != "" && last.Date != "" {
		span := fmt.Sprintf("  %s .. %s", first.Date, last.Date)
		b.WriteString(m.theme.ListMeta.Render(span))
		b.WriteString("\n")
	}
	return b.String()
}

func heatGlyph(count int) string {
	switch {
	case count == 0:
		return "·"
	case count <= 2:
		return "░"
	case count <= 5:
		return "▒"
	case count <= 9:
		return "▓"
	default:
		return "█"
	}
}

func truncateTopic(name string, max int) string {
	if util.StringWidth(name) <= max {
		return name
	}
	runes := []rune(name)
	if len(runes) > max-1 {
		runes = runes[:max-1]
	}
	return string(runes) + "…"
}
