// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the docchat backend REST API.
package api

import (
	"context"

	"github.com/docchat/docchat-tui/internal/model"
)

// =============================================================================
// SESSION OPERATIONS
// =============================================================================

// CheckSession verifies the configured session cookie is still valid.
// ErrSessionExpired means the user must log in through the browser again.
func (c *Client) CheckSession(ctx context.Context) (*model.Session, error) {
	var result model.Session
	if err := c.get(ctx, "/auth/session", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CurrentUser fetches the authenticated user's profile.
func (c *Client) CurrentUser(ctx context.Context) (*model.User, error) {
	var result model.User
	if err := c.get(ctx, "/auth/me", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout ends the session server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/auth/logout", nil, nil)
}

// =============================================================================
// PROFILE STATISTICS
// =============================================================================

// TopicPreference fetches the 30-day tag interaction aggregate.
func (c *Client) TopicPreference(ctx context.Context) (*model.TopicPreference, error) {
	var result model.TopicPreference
	if err := c.get(ctx, "/users/stats/topics", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ActivityHeatmap fetches the 365-day daily activity aggregate.
func (c *Client) ActivityHeatmap(ctx context.Context) (*model.ActivityHeatmap, error) {
	var result model.ActivityHeatmap
	if err := c.get(ctx, "/users/stats/heatmap", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
