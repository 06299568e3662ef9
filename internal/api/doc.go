// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the docchat backend REST API.
//
// All endpoints live under /api/v1 and require an established cookie
// session; the configured session cookie is attached to every request.
// The client reports failures as typed ClientError values and never
// retries: every failure is scoped to the single call that produced it.
//
// # Usage
//
//	client := api.NewClient(&api.ClientConfig{BaseURL: "https://docchat.example"})
//	page, err := client.DocumentsPage(ctx, 1, 10, api.OrderDescending)
//	if api.IsSessionExpired(err) {
//	    // surface the login screen; the engines never see auth state
//	}
package api
