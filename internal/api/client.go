// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the docchat backend REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the docchat API client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeConnection
	ErrTypeTimeout
	ErrTypeSessionExpired
	ErrTypeNotFound
	ErrTypeInvalidResponse
	ErrTypeServer
)

// Sentinel errors for easy checking.
var (
	ErrTimeout        = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrSessionExpired = &ClientError{Type: ErrTypeSessionExpired, Message: "session expired or missing"}
	ErrNotFound       = &ClientError{Type: ErrTypeNotFound, Message: "resource not found"}
)

// IsSessionExpired checks if an error indicates a missing or expired session.
func IsSessionExpired(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeSessionExpired
	}
	return errors.Is(err, ErrSessionExpired)
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeNotFound
	}
	return errors.Is(err, ErrNotFound)
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeTimeout
	}
	return errors.Is(err, ErrTimeout)
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the docchat API client.
type ClientConfig struct {
	// BaseURL is the backend origin (default: http://127.0.0.1:8000)
	BaseURL string

	// SessionCookie is the value of the backend session cookie. The
	// backend sets it during browser login; the TUI carries it verbatim.
	SessionCookie string

	// SessionCookieName is the cookie name (default: "session_id")
	SessionCookieName string

	// Timeout for requests (default: 30s). Message sends wait on the
	// assistant's reply, so they use SendTimeout instead.
	Timeout time.Duration

	// SendTimeout for message sends (default: 120s)
	SendTimeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:           "http://127.0.0.1:8000",
		SessionCookieName: "session_id",
		Timeout:           30 * time.Second,
		SendTimeout:       120 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the docchat backend.
//
// The Client is safe for concurrent use, although the TUI only ever calls
// it from Bubble Tea command closures.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	sendClient *http.Client
}

// NewClient creates a new docchat API client.
func NewClient(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	// Fill in defaults for any zero values
	if config.BaseURL == "" {
		config.BaseURL = "http://127.0.0.1:8000"
	}
	if config.SessionCookieName == "" {
		config.SessionCookieName = "session_id"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.SendTimeout == 0 {
		config.SendTimeout = 120 * time.Second
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		sendClient: &http.Client{Timeout: config.SendTimeout},
	}
}

// GetConfig returns the client configuration.
func (c *Client) GetConfig() *ClientConfig {
	return c.config
}

// SetSessionCookie updates the session cookie value.
func (c *Client) SetSessionCookie(value string) {
	c.config.SessionCookie = value
}

// =============================================================================
// REQUEST HELPERS
// =============================================================================

// apiPrefix is the common path prefix of every backend endpoint.
const apiPrefix = "/api/v1"

// get issues a GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, c.httpClient, http.MethodGet, path, query, nil, out)
}

// post issues a POST request with a JSON body and decodes the response.
func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, c.httpClient, http.MethodPost, path, nil, body, out)
}

// patch issues a PATCH request with a JSON body and decodes the response.
func (c *Client) patch(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, c.httpClient, http.MethodPatch, path, nil, body, out)
}

// delete issues a DELETE request and decodes the response.
func (c *Client) delete(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, c.httpClient, http.MethodDelete, path, nil, nil, out)
}

// do builds, sends, and decodes one request. All error mapping lives here
// so every endpoint reports the same taxonomy.
func (c *Client) do(ctx context.Context, hc *http.Client, method, path string, query url.Values, body interface{}, out interface{}) error {
	target := c.config.BaseURL + apiPrefix + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.config.SessionCookie != "" {
		req.AddCookie(&http.Cookie{Name: c.config.SessionCookieName, Value: c.config.SessionCookie})
	}

	resp, err := hc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}
		return &ClientError{Type: ErrTypeConnection, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		drain(resp.Body)
		return ErrSessionExpired
	case resp.StatusCode == http.StatusNotFound:
		drain(resp.Body)
		return ErrNotFound
	case resp.StatusCode >= 400:
		// 4xx and 5xx are not distinguished beyond auth; both surface as
		// one generic failure with no automatic retry.
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Detail != "" {
			return &ClientError{Type: ErrTypeServer, Message: apiErr.Detail}
		}
		return &ClientError{Type: ErrTypeServer, Message: method + " " + path + " failed: " + resp.Status}
	}

	if out == nil {
		drain(resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	return nil
}

// apiError is the backend's error body shape.
type apiError struct {
	Detail string `json:"detail"`
}

// drain consumes a response body so the connection can be reused.
func drain(r io.Reader) {
	io.Copy(io.Discard, r)
}
