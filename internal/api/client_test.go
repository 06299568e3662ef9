// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the docchat backend REST API.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient wires a client against an httptest server.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&ClientConfig{
		BaseURL:       srv.URL,
		SessionCookie: "test-session",
	})
}

// =============================================================================
// REQUEST PLUMBING TESTS
// =============================================================================

func TestClient_AttachesSessionAndRequestID(t *testing.T) {
	var gotCookie, gotRequestID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("session_id"); err == nil {
			gotCookie = c.Value
		}
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode(map[string]interface{}{"user_id": 1, "session_id": "abc"})
	})

	_, err := client.CheckSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test-session", gotCookie)
	assert.NotEmpty(t, gotRequestID)

	client.SetSessionCookie("rotated-session")
	_, err = client.CheckSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "rotated-session", gotCookie)
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(&ClientConfig{BaseURL: "http://localhost:8000"})
	cfg := client.GetConfig()
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 120*time.Second, cfg.SendTimeout)
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "401 maps to session expired",
			status: http.StatusUnauthorized,
			check: func(t *testing.T, err error) {
				assert.True(t, IsSessionExpired(err))
			},
		},
		{
			name:   "404 maps to not found",
			status: http.StatusNotFound,
			check: func(t *testing.T, err error) {
				assert.True(t, IsNotFound(err))
			},
		},
		{
			name:   "500 with detail surfaces detail",
			status: http.StatusInternalServerError,
			body:   `{"detail": "database unavailable"}`,
			check: func(t *testing.T, err error) {
				assert.EqualError(t, err, "database unavailable")
			},
		},
		{
			name:   "422 is a generic failure, no retry semantics",
			status: http.StatusUnprocessableEntity,
			check: func(t *testing.T, err error) {
				var clientErr *ClientError
				require.ErrorAs(t, err, &clientErr)
				assert.Equal(t, ErrTypeServer, clientErr.Type)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				if tc.body != "" {
					w.Write([]byte(tc.body))
				}
			})
			_, err := client.CheckSession(context.Background())
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

// =============================================================================
// DOCUMENT ENDPOINT TESTS
// =============================================================================

func TestClient_DocumentsPage_EndpointPerOrder(t *testing.T) {
	var gotPath, gotPage, gotPageSize string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotPage = r.URL.Query().Get("page")
		gotPageSize = r.URL.Query().Get("page_size")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"items": []interface{}{}, "total": 0, "page": 1, "page_size": 10, "total_pages": 1,
		})
	})

	_, err := client.DocumentsPage(context.Background(), 2, 10, OrderDescending)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/documents/paginated", gotPath)
	assert.Equal(t, "2", gotPage)
	assert.Equal(t, "10", gotPageSize)

	_, err = client.DocumentsPage(context.Background(), 1, 10, OrderAscending)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/documents/paginated/ascending", gotPath)
}

func TestClient_SearchDocumentsByTags_JoinsCommaSeparated(t *testing.T) {
	var gotTags string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotTags = r.URL.Query().Get("tags")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"documents": []interface{}{}, "query": gotTags, "total": 0,
		})
	})

	res, err := client.SearchDocumentsByTags(context.Background(), []string{"go", "ai"})
	require.NoError(t, err)
	assert.Equal(t, "go,ai", gotTags)
	assert.Equal(t, 0, res.Total)
}

func TestClient_SearchDocumentsByFilename(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/documents/search/filename", r.URL.Path)
		assert.Equal(t, "report", r.URL.Query().Get("query"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"documents": []map[string]interface{}{{"document_id": 3, "original_filename": "report.pdf", "tags": []interface{}{}}},
			"query":     "report",
			"total":     1,
		})
	})

	res, err := client.SearchDocumentsByFilename(context.Background(), "report")
	require.NoError(t, err)
	require.Len(t, res.Documents, 1)
	assert.Equal(t, 3, res.Documents[0].DocumentID)
}

// =============================================================================
// CONVERSATION ENDPOINT TESTS
// =============================================================================

func TestClient_SendMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/aichat/conversations/12/messages", r.URL.Path)

		var body struct {
			Content string `json:"content"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hello", body.Content)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"user_message":      map[string]interface{}{"message_id": 101, "role": "user", "content": "hello"},
			"assistant_message": map[string]interface{}{"message_id": 102, "role": "assistant", "content": "hi"},
		})
	})

	res, err := client.SendMessage(context.Background(), 12, "hello")
	require.NoError(t, err)
	assert.EqualValues(t, 101, res.UserMessage.MessageID)
	assert.EqualValues(t, 102, res.AssistantMessage.MessageID)
}

func TestClient_RenameConversation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/aichat/conversations/5", r.URL.Path)

		var body struct {
			Title string `json:"title"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"conversation_id": 5, "title": body.Title,
		})
	})

	item, err := client.RenameConversation(context.Background(), 5, "New")
	require.NoError(t, err)
	assert.Equal(t, 5, item.ConversationID)
	assert.Equal(t, "New", item.Title)
}

func TestClient_Messages_OrderPreserved(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"message_id": 1, "role": "user", "content": "q"},
			{"message_id": 2, "role": "assistant", "content": "a"},
		})
	})

	msgs, err := client.Messages(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.EqualValues(t, 1, msgs[0].MessageID)
	assert.EqualValues(t, 2, msgs[1].MessageID)
}
