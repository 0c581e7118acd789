// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

package pitch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bramblevc/pitch-engine/pkg/types"
)

func withClaudeServer(t *testing.T, handler http.HandlerFunc) *ClaudeBackend {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	old := claudeAPIURL
	claudeAPIURL = ts.URL
	t.Cleanup(func() { claudeAPIURL = old })

	return &ClaudeBackend{
		APIKey: "sk-ant-test",
		Client: ts.Client(),
		Config: types.GenerationConfig{MaxRetries: 1},
	}
}

func TestClaudeComplete(t *testing.T) {
	backend := withClaudeServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "sk-ant-test", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var req claudeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, defaultModel, req.Model)
		assert.Equal(t, 4000, req.MaxTokens)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "the prompt", req.Messages[0].Content)

		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": `{"ok": true}`},
			},
		})
	})

	text, err := backend.Complete(context.Background(), "the prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, text)
}

func TestClaudeCompleteSkipsNonTextBlocks(t *testing.T) {
	backend := withClaudeServer(t, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"type": "thinking", "text": "hmm"},
				{"type": "text", "text": "answer"},
			},
		})
	})

	text, err := backend.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "answer", text)
}

func TestClaudeCompleteHTTPError(t *testing.T) {
	backend := withClaudeServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": {"type": "authentication_error"}}`, http.StatusUnauthorized)
	})

	_, err := backend.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "authentication_error")
}

func TestClaudeCompleteEmptyContent(t *testing.T) {
	backend := withClaudeServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"content": []}`))
	})

	_, err := backend.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text content")
}

func TestClaudeCompleteModelOverride(t *testing.T) {
	backend := withClaudeServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req claudeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "claude-opus-4-1", req.Model)
		assert.Equal(t, 8000, req.MaxTokens)
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{{"type": "text", "text": "ok"}},
		})
	})
	backend.Config.Model = "claude-opus-4-1"
	backend.Config.MaxTokens = 8000

	_, err := backend.Complete(context.Background(), "prompt")
	require.NoError(t, err)
}
