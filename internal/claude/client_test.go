package claude

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientDefaults(t *testing.T) {
	tests := []struct {
		name            string
		apiKey          string
		model           string
		temperature     float64
		wantModel       string
		wantTemperature float64
		wantConfigured  bool
	}{
		{
			name:            "explicit values",
			apiKey:          "test-key",
			model:           "claude-test-model",
			temperature:     0.3,
			wantModel:       "claude-test-model",
			wantTemperature: 0.3,
			wantConfigured:  true,
		},
		{
			name:            "empty model and temperature fall back to defaults",
			apiKey:          "test-key",
			wantModel:       defaultModel,
			wantTemperature: defaultTemperature,
			wantConfigured:  true,
		},
		{
			name:            "missing key means unconfigured",
			wantModel:       defaultModel,
			wantTemperature: defaultTemperature,
			wantConfigured:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.apiKey, tt.model, tt.temperature)
			assert.Equal(t, tt.wantModel, c.model)
			assert.Equal(t, tt.wantTemperature, c.temperature)
			assert.Equal(t, tt.wantConfigured, c.IsConfigured())
		})
	}
}

func TestGenerate(t *testing.T) {
	var captured anthropicRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_123",
			"type": "message",
			"role": "assistant",
			"content": []map[string]string{
				{"type": "text", "text": "SUBJECT: Hi\nBODY: Hello there"},
			},
		})
	}))
	defer srv.Close()

	c := NewClient("test-key", "claude-test-model", 0.7)
	c.apiURL = srv.URL

	text, err := c.Generate(context.Background(), Request{
		System:      "You are the host",
		Prompt:      "Write a reply",
		MaxTokens:   1000,
		Temperature: 0.5,
	})
	require.NoError(t, err)
	assert.Equal(t, "SUBJECT: Hi\nBODY: Hello there", text)

	assert.Equal(t, "claude-test-model", captured.Model)
	assert.Equal(t, 1000, captured.MaxTokens)
	assert.Equal(t, 0.5, captured.Temperature)
	assert.Equal(t, "You are the host", captured.System)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
	assert.Equal(t, "Write a reply", captured.Messages[0].Content)
}

func TestGenerateRequestDefaults(t *testing.T) {
	var captured anthropicRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"type": "text", "text": "ok"}},
		})
	}))
	defer srv.Close()

	c := NewClient("test-key", "", 0.9)
	c.apiURL = srv.URL

	_, err := c.Generate(context.Background(), Request{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, defaultMaxTokens, captured.MaxTokens)
	assert.Equal(t, 0.9, captured.Temperature)
}

func TestGenerateAPIStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"type":"overloaded_error","message":"busy"}}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient("test-key", "", 0)
	c.apiURL = srv.URL

	_, err := c.Generate(context.Background(), Request{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (status 503)")
}

func TestGenerateAPIBodyError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"type": "invalid_request_error", "message": "bad prompt"},
		})
	}))
	defer srv.Close()

	c := NewClient("test-key", "", 0)
	c.apiURL = srv.URL

	_, err := c.Generate(context.Background(), Request{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_request_error")
}

func TestGenerateEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"content": []any{}})
	}))
	defer srv.Close()

	c := NewClient("test-key", "", 0)
	c.apiURL = srv.URL

	_, err := c.Generate(context.Background(), Request{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}
