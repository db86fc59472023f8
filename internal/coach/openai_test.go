package coach_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vytor/studybuddy/internal/coach"
)

func TestOpenAIClient_Complete(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer gsk_test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1710000000,
			"model": "llama-3.1-8b-instant",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "  Keep grinding! 🔥  "}}]
		}`))
	}))
	defer srv.Close()

	client := coach.NewOpenAIClient(coach.ClientConfig{APIKey: "gsk_test", BaseURL: srv.URL, Timeout: 5 * time.Second})
	out, err := client.Complete(context.Background(), coach.CompletionRequest{
		System:      "system",
		Prompt:      "prompt",
		Model:       "llama-3.1-8b-instant",
		Temperature: 0.9,
		MaxTokens:   100,
	})

	require.NoError(t, err)
	assert.Equal(t, "Keep grinding! 🔥", out)
	assert.Equal(t, "llama-3.1-8b-instant", body["model"])
	messages, ok := body["messages"].([]any)
	require.True(t, ok)
	assert.Len(t, messages, 2)
}

func TestOpenAIClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "invalid api key", "type": "invalid_request_error"}}`))
	}))
	defer srv.Close()

	client := coach.NewOpenAIClient(coach.ClientConfig{APIKey: "bad", BaseURL: srv.URL, Timeout: 5 * time.Second})
	_, err := client.Complete(context.Background(), coach.CompletionRequest{Model: "m", Prompt: "p"})

	assert.Error(t, err)
}

func TestOpenAIClient_EmptyAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "x", "object": "chat.completion", "created": 1, "model": "m", "choices": []}`))
	}))
	defer srv.Close()

	client := coach.NewOpenAIClient(coach.ClientConfig{APIKey: "k", BaseURL: srv.URL})
	_, err := client.Complete(context.Background(), coach.CompletionRequest{Model: "m", Prompt: "p"})

	assert.Error(t, err)
}
