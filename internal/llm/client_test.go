package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	cfg.Model = "test-model"
	cfg.MaxRetries = 0
	return cfg
}

func TestGenerate_SendsChatMessages(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(chatResponse{
			Model:   "test-model",
			Message: Message{Role: "assistant", Content: "hello there"},
		})
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), nil)
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskStorySession,
		SystemPrompt: "you are a guide",
		History: []Message{
			{Role: "user", Content: "earlier question"},
			{Role: "assistant", Content: "earlier answer"},
		},
		UserPrompt: "next question",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello there", resp.Text)
	assert.Equal(t, "test-model", resp.Model)

	require.Len(t, got.Messages, 4)
	assert.Equal(t, Message{Role: "system", Content: "you are a guide"}, got.Messages[0])
	assert.Equal(t, "earlier question", got.Messages[1].Content)
	assert.Equal(t, "earlier answer", got.Messages[2].Content)
	assert.Equal(t, Message{Role: "user", Content: "next question"}, got.Messages[3])
	assert.False(t, got.Stream)
}

func TestGenerate_OmitsEmptySystemPrompt(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(chatResponse{Message: Message{Role: "assistant", Content: "ok"}})
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskImport,
		UserPrompt: "extract this",
	})
	require.NoError(t, err)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
}

func TestGenerate_UsesTaskTemperature(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(chatResponse{Message: Message{Role: "assistant", Content: "ok"}})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Tasks[TaskImport] = TaskConfig{Temperature: 0.2, MaxTokens: 2048}

	client := NewOllamaClient(cfg, nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskImport, UserPrompt: "x"})
	require.NoError(t, err)
	assert.InDelta(t, 0.2, got.Options.Temperature, 0.001)
	assert.Equal(t, 2048, got.Options.NumPredict)

	override := 0.9
	_, err = client.Generate(context.Background(), GenerateRequest{
		Task:        TaskImport,
		UserPrompt:  "x",
		Temperature: &override,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.9, got.Options.Temperature, 0.001)
}

func TestGenerate_RetriesThenSucceeds(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "overloaded", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(chatResponse{Message: Message{Role: "assistant", Content: "recovered"}})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1

	client := NewOllamaClient(cfg, nil)
	resp, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAsset, UserPrompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, "recovered", resp.Text)
	assert.Equal(t, 2, calls)
}

func TestGenerate_RetryExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1

	client := NewOllamaClient(cfg, nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAsset, UserPrompt: "x"})
	require.ErrorIs(t, err, ErrRetryExhausted)
}

func TestGenerate_UnavailableServer(t *testing.T) {
	// Port from a closed listener, so connections are refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	client := NewOllamaClient(testConfig(endpoint), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskBrandscript, UserPrompt: "x"})
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestGenerate_ReportsToObserver(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatResponse{Message: Message{Role: "assistant", Content: "ok"}})
	}))
	defer srv.Close()

	var events []CallEvent
	obs := observerFunc(func(e CallEvent) { events = append(events, e) })

	client := NewOllamaClient(testConfig(srv.URL), obs)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskRefine, UserPrompt: "x"})
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, TaskRefine, events[0].Task)
	assert.True(t, events[0].Success)
}

func TestAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	client := NewOllamaClient(testConfig(srv.URL), nil)
	assert.True(t, client.Available(context.Background()))

	srv.Close()
	assert.False(t, client.Available(context.Background()))
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }
