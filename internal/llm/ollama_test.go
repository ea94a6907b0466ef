package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "modeldeck/backend/internal/errors"
	"modeldeck/backend/internal/model"
)

// The provider is tested against a httptest server standing in for the
// real Ollama API, so no network access is needed and the exact chunked
// bodies can be scripted per test.

func TestOllamaProvider_Status(t *testing.T) {
	t.Run("running with models", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/tags", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"models":[{"name":"llama3:8b"},{"size":123},{"name":"mistral"}]}`))
		}))
		defer server.Close()

		status := NewOllamaProvider(server.URL).Status(context.Background())
		assert.True(t, status.Running)
		// The entry without a name is skipped, not fatal.
		assert.Equal(t, []string{"llama3:8b", "mistral"}, status.Models)
	})

	t.Run("running with garbled body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json at all`))
		}))
		defer server.Close()

		status := NewOllamaProvider(server.URL).Status(context.Background())
		assert.True(t, status.Running)
		assert.Empty(t, status.Models)
	})

	t.Run("not running", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // connection refused from here on

		status := NewOllamaProvider(server.URL).Status(context.Background())
		assert.False(t, status.Running)
		assert.Empty(t, status.Models)
	})
}

func TestOllamaProvider_PullStream(t *testing.T) {
	t.Run("forwards chunks and skips malformed lines", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/pull", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)
			_, _ = w.Write([]byte(
				`{"status":"pulling manifest"}` + "\n" +
					`{"status":"downloading","total":1000,"completed":250}` + "\n" +
					`this line is not json` + "\n" +
					`{"status":"success"}` + "\n"))
		}))
		defer server.Close()

		ch := make(chan PullEvent)
		var events []PullEvent
		done := make(chan error, 1)
		go func() {
			done <- NewOllamaProvider(server.URL).PullStream(context.Background(), "llama3", ch)
		}()
		for ev := range ch {
			events = append(events, ev)
		}
		require.NoError(t, <-done)

		require.Len(t, events, 3)
		assert.Equal(t, "pulling manifest", events[0].Status)
		assert.Equal(t, int64(250), events[1].Completed)
		assert.Equal(t, int64(1000), events[1].Total)
		assert.Equal(t, "success", events[2].Status)
	})

	t.Run("connect failure returns ErrUnreachable and closes the channel", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		ch := make(chan PullEvent)
		done := make(chan error, 1)
		go func() {
			done <- NewOllamaProvider(server.URL).PullStream(context.Background(), "llama3", ch)
		}()
		for range ch {
			t.Fatal("no events expected on connect failure")
		}
		assert.True(t, errors.Is(<-done, apperrors.ErrUnreachable))
	})

	t.Run("non-200 response is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		ch := make(chan PullEvent)
		done := make(chan error, 1)
		go func() {
			done <- NewOllamaProvider(server.URL).PullStream(context.Background(), "llama3", ch)
		}()
		for range ch {
		}
		assert.Error(t, <-done)
	})
}

func TestOllamaProvider_GenerateStream(t *testing.T) {
	t.Run("relays tokens and the done chunk in order", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/generate", r.URL.Path)
			_, _ = w.Write([]byte(
				`{"response":"Hi","done":false}` + "\n" +
					`{{{bad json` + "\n" +
					`{"response":"","done":false}` + "\n" +
					`{"response":" there","done":false}` + "\n" +
					`{"response":"","done":true}` + "\n"))
		}))
		defer server.Close()

		ch := make(chan model.StreamResponse)
		done := make(chan error, 1)
		go func() {
			done <- NewOllamaProvider(server.URL).GenerateStream(context.Background(),
				&GenerateRequest{Model: "llama3", Prompt: "hello"}, ch)
		}()
		var chunks []model.StreamResponse
		for chunk := range ch {
			chunks = append(chunks, chunk)
		}
		require.NoError(t, <-done)

		// Malformed lines and empty keep-alive chunks are both dropped.
		require.Len(t, chunks, 3)
		assert.Equal(t, "Hi", chunks[0].Content)
		assert.Equal(t, " there", chunks[1].Content)
		assert.True(t, chunks[2].Done)
	})

	t.Run("connect failure returns ErrUnreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		ch := make(chan model.StreamResponse)
		done := make(chan error, 1)
		go func() {
			done <- NewOllamaProvider(server.URL).GenerateStream(context.Background(),
				&GenerateRequest{Model: "llama3", Prompt: "hello"}, ch)
		}()
		for range ch {
			t.Fatal("no chunks expected on connect failure")
		}
		assert.True(t, errors.Is(<-done, apperrors.ErrUnreachable))
	})
}

func TestOllamaProvider_DeleteModel(t *testing.T) {
	var capturedMethod, capturedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedMethod = r.Method
		capturedPath = r.URL.Path
		if r.URL.Path == "/api/delete" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL)
	err := provider.DeleteModel(context.Background(), "test-model")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, capturedMethod)
	assert.Equal(t, "/api/delete", capturedPath)
}

func TestOllamaProvider_DeleteModel_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	err := NewOllamaProvider(server.URL).DeleteModel(context.Background(), "ghost")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
