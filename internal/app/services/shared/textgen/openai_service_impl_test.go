package textgen

import (
	"context"
	"crooly-service/internal/app/config"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(baseURL, apiKey string) *openAIService {
	return NewOpenAIService(config.AppOpenAI{
		APIKey:               apiKey,
		BaseURL:              baseURL,
		Model:                "gpt-4o-mini",
		Temperature:          0.7,
		MaxTokens:            400,
		HTTPTimeoutInSeconds: 5,
	}, zap.NewNop()).(*openAIService)
}

func TestOpenAIService_GenerateText(t *testing.T) {
	t.Run("Sends Single User Message And Trims Content", func(t *testing.T) {
		var captured chatCompletionRequest
		var authorization string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			authorization = r.Header.Get("Authorization")
			body, _ := io.ReadAll(r.Body)
			assert.NoError(t, json.Unmarshal(body, &captured))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Párrafo uno.\n\nPárrafo dos.  "}}]}`))
		}))
		defer server.Close()

		service := newTestService(server.URL+"/v1/", "sk-test")
		text, err := service.GenerateText(context.Background(), "prompt de prueba")

		require.NoError(t, err)
		assert.Equal(t, "Párrafo uno.\n\nPárrafo dos.", text)
		assert.Equal(t, "Bearer sk-test", authorization)
		assert.Equal(t, "gpt-4o-mini", captured.Model)
		assert.Equal(t, 0.7, captured.Temperature)
		assert.Equal(t, 400, captured.MaxTokens)
		require.Len(t, captured.Messages, 1)
		assert.Equal(t, "user", captured.Messages[0].Role)
		assert.Equal(t, "prompt de prueba", captured.Messages[0].Content)
	})

	t.Run("Missing Content Yields Empty Text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		text, err := newTestService(server.URL, "sk-test").GenerateText(context.Background(), "prompt")

		require.NoError(t, err)
		assert.Equal(t, "", text)
	})

	t.Run("Non Success Status Is An Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"rate limited"}}`))
		}))
		defer server.Close()

		text, err := newTestService(server.URL, "sk-test").GenerateText(context.Background(), "prompt")

		assert.Error(t, err)
		assert.Empty(t, text)
	})

	t.Run("Unconfigured Service Makes No Call", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		service := newTestService(server.URL, "  ")
		assert.False(t, service.IsConfigured())

		_, err := service.GenerateText(context.Background(), "prompt")

		assert.ErrorIs(t, err, ErrNotConfigured)
		assert.False(t, called)
	})

	t.Run("Cancelled Context Is An Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[{"message":{"content":"texto"}}]}`))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newTestService(server.URL, "sk-test").GenerateText(ctx, "prompt")

		assert.Error(t, err)
	})
}
