package webhook_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
	"todoList/internal/logger"
	"todoList/internal/webhook"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Init(true); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestNotifier_Notify(t *testing.T) {
	todoID := uuid.New()

	t.Run("delivers id and title as JSON", func(t *testing.T) {
		var received map[string]any

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &received))

			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		notifier := webhook.NewNotifier(server.URL, 5*time.Second)

		err := notifier.Notify(context.Background(), todoID, "Buy milk")

		require.NoError(t, err)
		assert.Equal(t, todoID.String(), received["id"])
		assert.Equal(t, "Buy milk", received["title"])
	})

	t.Run("non-2xx response is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		notifier := webhook.NewNotifier(server.URL, 5*time.Second)

		err := notifier.Notify(context.Background(), todoID, "Buy milk")

		assert.Error(t, err)
	})

	t.Run("unreachable endpoint is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		notifier := webhook.NewNotifier(server.URL, 2*time.Second)

		err := notifier.Notify(context.Background(), todoID, "Buy milk")

		assert.Error(t, err)
	})

	t.Run("missing URL skips delivery without error", func(t *testing.T) {
		notifier := webhook.NewNotifier("", 5*time.Second)

		err := notifier.Notify(context.Background(), todoID, "Buy milk")

		assert.NoError(t, err)
	})

	t.Run("cancelled context stops the call", func(t *testing.T) {
		started := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Тело нужно дочитать до EOF: иначе сервер не начнёт фоновое
			// чтение соединения и не заметит отмену запроса клиентом.
			_, _ = io.Copy(io.Discard, r.Body)
			close(started)
			<-r.Context().Done()
		}))
		defer server.Close()

		notifier := webhook.NewNotifier(server.URL, 30*time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			<-started
			cancel()
		}()

		err := notifier.Notify(ctx, todoID, "Buy milk")

		assert.Error(t, err)
	})
}
