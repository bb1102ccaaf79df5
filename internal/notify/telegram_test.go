package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramClient_OrderCreated(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotPath string
		var gotBody sendMessageRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewTelegramClient("test-token", "-100123", WithAPIBase(server.URL))

		err := client.OrderCreated(context.Background(), sampleOrder())
		require.NoError(t, err)

		assert.Equal(t, "/bottest-token/sendMessage", gotPath)
		assert.Equal(t, "-100123", gotBody.ChatID)
		assert.Equal(t, "Markdown", gotBody.ParseMode)
		assert.Contains(t, gotBody.Text, "ORD-20250615-0001")
	})

	t.Run("RetriesServerErrors", func(t *testing.T) {
		var calls int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewTelegramClient("test-token", "-100123", WithAPIBase(server.URL))

		err := client.OrderCreated(context.Background(), sampleOrder())
		require.NoError(t, err)
		assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
	})

	t.Run("ClientErrorIsNotRetried", func(t *testing.T) {
		var calls int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := NewTelegramClient("bad-token", "-100123", WithAPIBase(server.URL))

		err := client.OrderCreated(context.Background(), sampleOrder())
		assert.Error(t, err)
		assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	})
}
