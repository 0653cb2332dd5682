package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yoga-front/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Timeout(t *testing.T) {
	t.Run("call slower than the configured timeout fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, 50*time.Millisecond, nil)
		err := client.do(context.Background(), http.MethodGet, "/api/session", nil, nil)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrBackendUnavailable))
	})

	t.Run("call faster than the configured timeout succeeds", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(50 * time.Millisecond)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, 1*time.Second, nil)
		err := client.do(context.Background(), http.MethodGet, "/api/session", nil, nil)

		assert.NoError(t, err)
	})

	t.Run("a generous configured timeout is honored", func(t *testing.T) {
		if testing.Short() {
			t.Skip("multi-second round trip")
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(3200 * time.Millisecond)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second, nil)
		err := client.do(context.Background(), http.MethodGet, "/api/session", nil, nil)

		assert.NoError(t, err)
	})
}
