package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"subscription-sync/core/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrieveSubscription(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/subscriptions/sub_123", r.URL.Path)
			assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"sub_123","status":"active","current_period_end":1735689600}`))
		}))
		defer srv.Close()

		client := gateway.NewClient(gateway.Config{BaseURL: srv.URL, SecretKey: "sk_test"})

		sub, err := client.RetrieveSubscription(context.Background(), "sub_123")
		require.NoError(t, err)
		assert.Equal(t, "active", sub.Status)
		assert.Equal(t, int64(1735689600), sub.CurrentPeriodEnd)
	})

	t.Run("Not Found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := gateway.NewClient(gateway.Config{BaseURL: srv.URL, SecretKey: "sk_test"})

		_, err := client.RetrieveSubscription(context.Background(), "sub_missing")
		assert.ErrorIs(t, err, gateway.ErrNotFound)
	})

	t.Run("Server Error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("boom"))
		}))
		defer srv.Close()

		client := gateway.NewClient(gateway.Config{BaseURL: srv.URL, SecretKey: "sk_test"})

		_, err := client.RetrieveSubscription(context.Background(), "sub_123")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("Empty Profile ID", func(t *testing.T) {
		client := gateway.NewClient(gateway.Config{BaseURL: "http://localhost:1", SecretKey: "sk_test"})
		_, err := client.RetrieveSubscription(context.Background(), "")
		assert.Error(t, err)
	})
}
