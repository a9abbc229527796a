package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *Client {
	return &Client{
		KeyID:      "key_test",
		KeySecret:  "secret_test",
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestCreateOrderSendsAuthAndAmount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key_test", user)
		assert.Equal(t, "secret_test", pass)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, float64(3000), payload["amount"])
		assert.Equal(t, "INR", payload["currency"])
		assert.Equal(t, "order123", payload["receipt"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(GatewayOrder{
			ID:       "gw_1",
			Amount:   3000,
			Currency: "INR",
			Receipt:  "order123",
			Status:   "created",
		})
	}))
	defer server.Close()

	gatewayOrder, err := testClient(server.URL).CreateOrder(context.Background(), 3000, "order123")
	require.NoError(t, err)
	assert.Equal(t, "gw_1", gatewayOrder.ID)
	assert.Equal(t, int64(3000), gatewayOrder.Amount)
}

func TestCreateOrderRejectsNonPositiveAmount(t *testing.T) {
	_, err := testClient("http://unused").CreateOrder(context.Background(), 0, "order123")
	assert.Error(t, err)

	_, err = testClient("http://unused").CreateOrder(context.Background(), -100, "order123")
	assert.Error(t, err)
}

func TestCreateOrderFailsOnGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad auth"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := testClient(server.URL).CreateOrder(context.Background(), 3000, "order123")
	assert.Error(t, err)
}

func TestCreateOrderFailsOnMissingOrderID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"status": "created"})
	}))
	defer server.Close()

	_, err := testClient(server.URL).CreateOrder(context.Background(), 3000, "order123")
	assert.Error(t, err)
}

func TestVerifySignatureAcceptsValid(t *testing.T) {
	sig := Sign("gw_1", "pay_1", "secret_test")
	assert.True(t, VerifySignature("gw_1", "pay_1", sig, "secret_test"))
}

func TestVerifySignatureRejectsTampered(t *testing.T) {
	sig := Sign("gw_1", "pay_1", "secret_test")

	assert.False(t, VerifySignature("gw_1", "pay_2", sig, "secret_test"))
	assert.False(t, VerifySignature("gw_2", "pay_1", sig, "secret_test"))
	assert.False(t, VerifySignature("gw_1", "pay_1", sig, "other_secret"))
	assert.False(t, VerifySignature("gw_1", "pay_1", sig+"00", "secret_test"))
	assert.False(t, VerifySignature("gw_1", "pay_1", "", "secret_test"))
}
