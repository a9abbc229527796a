// Package gateway talks to the external payment processor: it creates
// gateway orders for the checkout widget and verifies the signed callback
// the widget hands back after payment.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// GatewayOrder is the processor's transaction handle, distinct from the
// application's own order record.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type Client struct {
	KeyID      string
	KeySecret  string
	BaseURL    string
	HTTPClient *http.Client
}

// NewClientFromEnv reads GATEWAY_KEY_ID, GATEWAY_KEY_SECRET and
// GATEWAY_BASE_URL. The key id is also what the frontend embeds to open
// the checkout widget.
func NewClientFromEnv() *Client {
	return &Client{
		KeyID:      os.Getenv("GATEWAY_KEY_ID"),
		KeySecret:  os.Getenv("GATEWAY_KEY_SECRET"),
		BaseURL:    os.Getenv("GATEWAY_BASE_URL"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// CreateOrder registers a payment of amountMinor (rupees × 100) with the
// processor and returns its order descriptor.
func (c *Client) CreateOrder(ctx context.Context, amountMinor int64, receipt string) (*GatewayOrder, error) {
	if amountMinor <= 0 {
		return nil, fmt.Errorf("gateway: amount must be positive, got %d", amountMinor)
	}

	payload := map[string]interface{}{
		"amount":   amountMinor,
		"currency": "INR",
		"receipt":  receipt,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.KeyID, c.KeySecret)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("gateway: order creation failed with status %d", resp.StatusCode)
	}

	var gatewayOrder GatewayOrder
	if err := json.NewDecoder(resp.Body).Decode(&gatewayOrder); err != nil {
		return nil, err
	}
	if gatewayOrder.ID == "" {
		return nil, fmt.Errorf("gateway: response missing order id")
	}

	return &gatewayOrder, nil
}
