// Package payment talks to the external crypto-payment approval service.
// The provider exposes a plain JSON-over-HTTP endpoint; a 2xx response
// confirms the fee was collected.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"openapp-ads/internal/config/configs"
)

// ErrNotConfigured is returned when no payment service address is set.
// Campaign creation is impossible in that state on purpose.
var ErrNotConfigured = errors.New("payment bridge not configured")

// Client implements port.PaymentBridge over HTTP.
type Client struct {
	addr   string
	apiKey string
	http   *http.Client
}

// NewClient creates the bridge from configuration.
func NewClient(cfg configs.Payment) *Client {
	return &Client{
		addr:   strings.TrimRight(cfg.Addr, "/"),
		apiKey: cfg.APIKey,
		http:   &http.Client{Timeout: cfg.Timeout},
	}
}

type collectFeeReq struct {
	UserID string `json:"user_id"`
	Amount string `json:"amount"`
	Memo   string `json:"memo"`
}

// CollectFee asks the provider to charge the owner the given amount. Any
// non-2xx response or transport failure means the payment is not
// confirmed and the caller must not proceed.
func (c *Client) CollectFee(ctx context.Context, ownerID string, amount decimal.Decimal, memo string) error {
	if c.addr == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(collectFeeReq{UserID: ownerID, Amount: amount.String(), Memo: memo})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.addr+"/payments/collect", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Key "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("payment service returned %s", resp.Status)
	}
	return nil
}
