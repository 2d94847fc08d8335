package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/inkwell-market/inkwell/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

// Client talks to the external card processor. Every mutating call carries
// an idempotency key so a retried request cannot double-charge.
type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(url string, client clients.HTTPClientI) *Client {
	return &Client{
		url:    url,
		client: client,
	}
}

type chargeRequest struct {
	UserID int    `json:"user_id"`
	Amount string `json:"amount"`
}

type refundRequest struct {
	RemoteID string `json:"remote_id"`
	Amount   string `json:"amount"`
}

type payoutRequest struct {
	UserID int    `json:"user_id"`
	Amount string `json:"amount"`
}

type processorResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Charge authorizes and captures the amount against the user's stored card.
// Returns the processor's transaction id on approval.
func (c *Client) Charge(ctx context.Context, userID int, amount decimal.Decimal, idempotencyKey string) (string, error) {
	body := chargeRequest{UserID: userID, Amount: amount.StringFixed(2)}
	return c.post(ctx, c.url+"/api/charges", body, idempotencyKey)
}

// Refund sends the amount back to the card behind the original transaction.
func (c *Client) Refund(ctx context.Context, remoteID string, amount decimal.Decimal, idempotencyKey string) (string, error) {
	body := refundRequest{RemoteID: remoteID, Amount: amount.StringFixed(2)}
	return c.post(ctx, c.url+"/api/refunds", body, idempotencyKey)
}

// Payout initiates a transfer to the user's registered bank account. The
// returned id identifies the transfer in the processor's webhook once it
// settles or bounces.
func (c *Client) Payout(ctx context.Context, userID int, amount decimal.Decimal, idempotencyKey string) (string, error) {
	body := payoutRequest{UserID: userID, Amount: amount.StringFixed(2)}
	return c.post(ctx, c.url+"/api/payouts", body, idempotencyKey)
}

func (c *Client) post(ctx context.Context, url string, body any, idempotencyKey string) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode processor request: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		remoteID, retryable, err := c.attempt(ctx, url, payload, idempotencyKey)
		if err == nil {
			return remoteID, nil
		}
		lastErr = err
		if !retryable {
			return "", err
		}
		if attempt < maxRetries {
			zap.L().Warn("processor call failed, retrying",
				zap.String("url", url),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			time.Sleep(retryInterval * time.Duration(attempt))
		}
	}
	return "", fmt.Errorf("processor call failed after %d retries: %w", maxRetries, lastErr)
}

func (c *Client) attempt(ctx context.Context, url string, payload []byte, idempotencyKey string) (remoteID string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", idempotencyKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", true, err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			zap.L().Warn("failed to close processor response body", zap.Error(closeErr))
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, err
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		var parsed processorResponse
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			return "", false, fmt.Errorf("failed to parse processor response: %w", err)
		}
		if parsed.Status != "approved" {
			return "", false, fmt.Errorf("processor declined: %s", parsed.Message)
		}
		return parsed.ID, false, nil
	case http.StatusTooManyRequests, http.StatusServiceUnavailable, http.StatusBadGateway:
		return "", true, fmt.Errorf("processor unavailable: status %d", resp.StatusCode)
	default:
		return "", false, fmt.Errorf("processor rejected the request: status %d: %s", resp.StatusCode, string(respBody))
	}
}
