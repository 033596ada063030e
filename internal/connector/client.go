// Package connector implements the outbound HTTP client towards the local
// connector: peer-identity messages during account setup and settlement
// notifications from the incoming observer.
package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/interledger-go/iroha-settlement/internal/model"
	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

// Client posts to the connector with the retry behavior mandated by the
// settlement-engine RFC: exponential backoff starting at 500ms, capped at 6s
// per interval and 15 minutes overall, multiplier 1.5, randomization 0.5.
type Client struct {
	baseURL    *url.URL
	http       *http.Client
	logger     *zap.Logger
	newBackOff func() backoff.BackOff
}

// NewClient constructs a connector client for the given base URL.
func NewClient(baseURL string, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse connector url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("connector url %q is missing scheme or host", baseURL)
	}

	return &Client{
		baseURL:    base,
		http:       &http.Client{Timeout: defaultTimeout},
		logger:     logger.Named("connector"),
		newBackOff: newSettlementBackOff,
	}, nil
}

func newSettlementBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 6 * time.Second
	b.MaxElapsedTime = 15 * time.Minute
	b.Multiplier = 1.5
	b.RandomizationFactor = 0.5
	return b
}

// SendPaymentDetails ships our ledger identity to the peer through the
// connector's message channel and returns the peer's identity from the
// response.
func (c *Client) SendPaymentDetails(ctx context.Context, sid model.SettlementAccountID, details model.PaymentDetailsMessage) (model.PaymentDetailsMessage, error) {
	body, err := json.Marshal(details)
	if err != nil {
		return model.PaymentDetailsMessage{}, fmt.Errorf("marshal payment details: %w", err)
	}

	c.logger.Info("requesting peer payment details",
		zap.String("settlement_account_id", string(sid)),
		zap.ByteString("message", body),
	)

	// The message channel is opaque bytes end to end.
	headers := map[string]string{"Content-Type": "application/octet-stream"}
	respBody, err := c.post(ctx, c.endpoint("accounts", string(sid), "messages"), headers, body)
	if err != nil {
		return model.PaymentDetailsMessage{}, fmt.Errorf("send payment details: %w", err)
	}

	var response model.PaymentDetailsMessage
	if err := json.Unmarshal(respBody, &response); err != nil {
		return model.PaymentDetailsMessage{}, fmt.Errorf("parse payment details response: %w", err)
	}
	if response.IrohaAccountID == "" {
		return model.PaymentDetailsMessage{}, fmt.Errorf("payment details response %q carries no account id", respBody)
	}
	return response, nil
}

// NotifySettlement informs the connector that a peer settled the given
// quantity. A single fresh idempotency key covers all retries of one
// notification, so the connector credits the settlement at most once.
func (c *Client) NotifySettlement(ctx context.Context, sid model.SettlementAccountID, quantity model.SettlementQuantity) error {
	body, err := json.Marshal(quantity)
	if err != nil {
		return fmt.Errorf("marshal settlement quantity: %w", err)
	}

	idempotencyKey := uuid.NewString()
	c.logger.Info("notifying connector of incoming settlement",
		zap.String("settlement_account_id", string(sid)),
		zap.String("idempotency_key", idempotencyKey),
		zap.ByteString("quantity", body),
	)

	headers := map[string]string{
		"Content-Type":    "application/json",
		"Idempotency-Key": idempotencyKey,
	}
	if _, err := c.post(ctx, c.endpoint("accounts", string(sid), "settlements"), headers, body); err != nil {
		return fmt.Errorf("notify settlement: %w", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, endpoint *url.URL, headers map[string]string, body []byte) ([]byte, error) {
	var respBody []byte

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("build request: %w", err))
		}
		for name, value := range headers {
			req.Header.Set(name, value)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("post %s: %w", endpoint.Path, err)
		}
		defer resp.Body.Close()

		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read response from %s: %w", endpoint.Path, err)
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return nil
		case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("post %s: status %d", endpoint.Path, resp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("post %s: status %d", endpoint.Path, resp.StatusCode))
		}
	}

	notify := func(err error, next time.Duration) {
		c.logger.Warn("connector request failed, backing off",
			zap.Error(err),
			zap.Duration("next_attempt_in", next),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(c.newBackOff(), ctx), notify); err != nil {
		return nil, err
	}
	return respBody, nil
}

func (c *Client) endpoint(parts ...string) *url.URL {
	endpoint := *c.baseURL
	for _, part := range parts {
		endpoint.Path += "/" + part
	}
	return &endpoint
}
