package scheduler

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// SignatureHeader carries the HMAC of the callback body. Webhook handlers
// recompute it with the shared secret before trusting the payload.
const SignatureHeader = "X-Callback-Signature"

const maxResponseSize = 64 * 1024

// Client asks the external scheduler service to call one of our webhooks
// back after a delay. The callback body and its HMAC signature are fixed at
// scheduling time; handlers re-validate entity state on arrival.
type Client struct {
	baseURL         string
	token           string
	callbackBaseURL string
	secret          []byte
	httpClient      *http.Client
	logger          *zap.Logger
}

// Config holds scheduler client settings
type Config struct {
	BaseURL         string
	Token           string
	CallbackBaseURL string
	CallbackSecret  string
	Timeout         time.Duration
}

// NewClient creates a scheduler client
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		token:           cfg.Token,
		callbackBaseURL: strings.TrimRight(cfg.CallbackBaseURL, "/"),
		secret:          []byte(cfg.CallbackSecret),
		httpClient:      &http.Client{Timeout: timeout},
		logger:          logger.Named("scheduler"),
	}
}

type scheduleRequest struct {
	URL          string            `json:"url"`
	Method       string            `json:"method"`
	Headers      map[string]string `json:"headers"`
	Body         json.RawMessage   `json:"body"`
	DelaySeconds int64             `json:"delay_seconds"`
}

// Schedule registers a delayed POST to the given webhook path
func (c *Client) Schedule(ctx context.Context, path string, payload any, delay time.Duration) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("scheduler: failed to marshal payload: %w", err)
	}

	req := scheduleRequest{
		URL:    c.callbackBaseURL + path,
		Method: http.MethodPost,
		Headers: map[string]string{
			"Content-Type":  "application/json",
			SignatureHeader: Sign(c.secret, body),
		},
		Body:         body,
		DelaySeconds: int64(delay / time.Second),
	}

	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("scheduler: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/jobs", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("scheduler: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("scheduler: service unavailable: %w", err)
	}
	defer resp.Body.Close()

	if _, err := io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize)); err != nil {
		return fmt.Errorf("scheduler: failed to read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("scheduler: service returned HTTP %d", resp.StatusCode)
	}

	c.logger.Debug("callback scheduled",
		zap.String("path", path),
		zap.Duration("delay", delay))
	return nil
}

// Sign computes the hex HMAC-SHA256 of a callback body
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a callback body against its claimed signature
func VerifySignature(secret, body []byte, signature string) bool {
	expected := Sign(secret, body)
	return hmac.Equal([]byte(expected), []byte(signature))
}
