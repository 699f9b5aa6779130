package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// maxResponseSize limits the response body size to prevent memory exhaustion
const maxResponseSize = 1 * 1024 * 1024

// Client talks to the WhatsApp bridge HTTP API. The bridge owns the actual
// device session; this client only submits messages and inspects threads.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a bridge client
func NewClient(baseURL, token string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.Named("messaging"),
	}
}

type sendRequest struct {
	To       string            `json:"to"`
	Text     string            `json:"text,omitempty"`
	Template string            `json:"template,omitempty"`
	Params   map[string]string `json:"params,omitempty"`
}

type sendResponse struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
}

type sessionPayload struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type sessionMessagePayload struct {
	ID        string    `json:"id"`
	Direction string    `json:"direction"`
	Text      string    `json:"text"`
	SentAt    time.Time `json:"sent_at"`
}

// SendText submits a free-form text message
func (c *Client) SendText(ctx context.Context, to, text string) (*sendResponse, error) {
	return c.send(ctx, sendRequest{To: to, Text: text})
}

// SendTemplate submits a pre-approved template message. Templates reach
// recipients even outside an open conversation window.
func (c *Client) SendTemplate(ctx context.Context, to, template string, params map[string]string) (*sendResponse, error) {
	return c.send(ctx, sendRequest{To: to, Template: template, Params: params})
}

func (c *Client) send(ctx context.Context, req sendRequest) (*sendResponse, error) {
	path := "/messages/text"
	if req.Template != "" {
		path = "/messages/template"
	}

	body, err := c.doRequest(ctx, http.MethodPost, path, req)
	if err != nil {
		return nil, err
	}

	var resp sendResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("messaging: failed to parse response: %w", err)
	}
	if resp.ID == "" {
		return nil, fmt.Errorf("messaging: bridge returned no message id")
	}
	return &resp, nil
}

// CancelMessage removes a still-queued message from the bridge's outbox
func (c *Client) CancelMessage(ctx context.Context, externalID string) error {
	_, err := c.doRequest(ctx, http.MethodDelete, "/messages/"+url.PathEscape(externalID), nil)
	return err
}

// ListSessions lists conversation threads with a phone number
func (c *Client) ListSessions(ctx context.Context, phone string) ([]sessionPayload, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/sessions?phone="+url.QueryEscape(phone), nil)
	if err != nil {
		return nil, err
	}

	var sessions []sessionPayload
	if err := json.Unmarshal(body, &sessions); err != nil {
		return nil, fmt.Errorf("messaging: failed to parse sessions: %w", err)
	}
	return sessions, nil
}

// ListMessages lists the messages inside a session, oldest first
func (c *Client) ListMessages(ctx context.Context, sessionID string) ([]sessionMessagePayload, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/sessions/"+url.PathEscape(sessionID)+"/messages", nil)
	if err != nil {
		return nil, err
	}

	var messages []sessionMessagePayload
	if err := json.Unmarshal(body, &messages); err != nil {
		return nil, fmt.Errorf("messaging: failed to parse messages: %w", err)
	}
	return messages, nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("messaging: failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("messaging: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("messaging: bridge unavailable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("messaging: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Warn("bridge request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("messaging: bridge returned HTTP %d", resp.StatusCode)
	}
	return body, nil
}
