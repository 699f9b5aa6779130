package messaging

import (
	"context"

	appconversion "github.com/petalia/backend/internal/application/conversion"
)

// Messenger adapts the bridge client to the conversion workflow's surface,
// which additionally needs cancellation and session inspection.
type Messenger struct {
	client *Client
}

// NewMessenger creates a Messenger backed by the bridge client
func NewMessenger(client *Client) *Messenger {
	return &Messenger{client: client}
}

// SendText sends a free-form text message
func (m *Messenger) SendText(ctx context.Context, to, text string) (*appconversion.SendResult, error) {
	resp, err := m.client.SendText(ctx, to, text)
	if err != nil {
		return nil, err
	}
	return toConversionResult(resp), nil
}

// SendTemplate sends a pre-approved template message
func (m *Messenger) SendTemplate(ctx context.Context, to, template string, params map[string]string) (*appconversion.SendResult, error) {
	resp, err := m.client.SendTemplate(ctx, to, template, params)
	if err != nil {
		return nil, err
	}
	return toConversionResult(resp), nil
}

// CancelMessage removes a still-queued message from the bridge's outbox
func (m *Messenger) CancelMessage(ctx context.Context, externalID string) error {
	return m.client.CancelMessage(ctx, externalID)
}

// ListSessions lists conversation threads with a phone number
func (m *Messenger) ListSessions(ctx context.Context, phone string) ([]appconversion.Session, error) {
	sessions, err := m.client.ListSessions(ctx, phone)
	if err != nil {
		return nil, err
	}
	result := make([]appconversion.Session, 0, len(sessions))
	for _, s := range sessions {
		result = append(result, appconversion.Session{
			ID:        s.ID,
			Phone:     s.Phone,
			CreatedAt: s.CreatedAt,
		})
	}
	return result, nil
}

// ListMessages lists the messages inside a session, oldest first
func (m *Messenger) ListMessages(ctx context.Context, sessionID string) ([]appconversion.SessionMessage, error) {
	messages, err := m.client.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	result := make([]appconversion.SessionMessage, 0, len(messages))
	for _, msg := range messages {
		result = append(result, appconversion.SessionMessage{
			ExternalID: msg.ID,
			Direction:  msg.Direction,
			Text:       msg.Text,
			SentAt:     msg.SentAt,
		})
	}
	return result, nil
}

func toConversionResult(resp *sendResponse) *appconversion.SendResult {
	return &appconversion.SendResult{
		ExternalID: resp.ID,
		SessionID:  resp.SessionID,
		Status:     resp.Status,
	}
}

// Ensure Messenger implements the conversion messenger port
var _ appconversion.Messenger = (*Messenger)(nil)
