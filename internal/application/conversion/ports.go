package conversion

import (
	"context"
	"time"
)

// Messenger is the full messaging-bridge surface the conversion workflow
// needs: sending, cancelling a queued send, and inspecting sessions to tell
// whether the lead already engaged.
type Messenger interface {
	SendText(ctx context.Context, to, text string) (*SendResult, error)
	SendTemplate(ctx context.Context, to, template string, params map[string]string) (*SendResult, error)
	CancelMessage(ctx context.Context, externalID string) error
	ListSessions(ctx context.Context, phone string) ([]Session, error)
	ListMessages(ctx context.Context, sessionID string) ([]SessionMessage, error)
}

// SendResult is the bridge's answer to a send request
type SendResult struct {
	ExternalID string
	SessionID  string
	Status     string
}

// Queued reports whether the message is stuck in the bridge's queue,
// which happens when the recipient has no open conversation window.
func (r *SendResult) Queued() bool {
	return r.Status == "QUEUED"
}

// Session is a conversation thread between the business and one phone number
type Session struct {
	ID        string
	Phone     string
	CreatedAt time.Time
}

// SessionMessage is one message inside a session
type SessionMessage struct {
	ExternalID string
	Direction  string // "IN" or "OUT"
	Text       string
	SentAt     time.Time
}

// Inbound reports whether the message came from the customer
func (m *SessionMessage) Inbound() bool {
	return m.Direction == "IN"
}

// CallbackScheduler asks the external scheduler to call a webhook back after
// a delay. Handlers re-validate the form's state on arrival.
type CallbackScheduler interface {
	Schedule(ctx context.Context, path string, payload any, delay time.Duration) error
}
