package messaging

import (
	"context"

	appordering "github.com/petalia/backend/internal/application/ordering"
)

// Notifier adapts the bridge client to the ordering workflow's send surface
type Notifier struct {
	client *Client
}

// NewNotifier creates a Notifier backed by the bridge client
func NewNotifier(client *Client) *Notifier {
	return &Notifier{client: client}
}

// SendText sends a free-form text message
func (n *Notifier) SendText(ctx context.Context, to, text string) (*appordering.SendResult, error) {
	resp, err := n.client.SendText(ctx, to, text)
	if err != nil {
		return nil, err
	}
	return toOrderingResult(resp), nil
}

// SendTemplate sends a pre-approved template message
func (n *Notifier) SendTemplate(ctx context.Context, to, template string, params map[string]string) (*appordering.SendResult, error) {
	resp, err := n.client.SendTemplate(ctx, to, template, params)
	if err != nil {
		return nil, err
	}
	return toOrderingResult(resp), nil
}

func toOrderingResult(resp *sendResponse) *appordering.SendResult {
	return &appordering.SendResult{
		ExternalID: resp.ID,
		SessionID:  resp.SessionID,
		Status:     appordering.DeliveryStatus(resp.Status),
	}
}

// Ensure Notifier implements the ordering notifier port
var _ appordering.Notifier = (*Notifier)(nil)
