package ordering

import (
	"context"
	"time"

	"github.com/petalia/backend/internal/domain/ordering"
	"github.com/shopspring/decimal"
)

// Notifier sends conversational messages through the messaging bridge.
// Sends that happen after a committed state transition are best-effort:
// callers log failures and never roll back the transition.
type Notifier interface {
	SendText(ctx context.Context, to, text string) (*SendResult, error)
	SendTemplate(ctx context.Context, to, template string, params map[string]string) (*SendResult, error)
}

// SendResult is the gateway's answer to a send request
type SendResult struct {
	ExternalID string
	SessionID  string
	Status     DeliveryStatus
}

// DeliveryStatus is the gateway-reported state of an outbound message
type DeliveryStatus string

const (
	DeliveryStatusDelivered  DeliveryStatus = "DELIVERED"
	DeliveryStatusSent       DeliveryStatus = "SENT"
	DeliveryStatusProcessing DeliveryStatus = "PROCESSING"
	DeliveryStatusQueued     DeliveryStatus = "QUEUED"
	DeliveryStatusFailed     DeliveryStatus = "FAILED"
)

// Reached reports whether the message made it past the gateway's queue
func (s DeliveryStatus) Reached() bool {
	switch s {
	case DeliveryStatusDelivered, DeliveryStatusSent, DeliveryStatusProcessing:
		return true
	}
	return false
}

// CallbackScheduler asks the external scheduler to call a webhook back
// after a delay. Handlers re-validate state on arrival; a scheduled callback
// is never trusted to still be relevant.
type CallbackScheduler interface {
	Schedule(ctx context.Context, path string, payload any, delay time.Duration) error
}

// CheckoutGateway creates, inspects and refunds charges at the payment provider
type CheckoutGateway interface {
	CreateCharge(ctx context.Context, req CreateChargeRequest) (*ChargeResult, error)
	GetCharge(ctx context.Context, gatewayPaymentID string) (*ChargeStatus, error)
	Refund(ctx context.Context, gatewayID string, amount decimal.Decimal) error
}

// CreateChargeRequest describes a charge to open at the provider
type CreateChargeRequest struct {
	Reference  string
	Type       ordering.PaymentType
	Amount     decimal.Decimal
	PayerEmail string
	Descriptor string
}

// ChargeResult is the provider's answer to a charge request
type ChargeResult struct {
	GatewayID   string
	Status      string
	CheckoutURL string
}

// ChargeStatus is the provider's view of a settled or pending charge.
// Reference carries back the payment ID we sent when opening the charge.
type ChargeStatus struct {
	Reference string
	Status    string
	Paid      bool
}
