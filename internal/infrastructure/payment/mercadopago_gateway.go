package payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/mercadopago/sdk-go/pkg/refund"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	appordering "github.com/petalia/backend/internal/application/ordering"
	"github.com/petalia/backend/internal/domain/ordering"
)

// ErrMissingAccessToken is returned when the gateway is built without credentials
var ErrMissingAccessToken = errors.New("mercado pago access token is required")

// payment method ids understood by the checkout, keyed by our payment types
var methodIDs = map[ordering.PaymentType]string{
	ordering.PaymentTypeCardCredit: "credit_card",
	ordering.PaymentTypePix:        "pix",
	ordering.PaymentTypePixCNPJ:    "pix",
	ordering.PaymentTypeBoleto:     "bolbradesco",
}

type preferenceAPI interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type refundAPI interface {
	CreatePartialRefund(ctx context.Context, paymentID int, amount float64) (*refund.Response, error)
}

type paymentAPI interface {
	Get(ctx context.Context, id int) (*mppayment.Response, error)
}

// MercadoPagoGateway implements the checkout gateway on Mercado Pago's
// preference API. Each charge becomes a checkout preference whose external
// reference is our payment ID; settlement arrives through the provider's
// webhook.
type MercadoPagoGateway struct {
	preferences preferenceAPI
	payments    paymentAPI
	refunds     refundAPI
	notifyURL   string
	logger      *zap.Logger
}

// NewMercadoPagoGateway creates a gateway using the official SDK
func NewMercadoPagoGateway(accessToken, notifyURL string, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: failed to configure sdk: %w", err)
	}

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		payments:    mppayment.NewClient(cfg),
		refunds:     refund.NewClient(cfg),
		notifyURL:   notifyURL,
		logger:      logger.Named("mercadopago"),
	}, nil
}

// newMercadoPagoGatewayWithClients wires explicit API clients, used by tests
func newMercadoPagoGatewayWithClients(preferences preferenceAPI, payments paymentAPI, refunds refundAPI, notifyURL string, logger *zap.Logger) *MercadoPagoGateway {
	return &MercadoPagoGateway{
		preferences: preferences,
		payments:    payments,
		refunds:     refunds,
		notifyURL:   notifyURL,
		logger:      logger.Named("mercadopago"),
	}
}

// CreateCharge opens a checkout preference for the given charge
func (g *MercadoPagoGateway) CreateCharge(ctx context.Context, req appordering.CreateChargeRequest) (*appordering.ChargeResult, error) {
	amount, _ := req.Amount.Float64()

	prefReq := preference.Request{
		ExternalReference:   req.Reference,
		NotificationURL:     g.notifyURL,
		StatementDescriptor: req.Descriptor,
		Items: []preference.ItemRequest{
			{
				ID:         req.Reference,
				Title:      req.Descriptor,
				Quantity:   1,
				UnitPrice:  amount,
				CurrencyID: "BRL",
			},
		},
	}
	if req.PayerEmail != "" {
		prefReq.Payer = &preference.PayerRequest{Email: req.PayerEmail}
	}
	if methodID, ok := methodIDs[req.Type]; ok && req.Type != ordering.PaymentTypeCardCredit {
		prefReq.PaymentMethods = &preference.PaymentMethodsRequest{
			DefaultPaymentMethodID: methodID,
		}
	}

	resp, err := g.preferences.Create(ctx, prefReq)
	if err != nil {
		g.logger.Error("failed to create checkout preference",
			zap.String("reference", req.Reference),
			zap.Error(err))
		return nil, fmt.Errorf("mercadopago: failed to create charge: %w", err)
	}

	g.logger.Info("checkout preference created",
		zap.String("reference", req.Reference),
		zap.String("preference_id", resp.ID))

	return &appordering.ChargeResult{
		GatewayID:   resp.ID,
		Status:      "PENDING",
		CheckoutURL: resp.InitPoint,
	}, nil
}

// GetCharge looks up a payment at the provider. Webhook notifications only
// carry the provider's payment ID; the external reference in the response
// links it back to our payment record.
func (g *MercadoPagoGateway) GetCharge(ctx context.Context, gatewayPaymentID string) (*appordering.ChargeStatus, error) {
	id, err := strconv.Atoi(gatewayPaymentID)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: invalid payment id %q: %w", gatewayPaymentID, err)
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		g.logger.Error("failed to look up payment",
			zap.String("gateway_payment_id", gatewayPaymentID),
			zap.Error(err))
		return nil, fmt.Errorf("mercadopago: failed to look up payment: %w", err)
	}

	return &appordering.ChargeStatus{
		Reference: resp.ExternalReference,
		Status:    resp.Status,
		Paid:      resp.Status == "approved",
	}, nil
}

// Refund returns money to the payer. Mercado Pago only refunds settled
// payments by their numeric payment ID.
func (g *MercadoPagoGateway) Refund(ctx context.Context, gatewayID string, amount decimal.Decimal) error {
	paymentID, err := strconv.Atoi(gatewayID)
	if err != nil {
		return fmt.Errorf("mercadopago: invalid payment id %q: %w", gatewayID, err)
	}

	value, _ := amount.Float64()
	if _, err := g.refunds.CreatePartialRefund(ctx, paymentID, value); err != nil {
		g.logger.Error("refund failed",
			zap.String("gateway_id", gatewayID),
			zap.Error(err))
		return fmt.Errorf("mercadopago: refund failed: %w", err)
	}

	g.logger.Info("refund issued",
		zap.String("gateway_id", gatewayID),
		zap.String("amount", amount.String()))
	return nil
}

// Ensure MercadoPagoGateway implements the checkout gateway port
var _ appordering.CheckoutGateway = (*MercadoPagoGateway)(nil)
