package ordering

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/ordering"
	"github.com/petalia/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PaymentService opens charges at the payment gateway and reconciles their
// lifecycle against the order.
type PaymentService struct {
	paymentRepo ordering.PaymentRepository
	orderRepo   ordering.OrderRepository
	gateway     CheckoutGateway
	logger      *zap.Logger
}

// NewPaymentService creates a PaymentService
func NewPaymentService(
	paymentRepo ordering.PaymentRepository,
	orderRepo ordering.OrderRepository,
	gateway CheckoutGateway,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		gateway:     gateway,
		logger:      logger,
	}
}

// Create opens a charge at the gateway and records it as an ACTIVE payment
func (s *PaymentService) Create(ctx context.Context, req CreatePaymentRequest) (*PaymentResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if order.IsCancelled() || order.IsFinalized() {
		return nil, shared.NewDomainError("INVALID_STATE", "Pedido encerrado não aceita novos pagamentos")
	}

	payment, err := ordering.NewPayment(order.ID, req.Type, req.Amount)
	if err != nil {
		return nil, err
	}

	charge, err := s.gateway.CreateCharge(ctx, CreateChargeRequest{
		Reference:  payment.ID.String(),
		Type:       req.Type,
		Amount:     req.Amount,
		PayerEmail: req.PayerEmail,
		Descriptor: "Pedido " + order.OrderNumber,
	})
	if err != nil {
		return nil, err
	}
	payment.GatewayID = charge.GatewayID

	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	resp := ToPaymentResponse(payment)
	resp.CheckoutURL = charge.CheckoutURL
	return &resp, nil
}

// ListByOrder returns all payments of an order
func (s *PaymentService) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]PaymentResponse, error) {
	payments, err := s.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses, nil
}

// Confirm settles an ACTIVE payment. Reached from both the manual endpoint
// and the gateway webhook, so the guarded update absorbs duplicates.
func (s *PaymentService) Confirm(ctx context.Context, paymentID uuid.UUID) (*PaymentResponse, error) {
	if err := s.paymentRepo.MarkPaid(ctx, paymentID, time.Now()); err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	resp := ToPaymentResponse(payment)
	return &resp, nil
}

// ConfirmByGatewayID settles the payment carrying the given gateway reference
func (s *PaymentService) ConfirmByGatewayID(ctx context.Context, gatewayID string) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByGatewayID(ctx, gatewayID)
	if err != nil {
		return nil, err
	}
	return s.Confirm(ctx, payment.ID)
}

// ConfirmFromGateway reconciles a provider notification. The provider sends
// its own payment ID; the charge's external reference carries ours. Charges
// still pending at the provider update their binding but stay ACTIVE.
func (s *PaymentService) ConfirmFromGateway(ctx context.Context, gatewayPaymentID string) (*PaymentResponse, error) {
	charge, err := s.gateway.GetCharge(ctx, gatewayPaymentID)
	if err != nil {
		return nil, err
	}

	payment, err := s.findByChargeReference(ctx, charge.Reference, gatewayPaymentID)
	if err != nil {
		return nil, err
	}

	// The checkout stored the preference ID; the settled charge carries the
	// numeric payment ID refunds need, so rebind before confirming.
	if payment.GatewayID != gatewayPaymentID {
		payment.GatewayID = gatewayPaymentID
		if err := s.paymentRepo.Save(ctx, payment); err != nil {
			return nil, err
		}
	}

	if !charge.Paid {
		s.logger.Info("gateway notification for unsettled charge",
			zap.String("gateway_payment_id", gatewayPaymentID),
			zap.String("gateway_status", charge.Status))
		resp := ToPaymentResponse(payment)
		return &resp, nil
	}

	return s.Confirm(ctx, payment.ID)
}

func (s *PaymentService) findByChargeReference(ctx context.Context, reference, gatewayPaymentID string) (*ordering.Payment, error) {
	if id, err := uuid.Parse(reference); err == nil {
		if payment, err := s.paymentRepo.FindByID(ctx, id); err == nil {
			return payment, nil
		}
	}
	return s.paymentRepo.FindByGatewayID(ctx, gatewayPaymentID)
}

// Cancel voids an ACTIVE payment, refunding the captured portion at the
// gateway first. A gateway refund failure aborts the cancellation.
func (s *PaymentService) Cancel(ctx context.Context, paymentID uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != ordering.PaymentStatusActive {
		return nil, shared.ErrAlreadyProcessed
	}

	refund := payment.Amount
	if payment.GatewayID != "" {
		if err := s.gateway.Refund(ctx, payment.GatewayID, refund); err != nil {
			return nil, err
		}
	}

	if err := s.paymentRepo.CancelActive(ctx, paymentID, refund); err != nil {
		return nil, err
	}

	payment, err = s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	resp := ToPaymentResponse(payment)
	return &resp, nil
}
