package ordering

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/ordering"
	"github.com/petalia/backend/internal/domain/partner"
	"github.com/petalia/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Webhook paths registered with the external scheduler
const (
	WebhookPathExpirePanel   = "/webhooks/panels/expire"
	WebhookPathWarnLateOrder = "/webhooks/orders/warn-late"
	WebhookPathWarnLatePhoto = "/webhooks/panels/warn-late-photo"
)

// Message templates understood by the messaging bridge
const (
	TemplateNewPanel     = "novo_painel"
	TemplatePanelExpired = "painel_expirado"
	TemplateLatePhoto    = "foto_atrasada"
)


// PanelServiceConfig tunes the scheduled follow-ups of the panel workflow
type PanelServiceConfig struct {
	ExpiryWindow   time.Duration // how long a supplier may take to respond
	PhotoWarnDelay time.Duration // delay before nudging for the arrangement photo
}

// DefaultPanelServiceConfig returns the production defaults
func DefaultPanelServiceConfig() PanelServiceConfig {
	return PanelServiceConfig{
		ExpiryWindow:   30 * time.Minute,
		PhotoWarnDelay: 2 * time.Hour,
	}
}

// PanelService drives the supplier-panel side of the order lifecycle.
// Every mutating operation delegates the state change to a guarded
// conditional update in the repository and only then fires notifications,
// so a failed notification never rolls back a committed transition.
type PanelService struct {
	panelRepo    ordering.SupplierPanelRepository
	orderRepo    ordering.OrderRepository
	paymentRepo  ordering.PaymentRepository
	supplierRepo partner.SupplierRepository
	customerRepo partner.CustomerRepository
	notifier     Notifier
	scheduler    CallbackScheduler
	cfg          PanelServiceConfig
	logger       *zap.Logger
}

// NewPanelService creates a PanelService
func NewPanelService(
	panelRepo ordering.SupplierPanelRepository,
	orderRepo ordering.OrderRepository,
	paymentRepo ordering.PaymentRepository,
	supplierRepo partner.SupplierRepository,
	customerRepo partner.CustomerRepository,
	notifier Notifier,
	scheduler CallbackScheduler,
	cfg PanelServiceConfig,
	logger *zap.Logger,
) *PanelService {
	return &PanelService{
		panelRepo:    panelRepo,
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		supplierRepo: supplierRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
		scheduler:    scheduler,
		cfg:          cfg,
		logger:       logger,
	}
}

// Create offers an order to a supplier and schedules the expiry callback
func (s *PanelService) Create(ctx context.Context, req CreatePanelRequest) (*PanelResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if !order.IsPendingWaiting() {
		return nil, shared.NewDomainError("INVALID_STATE", "Pedido não está aguardando fornecedor")
	}

	supplier, err := s.supplierRepo.FindByID(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}
	if !supplier.IsAvailable(time.Now()) {
		return nil, shared.NewDomainError("SUPPLIER_DISABLED", "Fornecedor está pausado no momento")
	}

	panel, err := ordering.NewSupplierPanel(order.ID, supplier.ID, req.Freight, time.Now().Add(s.cfg.ExpiryWindow))
	if err != nil {
		return nil, err
	}

	if err := s.panelRepo.Save(ctx, panel); err != nil {
		return nil, err
	}

	s.notifySupplier(ctx, supplier, TemplateNewPanel, map[string]string{
		"pedido":  order.OrderNumber,
		"produto": order.ProductName,
		"prazo":   order.DeliveryUntil.Format("02/01 15:04"),
	})

	if err := s.scheduler.Schedule(ctx, WebhookPathExpirePanel, map[string]string{"panel_id": panel.ID.String()}, s.cfg.ExpiryWindow); err != nil {
		s.logger.Error("failed to schedule panel expiry",
			zap.String("panel_id", panel.ID.String()),
			zap.Error(err))
	}

	resp := ToPanelResponse(panel)
	return &resp, nil
}

// Approve confirms the panel and moves the order into production.
// The compound guard (panel WAITING, order PENDING_WAITING) runs in the
// repository; a second concurrent approve matches zero rows and rejects.
func (s *PanelService) Approve(ctx context.Context, panelID uuid.UUID) (*PanelResponse, error) {
	panel, err := s.panelRepo.Approve(ctx, panelID)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByID(ctx, panel.OrderID)
	if err != nil {
		return nil, err
	}

	s.notifyCustomer(ctx, order, fmt.Sprintf(
		"Oba! Seu pedido %s já está em produção. Avisaremos quando sair para entrega. 🌸",
		order.OrderNumber))

	// Follow-ups: nudge for the arrangement photo and watch the deadline.
	if err := s.scheduler.Schedule(ctx, WebhookPathWarnLatePhoto, map[string]string{"panel_id": panel.ID.String()}, s.cfg.PhotoWarnDelay); err != nil {
		s.logger.Error("failed to schedule photo warning", zap.String("panel_id", panel.ID.String()), zap.Error(err))
	}
	if delay := time.Until(order.DeliveryUntil); delay > 0 {
		if err := s.scheduler.Schedule(ctx, WebhookPathWarnLateOrder, map[string]string{"order_id": order.ID.String()}, delay); err != nil {
			s.logger.Error("failed to schedule late-order warning", zap.String("order_id", order.ID.String()), zap.Error(err))
		}
	}

	resp := ToPanelResponse(panel)
	return &resp, nil
}

// CancelBySupplier rejects a waiting panel, cancelling the pending order
func (s *PanelService) CancelBySupplier(ctx context.Context, panelID uuid.UUID) (*PanelResponse, error) {
	panel, err := s.panelRepo.CancelWaiting(ctx, panelID, "")
	if err != nil {
		return nil, err
	}

	if order, err := s.orderRepo.FindByID(ctx, panel.OrderID); err == nil {
		s.notifyCustomer(ctx, order, fmt.Sprintf(
			"Sentimos muito, não conseguimos produzir o pedido %s. Nossa equipe entrará em contato.",
			order.OrderNumber))
	}

	resp := ToPanelResponse(panel)
	return &resp, nil
}

// CancelByAdmin revokes a confirmed panel with a mandatory reason
func (s *PanelService) CancelByAdmin(ctx context.Context, panelID uuid.UUID, reason string) (*PanelResponse, error) {
	if reason == "" {
		return nil, shared.NewDomainError("INVALID_REASON", "Motivo do cancelamento é obrigatório")
	}

	panel, err := s.panelRepo.CancelConfirmed(ctx, panelID, reason)
	if err != nil {
		return nil, err
	}

	if supplier, err := s.supplierRepo.FindByID(ctx, panel.SupplierID); err == nil {
		s.notifySupplierText(ctx, supplier, fmt.Sprintf("O painel do pedido foi cancelado pela central. Motivo: %s", reason))
	}

	resp := ToPanelResponse(panel)
	return &resp, nil
}

// ConfirmDelivery records the delivery, then attempts to finalize the order
// and notifies the customer. Finalize and notification are both post-commit
// steps: their failure leaves the delivered state standing.
func (s *PanelService) ConfirmDelivery(ctx context.Context, panelID uuid.UUID, receiverName string) (*PanelResponse, error) {
	panel, err := s.panelRepo.ConfirmDelivery(ctx, panelID, receiverName, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.tryFinalize(ctx, panel.OrderID); err != nil {
		s.logger.Info("order not finalized after delivery",
			zap.String("order_id", panel.OrderID.String()),
			zap.Error(err))
	}

	if order, err := s.orderRepo.FindByID(ctx, panel.OrderID); err == nil {
		s.notifyCustomer(ctx, order, fmt.Sprintf(
			"Seu pedido %s foi entregue a %s. Esperamos que as flores encantem! 💐",
			order.OrderNumber, receiverName))
	}

	resp := ToPanelResponse(panel)
	return &resp, nil
}

// Expire cancels a panel whose response window elapsed. Invoked by the
// scheduled callback; the guard rejects when the supplier answered meanwhile.
// The supplier is always notified of the expiry afterward.
func (s *PanelService) Expire(ctx context.Context, panelID uuid.UUID) (*PanelResponse, error) {
	panel, err := s.panelRepo.Expire(ctx, panelID)
	if err != nil {
		return nil, err
	}

	if supplier, err := s.supplierRepo.FindByID(ctx, panel.SupplierID); err == nil {
		s.notifySupplier(ctx, supplier, TemplatePanelExpired, map[string]string{})
	}

	if order, err := s.orderRepo.FindByID(ctx, panel.OrderID); err == nil {
		s.notifyCustomer(ctx, order, fmt.Sprintf(
			"Não conseguimos confirmar seu pedido %s a tempo. Nossa equipe entrará em contato.",
			order.OrderNumber))
	}

	resp := ToPanelResponse(panel)
	return &resp, nil
}

// WarnLatePhoto nudges the supplier for the arrangement photo. The scheduled
// callback re-validates that the panel is still confirmed and photoless.
func (s *PanelService) WarnLatePhoto(ctx context.Context, panelID uuid.UUID) error {
	panel, err := s.panelRepo.FindByID(ctx, panelID)
	if err != nil {
		return err
	}
	if !panel.IsConfirmed() || panel.PhotoKey != "" || panel.DeliveredAt != nil {
		return shared.ErrAlreadyProcessed
	}

	supplier, err := s.supplierRepo.FindByID(ctx, panel.SupplierID)
	if err != nil {
		return err
	}
	s.notifySupplier(ctx, supplier, TemplateLatePhoto, map[string]string{})
	return nil
}

// SetCost patches the supplier cost on a non-cancelled panel
func (s *PanelService) SetCost(ctx context.Context, panelID uuid.UUID, cost decimal.Decimal) (*PanelResponse, error) {
	panel, err := s.panelRepo.FindByID(ctx, panelID)
	if err != nil {
		return nil, err
	}
	if err := panel.SetCost(cost); err != nil {
		return nil, err
	}
	if err := s.panelRepo.SetCost(ctx, panelID, cost); err != nil {
		return nil, err
	}

	resp := ToPanelResponse(panel)
	return &resp, nil
}

// SetPhoto stores the storage key of the uploaded arrangement photo
func (s *PanelService) SetPhoto(ctx context.Context, panelID uuid.UUID, photoKey string) error {
	panel, err := s.panelRepo.FindByID(ctx, panelID)
	if err != nil {
		return err
	}
	panel.SetPhotoKey(photoKey)
	return s.panelRepo.Save(ctx, panel)
}

// Delete removes a panel that never entered the confirmed flow
func (s *PanelService) Delete(ctx context.Context, panelID uuid.UUID) error {
	panel, err := s.panelRepo.FindByID(ctx, panelID)
	if err != nil {
		return err
	}
	if panel.IsConfirmed() {
		return shared.NewDomainError("INVALID_STATE", "Painel confirmado não pode ser excluído, use o cancelamento")
	}
	return s.panelRepo.Delete(ctx, panelID)
}

// GetByID loads a single panel
func (s *PanelService) GetByID(ctx context.Context, panelID uuid.UUID) (*PanelResponse, error) {
	panel, err := s.panelRepo.FindByID(ctx, panelID)
	if err != nil {
		return nil, err
	}
	resp := ToPanelResponse(panel)
	return &resp, nil
}

// tryFinalize applies the settlement gate and finalizes when it passes
func (s *PanelService) tryFinalize(ctx context.Context, orderID uuid.UUID) error {
	payments, err := s.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	confirmed, err := s.panelRepo.FindConfirmedByOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := ordering.SettlementGate(payments, confirmed); err != nil {
		return err
	}
	return s.orderRepo.Finalize(ctx, orderID)
}

func (s *PanelService) notifyCustomer(ctx context.Context, order *ordering.Order, text string) {
	customer, err := s.customerRepo.FindByID(ctx, order.CustomerID)
	if err != nil {
		s.logger.Warn("customer lookup failed for notification",
			zap.String("order_id", order.ID.String()),
			zap.Error(err))
		return
	}
	if _, err := s.notifier.SendText(ctx, customer.Phone, text); err != nil {
		s.logger.Warn("customer notification failed",
			zap.String("order_id", order.ID.String()),
			zap.String("phone", customer.Phone),
			zap.Error(err))
	}
}

func (s *PanelService) notifySupplier(ctx context.Context, supplier *partner.Supplier, template string, params map[string]string) {
	if _, err := s.notifier.SendTemplate(ctx, supplier.JID, template, params); err != nil {
		s.logger.Warn("supplier notification failed",
			zap.String("supplier_id", supplier.ID.String()),
			zap.String("template", template),
			zap.Error(err))
	}
}

func (s *PanelService) notifySupplierText(ctx context.Context, supplier *partner.Supplier, text string) {
	if _, err := s.notifier.SendText(ctx, supplier.JID, text); err != nil {
		s.logger.Warn("supplier notification failed",
			zap.String("supplier_id", supplier.ID.String()),
			zap.Error(err))
	}
}
