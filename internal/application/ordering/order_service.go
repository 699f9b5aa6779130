package ordering

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/ordering"
	"github.com/petalia/backend/internal/domain/partner"
	"github.com/petalia/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// OrderService drives order queries and the transitions not owned by panels
type OrderService struct {
	orderRepo    ordering.OrderRepository
	panelRepo    ordering.SupplierPanelRepository
	paymentRepo  ordering.PaymentRepository
	customerRepo partner.CustomerRepository
	supplierRepo partner.SupplierRepository
	notifier     Notifier
	logger       *zap.Logger
}

// NewOrderService creates an OrderService
func NewOrderService(
	orderRepo ordering.OrderRepository,
	panelRepo ordering.SupplierPanelRepository,
	paymentRepo ordering.PaymentRepository,
	customerRepo partner.CustomerRepository,
	supplierRepo partner.SupplierRepository,
	notifier Notifier,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		panelRepo:    panelRepo,
		paymentRepo:  paymentRepo,
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// Create registers an order for an existing customer
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	order, err := ordering.NewOrder(req.OrderNumber, customer.ID, customer.Name,
		req.ProductID, req.ProductName, req.DeliveryUntil, req.DeliveryPeriod)
	if err != nil {
		return nil, err
	}
	order.DeliveryAddress = req.DeliveryAddress
	order.SetRemark(req.Remark)

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}

// GetByID loads a single order
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(order)
	return &resp, nil
}

// List returns a filtered page of orders
func (s *OrderService) List(ctx context.Context, filter shared.Filter) ([]OrderResponse, int64, error) {
	orders, total, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses, total, nil
}

// Kanban builds the three-column operational board. Each card carries the
// order's panels and payment summary so operators triage without drilling in.
func (s *OrderService) Kanban(ctx context.Context) (*KanbanResponse, error) {
	orders, err := s.orderRepo.FindByStatuses(ctx, []ordering.OrderStatus{
		ordering.OrderStatusPendingWaiting,
		ordering.OrderStatusProducingPreparation,
		ordering.OrderStatusDeliveringOnRoute,
		ordering.OrderStatusDeliveringDelivered,
	})
	if err != nil {
		return nil, err
	}

	board := &KanbanResponse{}
	now := time.Now()

	for i := range orders {
		order := &orders[i]

		panels, err := s.panelRepo.FindByOrderID(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		payments, err := s.paymentRepo.FindByOrderID(ctx, order.ID)
		if err != nil {
			return nil, err
		}

		card := KanbanCard{
			Order:       ToOrderResponse(order),
			Panels:      make([]PanelResponse, len(panels)),
			TotalAmount: ordering.TotalAmount(payments),
			IsPaid:      ordering.IsPaid(payments),
			IsLate:      order.IsLate(now),
		}
		for j := range panels {
			card.Panels[j] = ToPanelResponse(&panels[j])
		}

		switch order.Status {
		case ordering.OrderStatusPendingWaiting:
			board.Pending.Cards = append(board.Pending.Cards, card)
		case ordering.OrderStatusProducingPreparation:
			board.Producing.Cards = append(board.Producing.Cards, card)
		default:
			board.Delivering.Cards = append(board.Delivering.Cards, card)
		}
	}

	board.Pending.Total = len(board.Pending.Cards)
	board.Producing.Total = len(board.Producing.Cards)
	board.Delivering.Total = len(board.Delivering.Cards)

	return board, nil
}

// StartRoute moves a producing order onto the street. The guarded update
// rejects duplicates with shared.ErrAlreadyProcessed.
func (s *OrderService) StartRoute(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	if err := s.orderRepo.StartRoute(ctx, orderID); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	s.notifyCustomer(ctx, order, fmt.Sprintf(
		"Seu pedido %s saiu para entrega! 🚚💐", order.OrderNumber))

	resp := ToOrderResponse(order)
	return &resp, nil
}

// Finalize closes a delivered order once the settlement gate passes:
// no ACTIVE required payment remains and the confirmed panel has a cost.
func (s *OrderService) Finalize(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	payments, err := s.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	confirmed, err := s.panelRepo.FindConfirmedByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := ordering.SettlementGate(payments, confirmed); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Finalize(ctx, orderID); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}

// WarnLate handles the scheduled deadline callback. It re-validates that the
// order is in fact still undelivered before pinging the supplier.
func (s *OrderService) WarnLate(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !order.IsLate(time.Now()) {
		return shared.ErrAlreadyProcessed
	}

	confirmed, err := s.panelRepo.FindConfirmedByOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	supplier, err := s.supplierRepo.FindByID(ctx, confirmed.SupplierID)
	if err != nil {
		return err
	}

	text := fmt.Sprintf("O pedido %s passou do prazo de entrega (%s). Qual o status?",
		order.OrderNumber, order.DeliveryUntil.Format("02/01 15:04"))
	if _, err := s.notifier.SendText(ctx, supplier.JID, text); err != nil {
		s.logger.Warn("late-order warning failed",
			zap.String("order_id", orderID.String()),
			zap.Error(err))
	}
	return nil
}

func (s *OrderService) notifyCustomer(ctx context.Context, order *ordering.Order, text string) {
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
			zap.Error(err))
	}
}
