package ordering

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/shared"
)

// OrderStatus represents the lifecycle status of an order
type OrderStatus string

const (
	OrderStatusPendingWaiting       OrderStatus = "PENDING_WAITING"
	OrderStatusPendingCancelled     OrderStatus = "PENDING_CANCELLED"
	OrderStatusProducingPreparation OrderStatus = "PRODUCING_PREPARATION"
	OrderStatusDeliveringOnRoute    OrderStatus = "DELIVERING_ON_ROUTE"
	OrderStatusDeliveringDelivered  OrderStatus = "DELIVERING_DELIVERED"
	OrderStatusFinalized            OrderStatus = "FINALIZED"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPendingWaiting, OrderStatusPendingCancelled,
		OrderStatusProducingPreparation, OrderStatusDeliveringOnRoute,
		OrderStatusDeliveringDelivered, OrderStatusFinalized:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPendingWaiting:
		return target == OrderStatusProducingPreparation || target == OrderStatusPendingCancelled
	case OrderStatusProducingPreparation:
		return target == OrderStatusDeliveringOnRoute
	case OrderStatusDeliveringOnRoute:
		return target == OrderStatusDeliveringDelivered
	case OrderStatusDeliveringDelivered:
		return target == OrderStatusFinalized
	case OrderStatusPendingCancelled, OrderStatusFinalized:
		return false // Terminal states
	}
	return false
}

// IsTerminal returns true for FINALIZED and cancellation states
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusFinalized || s == OrderStatusPendingCancelled
}

// DeliveryPeriod is the time window the customer chose for delivery
type DeliveryPeriod string

const (
	DeliveryPeriodMorning   DeliveryPeriod = "MORNING"
	DeliveryPeriodAfternoon DeliveryPeriod = "AFTERNOON"
	DeliveryPeriodEvening   DeliveryPeriod = "EVENING"
)

// IsValid checks if the period is one of the known delivery windows
func (p DeliveryPeriod) IsValid() bool {
	switch p {
	case DeliveryPeriodMorning, DeliveryPeriodAfternoon, DeliveryPeriodEvening:
		return true
	}
	return false
}

// Order represents a customer purchase of one product.
// Its status is mutated only through the guarded lifecycle transitions below;
// the persistence layer enforces the same guards as conditional updates so
// concurrent duplicate requests cannot both succeed.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber     string         `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	CustomerName    string         `gorm:"type:varchar(200)"`
	ProductID       uuid.UUID      `gorm:"type:uuid;not null"`
	ProductName     string         `gorm:"type:varchar(200)"`
	Status          OrderStatus    `gorm:"type:varchar(30);not null;default:'PENDING_WAITING';index"`
	DeliveryUntil   time.Time      `gorm:"not null;index"`
	DeliveryPeriod  DeliveryPeriod `gorm:"type:varchar(20);not null"`
	DeliveryAddress string         `gorm:"type:text"`
	Remark          string         `gorm:"type:text"`
	ProducingAt     *time.Time
	OnRouteAt       *time.Time
	DeliveredAt     *time.Time
	FinalizedAt     *time.Time
	CancelledAt     *time.Time
	CancelReason    string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates an order in PENDING_WAITING, awaiting a supplier panel
func NewOrder(orderNumber string, customerID uuid.UUID, customerName string, productID uuid.UUID, productName string, deliveryUntil time.Time, period DeliveryPeriod) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Número do pedido é obrigatório")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Cliente é obrigatório")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Produto é obrigatório")
	}
	if deliveryUntil.IsZero() {
		return nil, shared.NewDomainError("INVALID_DELIVERY_DATE", "Data limite de entrega é obrigatória")
	}
	if !period.IsValid() {
		return nil, shared.NewDomainError("INVALID_DELIVERY_PERIOD", "Período de entrega inválido")
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		CustomerID:        customerID,
		CustomerName:      customerName,
		ProductID:         productID,
		ProductName:       productName,
		Status:            OrderStatusPendingWaiting,
		DeliveryUntil:     deliveryUntil,
		DeliveryPeriod:    period,
	}

	order.AddDomainEvent(NewOrderCreatedEvent(order))

	return order, nil
}

// StartProduction moves the order from PENDING_WAITING to PRODUCING_PREPARATION.
// Happens when a supplier panel is approved.
func (o *Order) StartProduction() error {
	if !o.Status.CanTransitionTo(OrderStatusProducingPreparation) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Pedido em %s não pode entrar em produção", o.Status))
	}

	now := time.Now()
	o.Status = OrderStatusProducingPreparation
	o.ProducingAt = &now
	o.UpdatedAt = now

	return nil
}

// StartRoute moves the order from PRODUCING_PREPARATION to DELIVERING_ON_ROUTE
func (o *Order) StartRoute() error {
	if !o.Status.CanTransitionTo(OrderStatusDeliveringOnRoute) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Pedido em %s não pode sair para entrega", o.Status))
	}

	now := time.Now()
	o.Status = OrderStatusDeliveringOnRoute
	o.OnRouteAt = &now
	o.UpdatedAt = now

	return nil
}

// MarkDelivered moves the order from DELIVERING_ON_ROUTE to DELIVERING_DELIVERED
func (o *Order) MarkDelivered() error {
	if !o.Status.CanTransitionTo(OrderStatusDeliveringDelivered) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Pedido em %s não pode ser marcado como entregue", o.Status))
	}

	now := time.Now()
	o.Status = OrderStatusDeliveringDelivered
	o.DeliveredAt = &now
	o.UpdatedAt = now

	return nil
}

// Finalize closes the order. Callers must have verified the payment and cost
// gates (see SettlementGate); the aggregate only enforces the status guard.
func (o *Order) Finalize() error {
	if !o.Status.CanTransitionTo(OrderStatusFinalized) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Pedido em %s não pode ser finalizado", o.Status))
	}

	now := time.Now()
	o.Status = OrderStatusFinalized
	o.FinalizedAt = &now
	o.UpdatedAt = now

	o.AddDomainEvent(NewOrderFinalizedEvent(o))

	return nil
}

// CancelPending cancels an order that is still waiting for a supplier.
// Reason is optional for supplier-initiated cancellations.
func (o *Order) CancelPending(reason string) error {
	if !o.Status.CanTransitionTo(OrderStatusPendingCancelled) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Pedido em %s não pode ser cancelado", o.Status))
	}

	now := time.Now()
	o.Status = OrderStatusPendingCancelled
	o.CancelledAt = &now
	o.CancelReason = reason
	o.UpdatedAt = now

	o.AddDomainEvent(NewOrderCancelledEvent(o))

	return nil
}

// SetRemark sets the order remark
func (o *Order) SetRemark(remark string) {
	o.Remark = remark
	o.UpdatedAt = time.Now()
}

// IsPendingWaiting returns true if the order still waits for a supplier
func (o *Order) IsPendingWaiting() bool {
	return o.Status == OrderStatusPendingWaiting
}

// IsFinalized returns true if the order reached the terminal FINALIZED state
func (o *Order) IsFinalized() bool {
	return o.Status == OrderStatusFinalized
}

// IsCancelled returns true if the order was cancelled while pending
func (o *Order) IsCancelled() bool {
	return o.Status == OrderStatusPendingCancelled
}

// IsLate returns true if the delivery deadline passed without delivery
func (o *Order) IsLate(now time.Time) bool {
	if o.Status == OrderStatusDeliveringDelivered || o.Status.IsTerminal() {
		return false
	}
	return now.After(o.DeliveryUntil)
}
