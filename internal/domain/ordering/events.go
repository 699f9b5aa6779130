package ordering

import (
	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/shared"
)

// Event types for the ordering context
const (
	EventOrderCreated   = "ordering.order.created"
	EventOrderCancelled = "ordering.order.cancelled"
	EventOrderFinalized = "ordering.order.finalized"
	EventPanelCreated   = "ordering.panel.created"
	EventPanelConfirmed = "ordering.panel.confirmed"
	EventPanelCancelled = "ordering.panel.cancelled"
	EventPanelDelivered = "ordering.panel.delivered"
)

// OrderCreatedEvent fires when a new order enters PENDING_WAITING
type OrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string    `json:"order_number"`
	CustomerID  uuid.UUID `json:"customer_id"`
	ProductID   uuid.UUID `json:"product_id"`
}

// NewOrderCreatedEvent creates an OrderCreatedEvent
func NewOrderCreatedEvent(o *Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderCreated, "Order", o.ID),
		OrderNumber:     o.OrderNumber,
		CustomerID:      o.CustomerID,
		ProductID:       o.ProductID,
	}
}

// OrderCancelledEvent fires when a pending order is cancelled
type OrderCancelledEvent struct {
	shared.BaseDomainEvent
	OrderNumber  string `json:"order_number"`
	CancelReason string `json:"cancel_reason"`
}

// NewOrderCancelledEvent creates an OrderCancelledEvent
func NewOrderCancelledEvent(o *Order) *OrderCancelledEvent {
	return &OrderCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderCancelled, "Order", o.ID),
		OrderNumber:     o.OrderNumber,
		CancelReason:    o.CancelReason,
	}
}

// OrderFinalizedEvent fires when an order reaches FINALIZED
type OrderFinalizedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string `json:"order_number"`
}

// NewOrderFinalizedEvent creates an OrderFinalizedEvent
func NewOrderFinalizedEvent(o *Order) *OrderFinalizedEvent {
	return &OrderFinalizedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderFinalized, "Order", o.ID),
		OrderNumber:     o.OrderNumber,
	}
}

// PanelCreatedEvent fires when an order is offered to a supplier
type PanelCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID    uuid.UUID `json:"order_id"`
	SupplierID uuid.UUID `json:"supplier_id"`
}

// NewPanelCreatedEvent creates a PanelCreatedEvent
func NewPanelCreatedEvent(p *SupplierPanel) *PanelCreatedEvent {
	return &PanelCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventPanelCreated, "SupplierPanel", p.ID),
		OrderID:         p.OrderID,
		SupplierID:      p.SupplierID,
	}
}

// PanelConfirmedEvent fires when a supplier accepts an assignment
type PanelConfirmedEvent struct {
	shared.BaseDomainEvent
	OrderID    uuid.UUID `json:"order_id"`
	SupplierID uuid.UUID `json:"supplier_id"`
}

// NewPanelConfirmedEvent creates a PanelConfirmedEvent
func NewPanelConfirmedEvent(p *SupplierPanel) *PanelConfirmedEvent {
	return &PanelConfirmedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventPanelConfirmed, "SupplierPanel", p.ID),
		OrderID:         p.OrderID,
		SupplierID:      p.SupplierID,
	}
}

// PanelCancelledEvent fires when an assignment is rejected, revoked or expired
type PanelCancelledEvent struct {
	shared.BaseDomainEvent
	OrderID      uuid.UUID `json:"order_id"`
	SupplierID   uuid.UUID `json:"supplier_id"`
	CancelReason string    `json:"cancel_reason"`
}

// NewPanelCancelledEvent creates a PanelCancelledEvent
func NewPanelCancelledEvent(p *SupplierPanel) *PanelCancelledEvent {
	return &PanelCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventPanelCancelled, "SupplierPanel", p.ID),
		OrderID:         p.OrderID,
		SupplierID:      p.SupplierID,
		CancelReason:    p.CancelReason,
	}
}

// PanelDeliveredEvent fires when the supplier registers the delivery
type PanelDeliveredEvent struct {
	shared.BaseDomainEvent
	OrderID      uuid.UUID `json:"order_id"`
	ReceiverName string    `json:"receiver_name"`
}

// NewPanelDeliveredEvent creates a PanelDeliveredEvent
func NewPanelDeliveredEvent(p *SupplierPanel) *PanelDeliveredEvent {
	return &PanelDeliveredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventPanelDelivered, "SupplierPanel", p.ID),
		OrderID:         p.OrderID,
		ReceiverName:    p.ReceiverName,
	}
}
