package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/ordering"
	"github.com/shopspring/decimal"
)

// OrderResponse is the API view of an order
type OrderResponse struct {
	ID              uuid.UUID            `json:"id"`
	OrderNumber     string               `json:"order_number"`
	CustomerID      uuid.UUID            `json:"customer_id"`
	CustomerName    string               `json:"customer_name"`
	ProductID       uuid.UUID            `json:"product_id"`
	ProductName     string               `json:"product_name"`
	Status          ordering.OrderStatus `json:"status"`
	DeliveryUntil   time.Time            `json:"delivery_until"`
	DeliveryPeriod  string               `json:"delivery_period"`
	DeliveryAddress string               `json:"delivery_address,omitempty"`
	Remark          string               `json:"remark,omitempty"`
	CancelReason    string               `json:"cancel_reason,omitempty"`
	DeliveredAt     *time.Time           `json:"delivered_at,omitempty"`
	FinalizedAt     *time.Time           `json:"finalized_at,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// ToOrderResponse maps a domain order to its API view
func ToOrderResponse(o *ordering.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerID:      o.CustomerID,
		CustomerName:    o.CustomerName,
		ProductID:       o.ProductID,
		ProductName:     o.ProductName,
		Status:          o.Status,
		DeliveryUntil:   o.DeliveryUntil,
		DeliveryPeriod:  string(o.DeliveryPeriod),
		DeliveryAddress: o.DeliveryAddress,
		Remark:          o.Remark,
		CancelReason:    o.CancelReason,
		DeliveredAt:     o.DeliveredAt,
		FinalizedAt:     o.FinalizedAt,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// PanelResponse is the API view of a supplier panel
type PanelResponse struct {
	ID           uuid.UUID            `json:"id"`
	OrderID      uuid.UUID            `json:"order_id"`
	SupplierID   uuid.UUID            `json:"supplier_id"`
	Status       ordering.PanelStatus `json:"status"`
	Cost         *decimal.Decimal     `json:"cost,omitempty"`
	Freight      decimal.Decimal      `json:"freight"`
	ExpiresAt    time.Time            `json:"expires_at"`
	DeliveredAt  *time.Time           `json:"delivered_at,omitempty"`
	ReceiverName string               `json:"receiver_name,omitempty"`
	CancelReason string               `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

// ToPanelResponse maps a domain panel to its API view
func ToPanelResponse(p *ordering.SupplierPanel) PanelResponse {
	return PanelResponse{
		ID:           p.ID,
		OrderID:      p.OrderID,
		SupplierID:   p.SupplierID,
		Status:       p.Status,
		Cost:         p.Cost,
		Freight:      p.Freight,
		ExpiresAt:    p.ExpiresAt,
		DeliveredAt:  p.DeliveredAt,
		ReceiverName: p.ReceiverName,
		CancelReason: p.CancelReason,
		CreatedAt:    p.CreatedAt,
	}
}

// PaymentResponse is the API view of a payment
type PaymentResponse struct {
	ID           uuid.UUID              `json:"id"`
	OrderID      uuid.UUID              `json:"order_id"`
	GatewayID    string                 `json:"gateway_id,omitempty"`
	Type         ordering.PaymentType   `json:"type"`
	Status       ordering.PaymentStatus `json:"status"`
	Amount       decimal.Decimal        `json:"amount"`
	RefundAmount decimal.Decimal        `json:"refund_amount"`
	PaidAt       *time.Time             `json:"paid_at,omitempty"`
	CheckoutURL  string                 `json:"checkout_url,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

// ToPaymentResponse maps a domain payment to its API view
func ToPaymentResponse(p *ordering.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		OrderID:      p.OrderID,
		GatewayID:    p.GatewayID,
		Type:         p.Type,
		Status:       p.Status,
		Amount:       p.Amount,
		RefundAmount: p.RefundAmount,
		PaidAt:       p.PaidAt,
		CreatedAt:    p.CreatedAt,
	}
}

// KanbanColumn groups orders that share a board column
type KanbanColumn struct {
	Cards []KanbanCard `json:"cards"`
	Total int          `json:"total"`
}

// KanbanCard is one order on the kanban board with its panel and payment summary
type KanbanCard struct {
	Order       OrderResponse   `json:"order"`
	Panels      []PanelResponse `json:"panels"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	IsPaid      bool            `json:"is_paid"`
	IsLate      bool            `json:"is_late"`
}

// KanbanResponse is the grouped board view
type KanbanResponse struct {
	Pending    KanbanColumn `json:"pending"`
	Producing  KanbanColumn `json:"producing"`
	Delivering KanbanColumn `json:"delivering"`
}

// CreateOrderRequest creates an order from a paid checkout
type CreateOrderRequest struct {
	OrderNumber     string
	CustomerID      uuid.UUID
	CustomerName    string
	ProductID       uuid.UUID
	ProductName     string
	DeliveryUntil   time.Time
	DeliveryPeriod  ordering.DeliveryPeriod
	DeliveryAddress string
	Remark          string
}

// CreatePanelRequest offers an order to a supplier
type CreatePanelRequest struct {
	OrderID    uuid.UUID
	SupplierID uuid.UUID
	Freight    decimal.Decimal
}

// CreatePaymentRequest opens a charge for an order
type CreatePaymentRequest struct {
	OrderID    uuid.UUID
	Type       ordering.PaymentType
	Amount     decimal.Decimal
	PayerEmail string
}
