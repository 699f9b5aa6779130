package ordering

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PanelStatus represents the status of a supplier panel
type PanelStatus string

const (
	PanelStatusWaiting   PanelStatus = "WAITING"
	PanelStatusConfirmed PanelStatus = "CONFIRMED"
	PanelStatusCancelled PanelStatus = "CANCELLED"
)

// ExpiryCancelReason is recorded on panels cancelled because the response
// window elapsed without an answer from the supplier.
const ExpiryCancelReason = "Painel expirado sem resposta do fornecedor"

// IsValid checks if the status is a valid PanelStatus
func (s PanelStatus) IsValid() bool {
	switch s {
	case PanelStatusWaiting, PanelStatusConfirmed, PanelStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of PanelStatus
func (s PanelStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s PanelStatus) CanTransitionTo(target PanelStatus) bool {
	switch s {
	case PanelStatusWaiting:
		return target == PanelStatusConfirmed || target == PanelStatusCancelled
	case PanelStatusConfirmed:
		return target == PanelStatusCancelled
	case PanelStatusCancelled:
		return false // Terminal state
	}
	return false
}

// SupplierPanel is a supplier's assignment to fulfill a specific order.
// At most one non-cancelled panel may be CONFIRMED per order.
type SupplierPanel struct {
	shared.BaseAggregateRoot
	OrderID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	SupplierID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	Cost         *decimal.Decimal `gorm:"type:decimal(18,2)"`
	Freight      decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	Status       PanelStatus      `gorm:"type:varchar(20);not null;default:'WAITING';index"`
	ExpiresAt    time.Time        `gorm:"not null"`
	ConfirmedAt  *time.Time
	DeliveredAt  *time.Time
	ReceiverName string `gorm:"type:varchar(200)"`
	PhotoKey     string `gorm:"type:varchar(500)"`
	CancelledAt  *time.Time
	CancelReason string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SupplierPanel) TableName() string {
	return "supplier_panels"
}

// NewSupplierPanel offers an order to a supplier, expiring after the given window
func NewSupplierPanel(orderID, supplierID uuid.UUID, freight decimal.Decimal, expiresAt time.Time) (*SupplierPanel, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Pedido é obrigatório")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Fornecedor é obrigatório")
	}
	if freight.IsNegative() {
		return nil, shared.NewDomainError("INVALID_FREIGHT", "Frete não pode ser negativo")
	}
	if expiresAt.IsZero() {
		return nil, shared.NewDomainError("INVALID_EXPIRATION", "Prazo de expiração é obrigatório")
	}

	panel := &SupplierPanel{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderID:           orderID,
		SupplierID:        supplierID,
		Freight:           freight,
		Status:            PanelStatusWaiting,
		ExpiresAt:         expiresAt,
	}

	panel.AddDomainEvent(NewPanelCreatedEvent(panel))

	return panel, nil
}

// Confirm accepts the assignment, transitioning WAITING to CONFIRMED
func (p *SupplierPanel) Confirm() error {
	if !p.Status.CanTransitionTo(PanelStatusConfirmed) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Painel em %s não pode ser confirmado", p.Status))
	}

	now := time.Now()
	p.Status = PanelStatusConfirmed
	p.ConfirmedAt = &now
	p.UpdatedAt = now

	p.AddDomainEvent(NewPanelConfirmedEvent(p))

	return nil
}

// Cancel rejects or revokes the assignment. Reason is required when the panel
// was already CONFIRMED (admin cancellation), optional while WAITING.
func (p *SupplierPanel) Cancel(reason string) error {
	if !p.Status.CanTransitionTo(PanelStatusCancelled) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Painel em %s não pode ser cancelado", p.Status))
	}
	if p.Status == PanelStatusConfirmed && reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Motivo do cancelamento é obrigatório")
	}

	now := time.Now()
	p.Status = PanelStatusCancelled
	p.CancelledAt = &now
	p.CancelReason = reason
	p.UpdatedAt = now

	p.AddDomainEvent(NewPanelCancelledEvent(p))

	return nil
}

// ConfirmDelivery records who received the order. Only a CONFIRMED panel whose
// delivery has not yet been registered may confirm delivery.
func (p *SupplierPanel) ConfirmDelivery(receiverName string, deliveredAt time.Time) error {
	if p.Status != PanelStatusConfirmed {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Painel em %s não pode registrar entrega", p.Status))
	}
	if p.DeliveredAt != nil {
		return shared.ErrAlreadyProcessed
	}
	if receiverName == "" {
		return shared.NewDomainError("INVALID_RECEIVER", "Nome de quem recebeu é obrigatório")
	}

	p.DeliveredAt = &deliveredAt
	p.ReceiverName = receiverName
	p.UpdatedAt = time.Now()

	p.AddDomainEvent(NewPanelDeliveredEvent(p))

	return nil
}

// SetCost defines or adjusts the supplier cost. Not allowed once cancelled.
func (p *SupplierPanel) SetCost(cost decimal.Decimal) error {
	if p.Status == PanelStatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Painel cancelado não pode ter custo alterado")
	}
	if cost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Custo não pode ser negativo")
	}

	p.Cost = &cost
	p.UpdatedAt = time.Now()

	return nil
}

// SetPhotoKey records the storage key of the arrangement photo
func (p *SupplierPanel) SetPhotoKey(key string) {
	p.PhotoKey = key
	p.UpdatedAt = time.Now()
}

// HasDefinedCost returns true when the supplier cost has been set
func (p *SupplierPanel) HasDefinedCost() bool {
	return p.Cost != nil
}

// IsWaiting returns true while the supplier has not responded
func (p *SupplierPanel) IsWaiting() bool {
	return p.Status == PanelStatusWaiting
}

// IsConfirmed returns true once the supplier accepted the assignment
func (p *SupplierPanel) IsConfirmed() bool {
	return p.Status == PanelStatusConfirmed
}

// IsCancelled returns true for terminally rejected/revoked panels
func (p *SupplierPanel) IsCancelled() bool {
	return p.Status == PanelStatusCancelled
}

// IsExpired returns true when the response window elapsed without an answer
func (p *SupplierPanel) IsExpired(now time.Time) bool {
	return p.Status == PanelStatusWaiting && now.After(p.ExpiresAt)
}
