package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusActive    PaymentStatus = "ACTIVE"
	PaymentStatusPaid      PaymentStatus = "PAID"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

// IsValid checks if the status is a valid PaymentStatus
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusActive, PaymentStatusPaid, PaymentStatusCancelled:
		return true
	}
	return false
}

// PaymentType represents the payment method
type PaymentType string

const (
	PaymentTypeCardCredit PaymentType = "CARD_CREDIT"
	PaymentTypePix        PaymentType = "PIX"
	PaymentTypePixCNPJ    PaymentType = "PIX_CNPJ"
	PaymentTypeBoleto     PaymentType = "BOLETO"
)

// IsValid checks if the type is a valid PaymentType
func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentTypeCardCredit, PaymentTypePix, PaymentTypePixCNPJ, PaymentTypeBoleto:
		return true
	}
	return false
}

// IsRequired returns true for payment methods that must clear before an
// order can be finalized. Boleto settles after the fact and is excluded.
func (t PaymentType) IsRequired() bool {
	switch t {
	case PaymentTypeCardCredit, PaymentTypePix, PaymentTypePixCNPJ:
		return true
	}
	return false
}

// Payment is a monetary charge or refund tied to an order.
// Payments are never deleted; they transition ACTIVE to PAID or ACTIVE to
// CANCELLED.
type Payment struct {
	shared.BaseEntity
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	GatewayID    string          `gorm:"type:varchar(100);index"`
	Type         PaymentType     `gorm:"type:varchar(20);not null"`
	Status       PaymentStatus   `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	RefundAmount decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	PaidAt       *time.Time
	CancelledAt  *time.Time
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment creates a payment in ACTIVE status
func NewPayment(orderID uuid.UUID, paymentType PaymentType, amount decimal.Decimal) (*Payment, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Pedido é obrigatório")
	}
	if !paymentType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_TYPE", "Forma de pagamento inválida")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Valor deve ser positivo")
	}

	return &Payment{
		BaseEntity:   shared.NewBaseEntity(),
		OrderID:      orderID,
		Type:         paymentType,
		Status:       PaymentStatusActive,
		Amount:       amount,
		RefundAmount: decimal.Zero,
	}, nil
}

// MarkPaid transitions ACTIVE to PAID
func (p *Payment) MarkPaid(paidAt time.Time) error {
	if p.Status != PaymentStatusActive {
		return shared.ErrAlreadyProcessed
	}

	p.Status = PaymentStatusPaid
	p.PaidAt = &paidAt
	p.UpdatedAt = time.Now()

	return nil
}

// Cancel transitions ACTIVE to CANCELLED, recording an optional refund amount
func (p *Payment) Cancel(refund decimal.Decimal) error {
	if p.Status != PaymentStatusActive {
		return shared.ErrAlreadyProcessed
	}
	if refund.IsNegative() || refund.GreaterThan(p.Amount) {
		return shared.NewDomainError("INVALID_REFUND", "Valor de estorno inválido")
	}

	now := time.Now()
	p.Status = PaymentStatusCancelled
	p.RefundAmount = refund
	p.CancelledAt = &now
	p.UpdatedAt = now

	return nil
}

// NetAmount returns the amount minus any refunded portion
func (p *Payment) NetAmount() decimal.Decimal {
	return p.Amount.Sub(p.RefundAmount)
}

// HasRequiredPayments reports whether any ACTIVE payment uses a method that
// must clear before the order can be finalized.
func HasRequiredPayments(payments []Payment) bool {
	for _, p := range payments {
		if p.Status == PaymentStatusActive && p.Type.IsRequired() {
			return true
		}
	}
	return false
}

// IsPaid reports whether the order's payments are fully settled: no ACTIVE
// payment remains and at least one payment reached PAID.
func IsPaid(payments []Payment) bool {
	paid := false
	for _, p := range payments {
		switch p.Status {
		case PaymentStatusActive:
			return false
		case PaymentStatusPaid:
			paid = true
		}
	}
	return paid
}

// HasPaidPayment reports whether at least one payment reached PAID
func HasPaidPayment(payments []Payment) bool {
	for _, p := range payments {
		if p.Status == PaymentStatusPaid {
			return true
		}
	}
	return false
}

// TotalAmount sums amount minus refund over ACTIVE and PAID payments
func TotalAmount(payments []Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.Status == PaymentStatusActive || p.Status == PaymentStatusPaid {
			total = total.Add(p.NetAmount())
		}
	}
	return total
}

// SettlementGate checks the finalize preconditions over the order's payments
// and the confirmed panel. It is deterministic and performs no I/O.
func SettlementGate(payments []Payment, confirmedPanel *SupplierPanel) error {
	if HasRequiredPayments(payments) {
		return shared.ErrPaymentPending
	}
	if !HasPaidPayment(payments) {
		return shared.ErrPaymentPending
	}
	if confirmedPanel == nil || !confirmedPanel.IsConfirmed() {
		return shared.NewDomainError("PANEL_NOT_CONFIRMED", "Pedido não possui painel confirmado")
	}
	if !confirmedPanel.HasDefinedCost() {
		return shared.ErrCostUndefined
	}
	return nil
}
