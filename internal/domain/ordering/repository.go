package ordering

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderRepository defines persistence operations for orders
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByNumber(ctx context.Context, orderNumber string) (*Order, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, int64, error)
	FindByStatuses(ctx context.Context, statuses []OrderStatus) ([]Order, error)
	FindLate(ctx context.Context, now time.Time) ([]Order, error)
	Save(ctx context.Context, order *Order) error

	// StartRoute moves PRODUCING_PREPARATION to DELIVERING_ON_ROUTE as a
	// guarded conditional update. Returns shared.ErrAlreadyProcessed when the
	// order is no longer in the expected status.
	StartRoute(ctx context.Context, orderID uuid.UUID) error

	// Finalize moves DELIVERING_DELIVERED to FINALIZED as a guarded
	// conditional update. Payment and cost gates are checked by the caller
	// before invoking this.
	Finalize(ctx context.Context, orderID uuid.UUID) error
}

// SupplierPanelRepository defines persistence operations for supplier panels.
//
// The transition methods implement the compound conditional update of the
// lifecycle workflow: each runs one transaction issuing guarded UPDATEs on
// both the panel and its parent order; when either guard matches zero rows
// the transaction rolls back and shared.ErrAlreadyProcessed (or ErrNotFound
// for the admin cancel) is returned. Concurrent duplicates therefore cannot
// both succeed.
type SupplierPanelRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SupplierPanel, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]SupplierPanel, error)
	FindConfirmedByOrderID(ctx context.Context, orderID uuid.UUID) (*SupplierPanel, error)
	FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) ([]SupplierPanel, int64, error)
	Save(ctx context.Context, panel *SupplierPanel) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetCost(ctx context.Context, id uuid.UUID, cost decimal.Decimal) error

	// Approve: panel WAITING + order PENDING_WAITING ⇒ CONFIRMED + PRODUCING_PREPARATION
	Approve(ctx context.Context, panelID uuid.UUID) (*SupplierPanel, error)

	// CancelWaiting: panel WAITING + order PENDING_WAITING ⇒ CANCELLED + PENDING_CANCELLED
	CancelWaiting(ctx context.Context, panelID uuid.UUID, reason string) (*SupplierPanel, error)

	// CancelConfirmed: panel CONFIRMED ⇒ CANCELLED(+reason), order ⇒ PENDING_CANCELLED
	CancelConfirmed(ctx context.Context, panelID uuid.UUID, reason string) (*SupplierPanel, error)

	// ConfirmDelivery: panel CONFIRMED + order DELIVERING_ON_ROUTE ⇒ delivery
	// recorded + DELIVERING_DELIVERED
	ConfirmDelivery(ctx context.Context, panelID uuid.UUID, receiverName string, deliveredAt time.Time) (*SupplierPanel, error)

	// Expire: same guard as CancelWaiting, reason fixed to the expiry marker
	Expire(ctx context.Context, panelID uuid.UUID) (*SupplierPanel, error)
}

// PaymentRepository defines persistence operations for payments
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]Payment, error)
	FindByGatewayID(ctx context.Context, gatewayID string) (*Payment, error)
	Save(ctx context.Context, payment *Payment) error

	// MarkPaid transitions ACTIVE to PAID as a guarded conditional update
	MarkPaid(ctx context.Context, paymentID uuid.UUID, paidAt time.Time) error

	// CancelActive transitions ACTIVE to CANCELLED, recording the refund
	CancelActive(ctx context.Context, paymentID uuid.UUID, refund decimal.Decimal) error
}
