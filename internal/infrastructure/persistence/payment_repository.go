package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/ordering"
	"github.com/petalia/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Payment, error) {
	var payment ordering.Payment
	if err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindByOrderID finds all payments of an order, oldest first
func (r *GormPaymentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]ordering.Payment, error) {
	var payments []ordering.Payment
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// FindByGatewayID finds a payment by its checkout provider reference
func (r *GormPaymentRepository) FindByGatewayID(ctx context.Context, gatewayID string) (*ordering.Payment, error) {
	var payment ordering.Payment
	if err := r.db.WithContext(ctx).First(&payment, "gateway_id = ?", gatewayID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *ordering.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// MarkPaid transitions ACTIVE to PAID. Zero matched rows means the payment
// was already settled or cancelled, so duplicate gateway notifications are
// absorbed here.
func (r *GormPaymentRepository) MarkPaid(ctx context.Context, paymentID uuid.UUID, paidAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&ordering.Payment{}).
		Where("id = ? AND status = ?", paymentID, ordering.PaymentStatusActive).
		Updates(map[string]any{
			"status":     ordering.PaymentStatusPaid,
			"paid_at":    paidAt,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.zeroRowOutcome(ctx, paymentID)
	}
	return nil
}

// CancelActive transitions ACTIVE to CANCELLED, recording the refunded amount
func (r *GormPaymentRepository) CancelActive(ctx context.Context, paymentID uuid.UUID, refund decimal.Decimal) error {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&ordering.Payment{}).
		Where("id = ? AND status = ?", paymentID, ordering.PaymentStatusActive).
		Updates(map[string]any{
			"status":        ordering.PaymentStatusCancelled,
			"refund_amount": refund,
			"cancelled_at":  now,
			"updated_at":    now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.zeroRowOutcome(ctx, paymentID)
	}
	return nil
}

func (r *GormPaymentRepository) zeroRowOutcome(ctx context.Context, paymentID uuid.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ordering.Payment{}).
		Where("id = ?", paymentID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return shared.ErrNotFound
	}
	return shared.ErrAlreadyProcessed
}

// Ensure GormPaymentRepository implements PaymentRepository
var _ ordering.PaymentRepository = (*GormPaymentRepository)(nil)
