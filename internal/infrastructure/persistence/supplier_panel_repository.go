package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/ordering"
	"github.com/petalia/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormSupplierPanelRepository implements SupplierPanelRepository using GORM.
//
// Each lifecycle transition runs one transaction with UPDATEs guarded by the
// expected current status of both the panel and its order. A zero-row match
// on either guard rolls the transaction back, so two racing requests cannot
// both succeed.
type GormSupplierPanelRepository struct {
	db *gorm.DB
}

// NewGormSupplierPanelRepository creates a new GormSupplierPanelRepository
func NewGormSupplierPanelRepository(db *gorm.DB) *GormSupplierPanelRepository {
	return &GormSupplierPanelRepository{db: db}
}

// FindByID finds a panel by its ID
func (r *GormSupplierPanelRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.SupplierPanel, error) {
	var panel ordering.SupplierPanel
	if err := r.db.WithContext(ctx).First(&panel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &panel, nil
}

// FindByOrderID finds all panels of an order, newest first
func (r *GormSupplierPanelRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]ordering.SupplierPanel, error) {
	var panels []ordering.SupplierPanel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&panels).Error; err != nil {
		return nil, err
	}
	return panels, nil
}

// FindConfirmedByOrderID finds the confirmed panel of an order
func (r *GormSupplierPanelRepository) FindConfirmedByOrderID(ctx context.Context, orderID uuid.UUID) (*ordering.SupplierPanel, error) {
	var panel ordering.SupplierPanel
	if err := r.db.WithContext(ctx).
		Where("order_id = ? AND status = ?", orderID, ordering.PanelStatusConfirmed).
		First(&panel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &panel, nil
}

// FindBySupplier finds panels assigned to a supplier
func (r *GormSupplierPanelRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) ([]ordering.SupplierPanel, int64, error) {
	query := r.db.WithContext(ctx).Model(&ordering.SupplierPanel{}).Where("supplier_id = ?", supplierID)
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var panels []ordering.SupplierPanel
	if err := applyPagination(query, filter, "created_at DESC").Find(&panels).Error; err != nil {
		return nil, 0, err
	}
	return panels, total, nil
}

// Save creates or updates a panel
func (r *GormSupplierPanelRepository) Save(ctx context.Context, panel *ordering.SupplierPanel) error {
	return r.db.WithContext(ctx).Save(panel).Error
}

// Delete removes a panel
func (r *GormSupplierPanelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ordering.SupplierPanel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// SetCost updates the supplier cost of a non-cancelled panel
func (r *GormSupplierPanelRepository) SetCost(ctx context.Context, id uuid.UUID, cost decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&ordering.SupplierPanel{}).
		Where("id = ? AND status <> ?", id, ordering.PanelStatusCancelled).
		Updates(map[string]any{
			"cost":       cost,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Approve confirms a WAITING panel and moves the PENDING_WAITING order to
// PRODUCING_PREPARATION.
func (r *GormSupplierPanelRepository) Approve(ctx context.Context, panelID uuid.UUID) (*ordering.SupplierPanel, error) {
	now := time.Now()
	err := r.transition(ctx, panelID,
		guard{
			panelStatus: ordering.PanelStatusWaiting,
			panelUpdates: map[string]any{
				"status":       ordering.PanelStatusConfirmed,
				"confirmed_at": now,
				"updated_at":   now,
			},
			orderStatus: ordering.OrderStatusPendingWaiting,
			orderUpdates: map[string]any{
				"status":       ordering.OrderStatusProducingPreparation,
				"producing_at": now,
				"updated_at":   now,
			},
			zeroRows: shared.ErrAlreadyProcessed,
		})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, panelID)
}

// CancelWaiting cancels a WAITING panel and the PENDING_WAITING order
func (r *GormSupplierPanelRepository) CancelWaiting(ctx context.Context, panelID uuid.UUID, reason string) (*ordering.SupplierPanel, error) {
	if _, err := r.cancelWaitingPair(ctx, panelID, reason); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, panelID)
}

// Expire cancels a WAITING panel whose response window elapsed. Same guard
// as CancelWaiting with the expiry marker as the persisted reason.
func (r *GormSupplierPanelRepository) Expire(ctx context.Context, panelID uuid.UUID) (*ordering.SupplierPanel, error) {
	if _, err := r.cancelWaitingPair(ctx, panelID, ordering.ExpiryCancelReason); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, panelID)
}

// CancelConfirmed cancels a CONFIRMED panel with a reason. Only the panel
// status is guarded; the order is cancelled whatever stage it reached.
// A zero-row match reads as the panel not existing in a cancellable state.
func (r *GormSupplierPanelRepository) CancelConfirmed(ctx context.Context, panelID uuid.UUID, reason string) (*ordering.SupplierPanel, error) {
	now := time.Now()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var panel ordering.SupplierPanel
		if err := tx.First(&panel, "id = ?", panelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		result := tx.Model(&ordering.SupplierPanel{}).
			Where("id = ? AND status = ?", panelID, ordering.PanelStatusConfirmed).
			Updates(map[string]any{
				"status":        ordering.PanelStatusCancelled,
				"cancelled_at":  now,
				"cancel_reason": reason,
				"updated_at":    now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}

		return tx.Model(&ordering.Order{}).
			Where("id = ?", panel.OrderID).
			Updates(map[string]any{
				"status":        ordering.OrderStatusPendingCancelled,
				"cancelled_at":  now,
				"cancel_reason": reason,
				"updated_at":    now,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, panelID)
}

// ConfirmDelivery records the delivery on a CONFIRMED panel and moves the
// DELIVERING_ON_ROUTE order to DELIVERING_DELIVERED.
func (r *GormSupplierPanelRepository) ConfirmDelivery(ctx context.Context, panelID uuid.UUID, receiverName string, deliveredAt time.Time) (*ordering.SupplierPanel, error) {
	if strings.TrimSpace(receiverName) == "" {
		return nil, shared.NewDomainError("INVALID_RECEIVER", "Nome de quem recebeu é obrigatório")
	}

	now := time.Now()
	err := r.transition(ctx, panelID,
		guard{
			panelStatus:      ordering.PanelStatusConfirmed,
			panelExtraClause: "delivered_at IS NULL",
			panelUpdates: map[string]any{
				"delivered_at":  deliveredAt,
				"receiver_name": receiverName,
				"updated_at":    now,
			},
			orderStatus: ordering.OrderStatusDeliveringOnRoute,
			orderUpdates: map[string]any{
				"status":       ordering.OrderStatusDeliveringDelivered,
				"delivered_at": deliveredAt,
				"updated_at":   now,
			},
			zeroRows: shared.ErrAlreadyProcessed,
		})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, panelID)
}

// guard describes one compound conditional update over a panel and its order
type guard struct {
	panelStatus      ordering.PanelStatus
	panelExtraClause string
	panelUpdates     map[string]any
	orderStatus      ordering.OrderStatus
	orderUpdates     map[string]any
	zeroRows         error
}

func (r *GormSupplierPanelRepository) transition(ctx context.Context, panelID uuid.UUID, g guard) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var panel ordering.SupplierPanel
		if err := tx.First(&panel, "id = ?", panelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		panelQuery := tx.Model(&ordering.SupplierPanel{}).
			Where("id = ? AND status = ?", panelID, g.panelStatus)
		if g.panelExtraClause != "" {
			panelQuery = panelQuery.Where(g.panelExtraClause)
		}
		result := panelQuery.Updates(g.panelUpdates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return g.zeroRows
		}

		result = tx.Model(&ordering.Order{}).
			Where("id = ? AND status = ?", panel.OrderID, g.orderStatus).
			Updates(g.orderUpdates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return g.zeroRows
		}
		return nil
	})
}

func (r *GormSupplierPanelRepository) cancelWaitingPair(ctx context.Context, panelID uuid.UUID, reason string) (uuid.UUID, error) {
	now := time.Now()
	err := r.transition(ctx, panelID,
		guard{
			panelStatus: ordering.PanelStatusWaiting,
			panelUpdates: map[string]any{
				"status":        ordering.PanelStatusCancelled,
				"cancelled_at":  now,
				"cancel_reason": reason,
				"updated_at":    now,
			},
			orderStatus: ordering.OrderStatusPendingWaiting,
			orderUpdates: map[string]any{
				"status":        ordering.OrderStatusPendingCancelled,
				"cancelled_at":  now,
				"cancel_reason": reason,
				"updated_at":    now,
			},
			zeroRows: shared.ErrAlreadyProcessed,
		})
	return panelID, err
}

// Ensure GormSupplierPanelRepository implements SupplierPanelRepository
var _ ordering.SupplierPanelRepository = (*GormSupplierPanelRepository)(nil)
