package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/ordering"
	"github.com/petalia/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by its ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	var order ordering.Order
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByNumber finds an order by its business number
func (r *GormOrderRepository) FindByNumber(ctx context.Context, orderNumber string) (*ordering.Order, error) {
	var order ordering.Order
	if err := r.db.WithContext(ctx).First(&order, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll finds orders with filtering and pagination
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ordering.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&ordering.Order{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("order_number ILIKE ? OR customer_name ILIKE ?", pattern, pattern)
	}
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if customerID, ok := filter.Filters["customer_id"]; ok {
		query = query.Where("customer_id = ?", customerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []ordering.Order
	if err := applyPagination(query, filter, "created_at DESC").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// FindByStatuses finds all orders currently in any of the given statuses,
// ordered by delivery deadline for the kanban board.
func (r *GormOrderRepository) FindByStatuses(ctx context.Context, statuses []ordering.OrderStatus) ([]ordering.Order, error) {
	var orders []ordering.Order
	if err := r.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Order("delivery_until ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindLate finds non-terminal, non-delivered orders whose delivery deadline passed
func (r *GormOrderRepository) FindLate(ctx context.Context, now time.Time) ([]ordering.Order, error) {
	var orders []ordering.Order
	if err := r.db.WithContext(ctx).
		Where("delivery_until < ? AND status IN ?", now, []ordering.OrderStatus{
			ordering.OrderStatusPendingWaiting,
			ordering.OrderStatusProducingPreparation,
			ordering.OrderStatusDeliveringOnRoute,
		}).
		Order("delivery_until ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save creates or updates an order
func (r *GormOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// StartRoute moves PRODUCING_PREPARATION to DELIVERING_ON_ROUTE
func (r *GormOrderRepository) StartRoute(ctx context.Context, orderID uuid.UUID) error {
	now := time.Now()
	return r.guardedTransition(ctx, orderID,
		ordering.OrderStatusProducingPreparation,
		map[string]any{
			"status":      ordering.OrderStatusDeliveringOnRoute,
			"on_route_at": now,
			"updated_at":  now,
		})
}

// Finalize moves DELIVERING_DELIVERED to FINALIZED
func (r *GormOrderRepository) Finalize(ctx context.Context, orderID uuid.UUID) error {
	now := time.Now()
	return r.guardedTransition(ctx, orderID,
		ordering.OrderStatusDeliveringDelivered,
		map[string]any{
			"status":       ordering.OrderStatusFinalized,
			"finalized_at": now,
			"updated_at":   now,
		})
}

// guardedTransition updates the order only when it still holds the expected
// status. Zero rows means a concurrent request got there first.
func (r *GormOrderRepository) guardedTransition(ctx context.Context, orderID uuid.UUID, expected ordering.OrderStatus, updates map[string]any) error {
	result := r.db.WithContext(ctx).Model(&ordering.Order{}).
		Where("id = ? AND status = ?", orderID, expected).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&ordering.Order{}).
			Where("id = ?", orderID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return shared.ErrNotFound
		}
		return shared.ErrAlreadyProcessed
	}
	return nil
}

// Ensure GormOrderRepository implements OrderRepository
var _ ordering.OrderRepository = (*GormOrderRepository)(nil)
