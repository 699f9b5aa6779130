package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/conversion"
	"github.com/petalia/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormFormRepository implements FormRepository using GORM
type GormFormRepository struct {
	db *gorm.DB
}

// NewGormFormRepository creates a new GormFormRepository
func NewGormFormRepository(db *gorm.DB) *GormFormRepository {
	return &GormFormRepository{db: db}
}

// FindByID finds a form by its ID
func (r *GormFormRepository) FindByID(ctx context.Context, id uuid.UUID) (*conversion.Form, error) {
	var form conversion.Form
	if err := r.db.WithContext(ctx).First(&form, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &form, nil
}

// FindByPhone finds the most recent form submitted from a phone number
func (r *GormFormRepository) FindByPhone(ctx context.Context, phone string) (*conversion.Form, error) {
	var form conversion.Form
	if err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		Order("created_at DESC").
		First(&form).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &form, nil
}

// FindAll finds forms with filtering and pagination
func (r *GormFormRepository) FindAll(ctx context.Context, filter shared.Filter) ([]conversion.Form, int64, error) {
	query := r.db.WithContext(ctx).Model(&conversion.Form{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR phone LIKE ?", pattern, pattern)
	}
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var forms []conversion.Form
	if err := applyPagination(query, filter, "created_at DESC").Find(&forms).Error; err != nil {
		return nil, 0, err
	}
	return forms, total, nil
}

// Save creates or updates a form
func (r *GormFormRepository) Save(ctx context.Context, form *conversion.Form) error {
	return r.db.WithContext(ctx).Save(form).Error
}

// Ensure GormFormRepository implements FormRepository
var _ conversion.FormRepository = (*GormFormRepository)(nil)
