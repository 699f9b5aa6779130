package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/conversion"
	"github.com/petalia/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormConversionMessageRepository implements ConversionMessageRepository using GORM
type GormConversionMessageRepository struct {
	db *gorm.DB
}

// NewGormConversionMessageRepository creates a new GormConversionMessageRepository
func NewGormConversionMessageRepository(db *gorm.DB) *GormConversionMessageRepository {
	return &GormConversionMessageRepository{db: db}
}

// FindByExternalID finds a message by the provider's message ID
func (r *GormConversionMessageRepository) FindByExternalID(ctx context.Context, externalID string) (*conversion.ConversionMessage, error) {
	var message conversion.ConversionMessage
	if err := r.db.WithContext(ctx).First(&message, "external_id = ?", externalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &message, nil
}

// FindByFormID finds all messages sent for a form, oldest first
func (r *GormConversionMessageRepository) FindByFormID(ctx context.Context, formID uuid.UUID) ([]conversion.ConversionMessage, error) {
	var messages []conversion.ConversionMessage
	if err := r.db.WithContext(ctx).
		Where("form_id = ?", formID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// FindByFormAndType finds the message of a given workflow step for a form.
// At most one message per (form, type) is ever recorded.
func (r *GormConversionMessageRepository) FindByFormAndType(ctx context.Context, formID uuid.UUID, messageType conversion.MessageType) (*conversion.ConversionMessage, error) {
	var message conversion.ConversionMessage
	if err := r.db.WithContext(ctx).
		Where("form_id = ? AND type = ?", formID, messageType).
		First(&message).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &message, nil
}

// Save creates or updates a message record
func (r *GormConversionMessageRepository) Save(ctx context.Context, message *conversion.ConversionMessage) error {
	return r.db.WithContext(ctx).Save(message).Error
}

// Ensure GormConversionMessageRepository implements ConversionMessageRepository
var _ conversion.ConversionMessageRepository = (*GormConversionMessageRepository)(nil)
