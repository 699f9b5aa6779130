package conversion

import (
	"context"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/shared"
)

// FormRepository defines persistence operations for lead forms
type FormRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Form, error)
	FindByPhone(ctx context.Context, phone string) (*Form, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Form, int64, error)
	Save(ctx context.Context, form *Form) error
}

// ConversionMessageRepository defines persistence operations for sent messages
type ConversionMessageRepository interface {
	FindByExternalID(ctx context.Context, externalID string) (*ConversionMessage, error)
	FindByFormID(ctx context.Context, formID uuid.UUID) ([]ConversionMessage, error)
	FindByFormAndType(ctx context.Context, formID uuid.UUID, messageType MessageType) (*ConversionMessage, error)
	Save(ctx context.Context, message *ConversionMessage) error
}
