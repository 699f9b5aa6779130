package conversion

import (
	"time"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/shared"
)

// MessageType identifies where in the engagement sequence a message sits.
// The WELLCOME spelling matches the value persisted by the legacy system.
type MessageType string

const (
	MessageTypeWelcome       MessageType = "WELLCOME"
	MessageTypeSecondAttempt MessageType = "SECOND_ATTEMPT"
	MessageTypeFeedback      MessageType = "FEEDBACK"
)

// IsValid checks if the type is a valid MessageType
func (t MessageType) IsValid() bool {
	switch t {
	case MessageTypeWelcome, MessageTypeSecondAttempt, MessageTypeFeedback:
		return true
	}
	return false
}

// ConversionMessage records one outbound engagement message tied to a form.
// Records are append-only; only the feedback webhook writes back a reply.
type ConversionMessage struct {
	shared.BaseEntity
	FormID     uuid.UUID   `gorm:"type:uuid;not null;index"`
	Type       MessageType `gorm:"type:varchar(20);not null;index:idx_conversion_messages_form_type"`
	ExternalID string      `gorm:"type:varchar(100);not null;uniqueIndex"`
	SessionID  string      `gorm:"type:varchar(100);index"`
	RepliedAt  *time.Time
	ReplyText  string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ConversionMessage) TableName() string {
	return "conversion_messages"
}

// NewConversionMessage records an outbound message
func NewConversionMessage(formID uuid.UUID, messageType MessageType, externalID, sessionID string) (*ConversionMessage, error) {
	if formID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FORM", "Formulário é obrigatório")
	}
	if !messageType.IsValid() {
		return nil, shared.NewDomainError("INVALID_MESSAGE_TYPE", "Tipo de mensagem inválido")
	}
	if externalID == "" {
		return nil, shared.NewDomainError("INVALID_EXTERNAL_ID", "Identificador externo é obrigatório")
	}

	return &ConversionMessage{
		BaseEntity: shared.NewBaseEntity(),
		FormID:     formID,
		Type:       messageType,
		ExternalID: externalID,
		SessionID:  sessionID,
	}, nil
}

// RecordReply stores the customer's reply to a feedback prompt
func (m *ConversionMessage) RecordReply(text string, at time.Time) error {
	if m.RepliedAt != nil {
		return shared.ErrAlreadyProcessed
	}
	m.RepliedAt = &at
	m.ReplyText = text
	m.UpdatedAt = time.Now()
	return nil
}

// HasReply returns true once a reply was recorded
func (m *ConversionMessage) HasReply() bool {
	return m.RepliedAt != nil
}
