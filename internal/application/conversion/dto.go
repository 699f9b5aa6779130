package conversion

import (
	"time"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/conversion"
)

// FormResponse is the API view of a lead form
type FormResponse struct {
	ID           uuid.UUID             `json:"id"`
	Name         string                `json:"name,omitempty"`
	Phone        string                `json:"phone"`
	Email        string                `json:"email,omitempty"`
	Status       conversion.FormStatus `json:"status"`
	CancelReason string                `json:"cancel_reason,omitempty"`
	ConvertedAt  *time.Time            `json:"converted_at,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// ToFormResponse maps a domain form to its API view
func ToFormResponse(f *conversion.Form) FormResponse {
	return FormResponse{
		ID:           f.ID,
		Name:         f.Name,
		Phone:        f.Phone,
		Email:        f.Email,
		Status:       f.Status,
		CancelReason: f.CancelReason,
		ConvertedAt:  f.ConvertedAt,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

// MessageResponse is the API view of a sent engagement message
type MessageResponse struct {
	ID         uuid.UUID              `json:"id"`
	Type       conversion.MessageType `json:"type"`
	ExternalID string                 `json:"external_id"`
	SessionID  string                 `json:"session_id,omitempty"`
	RepliedAt  *time.Time             `json:"replied_at,omitempty"`
	ReplyText  string                 `json:"reply_text,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

// ToMessageResponse maps a domain message to its API view
func ToMessageResponse(m *conversion.ConversionMessage) MessageResponse {
	return MessageResponse{
		ID:         m.ID,
		Type:       m.Type,
		ExternalID: m.ExternalID,
		SessionID:  m.SessionID,
		RepliedAt:  m.RepliedAt,
		ReplyText:  m.ReplyText,
		CreatedAt:  m.CreatedAt,
	}
}

// FormDetailResponse is a form with its engagement history
type FormDetailResponse struct {
	FormResponse
	Messages []MessageResponse `json:"messages"`
}

// CreateFormRequest registers a lead from the public contact form
type CreateFormRequest struct {
	Name  string
	Phone string
	Email string
}
