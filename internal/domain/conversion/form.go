package conversion

import (
	"time"

	"github.com/petalia/backend/internal/domain/shared"
)

// FormStatus represents the conversion status of a lead form
type FormStatus string

const (
	FormStatusNotConverted FormStatus = "NOT_CONVERTED"
	FormStatusInContact    FormStatus = "IN_CONTACT"
	FormStatusConverted    FormStatus = "CONVERTED"
	FormStatusCancelled    FormStatus = "CANCELLED"
)

// IsValid checks if the status is a valid FormStatus
func (s FormStatus) IsValid() bool {
	switch s {
	case FormStatusNotConverted, FormStatusInContact, FormStatusConverted, FormStatusCancelled:
		return true
	}
	return false
}

// Form is a customer lead submitted through the contact form.
// The conversion workflow reads and updates it; creation happens upstream.
type Form struct {
	shared.BaseAggregateRoot
	Name         string     `gorm:"type:varchar(200)"`
	Phone        string     `gorm:"type:varchar(50);not null;index"`
	Email        string     `gorm:"type:varchar(200)"`
	Status       FormStatus `gorm:"type:varchar(20);not null;default:'NOT_CONVERTED';index"`
	CancelReason string     `gorm:"type:text"`
	ConvertedAt  *time.Time
}

// TableName returns the table name for GORM
func (Form) TableName() string {
	return "forms"
}

// NewForm creates a form in NOT_CONVERTED status
func NewForm(name, phone, email string) (*Form, error) {
	if phone == "" {
		return nil, shared.NewDomainError("INVALID_PHONE", "Telefone é obrigatório")
	}

	return &Form{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Phone:             phone,
		Email:             email,
		Status:            FormStatusNotConverted,
	}, nil
}

// MarkInContact records that staff engaged the lead
func (f *Form) MarkInContact() error {
	if f.Status != FormStatusNotConverted {
		return shared.ErrInvalidState
	}
	f.Status = FormStatusInContact
	f.UpdatedAt = time.Now()
	return nil
}

// MarkConverted records that the lead became a customer
func (f *Form) MarkConverted() error {
	if f.Status == FormStatusConverted || f.Status == FormStatusCancelled {
		return shared.ErrInvalidState
	}
	now := time.Now()
	f.Status = FormStatusConverted
	f.ConvertedAt = &now
	f.UpdatedAt = now
	return nil
}

// Cancel closes the lead with a reason
func (f *Form) Cancel(reason string) error {
	if f.Status == FormStatusConverted || f.Status == FormStatusCancelled {
		return shared.ErrInvalidState
	}
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Motivo do cancelamento é obrigatório")
	}
	f.Status = FormStatusCancelled
	f.CancelReason = reason
	f.UpdatedAt = time.Now()
	return nil
}

// IsOpen returns true while the lead can still be worked
func (f *Form) IsOpen() bool {
	return f.Status == FormStatusNotConverted || f.Status == FormStatusInContact
}
