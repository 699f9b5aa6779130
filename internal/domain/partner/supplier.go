package partner

import (
	"time"

	"github.com/petalia/backend/internal/domain/shared"
)

// Supplier is a fulfillment partner reachable through the messaging bridge.
// The JID is the supplier's messaging address.
type Supplier struct {
	shared.BaseAggregateRoot
	Name          string `gorm:"type:varchar(200);not null"`
	JID           string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Phone         string `gorm:"type:varchar(50)"`
	City          string `gorm:"type:varchar(100);index"`
	IsRatified    bool   `gorm:"not null;default:false"`
	DisabledUntil *time.Time
	Notes         string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a supplier
func NewSupplier(name, jid, phone, city string) (*Supplier, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Nome do fornecedor é obrigatório")
	}
	if jid == "" {
		return nil, shared.NewDomainError("INVALID_JID", "Endereço de mensagem (JID) é obrigatório")
	}

	return &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		JID:               jid,
		Phone:             phone,
		City:              city,
	}, nil
}

// Update changes the supplier's contact fields
func (s *Supplier) Update(name, jid, phone, city, notes string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Nome do fornecedor é obrigatório")
	}
	if jid == "" {
		return shared.NewDomainError("INVALID_JID", "Endereço de mensagem (JID) é obrigatório")
	}

	s.Name = name
	s.JID = jid
	s.Phone = phone
	s.City = city
	s.Notes = notes
	s.UpdatedAt = time.Now()

	return nil
}

// Ratify marks the supplier as vetted for automatic assignment
func (s *Supplier) Ratify() {
	s.IsRatified = true
	s.UpdatedAt = time.Now()
}

// Unratify removes the supplier from automatic assignment
func (s *Supplier) Unratify() {
	s.IsRatified = false
	s.UpdatedAt = time.Now()
}

// DisableUntil pauses the supplier until the given time
func (s *Supplier) DisableUntil(until time.Time) error {
	if until.Before(time.Now()) {
		return shared.NewDomainError("INVALID_DATE", "Data de pausa deve estar no futuro")
	}
	s.DisabledUntil = &until
	s.UpdatedAt = time.Now()
	return nil
}

// Enable clears the pause window
func (s *Supplier) Enable() {
	s.DisabledUntil = nil
	s.UpdatedAt = time.Now()
}

// IsAvailable returns true if the supplier can receive panels now
func (s *Supplier) IsAvailable(now time.Time) bool {
	return s.DisabledUntil == nil || now.After(*s.DisabledUntil)
}
