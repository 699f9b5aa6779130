package partner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/partner"
	"github.com/petalia/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SupplierService manages fulfillment partners
type SupplierService struct {
	supplierRepo partner.SupplierRepository
	logger       *zap.Logger
}

// NewSupplierService creates a SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository, logger *zap.Logger) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo, logger: logger}
}

// Create registers a supplier. The JID must be unique across suppliers.
func (s *SupplierService) Create(ctx context.Context, req SupplierRequest) (*SupplierResponse, error) {
	if existing, err := s.supplierRepo.FindByJID(ctx, req.JID); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Já existe um fornecedor com este endereço de mensagem")
	}

	supplier, err := partner.NewSupplier(req.Name, req.JID, req.Phone, req.City)
	if err != nil {
		return nil, err
	}
	supplier.Notes = req.Notes

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// Update changes a supplier's contact fields
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, req SupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := supplier.Update(req.Name, req.JID, req.Phone, req.City, req.Notes); err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// GetByID loads a single supplier
func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// List returns a filtered page of suppliers
func (s *SupplierService) List(ctx context.Context, filter shared.Filter) ([]SupplierResponse, int64, error) {
	suppliers, total, err := s.supplierRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses, total, nil
}

// SetRatified marks or unmarks the supplier as vetted
func (s *SupplierService) SetRatified(ctx context.Context, id uuid.UUID, ratified bool) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ratified {
		supplier.Ratify()
	} else {
		supplier.Unratify()
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// Disable pauses the supplier until the given time; a zero time re-enables
func (s *SupplierService) Disable(ctx context.Context, id uuid.UUID, until time.Time) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if until.IsZero() {
		supplier.Enable()
	} else if err := supplier.DisableUntil(until); err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// Delete removes a supplier
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.supplierRepo.Delete(ctx, id)
}

// SupplierResponse is the API view of a supplier
type SupplierResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	JID           string     `json:"jid"`
	Phone         string     `json:"phone,omitempty"`
	City          string     `json:"city,omitempty"`
	IsRatified    bool       `json:"is_ratified"`
	IsAvailable   bool       `json:"is_available"`
	DisabledUntil *time.Time `json:"disabled_until,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ToSupplierResponse maps a domain supplier to its API view
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		JID:           s.JID,
		Phone:         s.Phone,
		City:          s.City,
		IsRatified:    s.IsRatified,
		IsAvailable:   s.IsAvailable(time.Now()),
		DisabledUntil: s.DisabledUntil,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// SupplierRequest creates or updates a supplier
type SupplierRequest struct {
	Name  string
	JID   string
	Phone string
	City  string
	Notes string
}
