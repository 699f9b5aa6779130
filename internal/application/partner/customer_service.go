package partner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/partner"
	"github.com/petalia/backend/internal/domain/shared"
)

// CustomerService manages buyer contacts
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Create registers a customer, reusing the record when the phone is known
func (s *CustomerService) Create(ctx context.Context, req CustomerRequest) (*CustomerResponse, error) {
	if existing, err := s.customerRepo.FindByPhone(ctx, req.Phone); err == nil && existing != nil {
		resp := ToCustomerResponse(existing)
		return &resp, nil
	}

	customer, err := partner.NewCustomer(req.Name, req.Phone, req.Email)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// Update changes a customer's contact fields
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req CustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := customer.Update(req.Name, req.Phone, req.Email); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// GetByID loads a single customer
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// List returns a filtered page of customers
func (s *CustomerService) List(ctx context.Context, filter shared.Filter) ([]CustomerResponse, int64, error) {
	customers, total, err := s.customerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses, total, nil
}

// CustomerResponse is the API view of a customer
type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCustomerResponse maps a domain customer to its API view
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CustomerRequest creates or updates a customer
type CustomerRequest struct {
	Name  string
	Phone string
	Email string
}
