package partner

import (
	"time"

	"github.com/petalia/backend/internal/domain/shared"
)

// Customer is a buyer contact
type Customer struct {
	shared.BaseAggregateRoot
	Name  string `gorm:"type:varchar(200);not null"`
	Phone string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Email string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a customer contact
func NewCustomer(name, phone, email string) (*Customer, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Nome do cliente é obrigatório")
	}
	if phone == "" {
		return nil, shared.NewDomainError("INVALID_PHONE", "Telefone do cliente é obrigatório")
	}

	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Phone:             phone,
		Email:             email,
	}, nil
}

// Update changes the customer's contact fields
func (c *Customer) Update(name, phone, email string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Nome do cliente é obrigatório")
	}
	if phone == "" {
		return shared.NewDomainError("INVALID_PHONE", "Telefone do cliente é obrigatório")
	}

	c.Name = name
	c.Phone = phone
	c.Email = email
	c.UpdatedAt = time.Now()

	return nil
}
