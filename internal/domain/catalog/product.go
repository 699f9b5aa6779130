package catalog

import (
	"github.com/petalia/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product is a sellable arrangement in the catalog
type Product struct {
	shared.BaseAggregateRoot
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	PhotoKey    string          `gorm:"type:varchar(500)"`
	IsActive    bool            `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates an active product
func NewProduct(name, description string, price decimal.Decimal) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Nome do produto é obrigatório")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Nome do produto não pode exceder 200 caracteres")
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_PRICE", "Preço deve ser positivo")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       description,
		Price:             price,
		IsActive:          true,
	}, nil
}

// Update changes the product's display fields
func (p *Product) Update(name, description string, price decimal.Decimal) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Nome do produto é obrigatório")
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_PRICE", "Preço deve ser positivo")
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.Touch()

	return nil
}

// SetPhotoKey stores the object-storage key of the product photo
func (p *Product) SetPhotoKey(key string) {
	p.PhotoKey = key
	p.Touch()
}

// Activate puts the product back on sale
func (p *Product) Activate() {
	p.IsActive = true
	p.Touch()
}

// Deactivate takes the product off sale without deleting it
func (p *Product) Deactivate() {
	p.IsActive = false
	p.Touch()
}
