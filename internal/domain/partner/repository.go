package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/shared"
)

// SupplierRepository defines persistence operations for suppliers
type SupplierRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)
	FindByJID(ctx context.Context, jid string) (*Supplier, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Supplier, int64, error)
	Save(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CustomerRepository defines persistence operations for customers
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByPhone(ctx context.Context, phone string) (*Customer, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, int64, error)
	Save(ctx context.Context, customer *Customer) error
}
