package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/catalog"
	"github.com/petalia/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ObjectStorageService issues presigned URLs for photo upload and display.
// Uploads go straight from the browser to the bucket; the API only hands
// out the URL and records the key.
type ObjectStorageService interface {
	PresignUpload(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
	PresignDownload(ctx context.Context, key string, expires time.Duration) (string, error)
}

const photoURLTTL = 15 * time.Minute

// ProductService manages the sellable catalog
type ProductService struct {
	productRepo catalog.ProductRepository
	storage     ObjectStorageService
	logger      *zap.Logger
}

// NewProductService creates a ProductService
func NewProductService(productRepo catalog.ProductRepository, storage ObjectStorageService, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		storage:     storage,
		logger:      logger,
	}
}

// Create registers a product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.Name, req.Description, req.Price)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, product), nil
}

// Update changes a product's display fields
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := product.Update(req.Name, req.Description, req.Price); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, product), nil
}

// GetByID loads a single product
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, product), nil
}

// List returns a filtered page of products
func (s *ProductService) List(ctx context.Context, filter shared.Filter) ([]ProductResponse, int64, error) {
	products, total, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = *s.toResponse(ctx, &products[i])
	}
	return responses, total, nil
}

// SetActive toggles whether the product is on sale
func (s *ProductService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if active {
		product.Activate()
	} else {
		product.Deactivate()
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, product), nil
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// RequestPhotoUpload presigns an upload URL and records the resulting key
func (s *ProductService) RequestPhotoUpload(ctx context.Context, id uuid.UUID, contentType string) (*PhotoUploadResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("products/%s/photo-%d", product.ID, time.Now().Unix())
	url, err := s.storage.PresignUpload(ctx, key, contentType, photoURLTTL)
	if err != nil {
		return nil, err
	}

	product.SetPhotoKey(key)
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	return &PhotoUploadResponse{UploadURL: url, Key: key}, nil
}

func (s *ProductService) toResponse(ctx context.Context, product *catalog.Product) *ProductResponse {
	resp := ToProductResponse(product)
	if product.PhotoKey != "" {
		url, err := s.storage.PresignDownload(ctx, product.PhotoKey, photoURLTTL)
		if err != nil {
			s.logger.Warn("failed to presign product photo",
				zap.String("product_id", product.ID.String()),
				zap.Error(err))
		} else {
			resp.PhotoURL = url
		}
	}
	return &resp
}

// ProductResponse is the API view of a product
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	PhotoURL    string          `json:"photo_url,omitempty"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToProductResponse maps a domain product to its API view
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// PhotoUploadResponse carries a presigned upload URL
type PhotoUploadResponse struct {
	UploadURL string `json:"upload_url"`
	Key       string `json:"key"`
}

// CreateProductRequest registers a product
type CreateProductRequest struct {
	Name        string
	Description string
	Price       decimal.Decimal
}

// UpdateProductRequest changes a product's display fields
type UpdateProductRequest struct {
	Name        string
	Description string
	Price       decimal.Decimal
}
