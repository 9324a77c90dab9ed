package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dromero-dev/comanda-api/internal/domain/entity"
	"github.com/dromero-dev/comanda-api/internal/domain/repository"
	"github.com/dromero-dev/comanda-api/pkg/apperror"
)

// InventoryService handles product inventory operations
type InventoryService struct {
	productRepo repository.ProductRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(productRepo repository.ProductRepository) *InventoryService {
	return &InventoryService{productRepo: productRepo}
}

// ProductInput represents the create/update product input
type ProductInput struct {
	Name          string
	SKU           string
	Category      string
	Price         float64
	StockQuantity *int
	MinStock      *int
	Status        string
	Description   *string
	ImageURL      *string
	Location      *string
}

// ListProducts returns products, optionally narrowed by search and category
func (s *InventoryService) ListProducts(ctx context.Context, search, category string) ([]entity.Product, error) {
	return s.productRepo.List(ctx, search, category)
}

// ListLowStock returns products at or below their minimum stock
func (s *InventoryService) ListLowStock(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.ListLowStock(ctx)
}

// GetProduct retrieves a product by ID
func (s *InventoryService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// CreateProduct creates a new product
func (s *InventoryService) CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}

	if input.SKU != "" {
		existing, err := s.productRepo.GetBySKU(ctx, input.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A product with this SKU already exists")
		}
	}

	product := &entity.Product{
		Name:        input.Name,
		SKU:         input.SKU,
		Category:    input.Category,
		Price:       int64(input.Price * 100),
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Location:    input.Location,
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}
	if input.MinStock != nil {
		product.MinStock = *input.MinStock
	}
	if input.Status != "" {
		product.Status = input.Status
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct updates an existing product
func (s *InventoryService) UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.SKU != "" && input.SKU != product.SKU {
		existing, err := s.productRepo.GetBySKU(ctx, input.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A product with this SKU already exists")
		}
		product.SKU = input.SKU
	}
	if input.Category != "" {
		product.Category = input.Category
	}
	if input.Price > 0 {
		product.Price = int64(input.Price * 100)
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}
	if input.MinStock != nil {
		product.MinStock = *input.MinStock
	}
	if input.Status != "" {
		product.Status = input.Status
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.ImageURL != nil {
		product.ImageURL = input.ImageURL
	}
	if input.Location != nil {
		product.Location = input.Location
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product from inventory
func (s *InventoryService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// AdjustStock changes the stock level by delta, which may be negative
func (s *InventoryService) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.StockQuantity+delta < 0 {
		return nil, apperror.NewBadRequestError("Stock cannot go negative")
	}

	if err := s.productRepo.AdjustStock(ctx, id, delta); err != nil {
		return nil, err
	}
	product.StockQuantity += delta
	return product, nil
}
