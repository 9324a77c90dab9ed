package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dromero-dev/comanda-api/internal/domain/entity"
)

// ProductRepository defines the interface for inventory data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search, category string) ([]entity.Product, error)
	// ListLowStock returns products whose stock is at or below their minimum
	ListLowStock(ctx context.Context) ([]entity.Product, error)
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) error
}
