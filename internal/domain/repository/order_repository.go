package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dromero-dev/comanda-api/internal/domain/entity"
	"github.com/dromero-dev/comanda-api/internal/domain/enum"
)

// StockDecrement records how many units an order takes from a product
type StockDecrement struct {
	ProductID uuid.UUID
	Quantity  int
}

// ErrInsufficientStock is returned when a stock decrement would drive a
// product's stock below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// Create stores the order and applies the stock decrements atomically.
	// A decrement that would leave negative stock fails the whole create
	// with ErrInsufficientStock.
	Create(ctx context.Context, order *entity.Order, decrements []StockDecrement) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// GetWithItems loads the order together with its items, additions and sale
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	// ListAll returns every non-deleted order with items preloaded.
	// Search, filtering and ordering happen in the query pipeline.
	ListAll(ctx context.Context) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	// Finalize atomically creates the sale and moves the order to its
	// finalized state with the sale reference and payment method set.
	Finalize(ctx context.Context, order *entity.Order, sale *entity.Sale) error
	CountByStatus(ctx context.Context, status enum.OrderStatus) (int64, error)
}

// SaleRepository defines the interface for sale data operations
type SaleRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetBySaleNo(ctx context.Context, saleNo string) (*entity.Sale, error)
	List(ctx context.Context, from, to *time.Time) ([]entity.Sale, error)
	// TotalForRange sums sale totals between from and to (inclusive)
	TotalForRange(ctx context.Context, from, to time.Time) (int64, error)
}
