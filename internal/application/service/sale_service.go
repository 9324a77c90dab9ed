package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dromero-dev/comanda-api/internal/domain/entity"
	"github.com/dromero-dev/comanda-api/internal/domain/repository"
	"github.com/dromero-dev/comanda-api/pkg/apperror"
)

// SaleService handles read access to settled sales. Sales are created only
// through the order finalize transition.
type SaleService struct {
	saleRepo repository.SaleRepository
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository) *SaleService {
	return &SaleService{saleRepo: saleRepo}
}

// ListSales returns sales in the optional date range
func (s *SaleService) ListSales(ctx context.Context, from, to *time.Time) ([]entity.Sale, error) {
	return s.saleRepo.List(ctx, from, to)
}

// GetSale retrieves a sale by ID
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// TotalForDay sums sale totals for the given calendar day
func (s *SaleService) TotalForDay(ctx context.Context, day time.Time) (int64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return s.saleRepo.TotalForRange(ctx, start, end)
}
