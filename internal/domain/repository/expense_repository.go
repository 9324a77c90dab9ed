package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dromero-dev/comanda-api/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense data operations
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, category string, from, to *time.Time) ([]entity.Expense, error)
	// TotalForRange sums expense amounts between from and to (inclusive)
	TotalForRange(ctx context.Context, from, to time.Time) (int64, error)
}
