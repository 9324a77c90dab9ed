package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dromero-dev/comanda-api/internal/domain/entity"
	"github.com/dromero-dev/comanda-api/internal/domain/repository"
	"github.com/dromero-dev/comanda-api/pkg/apperror"
	"github.com/dromero-dev/comanda-api/pkg/pagination"
)

// ExpenseService handles expense-related operations
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// ExpenseInput represents the create/update expense input
type ExpenseInput struct {
	Description string
	Category    string
	Amount      float64
	ExpenseDate *time.Time
	Notes       string
}

// ListExpenses returns expenses filtered by category and date range. A
// positive limit keeps only the most recent entries, for summary views that
// skip paging.
func (s *ExpenseService) ListExpenses(ctx context.Context, category string, from, to *time.Time, limit int) ([]entity.Expense, error) {
	expenses, err := s.expenseRepo.List(ctx, category, from, to)
	if err != nil {
		return nil, err
	}
	if limit > 0 {
		expenses = pagination.Head(expenses, limit)
	}
	return expenses, nil
}

// GetExpense retrieves an expense by ID
func (s *ExpenseService) GetExpense(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

// CreateExpense records a new expense
func (s *ExpenseService) CreateExpense(ctx context.Context, input *ExpenseInput) (*entity.Expense, error) {
	if input.Description == "" {
		return nil, apperror.NewBadRequestError("Expense description is required")
	}
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Expense amount must be positive")
	}

	expense := &entity.Expense{
		Description: input.Description,
		Category:    input.Category,
		Amount:      int64(input.Amount * 100),
		ExpenseDate: time.Now(),
		Notes:       input.Notes,
	}
	if input.ExpenseDate != nil {
		expense.ExpenseDate = *input.ExpenseDate
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// UpdateExpense updates an existing expense
func (s *ExpenseService) UpdateExpense(ctx context.Context, id uuid.UUID, input *ExpenseInput) (*entity.Expense, error) {
	expense, err := s.GetExpense(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Description != "" {
		expense.Description = input.Description
	}
	if input.Category != "" {
		expense.Category = input.Category
	}
	if input.Amount > 0 {
		expense.Amount = int64(input.Amount * 100)
	}
	if input.ExpenseDate != nil {
		expense.ExpenseDate = *input.ExpenseDate
	}
	if input.Notes != "" {
		expense.Notes = input.Notes
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense removes an expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetExpense(ctx, id); err != nil {
		return err
	}
	return s.expenseRepo.Delete(ctx, id)
}
