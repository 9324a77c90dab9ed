package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dromero-dev/comanda-api/internal/domain/entity"
	"github.com/dromero-dev/comanda-api/pkg/apperror"
)

type fakeExpenseRepo struct {
	expenses map[uuid.UUID]*entity.Expense
	order    []uuid.UUID
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (f *fakeExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	f.expenses[e.ID] = e
	f.order = append(f.order, e.ID)
	return nil
}

func (f *fakeExpenseRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	return f.expenses[id], nil
}

func (f *fakeExpenseRepo) Update(_ context.Context, e *entity.Expense) error {
	f.expenses[e.ID] = e
	return nil
}

func (f *fakeExpenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.expenses, id)
	return nil
}

func (f *fakeExpenseRepo) List(_ context.Context, category string, _, _ *time.Time) ([]entity.Expense, error) {
	out := make([]entity.Expense, 0, len(f.order))
	for _, id := range f.order {
		e, ok := f.expenses[id]
		if !ok {
			continue
		}
		if category != "" && e.Category != category {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeExpenseRepo) TotalForRange(_ context.Context, _, _ time.Time) (int64, error) {
	var total int64
	for _, e := range f.expenses {
		total += e.Amount
	}
	return total, nil
}

func TestCreateExpenseStoresCentsAndNotes(t *testing.T) {
	repo := newFakeExpenseRepo()
	svc := NewExpenseService(repo)

	got, err := svc.CreateExpense(context.Background(), &ExpenseInput{
		Description: "Compra de verduras",
		Category:    "insumos",
		Amount:      85.5,
		Notes:       "Plaza de mercado",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(8550), got.Amount)
	assert.Equal(t, "Plaza de mercado", got.Notes)
}

func TestCreateExpenseValidation(t *testing.T) {
	svc := NewExpenseService(newFakeExpenseRepo())

	tests := []struct {
		name  string
		input ExpenseInput
	}{
		{name: "missing description", input: ExpenseInput{Amount: 10}},
		{name: "zero amount", input: ExpenseInput{Description: "Gas"}},
		{name: "negative amount", input: ExpenseInput{Description: "Gas", Amount: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateExpense(context.Background(), &tt.input)

			require.Error(t, err)
			require.True(t, apperror.IsAppError(err))
			assert.Equal(t, 400, apperror.GetAppError(err).Code)
		})
	}
}

func TestUpdateExpenseKeepsNotesWhenOmitted(t *testing.T) {
	repo := newFakeExpenseRepo()
	svc := NewExpenseService(repo)

	created, err := svc.CreateExpense(context.Background(), &ExpenseInput{
		Description: "Arriendo",
		Amount:      1200,
		Notes:       "Local principal",
	})
	require.NoError(t, err)

	got, err := svc.UpdateExpense(context.Background(), created.ID, &ExpenseInput{Amount: 1300})

	require.NoError(t, err)
	assert.Equal(t, int64(130000), got.Amount)
	assert.Equal(t, "Local principal", got.Notes)

	got, err = svc.UpdateExpense(context.Background(), created.ID, &ExpenseInput{Notes: "Local y bodega"})
	require.NoError(t, err)
	assert.Equal(t, "Local y bodega", got.Notes)
}

func TestListExpensesLimitKeepsMostRecent(t *testing.T) {
	repo := newFakeExpenseRepo()
	svc := NewExpenseService(repo)

	for _, desc := range []string{"Gas", "Agua", "Luz"} {
		_, err := svc.CreateExpense(context.Background(), &ExpenseInput{Description: desc, Amount: 10})
		require.NoError(t, err)
	}

	got, err := svc.ListExpenses(context.Background(), "", nil, nil, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.ListExpenses(context.Background(), "", nil, nil, 0)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
