package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dromero-dev/comanda-api/internal/application/query"
	"github.com/dromero-dev/comanda-api/internal/domain/entity"
	"github.com/dromero-dev/comanda-api/internal/domain/enum"
)

func order(number int64, client, table string, status enum.OrderStatus) entity.Order {
	return entity.Order{
		Number:     number,
		ClientName: client,
		TableName:  table,
		Status:     status,
	}
}

func numbers(orders []entity.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.OrderNo())
	}
	return out
}

func TestRunNilInput(t *testing.T) {
	got := query.Run(nil, "", query.Filters{})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRunDefaultStatusOrdering(t *testing.T) {
	orders := []entity.Order{
		order(1, "Ana", "Mesa 1", enum.OrderStatusCancelled),
		order(2, "Luis", "Mesa 2", enum.OrderStatusFinalized),
		order(3, "Sara", "Mesa 3", enum.OrderStatusDelivered),
		order(4, "Juan", "Mesa 4", enum.OrderStatusPending),
		order(5, "Rosa", "Mesa 5", enum.OrderStatusPending),
	}

	got := query.Run(orders, "", query.Filters{})

	// Pending first, newest of each group leading, terminal states last.
	assert.Equal(t, []string{"5", "4", "3", "2", "1"}, numbers(got))
}

func TestRunUnrankedStatusSinksToBottom(t *testing.T) {
	orders := []entity.Order{
		order(1, "Ana", "Mesa 1", enum.OrderStatusPreparing),
		order(2, "Luis", "Mesa 2", enum.OrderStatusCancelled),
		order(3, "Sara", "Mesa 3", enum.OrderStatusPending),
	}

	got := query.Run(orders, "", query.Filters{})

	assert.Equal(t, []string{"3", "2", "1"}, numbers(got))
}

func TestRunSortOverrideIsLexicographic(t *testing.T) {
	orders := []entity.Order{
		order(10, "", "", enum.OrderStatusPending),
		order(2, "", "", enum.OrderStatusPending),
		order(33, "", "", enum.OrderStatusPending),
	}

	asc := query.Run(orders, "", query.Filters{Sort: query.SortAsc})
	assert.Equal(t, []string{"10", "2", "33"}, numbers(asc))

	desc := query.Run(orders, "", query.Filters{Sort: query.SortDesc})
	assert.Equal(t, []string{"33", "2", "10"}, numbers(desc))
}

func TestRunSearchMatchesNumberClientAndTable(t *testing.T) {
	orders := []entity.Order{
		order(101, "Laura", "Mesa 3", enum.OrderStatusPending),
		order(102, "Pedro", "Mesa 7", enum.OrderStatusPending),
		order(103, "Mesalina", "", enum.OrderStatusPending),
	}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"by table", "mesa 3", []string{"101"}},
		{"by client", "pedro", []string{"102"}},
		{"by number", "103", []string{"103"}},
		{"trimmed and case folded", "  MESA 3  ", []string{"101"}},
		{"substring across fields", "mesa", []string{"103", "102", "101"}},
		{"no match", "sancocho", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.Run(orders, tt.search, query.Filters{})
			assert.Equal(t, tt.want, numbers(got))
		})
	}
}

func TestRunStatusFilter(t *testing.T) {
	orders := []entity.Order{
		order(1, "", "", enum.OrderStatusPending),
		order(2, "", "", enum.OrderStatusDelivered),
		order(3, "", "", enum.OrderStatusPending),
	}

	pending := enum.OrderStatusPending
	got := query.Run(orders, "", query.Filters{Status: &pending})

	assert.Equal(t, []string{"3", "1"}, numbers(got))
}

func TestRunTypeFilter(t *testing.T) {
	dineIn := order(1, "Ana", "Mesa 2", enum.OrderStatusPending)
	dineIn.OrderType = enum.OrderTypeDineIn

	takeout := order(2, "Luis", "", enum.OrderStatusPending)
	takeout.OrderType = enum.OrderTypeTakeout

	// Legacy rows carry only the table name.
	legacyDineIn := order(3, "Sara", "Mesa 5", enum.OrderStatusPending)
	legacyTakeout := order(4, "Juan", entity.TakeoutTableName, enum.OrderStatusPending)

	orders := []entity.Order{dineIn, takeout, legacyDineIn, legacyTakeout}

	mesa := query.Run(orders, "", query.Filters{OrderType: query.TypeFilterDineIn})
	assert.Equal(t, []string{"3", "1"}, numbers(mesa))

	llevar := query.Run(orders, "", query.Filters{OrderType: query.TypeFilterTakeout})
	assert.Equal(t, []string{"4", "2"}, numbers(llevar))
}

func TestRunIsPermutationOfInput(t *testing.T) {
	orders := []entity.Order{
		order(7, "Ana", "Mesa 1", enum.OrderStatusDelivered),
		order(8, "Luis", "Mesa 2", enum.OrderStatusPending),
		order(9, "Sara", "Mesa 3", enum.OrderStatusFinalized),
	}

	got := query.Run(orders, "", query.Filters{})

	assert.ElementsMatch(t, orders, got)
}

func TestRunLeavesInputUntouched(t *testing.T) {
	orders := []entity.Order{
		order(1, "Ana", "", enum.OrderStatusFinalized),
		order(2, "Luis", "", enum.OrderStatusPending),
	}

	_ = query.Run(orders, "", query.Filters{})

	assert.Equal(t, "1", orders[0].OrderNo())
	assert.Equal(t, "2", orders[1].OrderNo())
}

func TestRunToleratesZeroValueRecords(t *testing.T) {
	orders := []entity.Order{
		{},
		order(5, "Ana", "Mesa 1", enum.OrderStatusPending),
		{},
	}

	assert.NotPanics(t, func() {
		got := query.Run(orders, "", query.Filters{})
		assert.Len(t, got, 3)
	})
}

func TestPageWindowsResults(t *testing.T) {
	orders := make([]entity.Order, 0, 23)
	for i := int64(1); i <= 23; i++ {
		orders = append(orders, order(i, "", "", enum.OrderStatusPending))
	}

	res := query.Page(orders, "", query.Filters{Sort: query.SortAsc}, 3)

	require.Len(t, res.Items, 3)
	assert.Equal(t, 3, res.Pagination.CurrentPage)
	assert.Equal(t, 3, res.Pagination.TotalPages)
	assert.Equal(t, int64(23), res.Pagination.Total)
	assert.False(t, res.Pagination.HasNext)
	assert.True(t, res.Pagination.HasPrev)
}

func TestPageBeyondRangeIsEmpty(t *testing.T) {
	orders := []entity.Order{order(1, "", "", enum.OrderStatusPending)}

	res := query.Page(orders, "", query.Filters{}, 9)

	assert.Empty(t, res.Items)
	assert.Equal(t, int64(1), res.Pagination.Total)
}
