package enum_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dromero-dev/comanda-api/internal/domain/enum"
)

func TestOrderStatusWireCodes(t *testing.T) {
	assert.Equal(t, 1, int(enum.OrderStatusPending))
	assert.Equal(t, 2, int(enum.OrderStatusPreparing))
	assert.Equal(t, 3, int(enum.OrderStatusDelivered))
	assert.Equal(t, 4, int(enum.OrderStatusCancelled))
	assert.Equal(t, 5, int(enum.OrderStatusFinalized))
}

func TestOrderStatusNext(t *testing.T) {
	tests := []struct {
		name    string
		current enum.OrderStatus
		want    enum.OrderStatus
		ok      bool
	}{
		{"pending advances to preparing", enum.OrderStatusPending, enum.OrderStatusPreparing, true},
		{"preparing advances to delivered", enum.OrderStatusPreparing, enum.OrderStatusDelivered, true},
		{"delivered advances to finalized", enum.OrderStatusDelivered, enum.OrderStatusFinalized, true},
		{"finalized is terminal", enum.OrderStatusFinalized, 0, false},
		{"cancelled is terminal", enum.OrderStatusCancelled, 0, false},
		{"unknown has no next", enum.OrderStatus(42), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := tt.current.Next()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, next)
			}
		})
	}
}

func TestOrderStatusIsTerminal(t *testing.T) {
	assert.True(t, enum.OrderStatusFinalized.IsTerminal())
	assert.True(t, enum.OrderStatusCancelled.IsTerminal())
	assert.False(t, enum.OrderStatusPending.IsTerminal())
	assert.False(t, enum.OrderStatusPreparing.IsTerminal())
	assert.False(t, enum.OrderStatusDelivered.IsTerminal())
}

func TestOrderStatusListPriority(t *testing.T) {
	assert.Equal(t, 1, enum.OrderStatusPending.ListPriority())
	assert.Equal(t, 2, enum.OrderStatusDelivered.ListPriority())
	assert.Equal(t, 3, enum.OrderStatusFinalized.ListPriority())
	assert.Equal(t, 4, enum.OrderStatusCancelled.ListPriority())

	// Preparando and unknown values rank after every listed status.
	assert.Equal(t, 999, enum.OrderStatusPreparing.ListPriority())
	assert.Equal(t, 999, enum.OrderStatus(0).ListPriority())
}

func TestOrderStatusJSON(t *testing.T) {
	data, err := json.Marshal(enum.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, `"Entregado"`, string(data))

	var s enum.OrderStatus
	require.NoError(t, json.Unmarshal([]byte(`"Finalizado"`), &s))
	assert.Equal(t, enum.OrderStatusFinalized, s)

	// Numeric wire codes are accepted too
	require.NoError(t, json.Unmarshal([]byte(`4`), &s))
	assert.Equal(t, enum.OrderStatusCancelled, s)
}

func TestParseOrderStatus(t *testing.T) {
	s, ok := enum.ParseOrderStatus("Pendiente")
	require.True(t, ok)
	assert.Equal(t, enum.OrderStatusPending, s)

	_, ok = enum.ParseOrderStatus("Desconocido")
	assert.False(t, ok)
}
