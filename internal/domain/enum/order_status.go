package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderStatus represents the lifecycle state of an order. The numeric values
// are the wire codes the status-update endpoint accepts: the forward chain is
// Pendiente(1) -> Preparando(2) -> Entregado(3) -> Finalizado(5), with
// Cancelado fixed at 4 even though it sits outside the chain.
type OrderStatus int

const (
	OrderStatusPending   OrderStatus = 1 // Pendiente
	OrderStatusPreparing OrderStatus = 2 // Preparando
	OrderStatusDelivered OrderStatus = 3 // Entregado
	OrderStatusCancelled OrderStatus = 4 // Cancelado
	OrderStatusFinalized OrderStatus = 5 // Finalizado
)

var statusLabels = map[OrderStatus]string{
	OrderStatusPending:   "Pendiente",
	OrderStatusPreparing: "Preparando",
	OrderStatusDelivered: "Entregado",
	OrderStatusCancelled: "Cancelado",
	OrderStatusFinalized: "Finalizado",
}

// nextStatus is the forward transition table. Terminal states and unknown
// values have no entry.
var nextStatus = map[OrderStatus]OrderStatus{
	OrderStatusPending:   OrderStatusPreparing,
	OrderStatusPreparing: OrderStatusDelivered,
	OrderStatusDelivered: OrderStatusFinalized,
}

// listPriority ranks statuses for the default order-list sort. Statuses
// outside the map (including Preparando, which the list view predates) rank
// last.
var listPriority = map[OrderStatus]int{
	OrderStatusPending:   1,
	OrderStatusDelivered: 2,
	OrderStatusFinalized: 3,
	OrderStatusCancelled: 4,
}

const unrankedPriority = 999

// ParseOrderStatus maps a display label back to its status. The boolean is
// false for labels outside the vocabulary.
func ParseOrderStatus(label string) (OrderStatus, bool) {
	for s, l := range statusLabels {
		if l == label {
			return s, true
		}
	}
	return 0, false
}

func (s OrderStatus) String() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return "Desconocido"
}

// IsValid reports whether s is one of the five known statuses.
func (s OrderStatus) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Next returns the status that follows s in the forward chain. The boolean is
// false for terminal states (Finalizado, Cancelado) and unknown values.
func (s OrderStatus) Next() (OrderStatus, bool) {
	next, ok := nextStatus[s]
	return next, ok
}

// IsTerminal reports whether no further transition is legal from s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusFinalized || s == OrderStatusCancelled
}

// ListPriority returns the rank used by the default list ordering. Lower
// ranks sort first; statuses without an explicit rank sort last.
func (s OrderStatus) ListPriority() int {
	if p, ok := listPriority[s]; ok {
		return p
	}
	return unrankedPriority
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Accept the numeric wire code as well
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderStatus(i)
		return nil
	}
	if parsed, ok := ParseOrderStatus(str); ok {
		*s = parsed
	}
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderStatus(v)
	case int:
		*s = OrderStatus(v)
	}
	return nil
}
