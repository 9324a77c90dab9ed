package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderType distinguishes dine-in orders from takeout.
type OrderType string

const (
	OrderTypeDineIn  OrderType = "en_mesa"
	OrderTypeTakeout OrderType = "para_llevar"
)

// IsValid reports whether t is a known order type. The zero value is not
// valid: legacy orders carry only a table name, and the type is inferred from
// it at query time.
func (t OrderType) IsValid() bool {
	return t == OrderTypeDineIn || t == OrderTypeTakeout
}

func (t OrderType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *OrderType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = OrderType(str)
	return nil
}

func (t OrderType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *OrderType) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*t = OrderType(v)
	case []byte:
		*t = OrderType(v)
	}
	return nil
}
