package entity

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dromero-dev/comanda-api/internal/domain/enum"
)

// TakeoutTableName is the sentinel table name that marks a takeout order on
// records created before the explicit order type existed.
const TakeoutTableName = "Para llevar"

// Order represents one customer transaction. Orders are never deleted; a
// discarded order transitions to Cancelado instead.
type Order struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Number        int64            `gorm:"autoIncrement;uniqueIndex" json:"-"`
	ClientName    string           `gorm:"size:255" json:"client_name"`
	TableName     string           `gorm:"size:100" json:"table_name"`
	OrderType     enum.OrderType   `gorm:"size:20" json:"order_type"`
	Status        enum.OrderStatus `gorm:"default:1" json:"status"`
	SaleID        *uuid.UUID       `gorm:"type:uuid;index" json:"sale_id,omitempty"`
	PaymentMethod string           `gorm:"size:50" json:"payment_method,omitempty"`
	DeliveryFee   int64            `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Discount      int64            `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Observation   string           `gorm:"type:text" json:"observation,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Sale  *Sale       `gorm:"foreignKey:SaleID" json:"-"`
}

// OrderNo returns the display identifier. It is treated as an opaque string
// everywhere: search matches it as a substring and sorting compares it
// lexicographically, never numerically.
func (o *Order) OrderNo() string {
	return strconv.FormatInt(o.Number, 10)
}

// IsTakeout reports whether the order is a takeout order, either by explicit
// type or by the sentinel table name.
func (o *Order) IsTakeout() bool {
	return o.OrderType == enum.OrderTypeTakeout || o.TableName == TakeoutTableName
}

// IsDineIn reports whether the order is served at a table. Legacy records
// without an explicit type count as dine-in when they carry a real table name.
func (o *Order) IsDineIn() bool {
	return o.OrderType == enum.OrderTypeDineIn ||
		(o.TableName != "" && o.TableName != TakeoutTableName)
}

// TotalCents is the amount the customer owes: the addition-inclusive item
// totals plus the delivery fee, minus the discount.
func (o *Order) TotalCents() int64 {
	var total int64
	for i := range o.Items {
		total += o.Items[i].EffectiveTotalCents()
	}
	return total + o.DeliveryFee - o.Discount
}

// MarshalJSON converts cent amounts to decimals and exposes the display
// identifier and computed total.
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		OrderNo     string  `json:"order_no"`
		DeliveryFee float64 `json:"delivery_fee"`
		Discount    float64 `json:"discount"`
		Total       float64 `json:"total"`
	}{
		Alias:       Alias(o),
		OrderNo:     o.OrderNo(),
		DeliveryFee: float64(o.DeliveryFee) / 100,
		Discount:    float64(o.Discount) / 100,
		Total:       float64(o.TotalCents()) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// Order relies on gorm's default naming ("orders"): the TableName column
// already occupies the identifier the Tabler interface would need.

// OrderItem is one line of an order.
type OrderItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductName string         `gorm:"size:255;not null" json:"name"`
	UnitPrice   int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Quantity    int            `gorm:"not null" json:"quantity"`
	Total       int64          `gorm:"not null" json:"-"` // Base line total in cents, additions excluded
	Note        string         `gorm:"type:text" json:"note,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Additions []Addition `gorm:"foreignKey:OrderItemID" json:"additions,omitempty"`
}

// EffectiveTotalCents is the line total used in financial summaries: the base
// total plus every addition's price times quantity. Callers must not use the
// base Total for invoice or sale amounts.
func (i *OrderItem) EffectiveTotalCents() int64 {
	total := i.Total
	for j := range i.Additions {
		total += i.Additions[j].UnitPrice * int64(i.Additions[j].Quantity)
	}
	return total
}

// MarshalJSON converts cent amounts to decimals for API responses
func (i OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice      float64 `json:"price"`
		Total          float64 `json:"total"`
		EffectiveTotal float64 `json:"effective_total"`
	}{
		Alias:          Alias(i),
		UnitPrice:      float64(i.UnitPrice) / 100,
		Total:          float64(i.Total) / 100,
		EffectiveTotal: float64(i.EffectiveTotalCents()) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Addition is a priced add-on applied to an order item.
type Addition struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderItemID uuid.UUID `gorm:"type:uuid;not null;index" json:"order_item_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	UnitPrice   int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Quantity    int       `gorm:"not null" json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
}

// MarshalJSON converts cent amounts to decimals for API responses
func (a Addition) MarshalJSON() ([]byte, error) {
	type Alias Addition
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"price"`
	}{
		Alias:     Alias(a),
		UnitPrice: float64(a.UnitPrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new addition
func (a *Addition) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
