package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents an inventory item
type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	SKU           string         `gorm:"size:100;unique;not null" json:"sku"`
	Category      string         `gorm:"size:100" json:"category"`
	Price         int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	StockQuantity int            `gorm:"default:0" json:"stock_quantity"`
	Status        string         `gorm:"size:20;default:'disponible'" json:"status"`
	Description   *string        `gorm:"type:text" json:"description,omitempty"`
	ImageURL      *string        `gorm:"size:255" json:"image_url,omitempty"`
	Location      *string        `gorm:"size:100" json:"location,omitempty"`
	MinStock      int            `gorm:"default:5" json:"min_stock"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsLowStock reports whether the stock has fallen to the alert threshold.
func (p *Product) IsLowStock() bool {
	return p.StockQuantity <= p.MinStock
}

// MarshalJSON converts cent amounts to decimals for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(p),
		Price: float64(p.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
