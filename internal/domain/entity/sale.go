package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale records the financial settlement of a finalized order. A sale row is
// created only by the finalize-with-payment transition, never directly.
type Sale struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleNo        string         `gorm:"size:100;unique;not null" json:"sale_no"`
	OrderID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	PaymentMethod string         `gorm:"size:50;not null" json:"payment_method"`
	Total         int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Paid          int64          `gorm:"default:0" json:"-"`
	Change        int64          `gorm:"default:0" json:"-"`
	SaleDate      time.Time      `gorm:"type:date;not null" json:"sale_date"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON converts cent amounts to decimals for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		Total  float64 `json:"total"`
		Paid   float64 `json:"paid"`
		Change float64 `json:"change"`
	}{
		Alias:  Alias(s),
		Total:  float64(s.Total) / 100,
		Paid:   float64(s.Paid) / 100,
		Change: float64(s.Change) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}
