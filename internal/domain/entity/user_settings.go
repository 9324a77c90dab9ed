package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserSettings represents user-specific application settings
type UserSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// General settings
	Language   string `gorm:"size:10;default:'es'" json:"language"`
	Timezone   string `gorm:"size:50;default:'America/Bogota'" json:"timezone"`
	Currency   string `gorm:"size:10;default:'COP'" json:"currency"`
	DateFormat string `gorm:"size:20;default:'DD/MM/YYYY'" json:"date_format"`

	// Notification settings
	OrderAlerts    bool `gorm:"default:true" json:"order_alerts"`
	LowStockAlerts bool `gorm:"default:true" json:"low_stock_alerts"`

	// Appearance settings
	Theme string `gorm:"size:20;default:'light'" json:"theme"`

	// Security settings
	SessionTimeout string `gorm:"size:10;default:'30'" json:"session_timeout"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *UserSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the UserSettings model
func (UserSettings) TableName() string {
	return "user_settings"
}
