package repository

import (
	"context"
	"time"
)

// DailySalesResult represents sales data for a single day
type DailySalesResult struct {
	Date      time.Time
	Revenue   int64
	SaleCount int
}

// TopItemResult represents an item's sales performance across orders
type TopItemResult struct {
	ProductName  string
	QuantitySold int
	Revenue      int64
}

// PaymentMethodResult represents sales aggregated by payment method
type PaymentMethodResult struct {
	PaymentMethod string
	Total         int64
	SaleCount     int
}

// ReportRepository defines interface for aggregation queries
type ReportRepository interface {
	// GetDailySales returns revenue per day for the last N days
	GetDailySales(ctx context.Context, days int) ([]DailySalesResult, error)

	// GetTopItems returns the best selling items by revenue
	GetTopItems(ctx context.Context, limit int) ([]TopItemResult, error)

	// GetSalesByPaymentMethod aggregates sales by payment method
	GetSalesByPaymentMethod(ctx context.Context, from, to time.Time) ([]PaymentMethodResult, error)
}
