package service

import (
	"context"
	"time"

	"github.com/dromero-dev/comanda-api/internal/domain/enum"
	"github.com/dromero-dev/comanda-api/internal/domain/repository"
)

// ReportService aggregates sales, expenses and inventory into dashboard and
// report figures
type ReportService struct {
	reportRepo  repository.ReportRepository
	saleRepo    repository.SaleRepository
	expenseRepo repository.ExpenseRepository
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewReportService creates a new report service
func NewReportService(
	reportRepo repository.ReportRepository,
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// DashboardStats holds the figures shown on the dashboard. Money fields are
// decimals, not cents.
type DashboardStats struct {
	RevenueToday  float64 `json:"revenue_today"`
	RevenueMonth  float64 `json:"revenue_month"`
	ExpensesMonth float64 `json:"expenses_month"`
	ProfitMonth   float64 `json:"profit_month"`
	PendingOrders int64   `json:"pending_orders"`
	ActiveOrders  int64   `json:"active_orders"`
	LowStockCount int     `json:"low_stock_count"`
}

// GetDashboardStats computes the dashboard figures for the current day and
// month
func (s *ReportService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	revenueToday, err := s.saleRepo.TotalForRange(ctx, dayStart, now)
	if err != nil {
		return nil, err
	}
	revenueMonth, err := s.saleRepo.TotalForRange(ctx, monthStart, now)
	if err != nil {
		return nil, err
	}
	expensesMonth, err := s.expenseRepo.TotalForRange(ctx, monthStart, now)
	if err != nil {
		return nil, err
	}

	pending, err := s.orderRepo.CountByStatus(ctx, enum.OrderStatusPending)
	if err != nil {
		return nil, err
	}
	preparing, err := s.orderRepo.CountByStatus(ctx, enum.OrderStatusPreparing)
	if err != nil {
		return nil, err
	}
	delivered, err := s.orderRepo.CountByStatus(ctx, enum.OrderStatusDelivered)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.productRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		RevenueToday:  float64(revenueToday) / 100,
		RevenueMonth:  float64(revenueMonth) / 100,
		ExpensesMonth: float64(expensesMonth) / 100,
		ProfitMonth:   float64(revenueMonth-expensesMonth) / 100,
		PendingOrders: pending,
		ActiveOrders:  pending + preparing + delivered,
		LowStockCount: len(lowStock),
	}, nil
}

// DailySalesPoint is one day in the sales report
type DailySalesPoint struct {
	Date      string  `json:"date"`
	Revenue   float64 `json:"revenue"`
	SaleCount int     `json:"sale_count"`
}

// GetDailySales returns revenue per day for the last N days
func (s *ReportService) GetDailySales(ctx context.Context, days int) ([]DailySalesPoint, error) {
	if days < 1 || days > 365 {
		days = 30
	}
	rows, err := s.reportRepo.GetDailySales(ctx, days)
	if err != nil {
		return nil, err
	}

	points := make([]DailySalesPoint, 0, len(rows))
	for _, r := range rows {
		points = append(points, DailySalesPoint{
			Date:      r.Date.Format("2006-01-02"),
			Revenue:   float64(r.Revenue) / 100,
			SaleCount: r.SaleCount,
		})
	}
	return points, nil
}

// TopItem is one row in the best-sellers report
type TopItem struct {
	Name         string  `json:"name"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// GetTopItems returns the best selling items by revenue
func (s *ReportService) GetTopItems(ctx context.Context, limit int) ([]TopItem, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	rows, err := s.reportRepo.GetTopItems(ctx, limit)
	if err != nil {
		return nil, err
	}

	items := make([]TopItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, TopItem{
			Name:         r.ProductName,
			QuantitySold: r.QuantitySold,
			Revenue:      float64(r.Revenue) / 100,
		})
	}
	return items, nil
}

// PaymentBreakdown is one row in the payment-method report
type PaymentBreakdown struct {
	PaymentMethod string  `json:"payment_method"`
	Total         float64 `json:"total"`
	SaleCount     int     `json:"sale_count"`
}

// GetPaymentBreakdown aggregates sales by payment method for a date range
func (s *ReportService) GetPaymentBreakdown(ctx context.Context, from, to time.Time) ([]PaymentBreakdown, error) {
	rows, err := s.reportRepo.GetSalesByPaymentMethod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]PaymentBreakdown, 0, len(rows))
	for _, r := range rows {
		out = append(out, PaymentBreakdown{
			PaymentMethod: r.PaymentMethod,
			Total:         float64(r.Total) / 100,
			SaleCount:     r.SaleCount,
		})
	}
	return out, nil
}
