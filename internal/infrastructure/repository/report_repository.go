package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dromero-dev/comanda-api/internal/domain/repository"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) GetDailySales(ctx context.Context, days int) ([]repository.DailySalesResult, error) {
	since := time.Now().AddDate(0, 0, -days)

	var results []repository.DailySalesResult
	err := r.db.WithContext(ctx).
		Table("sales").
		Select("DATE(sale_date) as date, COALESCE(SUM(total), 0) as revenue, COUNT(*) as sale_count").
		Where("sale_date >= ? AND deleted_at IS NULL", since).
		Group("DATE(sale_date)").
		Order("date ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *reportRepository) GetTopItems(ctx context.Context, limit int) ([]repository.TopItemResult, error) {
	var results []repository.TopItemResult
	err := r.db.WithContext(ctx).
		Table("order_items").
		Select("product_name, SUM(quantity) as quantity_sold, COALESCE(SUM(total), 0) as revenue").
		Where("deleted_at IS NULL").
		Group("product_name").
		Order("revenue DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *reportRepository) GetSalesByPaymentMethod(ctx context.Context, from, to time.Time) ([]repository.PaymentMethodResult, error) {
	var results []repository.PaymentMethodResult
	err := r.db.WithContext(ctx).
		Table("sales").
		Select("payment_method, COALESCE(SUM(total), 0) as total, COUNT(*) as sale_count").
		Where("sale_date BETWEEN ? AND ? AND deleted_at IS NULL", from, to).
		Group("payment_method").
		Order("total DESC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
