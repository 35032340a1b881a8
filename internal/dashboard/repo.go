package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
)

// revenueStatuses are the order states that count towards revenue.
var revenueStatuses = []enums.OrderStatus{
	enums.OrderStatusShipped,
	enums.OrderStatusDelivered,
}

// Repository runs the aggregate queries behind the admin dashboard.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a dashboard repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// OrderCount returns the total number of orders.
func (r *Repository) OrderCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&count).Error
	return count, err
}

// TotalRevenue sums order totals across shipped and delivered orders.
func (r *Repository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var row struct {
		Revenue decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS revenue").
		Where("status IN ?", revenueStatuses).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Revenue, nil
}

// OrderCountsByStatus returns per-status order counts.
func (r *Repository) OrderCountsByStatus(ctx context.Context) (map[enums.OrderStatus]int64, error) {
	var rows []struct {
		Status enums.OrderStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[enums.OrderStatus]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

// RevenueByMonth buckets shipped and delivered order totals by calendar month.
func (r *Repository) RevenueByMonth(ctx context.Context, since time.Time) ([]MonthRevenue, error) {
	var rows []MonthRevenue
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("TO_CHAR(created_at, 'YYYY-MM') AS month, COALESCE(SUM(total_amount), 0) AS revenue, COUNT(*) AS orders").
		Where("status IN ?", revenueStatuses).
		Where("created_at >= ?", since).
		Group("month").
		Order("month ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TopProductsByRevenue ranks products by snapshot line revenue.
func (r *Repository) TopProductsByRevenue(ctx context.Context, limit int) ([]TopProduct, error) {
	var rows []TopProduct
	err := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Select("order_items.product_id::text AS product_id, order_items.product_name AS name, SUM(order_items.quantity) AS units, COALESCE(SUM(order_items.unit_price * order_items.quantity), 0) AS revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status IN ?", revenueStatuses).
		Group("order_items.product_id, order_items.product_name").
		Order("revenue DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
