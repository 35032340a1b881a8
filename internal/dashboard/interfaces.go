package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
)

// MonthRevenue is one month's delivered-or-shipped revenue.
type MonthRevenue struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int64           `json:"orders"`
}

// TopProduct is one entry of the revenue leaderboard.
type TopProduct struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Units     int64           `json:"units"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// StatsRepository runs the aggregate order queries behind the dashboard.
type StatsRepository interface {
	OrderCount(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	OrderCountsByStatus(ctx context.Context) (map[enums.OrderStatus]int64, error)
	RevenueByMonth(ctx context.Context, since time.Time) ([]MonthRevenue, error)
	TopProductsByRevenue(ctx context.Context, limit int) ([]TopProduct, error)
}

type userCounter interface {
	Count(ctx context.Context) (int64, error)
}

type productCounter interface {
	Count(ctx context.Context) (int64, error)
}

type kundaliCounter interface {
	CountByStatus(ctx context.Context, status enums.KundaliStatus) (int64, error)
}

type contactCounter interface {
	CountByStatus(ctx context.Context, status enums.ContactStatus) (int64, error)
}
