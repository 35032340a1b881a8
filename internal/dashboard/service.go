package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
	pkgerrors "github.com/nakshatra-astro/nakshatra-backend/pkg/errors"
)

const (
	revenueMonths   = 12
	topProductCount = 5
)

// Totals holds the headline counters.
type Totals struct {
	Orders          int64           `json:"orders"`
	Revenue         decimal.Decimal `json:"revenue"`
	Users           int64           `json:"users"`
	Products        int64           `json:"products"`
	PendingKundalis int64           `json:"pending_kundalis"`
	UnreadMessages  int64           `json:"unread_messages"`
}

// Overview is the full dashboard payload, assembled in one call.
type Overview struct {
	Totals         Totals                      `json:"totals"`
	OrdersByStatus map[enums.OrderStatus]int64 `json:"orders_by_status"`
	RevenueByMonth []MonthRevenue              `json:"revenue_by_month"`
	TopProducts    []TopProduct                `json:"top_products"`
}

// Service assembles the admin dashboard.
type Service interface {
	Overview(ctx context.Context) (*Overview, error)
}

type service struct {
	stats    StatsRepository
	users    userCounter
	products productCounter
	kundalis kundaliCounter
	contacts contactCounter
	now      func() time.Time
}

// NewService builds a dashboard service over the aggregate repositories.
func NewService(stats StatsRepository, users userCounter, products productCounter, kundalis kundaliCounter, contacts contactCounter) (Service, error) {
	if stats == nil {
		return nil, fmt.Errorf("stats repository required")
	}
	if users == nil || products == nil || kundalis == nil || contacts == nil {
		return nil, fmt.Errorf("all counters required")
	}
	return &service{
		stats:    stats,
		users:    users,
		products: products,
		kundalis: kundalis,
		contacts: contacts,
		now:      time.Now,
	}, nil
}

// Overview runs every aggregate and accumulates failures, so one broken
// query surfaces alongside the rest rather than masking them.
func (s *service) Overview(ctx context.Context) (*Overview, error) {
	var errs error
	out := &Overview{Totals: Totals{Revenue: decimal.Zero}}

	if count, err := s.stats.OrderCount(ctx); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("order count: %w", err))
	} else {
		out.Totals.Orders = count
	}

	if revenue, err := s.stats.TotalRevenue(ctx); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("total revenue: %w", err))
	} else {
		out.Totals.Revenue = revenue
	}

	if count, err := s.users.Count(ctx); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("user count: %w", err))
	} else {
		out.Totals.Users = count
	}

	if count, err := s.products.Count(ctx); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("product count: %w", err))
	} else {
		out.Totals.Products = count
	}

	if count, err := s.kundalis.CountByStatus(ctx, enums.KundaliStatusPending); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("pending kundalis: %w", err))
	} else {
		out.Totals.PendingKundalis = count
	}

	if count, err := s.contacts.CountByStatus(ctx, enums.ContactStatusUnread); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("unread messages: %w", err))
	} else {
		out.Totals.UnreadMessages = count
	}

	if byStatus, err := s.stats.OrderCountsByStatus(ctx); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("orders by status: %w", err))
	} else {
		out.OrdersByStatus = byStatus
	}

	since := s.now().UTC().AddDate(0, -revenueMonths, 0)
	if months, err := s.stats.RevenueByMonth(ctx, since); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("revenue by month: %w", err))
	} else {
		out.RevenueByMonth = months
	}

	if top, err := s.stats.TopProductsByRevenue(ctx, topProductCount); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("top products: %w", err))
	} else {
		out.TopProducts = top
	}

	if errs != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, errs, "assemble dashboard")
	}
	return out, nil
}
