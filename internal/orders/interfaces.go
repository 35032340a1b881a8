package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/pagination"
)

// OrderRepository defines the persistence surface required by the order service.
type OrderRepository interface {
	WithTx(tx *gorm.DB) OrderRepository
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*models.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListAll(ctx context.Context, filter ListFilter, params pagination.Params) ([]models.Order, int64, error)
	Save(ctx context.Context, order *models.Order) (*models.Order, error)
}

// ListFilter narrows admin order listings.
type ListFilter struct {
	Status enums.OrderStatus
	Search string
}
