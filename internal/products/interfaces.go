package products

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/pagination"
)

// ProductRepository defines the persistence surface required by the product service.
type ProductRepository interface {
	WithTx(tx *gorm.DB) ProductRepository
	List(ctx context.Context, filter ListFilter, params pagination.Params) ([]models.Product, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// ListFilter narrows product listings.
type ListFilter struct {
	Category      string
	Search        string
	IncludeHidden bool
}
