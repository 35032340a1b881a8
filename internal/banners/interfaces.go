package banners

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
)

// BannerRepository defines the persistence surface required by the banner service.
type BannerRepository interface {
	WithTx(tx *gorm.DB) BannerRepository
	ListActive(ctx context.Context, position enums.BannerPosition, at time.Time) ([]models.PromotionalBanner, error)
	ListAll(ctx context.Context) ([]models.PromotionalBanner, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.PromotionalBanner, error)
	Create(ctx context.Context, row *models.PromotionalBanner) (*models.PromotionalBanner, error)
	Save(ctx context.Context, row *models.PromotionalBanner) (*models.PromotionalBanner, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
