package liked

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
)

// LikedRepository defines the persistence surface required by the liked-products service.
type LikedRepository interface {
	WithTx(tx *gorm.DB) LikedRepository
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.LikedProduct, error)
	Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error)
	Create(ctx context.Context, row *models.LikedProduct) (*models.LikedProduct, error)
	DeleteByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) error
}
