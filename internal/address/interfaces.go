package address

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
)

// AddressRepository defines the persistence surface for reusable shipping records.
type AddressRepository interface {
	WithTx(tx *gorm.DB) AddressRepository
	GetByUser(ctx context.Context, userID uuid.UUID) (*models.UserAddress, error)
	Upsert(ctx context.Context, record *models.UserAddress) (*models.UserAddress, error)
}
