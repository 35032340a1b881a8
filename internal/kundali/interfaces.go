package kundali

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/pagination"
)

// KundaliRepository defines the persistence surface required by the kundali service.
type KundaliRepository interface {
	WithTx(tx *gorm.DB) KundaliRepository
	Create(ctx context.Context, row *models.KundaliRequest) (*models.KundaliRequest, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.KundaliRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.KundaliRequest, error)
	ListAll(ctx context.Context, status enums.KundaliStatus, params pagination.Params) ([]models.KundaliRequest, int64, error)
	Save(ctx context.Context, row *models.KundaliRequest) (*models.KundaliRequest, error)
	CountByStatus(ctx context.Context, status enums.KundaliStatus) (int64, error)
}
