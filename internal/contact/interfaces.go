package contact

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/pagination"
)

// ContactRepository defines the persistence surface required by the contact service.
type ContactRepository interface {
	WithTx(tx *gorm.DB) ContactRepository
	Create(ctx context.Context, row *models.ContactMessage) (*models.ContactMessage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error)
	ListAll(ctx context.Context, status enums.ContactStatus, params pagination.Params) ([]models.ContactMessage, int64, error)
	Save(ctx context.Context, row *models.ContactMessage) (*models.ContactMessage, error)
	CountByStatus(ctx context.Context, status enums.ContactStatus) (int64, error)
}
