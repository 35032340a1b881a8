package banners

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
)

// Repository exposes persistence operations for promotional banners.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a banner repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) BannerRepository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// ListActive returns banners live at the given instant, highest priority first.
func (r *Repository) ListActive(ctx context.Context, position enums.BannerPosition, at time.Time) ([]models.PromotionalBanner, error) {
	query := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("valid_from <= ? AND valid_until >= ?", at, at)
	if position != "" {
		query = query.Where("position = ?", position)
	}

	var rows []models.PromotionalBanner
	err := query.Order("priority DESC, created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAll returns every banner for the admin view, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]models.PromotionalBanner, error) {
	var rows []models.PromotionalBanner
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID loads one banner by id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.PromotionalBanner, error) {
	var row models.PromotionalBanner
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts a new banner.
func (r *Repository) Create(ctx context.Context, row *models.PromotionalBanner) (*models.PromotionalBanner, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Save persists updates to an existing banner.
func (r *Repository) Save(ctx context.Context, row *models.PromotionalBanner) (*models.PromotionalBanner, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Delete removes a banner by id.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.PromotionalBanner{}).Error
}

// Count returns the total number of banners.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PromotionalBanner{}).Count(&count).Error
	return count, err
}
