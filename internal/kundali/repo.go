package kundali

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/pagination"
)

// Repository exposes persistence operations for kundali requests.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a kundali repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) KundaliRepository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// Create inserts a new kundali request.
func (r *Repository) Create(ctx context.Context, row *models.KundaliRequest) (*models.KundaliRequest, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// ListByUser returns the user's requests, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.KundaliRequest, error) {
	var rows []models.KundaliRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID loads one request by id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.KundaliRequest, error) {
	var row models.KundaliRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ListAll returns a page of requests across all users, optionally filtered by status.
func (r *Repository) ListAll(ctx context.Context, status enums.KundaliStatus, params pagination.Params) ([]models.KundaliRequest, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.KundaliRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.KundaliRequest
	err := query.
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Save persists updates to an existing request.
func (r *Repository) Save(ctx context.Context, row *models.KundaliRequest) (*models.KundaliRequest, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// CountByStatus counts requests with the given status.
func (r *Repository) CountByStatus(ctx context.Context, status enums.KundaliStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.KundaliRequest{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
