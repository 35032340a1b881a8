package contact

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/pagination"
)

// Repository exposes persistence operations for contact messages.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a contact repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) ContactRepository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// Create inserts a new contact message.
func (r *Repository) Create(ctx context.Context, row *models.ContactMessage) (*models.ContactMessage, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// GetByID loads one message by id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	var row models.ContactMessage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ListAll returns a page of messages, optionally filtered by status, newest first.
func (r *Repository) ListAll(ctx context.Context, status enums.ContactStatus, params pagination.Params) ([]models.ContactMessage, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ContactMessage{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.ContactMessage
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

// Save persists updates to an existing message.
func (r *Repository) Save(ctx context.Context, row *models.ContactMessage) (*models.ContactMessage, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// CountByStatus counts messages with the given status.
func (r *Repository) CountByStatus(ctx context.Context, status enums.ContactStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ContactMessage{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
