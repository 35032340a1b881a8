package address

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
)

// Repository exposes persistence operations for user shipping addresses.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an address repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) AddressRepository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// GetByUser loads the single saved address for the user.
func (r *Repository) GetByUser(ctx context.Context, userID uuid.UUID) (*models.UserAddress, error) {
	var record models.UserAddress
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Upsert creates the user's address record or overwrites its fields.
func (r *Repository) Upsert(ctx context.Context, record *models.UserAddress) (*models.UserAddress, error) {
	var existing models.UserAddress
	err := r.db.WithContext(ctx).Where("user_id = ?", record.UserID).First(&existing).Error
	switch {
	case err == nil:
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
		if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
			return nil, err
		}
		return record, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
			return nil, err
		}
		return record, nil
	default:
		return nil, err
	}
}
