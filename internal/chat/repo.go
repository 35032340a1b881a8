package chat

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
)

// Repository exposes persistence operations for advisor chat messages.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a chat repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) ChatRepository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// Create inserts one message row.
func (r *Repository) Create(ctx context.Context, row *models.ChatMessage) (*models.ChatMessage, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// ListByUser returns the user's messages oldest first, capped at limit.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.ChatMessage, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var rows []models.ChatMessage
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
