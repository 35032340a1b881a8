package chat

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
)

// ChatRepository defines the persistence surface required by the chat service.
type ChatRepository interface {
	WithTx(tx *gorm.DB) ChatRepository
	Create(ctx context.Context, row *models.ChatMessage) (*models.ChatMessage, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.ChatMessage, error)
}
