package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage stores one side of an advisor conversation turn.
type ChatMessage struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID     uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	Message    string    `gorm:"column:message;not null"`
	IsFromUser bool      `gorm:"column:is_from_user;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}
