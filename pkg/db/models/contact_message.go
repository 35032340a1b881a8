package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
)

// ContactMessage is a public contact-form submission.
type ContactMessage struct {
	ID        uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string              `gorm:"column:name;not null"`
	Email     string              `gorm:"column:email;not null"`
	Subject   string              `gorm:"column:subject;not null"`
	Message   string              `gorm:"column:message;not null"`
	Status    enums.ContactStatus `gorm:"column:status;type:text;not null;default:'unread'"`
	CreatedAt time.Time           `gorm:"column:created_at;autoCreateTime"`
}
