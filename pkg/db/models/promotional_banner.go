package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
)

// PromotionalBanner is admin-managed marketing content with a validity window.
type PromotionalBanner struct {
	ID              uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title           string               `gorm:"column:title;not null"`
	Description     *string              `gorm:"column:description"`
	ImageURL        *string              `gorm:"column:image_url"`
	CTAText         *string              `gorm:"column:cta_text"`
	CTALink         *string              `gorm:"column:cta_link"`
	DiscountCode    *string              `gorm:"column:discount_code"`
	DiscountPercent *int                 `gorm:"column:discount_percent"`
	ValidFrom       time.Time            `gorm:"column:valid_from;not null"`
	ValidUntil      time.Time            `gorm:"column:valid_until;not null"`
	IsActive        bool                 `gorm:"column:is_active;not null;default:true"`
	Position        enums.BannerPosition `gorm:"column:position;type:text;not null;default:'banner'"`
	Priority        int                  `gorm:"column:priority;not null;default:0"`
	CreatedAt       time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
