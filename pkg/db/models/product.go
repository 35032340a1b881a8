package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/types"
)

// Product represents a storefront listing.
type Product struct {
	ID              uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name            string               `gorm:"column:name;not null"`
	Description     *string              `gorm:"column:description"`
	Category        string               `gorm:"column:category;not null;index"`
	Price           decimal.Decimal      `gorm:"column:price;type:numeric(10,2);not null"`
	DiscountedPrice *decimal.Decimal     `gorm:"column:discounted_price;type:numeric(10,2)"`
	ImageURLs       pq.StringArray       `gorm:"column:image_urls;type:text[];not null;default:ARRAY[]::text[]"`
	Stock           int                  `gorm:"column:stock;not null;default:0"`
	IsActive        bool                 `gorm:"column:is_active;not null;default:true"`
	Specifications  types.Specifications `gorm:"column:specifications;type:jsonb;serializer:json"`
	CreatedAt       time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}

// EffectivePrice is the discounted price when present and positive, else the
// list price.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountedPrice != nil && p.DiscountedPrice.IsPositive() {
		return *p.DiscountedPrice
	}
	return p.Price
}

// PrimaryImageURL returns the first image or an empty string.
func (p *Product) PrimaryImageURL() string {
	if len(p.ImageURLs) == 0 {
		return ""
	}
	return p.ImageURLs[0]
}
