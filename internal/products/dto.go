package products

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/types"
)

// ProductDTO represents the product payload returned to clients.
type ProductDTO struct {
	ID              uuid.UUID            `json:"id"`
	Name            string               `json:"name"`
	Description     *string              `json:"description,omitempty"`
	Category        string               `json:"category"`
	Price           decimal.Decimal      `json:"price"`
	DiscountedPrice *decimal.Decimal     `json:"discounted_price,omitempty"`
	EffectivePrice  decimal.Decimal      `json:"effective_price"`
	ImageURLs       []string             `json:"image_urls"`
	Stock           int                  `json:"stock"`
	IsActive        bool                 `json:"is_active"`
	Specifications  types.Specifications `json:"specifications,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// NewProductDTO builds a DTO from the persisted model.
func NewProductDTO(product *models.Product) *ProductDTO {
	return &ProductDTO{
		ID:              product.ID,
		Name:            product.Name,
		Description:     product.Description,
		Category:        product.Category,
		Price:           product.Price,
		DiscountedPrice: product.DiscountedPrice,
		EffectivePrice:  product.EffectivePrice(),
		ImageURLs:       append([]string{}, product.ImageURLs...),
		Stock:           product.Stock,
		IsActive:        product.IsActive,
		Specifications:  product.Specifications,
		CreatedAt:       product.CreatedAt,
		UpdatedAt:       product.UpdatedAt,
	}
}

// NewProductDTOs maps a slice of models.
func NewProductDTOs(rows []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewProductDTO(&rows[i]))
	}
	return out
}
