package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
)

const placeholderImageURL = "/images/product-placeholder.png"

// CartLineDTO is one persisted cart row joined with its product, priced for display.
type CartLineDTO struct {
	ID                uuid.UUID       `json:"id"`
	ProductID         uuid.UUID       `json:"product_id"`
	Name              string          `json:"name"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	OriginalUnitPrice decimal.Decimal `json:"original_unit_price"`
	ImageURL          string          `json:"image_url"`
	Quantity          int             `json:"quantity"`
	LineTotal         decimal.Decimal `json:"line_total"`
}

// CartDTO aggregates the cart rows with running totals.
type CartDTO struct {
	Items        []CartLineDTO   `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	SellingTotal decimal.Decimal `json:"selling_total"`
	Discount     decimal.Decimal `json:"discount"`
}

// NewCartLineDTO prices one cart row against its product.
func NewCartLineDTO(item *models.CartItem) *CartLineDTO {
	line := &CartLineDTO{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		ImageURL:  placeholderImageURL,
	}
	if item.Product != nil {
		line.Name = item.Product.Name
		line.UnitPrice = item.Product.EffectivePrice()
		line.OriginalUnitPrice = item.Product.Price
		if url := item.Product.PrimaryImageURL(); url != "" {
			line.ImageURL = url
		}
	}
	line.LineTotal = line.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
	return line
}

// NewCartDTO builds the aggregated cart view.
func NewCartDTO(items []models.CartItem) *CartDTO {
	dto := &CartDTO{
		Items:        make([]CartLineDTO, 0, len(items)),
		Subtotal:     decimal.Zero,
		SellingTotal: decimal.Zero,
		Discount:     decimal.Zero,
	}
	for i := range items {
		line := NewCartLineDTO(&items[i])
		dto.Items = append(dto.Items, *line)
		qty := decimal.NewFromInt(int64(line.Quantity))
		dto.Subtotal = dto.Subtotal.Add(line.OriginalUnitPrice.Mul(qty))
		dto.SellingTotal = dto.SellingTotal.Add(line.LineTotal)
	}
	if diff := dto.Subtotal.Sub(dto.SellingTotal); diff.IsPositive() {
		dto.Discount = diff
	}
	return dto
}
