package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
)

// Fee constants in currency units. Delivery and handling are both waived once
// the post-discount selling total reaches the free-shipping threshold.
var (
	FreeShippingThreshold = decimal.NewFromInt(1000)
	DeliveryCharge        = decimal.NewFromInt(40)
	HandlingFee           = decimal.NewFromInt(20)
)

// Quote is the priced breakdown of a cart at checkout time.
type Quote struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	Discount       decimal.Decimal `json:"discount"`
	SellingTotal   decimal.Decimal `json:"selling_total"`
	DeliveryCharge decimal.Decimal `json:"delivery_charge"`
	HandlingFee    decimal.Decimal `json:"handling_fee"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
}

// QuoteLines prices the cart rows against their joined products.
//
// subtotal is the pre-discount sum of list prices, sellingTotal the
// post-discount sum the customer owes before fees, and discount their
// difference when positive.
func QuoteLines(items []models.CartItem) Quote {
	quote := Quote{
		Subtotal:       decimal.Zero,
		Discount:       decimal.Zero,
		SellingTotal:   decimal.Zero,
		DeliveryCharge: decimal.Zero,
		HandlingFee:    decimal.Zero,
	}

	for i := range items {
		item := &items[i]
		if item.Product == nil {
			continue
		}
		qty := decimal.NewFromInt(int64(item.Quantity))
		quote.Subtotal = quote.Subtotal.Add(item.Product.Price.Mul(qty))
		quote.SellingTotal = quote.SellingTotal.Add(item.Product.EffectivePrice().Mul(qty))
	}

	if diff := quote.Subtotal.Sub(quote.SellingTotal); diff.IsPositive() {
		quote.Discount = diff
	}

	if quote.SellingTotal.LessThan(FreeShippingThreshold) {
		quote.DeliveryCharge = DeliveryCharge
		quote.HandlingFee = HandlingFee
	}

	quote.GrandTotal = quote.SellingTotal.Add(quote.DeliveryCharge).Add(quote.HandlingFee)
	return quote
}
