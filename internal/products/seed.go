package products

import (
	"github.com/shopspring/decimal"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/types"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func decPtr(value string) *decimal.Decimal {
	d := dec(value)
	return &d
}

func strPtr(value string) *string {
	return &value
}

// seedProducts is the starter catalog loaded by the dev seed route.
var seedProducts = []models.Product{
	{
		Name:            "Natural Rudraksha Mala (108 Beads)",
		Description:     strPtr("Five-mukhi rudraksha mala for daily japa, strung on cotton thread."),
		Category:        "mala",
		Price:           dec("1299.00"),
		DiscountedPrice: decPtr("999.00"),
		ImageURLs:       []string{"https://cdn.nakshatra.store/products/rudraksha-mala-1.jpg"},
		Stock:           50,
		IsActive:        true,
		Specifications: types.Specifications{
			{Name: "Bead count", Value: "108"},
			{Name: "Mukhi", Value: "5"},
		},
	},
	{
		Name:            "Sphatik Crystal Shree Yantra",
		Description:     strPtr("Hand-carved sphatik shree yantra for the puja altar."),
		Category:        "yantra",
		Price:           dec("2499.00"),
		DiscountedPrice: decPtr("1999.00"),
		ImageURLs:       []string{"https://cdn.nakshatra.store/products/sphatik-yantra-1.jpg"},
		Stock:           20,
		IsActive:        true,
		Specifications: types.Specifications{
			{Name: "Material", Value: "Sphatik crystal"},
			{Name: "Height", Value: "7.5 cm"},
		},
	},
	{
		Name:        "Yellow Sapphire (Pukhraj) Ring",
		Description: strPtr("Certified pukhraj set in panchdhatu, energized before dispatch."),
		Category:    "gemstone",
		Price:       dec("7999.00"),
		ImageURLs:   []string{"https://cdn.nakshatra.store/products/pukhraj-ring-1.jpg"},
		Stock:       10,
		IsActive:    true,
		Specifications: types.Specifications{
			{Name: "Carat", Value: "5.25"},
			{Name: "Metal", Value: "Panchdhatu"},
		},
	},
	{
		Name:            "Brass Puja Thali Set",
		Description:     strPtr("Seven-piece brass thali with diya, bell, and kumkum holders."),
		Category:        "puja",
		Price:           dec("899.00"),
		DiscountedPrice: decPtr("749.00"),
		ImageURLs:       []string{"https://cdn.nakshatra.store/products/puja-thali-1.jpg"},
		Stock:           75,
		IsActive:        true,
	},
	{
		Name:        "Gemstone Consultation Voucher",
		Description: strPtr("Thirty-minute consultation to match gemstones to your birth chart."),
		Category:    "consultation",
		Price:       dec("499.00"),
		ImageURLs:   []string{"https://cdn.nakshatra.store/products/consultation-1.jpg"},
		Stock:       999,
		IsActive:    true,
	},
}
