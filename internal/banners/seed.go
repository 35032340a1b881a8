package banners

import (
	"time"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
)

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

// seedBanners returns the sample marketing set, with validity windows
// anchored to the given instant.
func seedBanners(now time.Time) []models.PromotionalBanner {
	return []models.PromotionalBanner{
		{
			Title:           "New Year Special - 30% Off All Gemstone Rings!",
			Description:     strPtr("Start your cosmic journey with authentic gemstone rings. Limited time offer!"),
			ImageURL:        strPtr("https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=800&h=300&fit=crop"),
			CTAText:         strPtr("Shop Now"),
			CTALink:         strPtr("/store?category=rings"),
			DiscountCode:    strPtr("NEWYEAR30"),
			DiscountPercent: intPtr(30),
			ValidFrom:       now,
			ValidUntil:      now.Add(30 * 24 * time.Hour),
			IsActive:        true,
			Position:        enums.BannerPositionTop,
			Priority:        10,
		},
		{
			Title:       "Free Kundali Reading with Every Purchase Above Rs. 5000",
			Description: strPtr("Unlock your celestial blueprint with our expert astrologers"),
			ImageURL:    strPtr("https://images.unsplash.com/photo-1518717758536-85ae29035b6d?w=800&h=300&fit=crop"),
			CTAText:     strPtr("Learn More"),
			CTALink:     strPtr("/kundali"),
			ValidFrom:   now,
			ValidUntil:  now.Add(60 * 24 * time.Hour),
			IsActive:    true,
			Position:    enums.BannerPositionBanner,
			Priority:    8,
		},
		{
			Title:       "AstroAI Chat - Get Instant Cosmic Guidance",
			Description: strPtr("Chat with our AI astrologer for personalized insights available 24/7"),
			ImageURL:    strPtr("https://images.unsplash.com/photo-1419242902214-272b3f66ee7a?w=800&h=300&fit=crop"),
			CTAText:     strPtr("Start Chat"),
			CTALink:     strPtr("/astro-ai"),
			ValidFrom:   now,
			ValidUntil:  now.Add(90 * 24 * time.Hour),
			IsActive:    true,
			Position:    enums.BannerPositionSidebar,
			Priority:    5,
		},
	}
}
