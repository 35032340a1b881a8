package controllers

import (
	"net/http"
	"time"

	"github.com/nakshatra-astro/nakshatra-backend/api/responses"
	"github.com/nakshatra-astro/nakshatra-backend/api/validators"
	bannersvc "github.com/nakshatra-astro/nakshatra-backend/internal/banners"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/logger"
)

type createBannerRequest struct {
	Title           string    `json:"title" validate:"required"`
	Description     *string   `json:"description,omitempty"`
	ImageURL        *string   `json:"image_url,omitempty"`
	CTAText         *string   `json:"cta_text,omitempty"`
	CTALink         *string   `json:"cta_link,omitempty"`
	DiscountCode    *string   `json:"discount_code,omitempty"`
	DiscountPercent *int      `json:"discount_percent,omitempty"`
	ValidFrom       time.Time `json:"valid_from" validate:"required"`
	ValidUntil      time.Time `json:"valid_until" validate:"required"`
	IsActive        *bool     `json:"is_active,omitempty"`
	Position        string    `json:"position,omitempty"`
	Priority        int       `json:"priority,omitempty"`
}

type updateBannerRequest struct {
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	ImageURL        *string    `json:"image_url,omitempty"`
	CTAText         *string    `json:"cta_text,omitempty"`
	CTALink         *string    `json:"cta_link,omitempty"`
	DiscountCode    *string    `json:"discount_code,omitempty"`
	DiscountPercent *int       `json:"discount_percent,omitempty"`
	ValidFrom       *time.Time `json:"valid_from,omitempty"`
	ValidUntil      *time.Time `json:"valid_until,omitempty"`
	IsActive        *bool      `json:"is_active,omitempty"`
	Position        *string    `json:"position,omitempty"`
	Priority        *int       `json:"priority,omitempty"`
}

// BannerList returns the banners currently live for the storefront.
func BannerList(svc bannersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		banners, err := svc.ListActive(r.Context(), r.URL.Query().Get("position"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"banners": banners})
	}
}

// AdminBannerList returns every banner regardless of state.
func AdminBannerList(svc bannersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		banners, err := svc.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"banners": banners})
	}
}

// AdminBannerCreate publishes a new promotional banner.
func AdminBannerCreate(svc bannersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createBannerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		banner, err := svc.Create(r.Context(), bannersvc.CreateBannerInput{
			Title:           payload.Title,
			Description:     payload.Description,
			ImageURL:        payload.ImageURL,
			CTAText:         payload.CTAText,
			CTALink:         payload.CTALink,
			DiscountCode:    payload.DiscountCode,
			DiscountPercent: payload.DiscountPercent,
			ValidFrom:       payload.ValidFrom,
			ValidUntil:      payload.ValidUntil,
			IsActive:        payload.IsActive,
			Position:        payload.Position,
			Priority:        payload.Priority,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, banner)
	}
}

// AdminBannerUpdate edits an existing banner in place.
func AdminBannerUpdate(svc bannersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bannerID, err := validators.ParseUUIDParam(r, "bannerId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateBannerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		banner, err := svc.Update(r.Context(), bannerID, bannersvc.UpdateBannerInput{
			Title:           payload.Title,
			Description:     payload.Description,
			ImageURL:        payload.ImageURL,
			CTAText:         payload.CTAText,
			CTALink:         payload.CTALink,
			DiscountCode:    payload.DiscountCode,
			DiscountPercent: payload.DiscountPercent,
			ValidFrom:       payload.ValidFrom,
			ValidUntil:      payload.ValidUntil,
			IsActive:        payload.IsActive,
			Position:        payload.Position,
			Priority:        payload.Priority,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, banner)
	}
}

// AdminBannerDelete removes a banner.
func AdminBannerDelete(svc bannersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bannerID, err := validators.ParseUUIDParam(r, "bannerId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), bannerID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// AdminBannerSeed loads the sample banner set into an empty table.
func AdminBannerSeed(svc bannersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := svc.Seed(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]int{"seeded": count})
	}
}
