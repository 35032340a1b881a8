package controllers

import (
	"net/http"

	"github.com/nakshatra-astro/nakshatra-backend/api/middleware"
	"github.com/nakshatra-astro/nakshatra-backend/api/responses"
	"github.com/nakshatra-astro/nakshatra-backend/api/validators"
	checkoutsvc "github.com/nakshatra-astro/nakshatra-backend/internal/checkout"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/logger"
)

type placeOrderRequest struct {
	Name         string  `json:"name" validate:"required"`
	MobileNumber string  `json:"mobile_number" validate:"required"`
	AddressLine1 string  `json:"address_line1" validate:"required"`
	AddressLine2 *string `json:"address_line2,omitempty"`
	Landmark     *string `json:"landmark,omitempty"`
	Pincode      string  `json:"pincode" validate:"required"`
	City         string  `json:"city" validate:"required"`
	State        string  `json:"state" validate:"required"`
	Country      string  `json:"country" validate:"required"`
}

// CheckoutQuote prices the current cart without placing an order.
func CheckoutQuote(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		quote, err := svc.Quote(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, quote)
	}
}

// PlaceOrder snapshots the cart into an order inside one transaction.
func PlaceOrder(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload placeOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		order, err := svc.PlaceOrder(r.Context(), userID, checkoutsvc.ShippingInput{
			Name:         payload.Name,
			MobileNumber: payload.MobileNumber,
			AddressLine1: payload.AddressLine1,
			AddressLine2: payload.AddressLine2,
			Landmark:     payload.Landmark,
			Pincode:      payload.Pincode,
			City:         payload.City,
			State:        payload.State,
			Country:      payload.Country,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
