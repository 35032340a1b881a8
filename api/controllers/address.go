package controllers

import (
	"net/http"

	"github.com/nakshatra-astro/nakshatra-backend/api/middleware"
	"github.com/nakshatra-astro/nakshatra-backend/api/responses"
	addresssvc "github.com/nakshatra-astro/nakshatra-backend/internal/address"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/logger"
)

// AddressList returns the shopper's saved address, if any.
func AddressList(svc addresssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		addresses, err := svc.List(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, addresses)
	}
}
