package controllers

import (
	"net/http"

	"github.com/nakshatra-astro/nakshatra-backend/api/responses"
	dashboardsvc "github.com/nakshatra-astro/nakshatra-backend/internal/dashboard"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/logger"
)

// AdminDashboard returns the store overview for the admin home screen.
func AdminDashboard(svc dashboardsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := svc.Overview(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, overview)
	}
}
