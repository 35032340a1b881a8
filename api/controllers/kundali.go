package controllers

import (
	"net/http"
	"time"

	"github.com/nakshatra-astro/nakshatra-backend/api/middleware"
	"github.com/nakshatra-astro/nakshatra-backend/api/responses"
	"github.com/nakshatra-astro/nakshatra-backend/api/validators"
	kundalisvc "github.com/nakshatra-astro/nakshatra-backend/internal/kundali"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
	pkgerrors "github.com/nakshatra-astro/nakshatra-backend/pkg/errors"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/logger"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/pagination"
)

type createKundaliRequest struct {
	FullName    string  `json:"full_name" validate:"required"`
	Gender      string  `json:"gender" validate:"required"`
	BirthDate   string  `json:"birth_date" validate:"required"`
	BirthTime   string  `json:"birth_time" validate:"required"`
	BirthPlace  string  `json:"birth_place" validate:"required"`
	FatherName  *string `json:"father_name,omitempty"`
	KundaliType string  `json:"kundali_type" validate:"required"`
}

type updateKundaliRequest struct {
	Status    *string `json:"status,omitempty"`
	ReportURL *string `json:"report_url,omitempty"`
}

// KundaliCreate records a paid report request for the shopper.
func KundaliCreate(svc kundalisvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createKundaliRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		birthDate, err := time.Parse("2006-01-02", payload.BirthDate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "birth_date must be YYYY-MM-DD"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		request, err := svc.Create(r.Context(), userID, kundalisvc.CreateRequestInput{
			FullName:    payload.FullName,
			Gender:      payload.Gender,
			BirthDate:   birthDate,
			BirthTime:   payload.BirthTime,
			BirthPlace:  payload.BirthPlace,
			FatherName:  payload.FatherName,
			KundaliType: payload.KundaliType,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, request)
	}
}

// KundaliListOwn returns the shopper's report requests.
func KundaliListOwn(svc kundalisvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		requests, err := svc.ListForUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, requests)
	}
}

// AdminKundaliList pages all report requests with a status filter.
func AdminKundaliList(svc kundalisvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		params := pagination.FromQuery(query)

		requests, page, err := svc.ListAll(r.Context(), query.Get("status"), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"requests":   requests,
			"pagination": page,
		})
	}
}

// AdminKundaliUpdate sets a request's status and report url.
func AdminKundaliUpdate(svc kundalisvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID, err := validators.ParseUUIDParam(r, "requestId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateKundaliRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := kundalisvc.UpdateRequestInput{ReportURL: payload.ReportURL}
		if payload.Status != nil {
			status, err := enums.ParseKundaliStatus(*payload.Status)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, err.Error()))
				return
			}
			input.Status = &status
		}

		request, err := svc.Update(r.Context(), requestID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, request)
	}
}
