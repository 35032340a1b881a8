package controllers

import (
	"net/http"

	"github.com/nakshatra-astro/nakshatra-backend/api/middleware"
	"github.com/nakshatra-astro/nakshatra-backend/api/responses"
	"github.com/nakshatra-astro/nakshatra-backend/api/validators"
	chatsvc "github.com/nakshatra-astro/nakshatra-backend/internal/chat"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/logger"
)

type chatSendRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatSend forwards a message to the astrology advisor. Anonymous shoppers
// get a reply without persisted history.
func ChatSend(svc chatsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload chatSendRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		reply, err := svc.Send(r.Context(), userID, payload.Message)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, reply)
	}
}

// ChatHistory returns the shopper's stored conversation.
func ChatHistory(svc chatsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		messages, err := svc.History(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"messages": messages})
	}
}
