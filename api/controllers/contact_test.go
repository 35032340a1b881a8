package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	contactsvc "github.com/nakshatra-astro/nakshatra-backend/internal/contact"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/pagination"
)

type stubContactService struct {
	message *contactsvc.MessageDTO
	err     error

	created contactsvc.CreateMessageInput
	status  string
}

func (s *stubContactService) Create(ctx context.Context, input contactsvc.CreateMessageInput) (*contactsvc.MessageDTO, error) {
	s.created = input
	return s.message, s.err
}

func (s *stubContactService) ListAll(ctx context.Context, status string, params pagination.Params) ([]contactsvc.MessageDTO, *pagination.Page, error) {
	s.status = status
	return nil, &pagination.Page{}, s.err
}

func (s *stubContactService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*contactsvc.MessageDTO, error) {
	s.status = status
	return s.message, s.err
}

func TestContactCreateCreated(t *testing.T) {
	stub := &stubContactService{message: &contactsvc.MessageDTO{
		ID:     uuid.New(),
		Email:  "asha@example.com",
		Status: enums.ContactStatusUnread,
	}}
	handler := ContactCreate(stub, nil)

	body := `{
		"name": "Asha Rao",
		"email": "asha@example.com",
		"subject": "Order question",
		"message": "Where is my order?"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	if stub.created.Subject != "Order question" {
		t.Fatalf("payload not forwarded: %+v", stub.created)
	}

	var envelope struct {
		Data contactsvc.MessageDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Status != enums.ContactStatusUnread {
		t.Fatalf("expected unread status got %s", envelope.Data.Status)
	}
}

func TestContactCreateRejectsBadEmail(t *testing.T) {
	handler := ContactCreate(&stubContactService{}, nil)

	body := `{"name":"Asha","email":"not-an-email","subject":"hi","message":"hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminContactListForwardsStatusFilter(t *testing.T) {
	stub := &stubContactService{}
	handler := AdminContactList(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/contact-messages?status=unread", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.status != "unread" {
		t.Fatalf("status filter not forwarded: %q", stub.status)
	}
}
