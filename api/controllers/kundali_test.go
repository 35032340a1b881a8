package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nakshatra-astro/nakshatra-backend/api/middleware"
	kundalisvc "github.com/nakshatra-astro/nakshatra-backend/internal/kundali"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/pagination"
)

type stubKundaliService struct {
	request *kundalisvc.RequestDTO
	err     error

	created kundalisvc.CreateRequestInput
	updated kundalisvc.UpdateRequestInput
}

func (s *stubKundaliService) Create(ctx context.Context, userID uuid.UUID, input kundalisvc.CreateRequestInput) (*kundalisvc.RequestDTO, error) {
	s.created = input
	return s.request, s.err
}

func (s *stubKundaliService) ListForUser(ctx context.Context, userID uuid.UUID) ([]kundalisvc.RequestDTO, error) {
	if s.request == nil {
		return nil, s.err
	}
	return []kundalisvc.RequestDTO{*s.request}, s.err
}

func (s *stubKundaliService) ListAll(ctx context.Context, status string, params pagination.Params) ([]kundalisvc.RequestDTO, *pagination.Page, error) {
	return nil, &pagination.Page{}, s.err
}

func (s *stubKundaliService) Update(ctx context.Context, id uuid.UUID, input kundalisvc.UpdateRequestInput) (*kundalisvc.RequestDTO, error) {
	s.updated = input
	return s.request, s.err
}

func TestKundaliCreateCreated(t *testing.T) {
	userID := uuid.New()
	stub := &stubKundaliService{request: &kundalisvc.RequestDTO{
		ID:          uuid.New(),
		UserID:      userID,
		KundaliType: "detailed",
		Price:       decimal.NewFromInt(2499),
		Status:      enums.KundaliStatusPending,
	}}
	handler := KundaliCreate(stub, nil)

	body := `{
		"full_name": "Asha Rao",
		"gender": "female",
		"birth_date": "1994-03-21",
		"birth_time": "04:35",
		"birth_place": "Mysuru",
		"kundali_type": "detailed"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/kundali", strings.NewReader(body))
	req = req.WithContext(middleware.WithUserID(req.Context(), userID))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	if stub.created.BirthDate.Format("2006-01-02") != "1994-03-21" {
		t.Fatalf("birth date not parsed: %s", stub.created.BirthDate)
	}

	var envelope struct {
		Data kundalisvc.RequestDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Data.Price.Equal(decimal.NewFromInt(2499)) {
		t.Fatalf("unexpected price %s", envelope.Data.Price)
	}
}

func TestKundaliCreateRejectsBadDate(t *testing.T) {
	handler := KundaliCreate(&stubKundaliService{}, nil)

	body := `{
		"full_name": "Asha Rao",
		"gender": "female",
		"birth_date": "21-03-1994",
		"birth_time": "04:35",
		"birth_place": "Mysuru",
		"kundali_type": "basic"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/kundali", strings.NewReader(body))
	req = req.WithContext(middleware.WithUserID(req.Context(), uuid.New()))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminKundaliUpdateParsesStatus(t *testing.T) {
	stub := &stubKundaliService{request: &kundalisvc.RequestDTO{ID: uuid.New()}}

	router := chi.NewRouter()
	router.Patch("/api/admin/v1/kundali-requests/{requestId}", AdminKundaliUpdate(stub, nil))

	body := `{"status":"completed","report_url":"https://reports.example.com/r1.pdf"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/v1/kundali-requests/"+uuid.NewString(), strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.updated.Status == nil || *stub.updated.Status != enums.KundaliStatusCompleted {
		t.Fatalf("status not forwarded: %+v", stub.updated.Status)
	}
	if stub.updated.ReportURL == nil {
		t.Fatal("report url not forwarded")
	}
}

func TestAdminKundaliUpdateRejectsUnknownStatus(t *testing.T) {
	router := chi.NewRouter()
	router.Patch("/api/admin/v1/kundali-requests/{requestId}", AdminKundaliUpdate(&stubKundaliService{}, nil))

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/v1/kundali-requests/"+uuid.NewString(), strings.NewReader(`{"status":"done"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
