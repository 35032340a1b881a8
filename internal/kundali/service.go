package kundali

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	pkgenums "github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
	pkgerrors "github.com/nakshatra-astro/nakshatra-backend/pkg/errors"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/gemini"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/logger"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/pagination"
)

// kundaliTypePrices fixes the report price per type.
var kundaliTypePrices = map[string]decimal.Decimal{
	"basic":         decimal.NewFromInt(999),
	"detailed":      decimal.NewFromInt(2499),
	"compatibility": decimal.NewFromInt(1799),
	"career":        decimal.NewFromInt(1999),
	"yearly":        decimal.NewFromInt(1299),
}

const summaryPrompt = `As an expert Vedic astrologer, provide a brief summary for a Kundali reading based on these birth details:

Name: %s
Birth Date: %s
Birth Time: %s
Birth Place: %s
Gender: %s

Provide a 2-3 paragraph summary highlighting key personality traits based on the likely sun sign, general life themes and strengths, and areas for growth and awareness. Keep it encouraging and insightful, avoiding specific predictions.`

type textGenerator interface {
	Generate(ctx context.Context, system string, history []gemini.Turn, prompt string) (string, error)
}

// CreateRequestInput carries the shopper's birth details.
type CreateRequestInput struct {
	FullName    string
	Gender      string
	BirthDate   time.Time
	BirthTime   string
	BirthPlace  string
	FatherName  *string
	KundaliType string
}

// UpdateRequestInput carries the admin fulfillment update. Nil fields are left unchanged.
type UpdateRequestInput struct {
	Status    *pkgenums.KundaliStatus
	ReportURL *string
}

// RequestDTO is the kundali request payload returned to clients.
type RequestDTO struct {
	ID          uuid.UUID              `json:"id"`
	UserID      uuid.UUID              `json:"user_id"`
	FullName    string                 `json:"full_name"`
	Gender      string                 `json:"gender"`
	BirthDate   time.Time              `json:"birth_date"`
	BirthTime   string                 `json:"birth_time"`
	BirthPlace  string                 `json:"birth_place"`
	FatherName  *string                `json:"father_name,omitempty"`
	KundaliType string                 `json:"kundali_type"`
	Price       decimal.Decimal        `json:"price"`
	Status      pkgenums.KundaliStatus `json:"status"`
	ReportURL   *string                `json:"report_url,omitempty"`
	AISummary   *string                `json:"ai_summary,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// NewRequestDTO builds a DTO from the persisted model.
func NewRequestDTO(row *models.KundaliRequest) *RequestDTO {
	return &RequestDTO{
		ID:          row.ID,
		UserID:      row.UserID,
		FullName:    row.FullName,
		Gender:      row.Gender,
		BirthDate:   row.BirthDate,
		BirthTime:   row.BirthTime,
		BirthPlace:  row.BirthPlace,
		FatherName:  row.FatherName,
		KundaliType: row.KundaliType,
		Price:       row.Price,
		Status:      row.Status,
		ReportURL:   row.ReportURL,
		AISummary:   row.AISummary,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func newRequestDTOs(rows []models.KundaliRequest) []RequestDTO {
	out := make([]RequestDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewRequestDTO(&rows[i]))
	}
	return out
}

// Service exposes the kundali report workflow.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateRequestInput) (*RequestDTO, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]RequestDTO, error)
	ListAll(ctx context.Context, status string, params pagination.Params) ([]RequestDTO, *pagination.Page, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateRequestInput) (*RequestDTO, error)
}

type service struct {
	repo KundaliRepository
	ai   textGenerator
	logg *logger.Logger
}

// NewService builds a kundali service. The generator may be nil, in which case
// requests are created without a summary.
func NewService(repo KundaliRepository, ai textGenerator, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("kundali repository required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, ai: ai, logg: logg}, nil
}

func (input CreateRequestInput) validate() error {
	var missing []string
	if strings.TrimSpace(input.FullName) == "" {
		missing = append(missing, "full_name")
	}
	if strings.TrimSpace(input.Gender) == "" {
		missing = append(missing, "gender")
	}
	if input.BirthDate.IsZero() {
		missing = append(missing, "birth_date")
	}
	if strings.TrimSpace(input.BirthTime) == "" {
		missing = append(missing, "birth_time")
	}
	if strings.TrimSpace(input.BirthPlace) == "" {
		missing = append(missing, "birth_place")
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "incomplete birth details").
			WithDetails(map[string]any{"missing_fields": missing})
	}
	if _, ok := kundaliTypePrices[strings.ToLower(strings.TrimSpace(input.KundaliType))]; !ok {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown kundali type")
	}
	return nil
}

// Create validates the birth details, prices the request by type, and stores it.
// A Gemini summary is attached best-effort: generation failure is logged and
// the request comes back without one.
func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreateRequestInput) (*RequestDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "please log in")
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	kundaliType := strings.ToLower(strings.TrimSpace(input.KundaliType))
	row := &models.KundaliRequest{
		UserID:      userID,
		FullName:    strings.TrimSpace(input.FullName),
		Gender:      strings.TrimSpace(input.Gender),
		BirthDate:   input.BirthDate,
		BirthTime:   strings.TrimSpace(input.BirthTime),
		BirthPlace:  strings.TrimSpace(input.BirthPlace),
		FatherName:  input.FatherName,
		KundaliType: kundaliType,
		Price:       kundaliTypePrices[kundaliType],
		Status:      pkgenums.KundaliStatusPending,
	}

	if s.ai != nil {
		prompt := fmt.Sprintf(summaryPrompt,
			row.FullName, row.BirthDate.Format("2006-01-02"), row.BirthTime, row.BirthPlace, row.Gender)
		summary, err := s.ai.Generate(ctx, "", nil, prompt)
		if err != nil {
			s.logg.Error(ctx, "kundali summary generation failed", err)
		} else if summary != "" {
			row.AISummary = &summary
		}
	}

	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save kundali request")
	}
	return NewRequestDTO(created), nil
}

// ListForUser returns the user's own requests, newest first.
func (s *service) ListForUser(ctx context.Context, userID uuid.UUID) ([]RequestDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "please log in")
	}
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load kundali requests")
	}
	return newRequestDTOs(rows), nil
}

// ListAll returns a page of requests for the admin view.
func (s *service) ListAll(ctx context.Context, status string, params pagination.Params) ([]RequestDTO, *pagination.Page, error) {
	var filter pkgenums.KundaliStatus
	if status != "" {
		parsed, err := pkgenums.ParseKundaliStatus(status)
		if err != nil {
			return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
		filter = parsed
	}

	rows, total, err := s.repo.ListAll(ctx, filter, params)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list kundali requests")
	}
	page := params.Build(total)
	return newRequestDTOs(rows), &page, nil
}

// Update applies the admin fulfillment update to a request.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateRequestInput) (*RequestDTO, error) {
	if input.Status == nil && input.ReportURL == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "nothing to update")
	}

	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "kundali request not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load kundali request")
	}

	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid kundali status")
		}
		row.Status = *input.Status
	}
	if input.ReportURL != nil {
		url := strings.TrimSpace(*input.ReportURL)
		if url == "" {
			row.ReportURL = nil
		} else {
			row.ReportURL = &url
		}
	}

	saved, err := s.repo.Save(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save kundali request")
	}
	return NewRequestDTO(saved), nil
}
