package banners

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
	pkgerrors "github.com/nakshatra-astro/nakshatra-backend/pkg/errors"
)

// BannerDTO is the banner payload returned to clients.
type BannerDTO struct {
	ID              uuid.UUID            `json:"id"`
	Title           string               `json:"title"`
	Description     *string              `json:"description,omitempty"`
	ImageURL        *string              `json:"image_url,omitempty"`
	CTAText         *string              `json:"cta_text,omitempty"`
	CTALink         *string              `json:"cta_link,omitempty"`
	DiscountCode    *string              `json:"discount_code,omitempty"`
	DiscountPercent *int                 `json:"discount_percent,omitempty"`
	ValidFrom       time.Time            `json:"valid_from"`
	ValidUntil      time.Time            `json:"valid_until"`
	IsActive        bool                 `json:"is_active"`
	Position        enums.BannerPosition `json:"position"`
	Priority        int                  `json:"priority"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// NewBannerDTO builds a DTO from the persisted model.
func NewBannerDTO(row *models.PromotionalBanner) *BannerDTO {
	return &BannerDTO{
		ID:              row.ID,
		Title:           row.Title,
		Description:     row.Description,
		ImageURL:        row.ImageURL,
		CTAText:         row.CTAText,
		CTALink:         row.CTALink,
		DiscountCode:    row.DiscountCode,
		DiscountPercent: row.DiscountPercent,
		ValidFrom:       row.ValidFrom,
		ValidUntil:      row.ValidUntil,
		IsActive:        row.IsActive,
		Position:        row.Position,
		Priority:        row.Priority,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func newBannerDTOs(rows []models.PromotionalBanner) []BannerDTO {
	out := make([]BannerDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewBannerDTO(&rows[i]))
	}
	return out
}

// CreateBannerInput carries the admin create payload.
type CreateBannerInput struct {
	Title           string
	Description     *string
	ImageURL        *string
	CTAText         *string
	CTALink         *string
	DiscountCode    *string
	DiscountPercent *int
	ValidFrom       time.Time
	ValidUntil      time.Time
	IsActive        *bool
	Position        string
	Priority        int
}

// UpdateBannerInput carries the admin update payload. Nil fields are left unchanged.
type UpdateBannerInput struct {
	Title           *string
	Description     *string
	ImageURL        *string
	CTAText         *string
	CTALink         *string
	DiscountCode    *string
	DiscountPercent *int
	ValidFrom       *time.Time
	ValidUntil      *time.Time
	IsActive        *bool
	Position        *string
	Priority        *int
}

// Service exposes banner reads for the storefront plus the admin CRUD.
type Service interface {
	ListActive(ctx context.Context, position string) ([]BannerDTO, error)
	ListAll(ctx context.Context) ([]BannerDTO, error)
	Create(ctx context.Context, input CreateBannerInput) (*BannerDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateBannerInput) (*BannerDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Seed(ctx context.Context) (int, error)
}

type service struct {
	repo BannerRepository
	now  func() time.Time
}

// NewService builds a banner service.
func NewService(repo BannerRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("banner repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

// ListActive returns the banners currently live, optionally narrowed to a position.
func (s *service) ListActive(ctx context.Context, position string) ([]BannerDTO, error) {
	var filter enums.BannerPosition
	if position != "" {
		parsed, err := enums.ParseBannerPosition(position)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
		filter = parsed
	}
	rows, err := s.repo.ListActive(ctx, filter, s.now().UTC())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load banners")
	}
	return newBannerDTOs(rows), nil
}

// ListAll returns every banner for the admin view.
func (s *service) ListAll(ctx context.Context) ([]BannerDTO, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load banners")
	}
	return newBannerDTOs(rows), nil
}

func (input CreateBannerInput) validate() error {
	if strings.TrimSpace(input.Title) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}
	if input.ValidFrom.IsZero() || input.ValidUntil.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "validity window is required")
	}
	if !input.ValidUntil.After(input.ValidFrom) {
		return pkgerrors.New(pkgerrors.CodeValidation, "valid_until must be after valid_from")
	}
	if input.DiscountPercent != nil && (*input.DiscountPercent < 1 || *input.DiscountPercent > 100) {
		return pkgerrors.New(pkgerrors.CodeValidation, "discount percent must be between 1 and 100")
	}
	return nil
}

// Create inserts a new banner from the admin payload.
func (s *service) Create(ctx context.Context, input CreateBannerInput) (*BannerDTO, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	position := enums.BannerPositionBanner
	if input.Position != "" {
		parsed, err := enums.ParseBannerPosition(input.Position)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
		position = parsed
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	row := &models.PromotionalBanner{
		Title:           strings.TrimSpace(input.Title),
		Description:     input.Description,
		ImageURL:        input.ImageURL,
		CTAText:         input.CTAText,
		CTALink:         input.CTALink,
		DiscountCode:    input.DiscountCode,
		DiscountPercent: input.DiscountPercent,
		ValidFrom:       input.ValidFrom,
		ValidUntil:      input.ValidUntil,
		IsActive:        isActive,
		Position:        position,
		Priority:        input.Priority,
	}

	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save banner")
	}
	return NewBannerDTO(created), nil
}

// Update applies a partial admin update to a banner.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateBannerInput) (*BannerDTO, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "banner not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load banner")
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
		}
		row.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		row.Description = input.Description
	}
	if input.ImageURL != nil {
		row.ImageURL = input.ImageURL
	}
	if input.CTAText != nil {
		row.CTAText = input.CTAText
	}
	if input.CTALink != nil {
		row.CTALink = input.CTALink
	}
	if input.DiscountCode != nil {
		row.DiscountCode = input.DiscountCode
	}
	if input.DiscountPercent != nil {
		if *input.DiscountPercent < 1 || *input.DiscountPercent > 100 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "discount percent must be between 1 and 100")
		}
		row.DiscountPercent = input.DiscountPercent
	}
	if input.ValidFrom != nil {
		row.ValidFrom = *input.ValidFrom
	}
	if input.ValidUntil != nil {
		row.ValidUntil = *input.ValidUntil
	}
	if !row.ValidUntil.After(row.ValidFrom) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "valid_until must be after valid_from")
	}
	if input.IsActive != nil {
		row.IsActive = *input.IsActive
	}
	if input.Position != nil {
		parsed, err := enums.ParseBannerPosition(*input.Position)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
		row.Position = parsed
	}
	if input.Priority != nil {
		row.Priority = *input.Priority
	}

	saved, err := s.repo.Save(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save banner")
	}
	return NewBannerDTO(saved), nil
}

// Delete removes a banner. Unknown ids report not found.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "banner not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load banner")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete banner")
	}
	return nil
}

// Seed inserts the sample banner set when the table is empty.
func (s *service) Seed(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count banners")
	}
	if count > 0 {
		return 0, pkgerrors.New(pkgerrors.CodeConflict, "banners already seeded")
	}

	rows := seedBanners(s.now().UTC())
	for i := range rows {
		if _, err := s.repo.Create(ctx, &rows[i]); err != nil {
			return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed banner")
		}
	}
	return len(rows), nil
}
