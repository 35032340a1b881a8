package address

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	pkgerrors "github.com/nakshatra-astro/nakshatra-backend/pkg/errors"
)

// AddressDTO is the saved shipping record returned for checkout autofill.
type AddressDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	MobileNumber string    `json:"mobile_number"`
	AddressLine1 string    `json:"address_line1"`
	AddressLine2 *string   `json:"address_line2,omitempty"`
	Landmark     *string   `json:"landmark,omitempty"`
	Pincode      string    `json:"pincode"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Country      string    `json:"country"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewAddressDTO maps the persisted record.
func NewAddressDTO(record *models.UserAddress) *AddressDTO {
	return &AddressDTO{
		ID:           record.ID,
		Name:         record.Name,
		MobileNumber: record.MobileNumber,
		AddressLine1: record.AddressLine1,
		AddressLine2: record.AddressLine2,
		Landmark:     record.Landmark,
		Pincode:      record.Pincode,
		City:         record.City,
		State:        record.State,
		Country:      record.Country,
		UpdatedAt:    record.UpdatedAt,
	}
}

// Service exposes the saved-address surface for shoppers.
type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]AddressDTO, error)
}

type service struct {
	repo AddressRepository
}

// NewService builds an address service backed by the provided repository.
func NewService(repo AddressRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("address repository required")
	}
	return &service{repo: repo}, nil
}

// List returns the user's saved addresses. The system keeps at most one per
// user, so the slice has zero or one entries.
func (s *service) List(ctx context.Context, userID uuid.UUID) ([]AddressDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "please log in")
	}
	record, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []AddressDTO{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load address")
	}
	return []AddressDTO{*NewAddressDTO(record)}, nil
}
