package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
	pkgerrors "github.com/nakshatra-astro/nakshatra-backend/pkg/errors"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/pagination"
)

// Service exposes order reads for shoppers and fulfillment updates for admins.
type Service interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error)
	GetForUser(ctx context.Context, id, userID uuid.UUID) (*OrderDTO, error)
	ListAll(ctx context.Context, filter ListFilter, params pagination.Params) ([]OrderDTO, pagination.Page, error)
	Get(ctx context.Context, id uuid.UUID) (*OrderDTO, error)
	UpdateFulfillment(ctx context.Context, id uuid.UUID, input UpdateFulfillmentInput) (*OrderDTO, error)
}

type service struct {
	repo OrderRepository
}

// NewService builds an order service backed by the provided repository.
func NewService(repo OrderRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	return &service{repo: repo}, nil
}

// UpdateFulfillmentInput carries the admin-editable fields.
type UpdateFulfillmentInput struct {
	Status         *enums.OrderStatus
	TrackingID     *string
	CourierPartner *string
}

func (s *service) ListForUser(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "please log in")
	}
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return NewOrderDTOs(rows), nil
}

func (s *service) GetForUser(ctx context.Context, id, userID uuid.UUID) (*OrderDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "please log in")
	}
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	order, err := s.repo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return NewOrderDTO(order), nil
}

func (s *service) ListAll(ctx context.Context, filter ListFilter, params pagination.Params) ([]OrderDTO, pagination.Page, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, pagination.Page{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status filter")
	}
	rows, total, err := s.repo.ListAll(ctx, filter, params)
	if err != nil {
		return nil, pagination.Page{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return NewOrderDTOs(rows), params.Build(total), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*OrderDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return NewOrderDTO(order), nil
}

// UpdateFulfillment applies a status transition and optional tracking data.
func (s *service) UpdateFulfillment(ctx context.Context, id uuid.UUID, input UpdateFulfillmentInput) (*OrderDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	if input.Status == nil && input.TrackingID == nil && input.CourierPartner == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "nothing to update")
	}

	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	if input.Status != nil {
		next := *input.Status
		if !next.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid order status %q", next))
		}
		if !order.Status.CanTransitionTo(next) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("cannot move order from %q to %q", order.Status, next))
		}
		order.Status = next
	}
	if input.TrackingID != nil {
		trimmed := strings.TrimSpace(*input.TrackingID)
		if trimmed == "" {
			order.TrackingID = nil
		} else {
			order.TrackingID = &trimmed
		}
	}
	if input.CourierPartner != nil {
		trimmed := strings.TrimSpace(*input.CourierPartner)
		if trimmed == "" {
			order.CourierPartner = nil
		} else {
			order.CourierPartner = &trimmed
		}
	}

	saved, err := s.repo.Save(ctx, order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order")
	}
	return NewOrderDTO(saved), nil
}
