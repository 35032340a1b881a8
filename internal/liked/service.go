package liked

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/internal/products"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	pkgerrors "github.com/nakshatra-astro/nakshatra-backend/pkg/errors"
)

type productLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// LikedProductDTO is one liked entry with its product payload.
type LikedProductDTO struct {
	ProductID uuid.UUID            `json:"product_id"`
	LikedAt   time.Time            `json:"liked_at"`
	Product   *products.ProductDTO `json:"product,omitempty"`
}

// Service exposes liked-product operations for the authenticated shopper.
type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]LikedProductDTO, error)
	Add(ctx context.Context, userID, productID uuid.UUID) error
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	Check(ctx context.Context, userID, productID uuid.UUID) (bool, error)
}

type service struct {
	repo     LikedRepository
	products productLoader
}

// NewService builds a liked-products service backed by the provided stack.
func NewService(repo LikedRepository, loader productLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("liked repository required")
	}
	if loader == nil {
		return nil, fmt.Errorf("product loader required")
	}
	return &service{repo: repo, products: loader}, nil
}

// List returns the user's liked products, newest first.
func (s *service) List(ctx context.Context, userID uuid.UUID) ([]LikedProductDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "please log in")
	}
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load liked products")
	}
	out := make([]LikedProductDTO, 0, len(rows))
	for i := range rows {
		dto := LikedProductDTO{ProductID: rows[i].ProductID, LikedAt: rows[i].CreatedAt}
		if rows[i].Product != nil {
			dto.Product = products.NewProductDTO(rows[i].Product)
		}
		out = append(out, dto)
	}
	return out, nil
}

// Add marks the product liked. Repeated calls are no-ops.
func (s *service) Add(ctx context.Context, userID, productID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "please log in")
	}
	if productID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	exists, err := s.repo.Exists(ctx, userID, productID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check liked product")
	}
	if exists {
		return nil
	}

	_, err = s.repo.Create(ctx, &models.LikedProduct{UserID: userID, ProductID: productID})
	if err != nil {
		// Unique index on (user_id, product_id) can race with a concurrent add.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save liked product")
	}
	return nil
}

// Remove unmarks the product. Removing an absent entry is a no-op.
func (s *service) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "please log in")
	}
	if productID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if err := s.repo.DeleteByUserAndProduct(ctx, userID, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove liked product")
	}
	return nil
}

// Check reports whether the user has liked the product.
func (s *service) Check(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, pkgerrors.New(pkgerrors.CodeUnauthorized, "please log in")
	}
	if productID == uuid.Nil {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	exists, err := s.repo.Exists(ctx, userID, productID)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check liked product")
	}
	return exists, nil
}
