package products

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	pkgerrors "github.com/nakshatra-astro/nakshatra-backend/pkg/errors"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/pagination"
)

type stubProductRepo struct {
	products map[uuid.UUID]*models.Product
	total    int64
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: map[uuid.UUID]*models.Product{}}
}

func (s *stubProductRepo) WithTx(tx *gorm.DB) ProductRepository { return s }

func (s *stubProductRepo) List(ctx context.Context, filter ListFilter, params pagination.Params) ([]models.Product, int64, error) {
	var rows []models.Product
	for _, p := range s.products {
		if !filter.IncludeHidden && !p.IsActive {
			continue
		}
		rows = append(rows, *p)
	}
	return rows, int64(len(rows)), nil
}

func (s *stubProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (s *stubProductRepo) GetActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	var rows []models.Product
	for _, id := range ids {
		if p, ok := s.products[id]; ok && p.IsActive {
			rows = append(rows, *p)
		}
	}
	return rows, nil
}

func (s *stubProductRepo) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	s.products[product.ID] = product
	s.total++
	return product, nil
}

func (s *stubProductRepo) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	s.products[product.ID] = product
	return product, nil
}

func (s *stubProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.products, id)
	return nil
}

func (s *stubProductRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(s.products)), nil
}

func TestServiceGetNotFound(t *testing.T) {
	t.Parallel()

	svc, err := NewService(newStubProductRepo())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.Get(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestServiceCreateValidation(t *testing.T) {
	t.Parallel()

	svc, _ := NewService(newStubProductRepo())

	_, err := svc.Create(context.Background(), CreateProductInput{Name: "", Category: "mala", Price: decimal.NewFromInt(10)})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for empty name, got %v", err)
	}

	_, err = svc.Create(context.Background(), CreateProductInput{Name: "Mala", Category: "mala", Price: decimal.NewFromInt(-1)})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for negative price, got %v", err)
	}
}

func TestServiceCreateAndUpdate(t *testing.T) {
	t.Parallel()

	repo := newStubProductRepo()
	svc, _ := NewService(repo)

	created, err := svc.Create(context.Background(), CreateProductInput{
		Name:            "Rudraksha Mala",
		Category:        "mala",
		Price:           decimal.RequireFromString("1299.00"),
		DiscountedPrice: decPtr("999.00"),
		Stock:           5,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created.EffectivePrice.Equal(decimal.RequireFromString("999.00")) {
		t.Fatalf("expected effective price 999.00, got %s", created.EffectivePrice)
	}

	newStock := 12
	updated, err := svc.Update(context.Background(), created.ID, UpdateProductInput{
		Stock:         &newStock,
		ClearDiscount: true,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Stock != 12 {
		t.Fatalf("expected stock 12, got %d", updated.Stock)
	}
	if updated.DiscountedPrice != nil {
		t.Fatal("expected discount cleared")
	}
	if !updated.EffectivePrice.Equal(decimal.RequireFromString("1299.00")) {
		t.Fatalf("expected effective price to fall back to list price, got %s", updated.EffectivePrice)
	}
}

func TestServiceSeedRejectsNonEmptyCatalog(t *testing.T) {
	t.Parallel()

	repo := newStubProductRepo()
	svc, _ := NewService(repo)

	count, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if count != len(seedProducts) {
		t.Fatalf("expected %d seeded products, got %d", len(seedProducts), count)
	}

	_, err = svc.Seed(context.Background())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict on second seed, got %v", err)
	}
}
