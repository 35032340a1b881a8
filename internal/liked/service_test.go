package liked

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	pkgerrors "github.com/nakshatra-astro/nakshatra-backend/pkg/errors"
)

type stubLikedRepo struct {
	rows []models.LikedProduct
}

func (s *stubLikedRepo) WithTx(tx *gorm.DB) LikedRepository { return s }

func (s *stubLikedRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.LikedProduct, error) {
	var out []models.LikedProduct
	for _, row := range s.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubLikedRepo) Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	for _, row := range s.rows {
		if row.UserID == userID && row.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubLikedRepo) Create(ctx context.Context, row *models.LikedProduct) (*models.LikedProduct, error) {
	row.ID = uuid.New()
	s.rows = append(s.rows, *row)
	return row, nil
}

func (s *stubLikedRepo) DeleteByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) error {
	kept := s.rows[:0]
	for _, row := range s.rows {
		if row.UserID == userID && row.ProductID == productID {
			continue
		}
		kept = append(kept, row)
	}
	s.rows = kept
	return nil
}

type stubProducts struct {
	byID map[uuid.UUID]*models.Product
}

func (s *stubProducts) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if p, ok := s.byID[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newLikedFixture(t *testing.T) (Service, *stubLikedRepo, uuid.UUID) {
	t.Helper()
	productID := uuid.New()
	repo := &stubLikedRepo{}
	loader := &stubProducts{byID: map[uuid.UUID]*models.Product{
		productID: {ID: productID, Name: "Rudraksha Mala", Category: "malas", Price: decimal.NewFromInt(499), IsActive: true},
	}}
	svc, err := NewService(repo, loader)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, repo, productID
}

func TestAddIsIdempotent(t *testing.T) {
	t.Parallel()

	svc, repo, productID := newLikedFixture(t)
	userID := uuid.New()
	ctx := context.Background()

	if err := svc.Add(ctx, userID, productID); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := svc.Add(ctx, userID, productID); err != nil {
		t.Fatalf("second add: %v", err)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected a single liked row, got %d", len(repo.rows))
	}

	liked, err := svc.Check(ctx, userID, productID)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !liked {
		t.Fatal("expected product to be liked")
	}
}

func TestAddUnknownProduct(t *testing.T) {
	t.Parallel()

	svc, _, _ := newLikedFixture(t)
	err := svc.Add(context.Background(), uuid.New(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	t.Parallel()

	svc, repo, productID := newLikedFixture(t)
	userID := uuid.New()
	ctx := context.Background()

	if err := svc.Add(ctx, userID, productID); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Remove(ctx, userID, productID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.Remove(ctx, userID, productID); err != nil {
		t.Fatalf("second remove: %v", err)
	}
	if len(repo.rows) != 0 {
		t.Fatalf("expected no liked rows, got %d", len(repo.rows))
	}
}

func TestListCarriesProductPayload(t *testing.T) {
	t.Parallel()

	svc, repo, productID := newLikedFixture(t)
	userID := uuid.New()
	ctx := context.Background()

	if err := svc.Add(ctx, userID, productID); err != nil {
		t.Fatalf("add: %v", err)
	}
	// Preloaded product rides along with the row in the real repository.
	repo.rows[0].Product = &models.Product{ID: productID, Name: "Rudraksha Mala", Category: "malas", Price: decimal.NewFromInt(499), IsActive: true}

	out, err := svc.List(ctx, userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected one entry, got %d", len(out))
	}
	if out[0].Product == nil || out[0].Product.Name != "Rudraksha Mala" {
		t.Fatalf("expected product payload, got %+v", out[0].Product)
	}
}

func TestLikedRequiresAuth(t *testing.T) {
	t.Parallel()

	svc, _, productID := newLikedFixture(t)
	err := svc.Add(context.Background(), uuid.Nil, productID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
