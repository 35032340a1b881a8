package contact

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
	pkgerrors "github.com/nakshatra-astro/nakshatra-backend/pkg/errors"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/pagination"
)

type stubContactRepo struct {
	rows map[uuid.UUID]*models.ContactMessage
}

func newStubContactRepo() *stubContactRepo {
	return &stubContactRepo{rows: map[uuid.UUID]*models.ContactMessage{}}
}

func (s *stubContactRepo) WithTx(tx *gorm.DB) ContactRepository { return s }

func (s *stubContactRepo) Create(ctx context.Context, row *models.ContactMessage) (*models.ContactMessage, error) {
	row.ID = uuid.New()
	s.rows[row.ID] = row
	return row, nil
}

func (s *stubContactRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	if row, ok := s.rows[id]; ok {
		clone := *row
		return &clone, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubContactRepo) ListAll(ctx context.Context, status enums.ContactStatus, params pagination.Params) ([]models.ContactMessage, int64, error) {
	var out []models.ContactMessage
	for _, row := range s.rows {
		if status != "" && row.Status != status {
			continue
		}
		out = append(out, *row)
	}
	return out, int64(len(out)), nil
}

func (s *stubContactRepo) Save(ctx context.Context, row *models.ContactMessage) (*models.ContactMessage, error) {
	s.rows[row.ID] = row
	return row, nil
}

func (s *stubContactRepo) CountByStatus(ctx context.Context, status enums.ContactStatus) (int64, error) {
	var count int64
	for _, row := range s.rows {
		if row.Status == status {
			count++
		}
	}
	return count, nil
}

func newContactFixture(t *testing.T) (Service, *stubContactRepo) {
	t.Helper()
	repo := newStubContactRepo()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, repo
}

func TestCreateStoresUnread(t *testing.T) {
	t.Parallel()

	svc, _ := newContactFixture(t)
	dto, err := svc.Create(context.Background(), CreateMessageInput{
		Name:    "Asha",
		Email:   "Asha@Example.com",
		Subject: "Order query",
		Message: "Where is my mala?",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.Status != enums.ContactStatusUnread {
		t.Fatalf("expected unread status, got %s", dto.Status)
	}
	if dto.Email != "asha@example.com" {
		t.Fatalf("expected normalized email, got %s", dto.Email)
	}
}

func TestCreateRejectsMissingFields(t *testing.T) {
	t.Parallel()

	svc, _ := newContactFixture(t)
	_, err := svc.Create(context.Background(), CreateMessageInput{Name: "Asha"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateRejectsBadEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newContactFixture(t)
	_, err := svc.Create(context.Background(), CreateMessageInput{
		Name:    "Asha",
		Email:   "not-an-email",
		Subject: "Hi",
		Message: "Hello",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	t.Parallel()

	svc, _ := newContactFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateMessageInput{
		Name: "Asha", Email: "a@example.com", Subject: "Hi", Message: "Hello",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, created.ID, "resolved")
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != enums.ContactStatusResolved {
		t.Fatalf("expected resolved, got %s", updated.Status)
	}

	_, err = svc.UpdateStatus(ctx, created.ID, "archived")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}

	_, err = svc.UpdateStatus(ctx, uuid.New(), "read")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListAllFiltersByStatus(t *testing.T) {
	t.Parallel()

	svc, _ := newContactFixture(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateMessageInput{Name: "A", Email: "a@example.com", Subject: "S", Message: "M"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, CreateMessageInput{Name: "B", Email: "b@example.com", Subject: "S", Message: "M"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, first.ID, "read"); err != nil {
		t.Fatalf("update status: %v", err)
	}

	out, page, err := svc.ListAll(ctx, "unread", pagination.Params{Page: 1, Limit: 25})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 || page.TotalItems != 1 {
		t.Fatalf("expected one unread message, got %d", len(out))
	}
}
