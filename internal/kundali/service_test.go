package kundali

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
	pkgerrors "github.com/nakshatra-astro/nakshatra-backend/pkg/errors"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/gemini"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/logger"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/pagination"
)

type stubKundaliRepo struct {
	rows map[uuid.UUID]*models.KundaliRequest
}

func newStubKundaliRepo() *stubKundaliRepo {
	return &stubKundaliRepo{rows: map[uuid.UUID]*models.KundaliRequest{}}
}

func (s *stubKundaliRepo) WithTx(tx *gorm.DB) KundaliRepository { return s }

func (s *stubKundaliRepo) Create(ctx context.Context, row *models.KundaliRequest) (*models.KundaliRequest, error) {
	row.ID = uuid.New()
	row.CreatedAt = time.Now().UTC()
	s.rows[row.ID] = row
	return row, nil
}

func (s *stubKundaliRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.KundaliRequest, error) {
	var out []models.KundaliRequest
	for _, row := range s.rows {
		if row.UserID == userID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (s *stubKundaliRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.KundaliRequest, error) {
	if row, ok := s.rows[id]; ok {
		clone := *row
		return &clone, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubKundaliRepo) ListAll(ctx context.Context, status enums.KundaliStatus, params pagination.Params) ([]models.KundaliRequest, int64, error) {
	var out []models.KundaliRequest
	for _, row := range s.rows {
		if status != "" && row.Status != status {
			continue
		}
		out = append(out, *row)
	}
	return out, int64(len(out)), nil
}

func (s *stubKundaliRepo) Save(ctx context.Context, row *models.KundaliRequest) (*models.KundaliRequest, error) {
	s.rows[row.ID] = row
	return row, nil
}

func (s *stubKundaliRepo) CountByStatus(ctx context.Context, status enums.KundaliStatus) (int64, error) {
	var count int64
	for _, row := range s.rows {
		if row.Status == status {
			count++
		}
	}
	return count, nil
}

type stubGenerator struct {
	reply string
	err   error
}

func (s *stubGenerator) Generate(ctx context.Context, system string, history []gemini.Turn, prompt string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func validInput() CreateRequestInput {
	return CreateRequestInput{
		FullName:    "Asha Sharma",
		Gender:      "female",
		BirthDate:   time.Date(1994, 3, 21, 0, 0, 0, 0, time.UTC),
		BirthTime:   "04:35",
		BirthPlace:  "Jaipur, India",
		KundaliType: "detailed",
	}
}

func TestCreatePricesByType(t *testing.T) {
	t.Parallel()

	repo := newStubKundaliRepo()
	svc, err := NewService(repo, &stubGenerator{reply: "A grounded and curious nature."}, testLogger())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Create(context.Background(), uuid.New(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !dto.Price.Equal(kundaliTypePrices["detailed"]) {
		t.Fatalf("expected price 2499, got %s", dto.Price)
	}
	if dto.Status != enums.KundaliStatusPending {
		t.Fatalf("expected pending status, got %s", dto.Status)
	}
	if dto.AISummary == nil || *dto.AISummary != "A grounded and curious nature." {
		t.Fatalf("expected generated summary, got %v", dto.AISummary)
	}
}

func TestCreateSurvivesGeneratorFailure(t *testing.T) {
	t.Parallel()

	repo := newStubKundaliRepo()
	svc, err := NewService(repo, &stubGenerator{err: pkgerrors.New(pkgerrors.CodeDependency, "upstream down")}, testLogger())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Create(context.Background(), uuid.New(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.AISummary != nil {
		t.Fatalf("expected no summary, got %q", *dto.AISummary)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected request persisted, got %d rows", len(repo.rows))
	}
}

func TestCreateRejectsUnknownType(t *testing.T) {
	t.Parallel()

	svc, err := NewService(newStubKundaliRepo(), nil, testLogger())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	input := validInput()
	input.KundaliType = "numerology"
	_, err = svc.Create(context.Background(), uuid.New(), input)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateRejectsMissingBirthDetails(t *testing.T) {
	t.Parallel()

	svc, err := NewService(newStubKundaliRepo(), nil, testLogger())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	input := validInput()
	input.BirthPlace = ""
	input.BirthTime = ""
	_, err = svc.Create(context.Background(), uuid.New(), input)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateStatusAndReport(t *testing.T) {
	t.Parallel()

	repo := newStubKundaliRepo()
	svc, err := NewService(repo, nil, testLogger())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	created, err := svc.Create(context.Background(), uuid.New(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	completed := enums.KundaliStatusCompleted
	reportURL := "https://reports.example.com/k/123.pdf"
	updated, err := svc.Update(context.Background(), created.ID, UpdateRequestInput{
		Status:    &completed,
		ReportURL: &reportURL,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != enums.KundaliStatusCompleted {
		t.Fatalf("expected completed status, got %s", updated.Status)
	}
	if updated.ReportURL == nil || *updated.ReportURL != reportURL {
		t.Fatalf("expected report url, got %v", updated.ReportURL)
	}

	_, err = svc.Update(context.Background(), created.ID, UpdateRequestInput{})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for empty update, got %v", err)
	}
}

func TestUpdateUnknownRequest(t *testing.T) {
	t.Parallel()

	svc, err := NewService(newStubKundaliRepo(), nil, testLogger())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	pending := enums.KundaliStatusInProgress
	_, err = svc.Update(context.Background(), uuid.New(), UpdateRequestInput{Status: &pending})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
