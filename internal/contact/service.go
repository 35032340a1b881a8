package contact

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
	pkgerrors "github.com/nakshatra-astro/nakshatra-backend/pkg/errors"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/pagination"
)

// MessageDTO is the contact message payload returned to clients.
type MessageDTO struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	Email     string              `json:"email"`
	Subject   string              `json:"subject"`
	Message   string              `json:"message"`
	Status    enums.ContactStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}

// NewMessageDTO builds a DTO from the persisted model.
func NewMessageDTO(row *models.ContactMessage) *MessageDTO {
	return &MessageDTO{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Subject:   row.Subject,
		Message:   row.Message,
		Status:    row.Status,
		CreatedAt: row.CreatedAt,
	}
}

func newMessageDTOs(rows []models.ContactMessage) []MessageDTO {
	out := make([]MessageDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewMessageDTO(&rows[i]))
	}
	return out
}

// CreateMessageInput carries the public contact form payload.
type CreateMessageInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Service exposes the public contact form and the admin triage view.
type Service interface {
	Create(ctx context.Context, input CreateMessageInput) (*MessageDTO, error)
	ListAll(ctx context.Context, status string, params pagination.Params) ([]MessageDTO, *pagination.Page, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*MessageDTO, error)
}

type service struct {
	repo ContactRepository
}

// NewService builds a contact service.
func NewService(repo ContactRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("contact repository required")
	}
	return &service{repo: repo}, nil
}

// Create stores a contact form submission as unread.
func (s *service) Create(ctx context.Context, input CreateMessageInput) (*MessageDTO, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	subject := strings.TrimSpace(input.Subject)
	message := strings.TrimSpace(input.Message)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if email == "" {
		missing = append(missing, "email")
	}
	if subject == "" {
		missing = append(missing, "subject")
	}
	if message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "incomplete contact form").
			WithDetails(map[string]any{"missing_fields": missing})
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "a valid email is required")
	}

	row := &models.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
		Status:  enums.ContactStatusUnread,
	}
	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save contact message")
	}
	return NewMessageDTO(created), nil
}

// ListAll returns a page of messages for the admin triage view.
func (s *service) ListAll(ctx context.Context, status string, params pagination.Params) ([]MessageDTO, *pagination.Page, error) {
	var filter enums.ContactStatus
	if status != "" {
		parsed, err := enums.ParseContactStatus(status)
		if err != nil {
			return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
		filter = parsed
	}

	rows, total, err := s.repo.ListAll(ctx, filter, params)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list contact messages")
	}
	page := params.Build(total)
	return newMessageDTOs(rows), &page, nil
}

// UpdateStatus moves a message through the triage states.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*MessageDTO, error) {
	parsed, err := enums.ParseContactStatus(status)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}

	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "contact message not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load contact message")
	}

	row.Status = parsed
	saved, err := s.repo.Save(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save contact message")
	}
	return NewMessageDTO(saved), nil
}
