package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	pkgerrors "github.com/nakshatra-astro/nakshatra-backend/pkg/errors"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/gemini"
)

const (
	maxMessageLength = 2000
	historyWindow    = 20

	systemPrompt = `You are Nakshatra AI, an ancient, wise, and benevolent astrological guide. Your responses should be accurate and insightful from an astrological perspective, concise but meaningful (2-3 sentences max unless a detailed explanation is requested), and empathetic and encouraging. Include relevant planetary influences, signs, and houses when appropriate, and use mystical language with cosmic emojis sparingly. If a question is outside astrology, gently redirect to astrological topics. Never make definitive predictions about specific future events; focus on guidance and cosmic influences rather than fortune telling.`
)

type textGenerator interface {
	Generate(ctx context.Context, system string, history []gemini.Turn, prompt string) (string, error)
}

// MessageDTO is one advisor conversation turn.
type MessageDTO struct {
	ID         uuid.UUID `json:"id"`
	Message    string    `json:"message"`
	IsFromUser bool      `json:"is_from_user"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReplyDTO is the advisor response to one shopper message.
type ReplyDTO struct {
	Reply string `json:"reply"`
}

// Service exposes the AI advisor conversation.
type Service interface {
	Send(ctx context.Context, userID uuid.UUID, message string) (*ReplyDTO, error)
	History(ctx context.Context, userID uuid.UUID) ([]MessageDTO, error)
}

type service struct {
	repo ChatRepository
	ai   textGenerator
}

// NewService builds a chat service around the generator.
func NewService(repo ChatRepository, ai textGenerator) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("chat repository required")
	}
	if ai == nil {
		return nil, fmt.Errorf("text generator required")
	}
	return &service{repo: repo, ai: ai}, nil
}

// Send generates an advisor reply for the message. When the caller is
// authenticated both sides of the exchange are persisted; anonymous
// messages get a reply without history.
func (s *service) Send(ctx context.Context, userID uuid.UUID, message string) (*ReplyDTO, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "message is required")
	}
	if len(message) > maxMessageLength {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("message must be at most %d characters", maxMessageLength))
	}

	var history []gemini.Turn
	if userID != uuid.Nil {
		rows, err := s.repo.ListByUser(ctx, userID, historyWindow)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load chat history")
		}
		for _, row := range rows {
			role := "model"
			if row.IsFromUser {
				role = "user"
			}
			history = append(history, gemini.Turn{Role: role, Text: row.Message})
		}
	}

	reply, err := s.ai.Generate(ctx, systemPrompt, history, message)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "generate advisor reply")
	}

	if userID != uuid.Nil {
		if _, err := s.repo.Create(ctx, &models.ChatMessage{UserID: userID, Message: message, IsFromUser: true}); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save user message")
		}
		if _, err := s.repo.Create(ctx, &models.ChatMessage{UserID: userID, Message: reply, IsFromUser: false}); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save advisor reply")
		}
	}

	return &ReplyDTO{Reply: reply}, nil
}

// History returns the user's conversation oldest first.
func (s *service) History(ctx context.Context, userID uuid.UUID) ([]MessageDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "please log in")
	}
	rows, err := s.repo.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load chat history")
	}
	out := make([]MessageDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, MessageDTO{
			ID:         row.ID,
			Message:    row.Message,
			IsFromUser: row.IsFromUser,
			CreatedAt:  row.CreatedAt,
		})
	}
	return out, nil
}
