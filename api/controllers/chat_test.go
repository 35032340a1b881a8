package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/nakshatra-astro/nakshatra-backend/api/middleware"
	chatsvc "github.com/nakshatra-astro/nakshatra-backend/internal/chat"
	pkgerrors "github.com/nakshatra-astro/nakshatra-backend/pkg/errors"
)

type stubChatService struct {
	reply    *chatsvc.ReplyDTO
	messages []chatsvc.MessageDTO
	err      error

	sentUser    uuid.UUID
	sentMessage string
}

func (s *stubChatService) Send(ctx context.Context, userID uuid.UUID, message string) (*chatsvc.ReplyDTO, error) {
	s.sentUser = userID
	s.sentMessage = message
	return s.reply, s.err
}

func (s *stubChatService) History(ctx context.Context, userID uuid.UUID) ([]chatsvc.MessageDTO, error) {
	return s.messages, s.err
}

func TestChatSendReturnsReply(t *testing.T) {
	stub := &stubChatService{reply: &chatsvc.ReplyDTO{Reply: "Jupiter favors patience this week."}}
	handler := ChatSend(stub, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"What does my week look like?"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.sentUser != uuid.Nil {
		t.Fatalf("anonymous request should carry a nil user id, got %s", stub.sentUser)
	}

	var envelope struct {
		Data chatsvc.ReplyDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Reply == "" {
		t.Fatal("expected a reply")
	}
}

func TestChatSendCarriesSessionUser(t *testing.T) {
	userID := uuid.New()
	stub := &stubChatService{reply: &chatsvc.ReplyDTO{Reply: "ok"}}
	handler := ChatSend(stub, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"hello"}`))
	req = req.WithContext(middleware.WithUserID(req.Context(), userID))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.sentUser != userID {
		t.Fatalf("user id not forwarded: %s", stub.sentUser)
	}
}

func TestChatSendRejectsMissingMessage(t *testing.T) {
	handler := ChatSend(&stubChatService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestChatSendDependencyFailure(t *testing.T) {
	stub := &stubChatService{err: pkgerrors.New(pkgerrors.CodeDependency, "advisor unavailable")}
	handler := ChatSend(stub, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"hello"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}

func TestChatHistorySuccess(t *testing.T) {
	stub := &stubChatService{messages: []chatsvc.MessageDTO{{Message: "hi", IsFromUser: true}}}
	handler := ChatHistory(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), uuid.New()))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
