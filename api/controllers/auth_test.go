package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	authsvc "github.com/nakshatra-astro/nakshatra-backend/internal/auth"
	"github.com/nakshatra-astro/nakshatra-backend/internal/users"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/config"
	pkgerrors "github.com/nakshatra-astro/nakshatra-backend/pkg/errors"
)

type stubAuthService struct {
	user      *users.UserDTO
	sessionID string
	token     string
	err       error

	loggedOut string
}

func (s *stubAuthService) Register(ctx context.Context, input authsvc.RegisterInput) (*users.UserDTO, string, error) {
	return s.user, s.sessionID, s.err
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*users.UserDTO, string, error) {
	return s.user, s.sessionID, s.err
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	s.loggedOut = sessionID
	return s.err
}

func (s *stubAuthService) Me(ctx context.Context, userID uuid.UUID) (*users.UserDTO, error) {
	return s.user, s.err
}

func (s *stubAuthService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	return s.err
}

func (s *stubAuthService) AdminLogin(ctx context.Context, email, password string) (*users.UserDTO, string, error) {
	return s.user, s.token, s.err
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Env = "dev"
	cfg.Session.CookieName = "nakshatra_session"
	cfg.Session.TTL = time.Hour
	return cfg
}

func TestAuthLoginSetsSessionCookie(t *testing.T) {
	stub := &stubAuthService{
		user:      &users.UserDTO{ID: uuid.New(), Email: "asha@example.com"},
		sessionID: "sess-123",
	}
	handler := AuthLogin(stub, testConfig(), nil)

	body := `{"email":"asha@example.com","password":"secret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	cookies := resp.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == "nakshatra_session" && c.Value == "sess-123" {
			found = true
			if !c.HttpOnly {
				t.Fatal("session cookie must be http-only")
			}
		}
	}
	if !found {
		t.Fatal("session cookie not set")
	}
}

func TestAuthLoginInvalidCredentials(t *testing.T) {
	stub := &stubAuthService{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")}
	handler := AuthLogin(stub, testConfig(), nil)

	body := `{"email":"asha@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
	if len(resp.Result().Cookies()) != 0 {
		t.Fatal("no cookie expected on failed login")
	}
}

func TestAuthLogoutRevokesAndClearsCookie(t *testing.T) {
	stub := &stubAuthService{}
	handler := AuthLogout(stub, testConfig(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "nakshatra_session", Value: "sess-123"})
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.loggedOut != "sess-123" {
		t.Fatalf("session not revoked: %q", stub.loggedOut)
	}

	cookies := resp.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Fatalf("expected an expired cookie, got %+v", cookies)
	}
}

func TestAdminAuthLoginReturnsBearerToken(t *testing.T) {
	stub := &stubAuthService{
		user:  &users.UserDTO{ID: uuid.New(), Email: "admin@example.com", IsAdmin: true},
		token: "jwt-token",
	}
	handler := AdminAuthLogin(stub, nil)

	body := `{"email":"admin@example.com","password":"secret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	payload := resp.Body.String()
	if !strings.Contains(payload, "jwt-token") || !strings.Contains(payload, "Bearer") {
		t.Fatalf("token payload missing: %s", payload)
	}
}
