package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nakshatra-astro/nakshatra-backend/internal/users"
	pkgauth "github.com/nakshatra-astro/nakshatra-backend/pkg/auth"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/config"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/db/models"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
	pkgerrors "github.com/nakshatra-astro/nakshatra-backend/pkg/errors"
)

type stubUserRepo struct {
	byEmail map[string]*models.User
	byID    map[uuid.UUID]*models.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: map[string]*models.User{}, byID: map[uuid.UUID]*models.User{}}
}

func (s *stubUserRepo) WithTx(tx *gorm.DB) users.UserRepository { return s }

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := s.byEmail[strings.ToLower(email)]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if u, ok := s.byID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = uuid.New()
	s.byEmail[user.Email] = user
	s.byID[user.ID] = user
	return user, nil
}

func (s *stubUserRepo) Save(ctx context.Context, user *models.User) (*models.User, error) {
	s.byEmail[user.Email] = user
	s.byID[user.ID] = user
	return user, nil
}

func (s *stubUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(s.byID)), nil
}

type stubSessions struct {
	active map[string]uuid.UUID
}

func newStubSessions() *stubSessions {
	return &stubSessions{active: map[string]uuid.UUID{}}
}

func (s *stubSessions) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	id := uuid.NewString()
	s.active[id] = userID
	return id, nil
}

func (s *stubSessions) Revoke(ctx context.Context, sessionID string) error {
	delete(s.active, sessionID)
	return nil
}

func testConfigs() (config.JWTConfig, config.PasswordConfig) {
	return config.JWTConfig{
			Secret:            "secret",
			Issuer:            "nakshatra",
			ExpirationMinutes: 30,
		}, config.PasswordConfig{
			ArgonMemoryKB:    8192,
			ArgonTime:        1,
			ArgonParallelism: 1,
			ArgonSaltLen:     16,
			ArgonKeyLen:      32,
		}
}

func newAuthService(t *testing.T, repo users.UserRepository, sessions sessionStore) Service {
	t.Helper()
	jwtCfg, pwCfg := testConfigs()
	svc, err := NewService(repo, sessions, jwtCfg, pwCfg)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestRegisterLoginLogout(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepo()
	sessions := newStubSessions()
	svc := newAuthService(t, repo, sessions)
	ctx := context.Background()

	dto, sessionID, err := svc.Register(ctx, RegisterInput{
		Email:     "Asha@Example.com",
		Password:  "very-secret-1",
		FirstName: "Asha",
		LastName:  "Sharma",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if dto.Email != "asha@example.com" {
		t.Fatalf("expected normalized email, got %s", dto.Email)
	}
	if _, ok := sessions.active[sessionID]; !ok {
		t.Fatal("expected session opened on register")
	}

	_, loginSession, err := svc.Login(ctx, "asha@example.com", "very-secret-1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(ctx, loginSession); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := sessions.active[loginSession]; ok {
		t.Fatal("expected session revoked")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t, newStubUserRepo(), newStubSessions())
	ctx := context.Background()

	input := RegisterInput{Email: "dup@example.com", Password: "very-secret-1", FirstName: "A", LastName: "B"}
	if _, _, err := svc.Register(ctx, input); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, err := svc.Register(ctx, input)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t, newStubUserRepo(), newStubSessions())
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, RegisterInput{Email: "a@example.com", Password: "very-secret-1", FirstName: "A", LastName: "B"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := svc.Login(ctx, "a@example.com", "wrong-password")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepo()
	svc := newAuthService(t, repo, newStubSessions())
	ctx := context.Background()

	dto, _, err := svc.Register(ctx, RegisterInput{Email: "c@example.com", Password: "old-password-1", FirstName: "C", LastName: "D"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.ChangePassword(ctx, dto.ID, "wrong", "new-password-1"); err == nil {
		t.Fatal("expected rejection with wrong current password")
	}
	if err := svc.ChangePassword(ctx, dto.ID, "old-password-1", "new-password-1"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, _, err := svc.Login(ctx, "c@example.com", "new-password-1"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestAdminLoginRequiresAdminFlag(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepo()
	svc := newAuthService(t, repo, newStubSessions())
	ctx := context.Background()

	dto, _, err := svc.Register(ctx, RegisterInput{Email: "admin@example.com", Password: "very-secret-1", FirstName: "Ad", LastName: "Min"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err = svc.AdminLogin(ctx, "admin@example.com", "very-secret-1")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden for non-admin, got %v", err)
	}

	repo.byID[dto.ID].IsAdmin = true
	_, token, err := svc.AdminLogin(ctx, "admin@example.com", "very-secret-1")
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}

	jwtCfg, _ := testConfigs()
	claims, err := pkgauth.ParseAccessToken(jwtCfg, token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Role != enums.ActorRoleAdmin {
		t.Fatalf("expected admin role claim, got %s", claims.Role)
	}
	if claims.UserID != dto.ID {
		t.Fatalf("expected user id claim %s, got %s", dto.ID, claims.UserID)
	}
}
