package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	addresssvc "github.com/nakshatra-astro/nakshatra-backend/internal/address"
	authsvc "github.com/nakshatra-astro/nakshatra-backend/internal/auth"
	bannersvc "github.com/nakshatra-astro/nakshatra-backend/internal/banners"
	cartsvc "github.com/nakshatra-astro/nakshatra-backend/internal/cart"
	chatsvc "github.com/nakshatra-astro/nakshatra-backend/internal/chat"
	checkoutsvc "github.com/nakshatra-astro/nakshatra-backend/internal/checkout"
	contactsvc "github.com/nakshatra-astro/nakshatra-backend/internal/contact"
	dashboardsvc "github.com/nakshatra-astro/nakshatra-backend/internal/dashboard"
	kundalisvc "github.com/nakshatra-astro/nakshatra-backend/internal/kundali"
	likedsvc "github.com/nakshatra-astro/nakshatra-backend/internal/liked"
	ordersvc "github.com/nakshatra-astro/nakshatra-backend/internal/orders"
	productsvc "github.com/nakshatra-astro/nakshatra-backend/internal/products"
	"github.com/nakshatra-astro/nakshatra-backend/internal/users"
	pkgauth "github.com/nakshatra-astro/nakshatra-backend/pkg/auth"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/auth/session"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/config"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/enums"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/logger"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/pagination"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubResolver struct {
	userID uuid.UUID
}

func (s stubResolver) Resolve(ctx context.Context, sessionID string) (uuid.UUID, error) {
	if sessionID == "" {
		return uuid.Nil, session.ErrSessionNotFound
	}
	if s.userID == uuid.Nil {
		return uuid.Nil, session.ErrSessionNotFound
	}
	return s.userID, nil
}

type stubAuthService struct{}

func (stubAuthService) Register(ctx context.Context, input authsvc.RegisterInput) (*users.UserDTO, string, error) {
	return &users.UserDTO{ID: uuid.New()}, "sess", nil
}

func (stubAuthService) Login(ctx context.Context, email, password string) (*users.UserDTO, string, error) {
	return &users.UserDTO{ID: uuid.New()}, "sess", nil
}

func (stubAuthService) Logout(ctx context.Context, sessionID string) error {
	return nil
}

func (stubAuthService) Me(ctx context.Context, userID uuid.UUID) (*users.UserDTO, error) {
	return &users.UserDTO{ID: userID}, nil
}

func (stubAuthService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	return nil
}

func (stubAuthService) AdminLogin(ctx context.Context, email, password string) (*users.UserDTO, string, error) {
	return &users.UserDTO{ID: uuid.New(), IsAdmin: true}, "token", nil
}

type stubProductService struct{}

func (stubProductService) List(ctx context.Context, filter productsvc.ListFilter, params pagination.Params) ([]productsvc.ProductDTO, pagination.Page, error) {
	return nil, pagination.Page{}, nil
}

func (stubProductService) Get(ctx context.Context, id uuid.UUID) (*productsvc.ProductDTO, error) {
	return &productsvc.ProductDTO{ID: id}, nil
}

func (stubProductService) Create(ctx context.Context, input productsvc.CreateProductInput) (*productsvc.ProductDTO, error) {
	return &productsvc.ProductDTO{ID: uuid.New()}, nil
}

func (stubProductService) Update(ctx context.Context, id uuid.UUID, input productsvc.UpdateProductInput) (*productsvc.ProductDTO, error) {
	return &productsvc.ProductDTO{ID: id}, nil
}

func (stubProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (stubProductService) Seed(ctx context.Context) (int, error) {
	return 0, nil
}

type stubCartService struct{}

func (stubCartService) Get(ctx context.Context, userID uuid.UUID) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{}, nil
}

func (stubCartService) Add(ctx context.Context, userID, productID uuid.UUID, quantity int) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{}, nil
}

func (stubCartService) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{}, nil
}

func (stubCartService) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	return nil
}

func (stubCartService) Clear(ctx context.Context, userID uuid.UUID) error {
	return nil
}

type stubCheckoutService struct{}

func (stubCheckoutService) Quote(ctx context.Context, userID uuid.UUID) (*checkoutsvc.Quote, error) {
	return &checkoutsvc.Quote{}, nil
}

func (stubCheckoutService) PlaceOrder(ctx context.Context, userID uuid.UUID, input checkoutsvc.ShippingInput) (*ordersvc.OrderDTO, error) {
	return &ordersvc.OrderDTO{ID: uuid.New()}, nil
}

type stubOrdersService struct{}

func (stubOrdersService) ListForUser(ctx context.Context, userID uuid.UUID) ([]ordersvc.OrderDTO, error) {
	return nil, nil
}

func (stubOrdersService) GetForUser(ctx context.Context, id, userID uuid.UUID) (*ordersvc.OrderDTO, error) {
	return &ordersvc.OrderDTO{ID: id}, nil
}

func (stubOrdersService) ListAll(ctx context.Context, filter ordersvc.ListFilter, params pagination.Params) ([]ordersvc.OrderDTO, pagination.Page, error) {
	return nil, pagination.Page{}, nil
}

func (stubOrdersService) Get(ctx context.Context, id uuid.UUID) (*ordersvc.OrderDTO, error) {
	return &ordersvc.OrderDTO{ID: id}, nil
}

func (stubOrdersService) UpdateFulfillment(ctx context.Context, id uuid.UUID, input ordersvc.UpdateFulfillmentInput) (*ordersvc.OrderDTO, error) {
	return &ordersvc.OrderDTO{ID: id}, nil
}

type stubAddressService struct{}

func (stubAddressService) List(ctx context.Context, userID uuid.UUID) ([]addresssvc.AddressDTO, error) {
	return nil, nil
}

type stubLikedService struct{}

func (stubLikedService) List(ctx context.Context, userID uuid.UUID) ([]likedsvc.LikedProductDTO, error) {
	return nil, nil
}

func (stubLikedService) Add(ctx context.Context, userID, productID uuid.UUID) error {
	return nil
}

func (stubLikedService) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	return nil
}

func (stubLikedService) Check(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	return false, nil
}

type stubKundaliService struct{}

func (stubKundaliService) Create(ctx context.Context, userID uuid.UUID, input kundalisvc.CreateRequestInput) (*kundalisvc.RequestDTO, error) {
	return &kundalisvc.RequestDTO{ID: uuid.New()}, nil
}

func (stubKundaliService) ListForUser(ctx context.Context, userID uuid.UUID) ([]kundalisvc.RequestDTO, error) {
	return nil, nil
}

func (stubKundaliService) ListAll(ctx context.Context, status string, params pagination.Params) ([]kundalisvc.RequestDTO, *pagination.Page, error) {
	return nil, &pagination.Page{}, nil
}

func (stubKundaliService) Update(ctx context.Context, id uuid.UUID, input kundalisvc.UpdateRequestInput) (*kundalisvc.RequestDTO, error) {
	return &kundalisvc.RequestDTO{ID: id}, nil
}

type stubChatService struct{}

func (stubChatService) Send(ctx context.Context, userID uuid.UUID, message string) (*chatsvc.ReplyDTO, error) {
	return &chatsvc.ReplyDTO{Reply: "ok"}, nil
}

func (stubChatService) History(ctx context.Context, userID uuid.UUID) ([]chatsvc.MessageDTO, error) {
	return nil, nil
}

type stubBannerService struct{}

func (stubBannerService) ListActive(ctx context.Context, position string) ([]bannersvc.BannerDTO, error) {
	return nil, nil
}

func (stubBannerService) ListAll(ctx context.Context) ([]bannersvc.BannerDTO, error) {
	return nil, nil
}

func (stubBannerService) Create(ctx context.Context, input bannersvc.CreateBannerInput) (*bannersvc.BannerDTO, error) {
	return &bannersvc.BannerDTO{}, nil
}

func (stubBannerService) Update(ctx context.Context, id uuid.UUID, input bannersvc.UpdateBannerInput) (*bannersvc.BannerDTO, error) {
	return &bannersvc.BannerDTO{}, nil
}

func (stubBannerService) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (stubBannerService) Seed(ctx context.Context) (int, error) {
	return 0, nil
}

type stubContactService struct{}

func (stubContactService) Create(ctx context.Context, input contactsvc.CreateMessageInput) (*contactsvc.MessageDTO, error) {
	return &contactsvc.MessageDTO{ID: uuid.New()}, nil
}

func (stubContactService) ListAll(ctx context.Context, status string, params pagination.Params) ([]contactsvc.MessageDTO, *pagination.Page, error) {
	return nil, &pagination.Page{}, nil
}

func (stubContactService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*contactsvc.MessageDTO, error) {
	return &contactsvc.MessageDTO{ID: id}, nil
}

type stubDashboardService struct{}

func (stubDashboardService) Overview(ctx context.Context) (*dashboardsvc.Overview, error) {
	return &dashboardsvc.Overview{}, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.Port = "0"
	cfg.Session.CookieName = "nakshatra_session"
	cfg.Session.TTL = time.Hour
	cfg.JWT.Secret = "secret"
	cfg.JWT.Issuer = "nakshatra"
	cfg.JWT.ExpirationMinutes = 60
	return cfg
}

func newTestRouter(cfg *config.Config, resolver session.Resolver) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(Deps{
		Config:    cfg,
		Logger:    logg,
		DBPinger:  stubPinger{},
		Redis:     stubPinger{},
		Sessions:  resolver,
		Auth:      stubAuthService{},
		Products:  stubProductService{},
		Cart:      stubCartService{},
		Checkout:  stubCheckoutService{},
		Orders:    stubOrdersService{},
		Addresses: stubAddressService{},
		Liked:     stubLikedService{},
		Kundali:   stubKundaliService{},
		Chat:      stubChatService{},
		Banners:   stubBannerService{},
		Contact:   stubContactService{},
		Dashboard: stubDashboardService{},
	})
}

func buildAdminToken(t *testing.T, cfg *config.Config, role enums.ActorRole) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(cfg.JWT, time.Now(), pkgauth.AccessTokenPayload{
		UserID: uuid.New(),
		Role:   role,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(testConfig(), stubResolver{})

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestPublicProductListNeedsNoAuth(t *testing.T) {
	router := newTestRouter(testConfig(), stubResolver{})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestShopperGroupRejectsMissingCookie(t *testing.T) {
	router := newTestRouter(testConfig(), stubResolver{})

	req := httptest.NewRequest(http.MethodGet, "/api/user/cart", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session got %d", resp.Code)
	}
}

func TestShopperGroupAcceptsSessionCookie(t *testing.T) {
	router := newTestRouter(testConfig(), stubResolver{userID: uuid.New()})

	req := httptest.NewRequest(http.MethodGet, "/api/user/cart", nil)
	req.AddCookie(&http.Cookie{Name: "nakshatra_session", Value: "sess-123"})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with session got %d", resp.Code)
	}
}

func TestChatAllowsAnonymous(t *testing.T) {
	router := newTestRouter(testConfig(), stubResolver{})

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"hello"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for anonymous chat got %d", resp.Code)
	}
}

func TestAdminGroupRejectsMissingJWT(t *testing.T) {
	router := newTestRouter(testConfig(), stubResolver{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/dashboard", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
}

func TestAdminGroupRequiresAdminRole(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg, stubResolver{})

	shopper := httptest.NewRequest(http.MethodGet, "/api/admin/v1/dashboard", nil)
	shopper.Header.Set("Authorization", "Bearer "+buildAdminToken(t, cfg, enums.ActorRoleShopper))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, shopper)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for shopper token got %d", resp.Code)
	}

	admin := httptest.NewRequest(http.MethodGet, "/api/admin/v1/dashboard", nil)
	admin.Header.Set("Authorization", "Bearer "+buildAdminToken(t, cfg, enums.ActorRoleAdmin))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, admin)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin token got %d", resp.Code)
	}
}

func TestSeedRoutesHiddenByDefault(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg, stubResolver{})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/products/seed", nil)
	req.Header.Set("Authorization", "Bearer "+buildAdminToken(t, cfg, enums.ActorRoleAdmin))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code == http.StatusCreated {
		t.Fatal("seed route should not be mounted when the flag is off")
	}
}

func TestSeedRoutesMountedWhenEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.FeatureFlags.SeedRoutes = true
	router := newTestRouter(cfg, stubResolver{})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/products/seed", nil)
	req.Header.Set("Authorization", "Bearer "+buildAdminToken(t, cfg, enums.ActorRoleAdmin))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for seed route got %d", resp.Code)
	}
}
