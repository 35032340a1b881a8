package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nakshatra-astro/nakshatra-backend/api/controllers"
	"github.com/nakshatra-astro/nakshatra-backend/api/middleware"
	"github.com/nakshatra-astro/nakshatra-backend/internal/address"
	"github.com/nakshatra-astro/nakshatra-backend/internal/auth"
	"github.com/nakshatra-astro/nakshatra-backend/internal/banners"
	"github.com/nakshatra-astro/nakshatra-backend/internal/cart"
	"github.com/nakshatra-astro/nakshatra-backend/internal/chat"
	checkoutsvc "github.com/nakshatra-astro/nakshatra-backend/internal/checkout"
	"github.com/nakshatra-astro/nakshatra-backend/internal/contact"
	"github.com/nakshatra-astro/nakshatra-backend/internal/dashboard"
	"github.com/nakshatra-astro/nakshatra-backend/internal/kundali"
	"github.com/nakshatra-astro/nakshatra-backend/internal/liked"
	"github.com/nakshatra-astro/nakshatra-backend/internal/orders"
	"github.com/nakshatra-astro/nakshatra-backend/internal/products"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/auth/session"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/config"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/db"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/logger"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/metrics"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/redis"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	DBPinger db.Pinger
	Redis    redis.Pinger

	Sessions    session.Resolver
	HTTPMetrics *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer

	Auth      auth.Service
	Products  products.Service
	Cart      cart.Service
	Checkout  checkoutsvc.Service
	Orders    orders.Service
	Addresses address.Service
	Liked     liked.Service
	Kundali   kundali.Service
	Chat      chat.Service
	Banners   banners.Service
	Contact   contact.Service
	Dashboard dashboard.Service
}

func NewRouter(d Deps) http.Handler {
	cfg := d.Config
	logg := d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
		middleware.Metrics(d.HTTPMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, d.DBPinger, d.Redis))
	})

	if d.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", controllers.AuthRegister(d.Auth, cfg, logg))
			r.Post("/login", controllers.AuthLogin(d.Auth, cfg, logg))
			r.Post("/logout", controllers.AuthLogout(d.Auth, cfg, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.Session(cfg.Session, d.Sessions, logg))
				r.Get("/me", controllers.AuthMe(d.Auth, logg))
				r.Post("/change-password", controllers.AuthChangePassword(d.Auth, logg))
			})
		})

		r.Get("/products", controllers.ProductList(d.Products, logg))
		r.Get("/products/{productId}", controllers.ProductDetail(d.Products, logg))
		r.Get("/promotional-banners", controllers.BannerList(d.Banners, logg))
		r.Post("/contact", controllers.ContactCreate(d.Contact, logg))

		r.With(middleware.OptionalSession(cfg.Session, d.Sessions, logg)).
			Post("/chat", controllers.ChatSend(d.Chat, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(cfg.Session, d.Sessions, logg))

			r.Get("/chat/history", controllers.ChatHistory(d.Chat, logg))

			r.Route("/user/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(d.Cart, logg))
				r.Post("/", controllers.CartAdd(d.Cart, logg))
				r.Delete("/", controllers.CartClear(d.Cart, logg))
				r.Put("/{productId}", controllers.CartUpdateQuantity(d.Cart, logg))
				r.Delete("/{productId}", controllers.CartRemove(d.Cart, logg))
			})

			r.Post("/checkout/quote", controllers.CheckoutQuote(d.Checkout, logg))
			r.Post("/orders", controllers.PlaceOrder(d.Checkout, logg))
			r.Get("/user/orders", controllers.OrderList(d.Orders, logg))
			r.Get("/user/orders/{orderId}", controllers.OrderDetail(d.Orders, logg))
			r.Get("/user/addresses", controllers.AddressList(d.Addresses, logg))

			r.Route("/user/liked-products", func(r chi.Router) {
				r.Get("/", controllers.LikedList(d.Liked, logg))
				r.Post("/", controllers.LikedAdd(d.Liked, logg))
				r.Delete("/{productId}", controllers.LikedRemove(d.Liked, logg))
				r.Get("/{productId}/check", controllers.LikedCheck(d.Liked, logg))
			})

			r.Post("/kundali", controllers.KundaliCreate(d.Kundali, logg))
			r.Get("/user/kundali-requests", controllers.KundaliListOwn(d.Kundali, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Post("/auth/login", controllers.AdminAuthLogin(d.Auth, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))
			r.Use(middleware.RequireRole("admin", logg))

			r.Route("/products", func(r chi.Router) {
				r.Post("/", controllers.AdminCreateProduct(d.Products, logg))
				r.Patch("/{productId}", controllers.AdminUpdateProduct(d.Products, logg))
				r.Delete("/{productId}", controllers.AdminDeleteProduct(d.Products, logg))
				if cfg.FeatureFlags.SeedRoutes && !cfg.App.IsProd() {
					r.Post("/seed", controllers.AdminSeedProducts(d.Products, logg))
				}
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.AdminOrderList(d.Orders, logg))
				r.Get("/{orderId}", controllers.AdminOrderDetail(d.Orders, logg))
				r.Patch("/{orderId}", controllers.AdminUpdateOrder(d.Orders, logg))
			})

			r.Route("/kundali-requests", func(r chi.Router) {
				r.Get("/", controllers.AdminKundaliList(d.Kundali, logg))
				r.Patch("/{requestId}", controllers.AdminKundaliUpdate(d.Kundali, logg))
			})

			r.Route("/promotional-banners", func(r chi.Router) {
				r.Get("/", controllers.AdminBannerList(d.Banners, logg))
				r.Post("/", controllers.AdminBannerCreate(d.Banners, logg))
				r.Patch("/{bannerId}", controllers.AdminBannerUpdate(d.Banners, logg))
				r.Delete("/{bannerId}", controllers.AdminBannerDelete(d.Banners, logg))
				if cfg.FeatureFlags.SeedRoutes && !cfg.App.IsProd() {
					r.Post("/seed", controllers.AdminBannerSeed(d.Banners, logg))
				}
			})

			r.Route("/contact-messages", func(r chi.Router) {
				r.Get("/", controllers.AdminContactList(d.Contact, logg))
				r.Patch("/{messageId}", controllers.AdminContactUpdateStatus(d.Contact, logg))
			})

			r.Get("/dashboard", controllers.AdminDashboard(d.Dashboard, logg))
		})
	})

	return r
}
