package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/nakshatra-astro/nakshatra-backend/api/routes"
	"github.com/nakshatra-astro/nakshatra-backend/internal/address"
	"github.com/nakshatra-astro/nakshatra-backend/internal/auth"
	"github.com/nakshatra-astro/nakshatra-backend/internal/banners"
	"github.com/nakshatra-astro/nakshatra-backend/internal/cart"
	"github.com/nakshatra-astro/nakshatra-backend/internal/chat"
	"github.com/nakshatra-astro/nakshatra-backend/internal/checkout"
	"github.com/nakshatra-astro/nakshatra-backend/internal/contact"
	"github.com/nakshatra-astro/nakshatra-backend/internal/dashboard"
	"github.com/nakshatra-astro/nakshatra-backend/internal/kundali"
	"github.com/nakshatra-astro/nakshatra-backend/internal/liked"
	"github.com/nakshatra-astro/nakshatra-backend/internal/orders"
	"github.com/nakshatra-astro/nakshatra-backend/internal/products"
	"github.com/nakshatra-astro/nakshatra-backend/internal/users"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/auth/session"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/config"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/db"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/gemini"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/logger"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/metrics"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/migrate"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.Session)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	var geminiClient *gemini.Client
	if cfg.Gemini.APIKey != "" {
		geminiClient, err = gemini.NewClient(
			cfg.Gemini.APIKey,
			gemini.WithModel(cfg.Gemini.Model),
			gemini.WithHTTPClient(&http.Client{Timeout: cfg.Gemini.Timeout}),
		)
		if err != nil {
			logg.Error(context.Background(), "failed to create gemini client", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "gemini api key not set, ai features disabled")
	}

	gdb := dbClient.DB()
	userRepo := users.NewRepository(gdb)
	productRepo := products.NewRepository(gdb)
	cartRepo := cart.NewRepository(gdb)
	orderRepo := orders.NewRepository(gdb)
	addressRepo := address.NewRepository(gdb)
	likedRepo := liked.NewRepository(gdb)
	kundaliRepo := kundali.NewRepository(gdb)
	chatRepo := chat.NewRepository(gdb)
	bannerRepo := banners.NewRepository(gdb)
	contactRepo := contact.NewRepository(gdb)
	statsRepo := dashboard.NewRepository(gdb)

	authService, err := auth.NewService(userRepo, sessionManager, cfg.JWT, cfg.Password)
	if err != nil {
		fatal(logg, "auth service", err)
	}
	productService, err := products.NewService(productRepo)
	if err != nil {
		fatal(logg, "product service", err)
	}
	cartService, err := cart.NewService(cartRepo, productRepo)
	if err != nil {
		fatal(logg, "cart service", err)
	}
	checkoutService, err := checkout.NewService(dbClient, cartRepo, orderRepo, addressRepo)
	if err != nil {
		fatal(logg, "checkout service", err)
	}
	orderService, err := orders.NewService(orderRepo)
	if err != nil {
		fatal(logg, "order service", err)
	}
	addressService, err := address.NewService(addressRepo)
	if err != nil {
		fatal(logg, "address service", err)
	}
	likedService, err := liked.NewService(likedRepo, productRepo)
	if err != nil {
		fatal(logg, "liked service", err)
	}
	kundaliService, err := kundali.NewService(kundaliRepo, geminiClient, logg)
	if err != nil {
		fatal(logg, "kundali service", err)
	}
	chatService, err := chat.NewService(chatRepo, geminiClient)
	if err != nil {
		fatal(logg, "chat service", err)
	}
	bannerService, err := banners.NewService(bannerRepo)
	if err != nil {
		fatal(logg, "banner service", err)
	}
	contactService, err := contact.NewService(contactRepo)
	if err != nil {
		fatal(logg, "contact service", err)
	}
	dashboardService, err := dashboard.NewService(statsRepo, userRepo, productRepo, kundaliRepo, contactRepo)
	if err != nil {
		fatal(logg, "dashboard service", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	router := routes.NewRouter(routes.Deps{
		Config:      cfg,
		Logger:      logg,
		DBPinger:    dbClient,
		Redis:       redisClient,
		Sessions:    sessionManager,
		HTTPMetrics: httpMetrics,
		Gatherer:    registry,
		Auth:        authService,
		Products:    productService,
		Cart:        cartService,
		Checkout:    checkoutService,
		Orders:      orderService,
		Addresses:   addressService,
		Liked:       likedService,
		Kundali:     kundaliService,
		Chat:        chatService,
		Banners:     bannerService,
		Contact:     contactService,
		Dashboard:   dashboardService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}
}

func fatal(logg *logger.Logger, what string, err error) {
	logg.Error(context.Background(), "failed to create "+what, err)
	os.Exit(1)
}
