package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bostel-e/christshop/internal/config"
	"github.com/bostel-e/christshop/internal/database"
	"github.com/bostel-e/christshop/internal/handler"
	"github.com/bostel-e/christshop/internal/jobs"
	"github.com/bostel-e/christshop/internal/metrics"
	"github.com/bostel-e/christshop/internal/middleware"
	"github.com/bostel-e/christshop/internal/redis"
	"github.com/bostel-e/christshop/internal/repository"
	"github.com/bostel-e/christshop/internal/service"
	"github.com/bostel-e/christshop/internal/token"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Local development convenience; missing .env is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	setLogLevel(cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), config.DBPingTimeout)
	if err := db.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}
	cancel()
	log.Info().Msg("database connected")

	redisClient, err := redis.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected")

	if err := metrics.Init(prometheus.DefaultRegisterer); err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}

	adminRepo := repository.NewAdminRepository(db.DB)
	sessionRepo := repository.NewAdminSessionRepository(db.DB)
	productRepo := repository.NewProductRepository(db.DB)
	categoryRepo := repository.NewCategoryRepository(db.DB)
	customerRepo := repository.NewCustomerRepository(db.DB)

	tokens := token.NewService(cfg.JWTSecret, cfg.SessionTTL())

	authService := service.NewAuthService(adminRepo, sessionRepo, tokens, cfg.SessionTTL())
	catalogService := service.NewCatalogService(productRepo, categoryRepo)
	customerService := service.NewCustomerService(customerRepo)
	notificationService := service.NewNotificationService(catalogService, customerService, cfg.StoreBaseURL)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	loginLimiter := middleware.NewLoginRateLimiter(redisClient.Client)
	bodyLimitMiddleware := middleware.NewBodyLimitMiddleware(0)
	securityHeadersMiddleware := middleware.NewSecurityHeadersMiddleware(cfg.IsProduction())

	authHandler := handler.NewAuthHandler(authService, authMiddleware.Handler, loginLimiter.Handler, cfg.IsProduction())
	productHandler := handler.NewProductHandler(catalogService, authMiddleware.Handler)
	categoryHandler := handler.NewCategoryHandler(catalogService, authMiddleware.Handler)
	customerHandler := handler.NewCustomerHandler(customerService, authMiddleware.Handler)
	notificationHandler := handler.NewNotificationHandler(notificationService, authMiddleware.Handler)
	healthHandler := handler.NewHealthHandler(db)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(config.ServerRequestTimeout))
	r.Use(metrics.Middleware)
	r.Use(bodyLimitMiddleware.Handler)
	r.Use(securityHeadersMiddleware.Handler)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)
	r.Handle("/metrics", metrics.Handler())

	r.Mount("/auth", authHandler.Routes())

	r.Route("/api", func(r chi.Router) {
		r.Mount("/products", productHandler.Routes())
		r.Mount("/categories", categoryHandler.Routes())
		r.Mount("/customers", customerHandler.Routes())
		r.Mount("/notifications", notificationHandler.Routes())
	})

	cleanupJob := jobs.NewCleanupJob(sessionRepo, config.CleanupJobInterval)
	cleanupJob.Start()
	defer cleanupJob.Stop()

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.ServerShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
