package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/database"
	"finance-dashboard/internal/handlers"
	"finance-dashboard/internal/logging"
	"finance-dashboard/internal/middleware"
	"finance-dashboard/internal/repositories"
	"finance-dashboard/internal/server"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/session"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

const (
	sessionSweepInterval = 5 * time.Minute
	tokenCleanupInterval = time.Hour
	// Rotated tokens stay long enough to detect reuse of a stolen one.
	revokedTokenRetention = 7 * 24 * time.Hour
)

func main() {
	// A missing .env is fine outside development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		slog.Error("Failed to initialize logging", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server error", "error", err)
		_ = closer.Close()
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
	_ = closer.Close()
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg, logger)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer db.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := services.NewPrometheusMetrics(registry)

	userRepo := repositories.NewUserRepository(db.DB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db.DB)
	blacklistRepo := repositories.NewBlacklistedTokenRepository(db.DB)
	auditRepo := repositories.NewAuditLogRepository(db.DB)

	tokenService := services.NewTokenService(&cfg.JWT)
	passwordService := services.NewPasswordService(cfg.Security.BCryptCost, cfg.Security.PasswordMinLength)
	authService := services.NewAuthService(userRepo, refreshTokenRepo, auditRepo, blacklistRepo, passwordService, tokenService, metrics, logger)
	auditService := services.NewAuditService(auditRepo, logger)
	identity := services.NewGoogleIdentityService(&cfg.Google, userRepo, authService, auditService, logger)

	store := services.NewCategoryStore(userRepo, metrics, logger)
	classifier := services.NewClassifier(store, metrics, logger)
	loader := services.NewStatementLoader(classifier, metrics, logger)
	ledger := services.NewLedger()

	archive, err := services.NewStatementArchive(ctx, &cfg.Storage, metrics, logger)
	if err != nil {
		return fmt.Errorf("statement archive: %w", err)
	}
	defer archive.Close()

	assistantClient, err := services.NewAssistantClient(ctx, &cfg.Assistant, logger)
	if err != nil {
		return fmt.Errorf("assistant client: %w", err)
	}
	breaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig("assistant"), metrics)
	assistant := services.NewAssistantService(assistantClient, breaker, store, metrics, logger, cfg.Assistant.Timeout)

	feed := services.NewBankFeedService(&cfg.BankFeed, nil, metrics, logger)

	sessions := session.NewStore(cfg.Session.MaxSessions, cfg.Session.TTL, metrics)
	rateLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, 0)

	router := server.NewRouter(server.Handlers{
		Health:    handlers.NewHealthCheckHandler(db),
		Auth:      handlers.NewAuthHandler(authService, sessions, logger),
		Google:    handlers.NewGoogleAuthHandler(identity, cfg.IsProduction()),
		Profile:   handlers.NewProfileHandler(userRepo, auditService),
		Category:  handlers.NewCategoryHandler(store, classifier, auditService, sessions, logger),
		Statement: handlers.NewStatementHandler(loader, archive, store, ledger, auditService, sessions, cfg.Server.MaxUploadBytes, logger),
		Ledger:    handlers.NewLedgerHandler(ledger, classifier, auditService, sessions, logger),
		Assistant: handlers.NewAssistantHandler(assistant, classifier, auditService, sessions, assistantClient.Name(), logger),
		BankFeed:  handlers.NewBankFeedHandler(feed, classifier, store, ledger, auditService, sessions, logger),
	}, server.Options{
		Logger:           logger,
		Registry:         registry,
		TokenService:     tokenService,
		BlacklistRepo:    blacklistRepo,
		RateLimiter:      rateLimiter,
		CORSAllowOrigins: cfg.Server.CORSAllowOrigins,
		MaxUploadBytes:   cfg.Server.MaxUploadBytes,
	})

	srv := &http.Server{
		Addr:           net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:        router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting finance dashboard server", "addr", srv.Addr, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error { return sessions.Run(gctx, sessionSweepInterval) })
	g.Go(func() error { return rateLimiter.Run(gctx) })

	g.Go(func() error {
		ticker := time.NewTicker(tokenCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if err := authService.PruneTokens(revokedTokenRetention); err != nil {
					logger.Warn("Token cleanup failed", "error", err)
				}
			}
		}
	})

	return g.Wait()
}
