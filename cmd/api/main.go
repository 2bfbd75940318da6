package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	authUseCase "github.com/amirhossein-jamali/cardbank/internal/domain/usecase/auth"
	cardUseCase "github.com/amirhossein-jamali/cardbank/internal/domain/usecase/card"
	"github.com/amirhossein-jamali/cardbank/internal/domain/usecase/transfer"
	userUseCase "github.com/amirhossein-jamali/cardbank/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/metrics"
	timeProvider "github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/config"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/worker"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLogger := logger.NewDefaultLogger()
		bootLogger.Error("Failed to load configuration", map[string]any{"error": err.Error()})
		_ = bootLogger.Flush()
		os.Exit(1)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:       cfg.Logger.Level,
		Format:      cfg.Logger.Format,
		OutputPaths: outputPaths(cfg.Logger.Output),
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	var promMetrics *metrics.Prometheus
	var domainMetrics coreport.Metrics = coreport.NoopMetrics{}
	if cfg.Server.MetricsEnabled {
		promMetrics = metrics.NewPrometheus()
		domainMetrics = promMetrics
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to open store", map[string]any{
			"driver": cfg.Database.Driver,
			"error":  err.Error(),
		})
		os.Exit(1)
	}
	defer store.Close()

	if promMetrics != nil && store.sqlDB != nil {
		if err := promMetrics.RegisterDBStats(store.sqlDB, cfg.Database.Database); err != nil {
			appLogger.Warn("Failed to register database pool metrics", map[string]any{"error": err.Error()})
		}
	}

	// Adapters
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewJWTTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, tp)
	policy := entity.NewLifecyclePolicy(tp)

	// Use cases
	baseCtx := context.Background()
	users := userUseCase.NewUserUseCase(
		store.uow.GetUserRepository(baseCtx),
		store.uow.GetCardRepository(baseCtx),
		hasher,
		tp,
		appLogger,
	)
	cards := cardUseCase.NewCardUseCase(
		store.uow,
		policy,
		cardUseCase.NewRandomNumberGenerator(cfg.Cards.NumberPrefix),
		tp,
		appLogger,
		domainMetrics,
	)
	engine := transfer.NewEngine(store.uow, policy, tp, appLogger, domainMetrics, transfer.RetryConfig{
		MaxRetries:    cfg.Transaction.MaxRetries,
		RetryInterval: cfg.Transaction.RetryInterval,
		MaxInterval:   cfg.Transaction.MaxInterval,
		JitterFactor:  cfg.Transaction.JitterFactor,
	})
	authService := authUseCase.NewAuthUseCase(users, store.uow.GetUserRepository(baseCtx), hasher, tokens, appLogger)

	if cfg.Auth.DefaultAdmin.Enabled {
		if err := users.EnsureDefaultAdmin(ctx, cfg.Auth.DefaultAdmin.Username, cfg.Auth.DefaultAdmin.Password); err != nil {
			appLogger.Error("Failed to create default admin", map[string]any{
				"username": cfg.Auth.DefaultAdmin.Username,
				"error":    err.Error(),
			})
			os.Exit(1)
		}
	}

	sweeper := worker.NewExpirySweeper(cards, cfg.Cards.ExpirySweepInterval, appLogger)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	// HTTP
	router := gin.New()
	var observer middleware.HTTPObserver
	var metricsHandler http.Handler
	if promMetrics != nil {
		observer = promMetrics
		metricsHandler = promMetrics.Handler()
	}
	routes.SetupMiddlewares(router, appLogger, tp, observer)
	routes.SetupRoutes(router, routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, appLogger),
		AdminCard: handler.NewAdminCardHandler(cards, appLogger),
		AdminUser: handler.NewAdminUserHandler(users, appLogger),
		UserCard:  handler.NewUserCardHandler(cards, engine, appLogger),
		Health:    handler.NewHealthHandler(store.ping, tp, appLogger),
		Metrics:   metricsHandler,
	}, tokens, appLogger)

	server := &http.Server{
		Addr: fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: routes.WithCORS(router, routes.CORSOptions{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			MaxAge:         cfg.CORS.MaxAge,
		}),
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":    server.Addr,
			"env":     cfg.Environment,
			"driver":  cfg.Database.Driver,
			"metrics": cfg.Server.MetricsEnabled,
			"log":     appLogger.GetLevel().String(),
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		appLogger.Info("Shutting down server...", nil)
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// outputPaths splits a comma-separated logger.output setting
func outputPaths(output string) []string {
	var paths []string
	for _, p := range strings.Split(output, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
