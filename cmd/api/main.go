// Package main is the entry point for the Phoenix Field API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/phoenix-field/backend/config"
	"github.com/phoenix-field/backend/internal/application/usecase/auth"
	"github.com/phoenix-field/backend/internal/application/usecase/directory"
	"github.com/phoenix-field/backend/internal/application/usecase/expense"
	"github.com/phoenix-field/backend/internal/application/usecase/itinerary"
	"github.com/phoenix-field/backend/internal/application/usecase/sales"
	"github.com/phoenix-field/backend/internal/application/usecase/updates"
	"github.com/phoenix-field/backend/internal/infra/db"
	"github.com/phoenix-field/backend/internal/infra/server/router"
	"github.com/phoenix-field/backend/internal/integration/adapters"
	"github.com/phoenix-field/backend/internal/integration/entrypoint/controller"
	"github.com/phoenix-field/backend/internal/integration/entrypoint/middleware"
	"github.com/phoenix-field/backend/internal/integration/persistence"
	"github.com/phoenix-field/backend/internal/integration/persistence/model"
	"github.com/phoenix-field/backend/internal/integration/sheets"
	"github.com/phoenix-field/backend/internal/integration/webhook"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Phoenix Field API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Spreadsheet source: the Sheets API when a key is configured, the
	// public gviz endpoint otherwise.
	var source sheets.SheetSource
	if cfg.Sheets.APIKey != "" {
		apiSource, err := sheets.NewAPIClient(ctx, cfg.Sheets.SpreadsheetID, cfg.Sheets.APIKey)
		if err != nil {
			slog.Error("Failed to initialize Sheets API client", "error", err)
			os.Exit(1)
		}
		source = apiSource
		slog.Info("Using Sheets API transport")
	} else {
		source = sheets.NewGvizClient(cfg.Sheets.SpreadsheetID, cfg.Sheets.FetchTimeout)
		slog.Info("Using public gviz transport")
	}

	mapper := sheets.NewMapper(cfg.Sheets.ReferenceYear)
	store := sheets.NewStore(source, mapper)

	// Background poller keeps the snapshot fresh; a failed poll keeps
	// serving the previous snapshot.
	poller := sheets.NewPoller(store, cfg.Sheets.PollInterval)
	go poller.Start(ctx)

	// Session store: PostgreSQL when configured, embedded SQLite otherwise.
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("PostgreSQL unavailable, falling back to embedded SQLite session store",
			"error", err,
		)
		database, err = db.NewSQLiteConnection(":memory:")
		if err != nil {
			slog.Error("Failed to open fallback session store", "error", err)
			os.Exit(1)
		}
	}
	if err := database.AutoMigrate(&model.RefreshTokenModel{}); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Repositories and adapters
	tokenRepo := persistence.NewTokenRepository(database.DB())
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
	)
	verifier := adapters.NewCredentialVerifier()
	expenseGateway := webhook.NewAppsScriptClient(cfg.Expense.WebhookURL, cfg.Expense.Timeout)

	// Use cases
	loginUseCase := auth.NewLoginUserUseCase(store, verifier, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	resolveUseCase := auth.NewResolveProfileUseCase(store)

	dashboardUseCase := sales.NewGetDashboardUseCase(store, cfg.Sheets.TopPerformers)
	monthsUseCase := sales.NewListMonthsUseCase(store)
	itineraryUseCase := itinerary.NewGetItineraryUseCase(store)
	updatesUseCase := updates.NewListUpdatesUseCase(store)
	directoryUseCase := directory.NewListDirectoryUseCase(store)
	expenseUseCase := expense.NewSubmitExpenseUseCase(expenseGateway)

	// Controllers
	healthController := controller.NewHealthController(database.HealthCheck, store.Loaded)
	authController := controller.NewAuthController(loginUseCase, refreshTokenUseCase, logoutUseCase, resolveUseCase)
	salesController := controller.NewSalesController(resolveUseCase, dashboardUseCase, monthsUseCase)
	itineraryController := controller.NewItineraryController(resolveUseCase, itineraryUseCase)
	updatesController := controller.NewUpdatesController(resolveUseCase, updatesUseCase)
	directoryController := controller.NewDirectoryController(resolveUseCase, directoryUseCase)
	expenseController := controller.NewExpenseController(resolveUseCase, expenseUseCase)
	dataController := controller.NewDataController(resolveUseCase, store)

	// Middleware: Redis-backed login rate limiting when configured
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Redis.URL != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.URL,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		loginRateLimiter = middleware.NewRedisRateLimiter(redisClient, 5, time.Minute)
		slog.Info("Login rate limiter using Redis")
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		salesController,
		itineraryController,
		updatesController,
		directoryController,
		expenseController,
		dataController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	stop()

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
