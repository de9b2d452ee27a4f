package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	coreport "github.com/fundr-ph/donation-ledger/internal/domain/port/core"
	authUseCase "github.com/fundr-ph/donation-ledger/internal/domain/usecase/auth"
	donationUseCase "github.com/fundr-ph/donation-ledger/internal/domain/usecase/donation"
	reportUseCase "github.com/fundr-ph/donation-ledger/internal/domain/usecase/report"
	userUseCase "github.com/fundr-ph/donation-ledger/internal/domain/usecase/user"

	"github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/api/routes"
	authAdapter "github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/auth"
	"github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/database"
	"github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/database/migration"
	idAdapter "github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/id"
	"github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/logger"
	"github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/payment"
	"github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/repository"
	timeProvider "github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/time"
	"github.com/fundr-ph/donation-ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production, cfg.Logger.Level)
	defer appLogger.Flush()

	// Setup database configuration
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	if err := migration.MigrateAll(dbManager.DB(), appLogger); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories and unit of work
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	donationRepo := repository.NewDonationRepository(dbManager.DB(), appLogger)
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	// Initialize supporting adapters
	idGen := idAdapter.NewUUIDGenerator()
	hasher := authAdapter.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := authAdapter.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)
	verifier := payment.NewSimulatedVerifier(coreport.Duration(cfg.Donation.ConfirmationDelay), tp, appLogger)

	// Seed the admin account if credentials are configured
	if err := migration.SeedAdmin(
		context.Background(),
		userRepo, hasher, idGen, tp, appLogger,
		cfg.Auth.AdminEmail, cfg.Auth.AdminPassword,
	); err != nil {
		appLogger.Error("Failed to seed admin account", map[string]any{
			"error": err.Error(),
		})
	}

	// Initialize use cases
	authService := authUseCase.NewService(userRepo, hasher, tokens, idGen, tp, appLogger)
	userService := userUseCase.NewUserUseCase(userRepo, tp, appLogger)
	recorder := donationUseCase.NewRecorder(
		uow,
		userRepo,
		donationRepo,
		verifier,
		idGen,
		tp,
		appLogger,
		coreport.Duration(cfg.Donation.OperationTimeout),
	)
	reportService := reportUseCase.NewService(
		donationRepo,
		userRepo,
		tp,
		appLogger,
		coreport.Duration(cfg.Donation.OperationTimeout),
	)

	// Initialize API handlers
	authHandler := handler.NewAuthHandler(authService, appLogger)
	campaignHandler := handler.NewCampaignHandler(appLogger)
	donationHandler := handler.NewDonationHandler(recorder, appLogger)
	reportHandler := handler.NewReportHandler(reportService, appLogger)
	userHandler := handler.NewUserHandler(userService, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, tokens, appLogger,
		authHandler, campaignHandler, donationHandler, reportHandler, userHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or DL_DB_HOST environment variable)")
	}

	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or DL_DB_USERNAME environment variable)")
	}

	if cfg.Database.Password == "" {
		missingConfigs = append(missingConfigs, "database.password (or DL_DB_PASSWORD environment variable)")
	}

	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or DL_DB_NAME environment variable)")
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Validate auth configuration
	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or DL_JWT_SECRET environment variable)")
	}

	if cfg.Auth.TokenTTL == 0 {
		missingConfigs = append(missingConfigs, "auth.tokenTTL")
	}

	// Validate donation configuration
	if cfg.Donation.OperationTimeout == 0 {
		missingConfigs = append(missingConfigs, "donation.operationTimeout")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		// Check database security settings
		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
