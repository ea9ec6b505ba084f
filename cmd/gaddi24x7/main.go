package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/config"
	"github.com/deveshjhaq/gaddi24x7/internal/pkg/database"
	"github.com/deveshjhaq/gaddi24x7/internal/pkg/health"
	"github.com/deveshjhaq/gaddi24x7/internal/pkg/logger"
	"github.com/deveshjhaq/gaddi24x7/internal/pkg/middleware"
	natspkg "github.com/deveshjhaq/gaddi24x7/internal/pkg/nats"
	bookingGateway "github.com/deveshjhaq/gaddi24x7/services/booking/gateway"
	bookingHandler "github.com/deveshjhaq/gaddi24x7/services/booking/handler/http"
	bookingRepository "github.com/deveshjhaq/gaddi24x7/services/booking/repository"
	bookingUsecase "github.com/deveshjhaq/gaddi24x7/services/booking/usecase"
	dispatchGateway "github.com/deveshjhaq/gaddi24x7/services/dispatch/gateway"
	dispatchHandler "github.com/deveshjhaq/gaddi24x7/services/dispatch/handler/http"
	dispatchRepository "github.com/deveshjhaq/gaddi24x7/services/dispatch/repository"
	dispatchUsecase "github.com/deveshjhaq/gaddi24x7/services/dispatch/usecase"
	pricingHandler "github.com/deveshjhaq/gaddi24x7/services/pricing/handler/http"
	pricingRepository "github.com/deveshjhaq/gaddi24x7/services/pricing/repository"
	pricingUsecase "github.com/deveshjhaq/gaddi24x7/services/pricing/usecase"
	usersHandler "github.com/deveshjhaq/gaddi24x7/services/users/handler/http"
	usersRepository "github.com/deveshjhaq/gaddi24x7/services/users/repository"
	usersUsecase "github.com/deveshjhaq/gaddi24x7/services/users/usecase"
)

func main() {
	appName := "gaddi24x7"
	configPath := config.GetEnv("CONFIG_PATH", "config/app.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	// Load default fare tables from yaml
	pricingDefaults, err := config.LoadPricingDefaults(configs.Pricing.DefaultsPath)
	if err != nil {
		logger.Fatal("Failed to load pricing defaults", logger.Err(err))
	}

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Repositories
	userRepo := usersRepository.NewUserRepo(postgresClient)
	otpRepo := usersRepository.NewOTPRepo(redisClient)
	pricingRepo := pricingRepository.NewPricingRepo(redisClient, pricingDefaults)
	bookingRepo := bookingRepository.NewBookingRepo(postgresClient)
	dispatchRepo := dispatchRepository.NewDispatchRepo(redisClient)

	// Gateways
	bookingGW := bookingGateway.NewBookingGW(natsClient)
	dispatchGW := dispatchGateway.NewDispatchGW(natsClient)

	// Use cases
	authUC := usersUsecase.NewAuthUC(configs, userRepo, otpRepo)
	walletUC := usersUsecase.NewWalletUC(userRepo)
	pricingUC := pricingUsecase.NewPricingUC(configs, pricingRepo)
	dispatchUC := dispatchUsecase.NewDispatchUC(configs, dispatchRepo, dispatchGW, authUC)
	bookingUC := bookingUsecase.NewBookingUC(configs, bookingRepo, bookingGW, dispatchUC, pricingUC, walletUC, authUC)

	// HTTP handlers
	userHandler := usersHandler.NewUserHandler(authUC, walletUC)
	fareHandler := pricingHandler.NewPricingHandler(pricingUC)
	rideHandler := bookingHandler.NewBookingHandler(bookingUC)
	driverHandler := dispatchHandler.NewDispatchHandler(dispatchUC)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Health endpoints with dependency probes
	healthService := health.NewService()
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	userHandler.RegisterRoutes(e, configs)
	fareHandler.RegisterRoutes(e, configs)
	rideHandler.RegisterRoutes(e, configs)
	driverHandler.RegisterRoutes(e, configs)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		logger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	logger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	logger.Info("Shutting down HTTP server...")
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", logger.Err(err))
	}

	logger.Info("Server exiting gracefully")
}
