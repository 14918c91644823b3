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

	"copytrade-analytics/internal/analytics/config"
	delivery "copytrade-analytics/internal/analytics/delivery/http"
	_ "copytrade-analytics/internal/analytics/docs"
	"copytrade-analytics/internal/analytics/repository"
	"copytrade-analytics/internal/analytics/service"
	"copytrade-analytics/pkg/logger"
	"copytrade-analytics/pkg/postgres"
	"copytrade-analytics/pkg/redis"
	"copytrade-analytics/pkg/telegram"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gocache "github.com/patrickmn/go-cache"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the analytics service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Analytics Service", logger.Field("name", cfg.App.Name))

	// Initialize database
	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize Redis
	redisCfg := redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}
	redisClient, err := redis.NewClient(redisCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	// Initialize Telegram notifier when configured
	var notifier telegram.Notifier
	if cfg.Telegram.BotToken != "" {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	}

	// Initialize repositories
	walletRepo := repository.NewWalletRepository(db.DB)
	copyTradeRepo := repository.NewCopyTradeRepository(db.DB)
	tradeRepo := repository.NewTradeRepository(db.DB)
	statsRepo := repository.NewStatsRepository(db.DB)

	// Initialize services
	statsTTL, err := time.ParseDuration(cfg.Cache.StatsOverviewTTL)
	if err != nil {
		appLogger.Fatal("Invalid stats overview TTL", logger.ErrorField(err))
	}
	statsCache := gocache.New(statsTTL, 2*statsTTL)

	walletSvc := service.NewWalletService(walletRepo, appLogger)
	copyTradeSvc := service.NewCopyTradeService(copyTradeRepo, redisClient.Client, notifier, appLogger, cfg)
	analyticsSvc := service.NewTradeAnalyticsService(tradeRepo, appLogger)
	statsSvc := service.NewStatsService(statsRepo, statsCache, appLogger)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = delivery.NewHTTPErrorHandler(appLogger)
	e.Use(middleware.Recover())
	if cfg.API.RateLimit > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.API.RateLimit))))
	}

	// Initialize handlers and routes
	walletHandler := delivery.NewWalletHandler(walletSvc, appLogger)
	walletHandler.RegisterRoutes(e)

	copyTradeHandler := delivery.NewCopyTradeHandler(copyTradeSvc, appLogger)
	copyTradeHandler.RegisterRoutes(e)

	analyticsHandler := delivery.NewAnalyticsHandler(analyticsSvc, appLogger)
	analyticsHandler.RegisterRoutes(e)

	statsHandler := delivery.NewStatsHandler(statsSvc, appLogger)
	statsHandler.RegisterRoutes(e)

	alertHandler := delivery.NewAlertHandler(appLogger)
	alertHandler.RegisterRoutes(e)

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title CopyTrading Analytics API
// @version 1.0
// @description Read/write analytics API over wallet trading statistics.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{Use: "analytics-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-analytics.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing analytics-service CLI: %s\n", err)
		os.Exit(1)
	}
}
