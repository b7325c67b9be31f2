package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/energyservice/backend/internal/application/catalog"
	partnerapp "github.com/energyservice/backend/internal/application/partner"
	tradeapp "github.com/energyservice/backend/internal/application/trade"
	"github.com/energyservice/backend/internal/infrastructure/config"
	"github.com/energyservice/backend/internal/infrastructure/logger"
	"github.com/energyservice/backend/internal/infrastructure/persistence"
	"github.com/energyservice/backend/internal/infrastructure/telemetry"
	"github.com/energyservice/backend/internal/interfaces/http/handler"
	"github.com/energyservice/backend/internal/interfaces/http/middleware"
	"github.com/energyservice/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Bootstrap logger for telemetry setup; replaced once the log bridge exists.
	logCfg := &logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		Service:    cfg.App.Name,
	}
	bootLog, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	ctx := context.Background()
	providers, err := telemetry.Setup(ctx, telemetry.SetupConfig{
		Tracing: telemetry.Config{
			Enabled:           cfg.Telemetry.Enabled,
			CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
			SamplingRatio:     cfg.Telemetry.SamplingRatio,
			ServiceName:       cfg.Telemetry.ServiceName,
			Insecure:          cfg.Telemetry.Insecure,
		},
		Metrics: telemetry.MetricsConfig{
			Enabled:           cfg.Telemetry.MetricsEnabled,
			CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
			ExportInterval:    cfg.Telemetry.MetricsInterval,
			ServiceName:       cfg.Telemetry.ServiceName,
			Insecure:          cfg.Telemetry.Insecure,
		},
		Logs: telemetry.LogsConfig{
			Enabled:           cfg.Telemetry.LogsEnabled,
			CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
			ServiceName:       cfg.Telemetry.ServiceName,
			Insecure:          cfg.Telemetry.Insecure,
		},
		Profiling: telemetry.ProfilerConfig{
			Enabled:         cfg.Telemetry.ProfilingEnabled,
			ServerAddress:   cfg.Telemetry.ProfilingServer,
			ApplicationName: cfg.Telemetry.ServiceName,
		},
	}, bootLog)
	if err != nil {
		bootLog.Fatal("Failed to initialize telemetry", zap.Error(err))
	}

	var extraCores []zapcore.Core
	if providers.Logs.IsEnabled() {
		extraCores = append(extraCores, providers.Logs.ZapCore(zapcore.InfoLevel))
	}
	log, err := logger.New(logCfg, extraCores...)
	if err != nil {
		bootLog.Fatal("Failed to initialize logger", zap.Error(err))
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting energy billing service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", telemetry.ServiceVersion),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		DBSystem:        "postgresql",
	}, log); err != nil {
		log.Warn("Failed to register database tracing", zap.Error(err))
	}

	if providers.Meter.IsEnabled() {
		dbMetrics, err := telemetry.RegisterDBMetrics(db.DB, providers.Meter.Meter("energy-service/db"), log)
		if err != nil {
			log.Warn("Failed to register database metrics", zap.Error(err))
		} else {
			defer func() {
				_ = dbMetrics.Stop()
			}()
		}
	}

	if cfg.Database.Seed {
		if err := persistence.SeedReferenceData(ctx, db.DB); err != nil {
			log.Fatal("Failed to seed reference data", zap.Error(err))
		}
		log.Info("Reference data seeded")
	}

	// Repositories
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	tariffRepo := persistence.NewGormTariffRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Application services
	customerService := partnerapp.NewCustomerService(customerRepo, log)
	productService := catalogapp.NewProductService(productRepo, tariffRepo)
	orderService := tradeapp.NewOrderService(customerRepo, productRepo, tariffRepo, txScope, log)
	if providers.Meter.IsEnabled() {
		billingMetrics, err := telemetry.NewBillingMetrics(providers.Meter.Meter("energy-service/billing"))
		if err != nil {
			log.Warn("Failed to create billing metrics", zap.Error(err))
		} else {
			orderService.SetMetrics(billingMetrics)
		}
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware order matters: the request id must exist before the server
	// span is started and before the request logger is derived.
	engine.Use(middleware.RequestID())
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.SpanAttributes())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))

	engine.Use(middleware.CORS(cfg.HTTP.AllowOrigins))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.Telemetry.ProfilingEnabled {
		engine.Use(middleware.Profiling())
	}
	engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
		MeterProvider: providers.Meter,
		Enabled:       providers.Meter.IsEnabled(),
		Logger:        log,
	}))

	systemHandler := handler.NewSystemHandler(db, telemetry.ServiceVersion, log)
	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	routes := router.RegisterAPI(r, router.Handlers{
		Orders:    handler.NewOrderHandler(orderService),
		Customers: handler.NewCustomerHandler(customerService),
		Products:  handler.NewProductHandler(productService),
	})
	r.Setup()
	for _, route := range routes {
		log.Debug("Route registered", zap.String("method", route.Method), zap.String("path", route.Path))
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := providers.Shutdown(shutdownCtx); err != nil {
		log.Error("Telemetry shutdown failed", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
