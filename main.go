package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"kucukaslan/eventlab/api"
	"kucukaslan/eventlab/buildinfo"
	"kucukaslan/eventlab/config"
	"kucukaslan/eventlab/database"
	"kucukaslan/eventlab/domain"
	"kucukaslan/eventlab/ga4"
	"kucukaslan/eventlab/logger"
	"kucukaslan/eventlab/services"
	"kucukaslan/eventlab/synth"

	_ "kucukaslan/eventlab/docs" // Import generated docs
)

// @title Eventlab Analytics API
// @version 1.0
// @description Deterministic synthetic event generation and analytics, with a mock GA4 source and an optional ClickHouse warehouse
// @BasePath /
// @schemes http

const (
	startupTimeout = 10 * time.Second
	// summaries kept in process when Redis is disabled
	memoryCacheEntries = 1024
)

func main() {
	// Set application start time for accurate uptime tracking
	buildinfo.SetStartTime(time.Now())

	cfg, err := config.Load()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load configuration", zap.Error(err))
	}

	log := logger.NewLogger(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	info := buildinfo.GetInfo()
	log.Info("Starting application",
		zap.String("service", info.Service),
		zap.String("version", info.Version),
		zap.String("commit", info.Commit),
		zap.String("buildDate", info.BuildDate),
		zap.String("goVersion", info.GoVersion),
		zap.String("hostname", info.Hostname),
		zap.String("generator", info.Generator))

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	var (
		clickhouseCheck api.Checker
		redisCheck      api.Checker
		store           services.WarehouseStore
		ledger          services.PublishLedger
		cache           domain.SummaryCache = database.NewMemorySummaryCache(memoryCacheEntries)
		clickhouseDB    database.ClickHouseDB
		redisClient     *redis.Client
	)

	if cfg.ClickHouse.Enabled {
		clickhouseDB, err = database.NewClickHouse(ctx, &cfg.ClickHouse, log)
		if err != nil {
			log.Fatal("Failed to initialize ClickHouse", zap.Error(err))
		}
		store = clickhouseDB
		clickhouseCheck = clickhouseDB.HealthCheck
	}

	if cfg.Redis.Enabled {
		redisClient, err = database.NewRedis(ctx, &cfg.Redis, log)
		if err != nil {
			// Redis only backs caches and the publish ledger; run without it.
			log.Warn("Redis unavailable, falling back to in-memory cache", zap.Error(err))
		} else {
			cache = database.NewRedisSummaryCache(redisClient, cfg.Redis.CacheDuration())
			ledger = database.NewPublishLedger(redisClient, cfg.Redis.CacheDuration())
			redisCheck = func(ctx context.Context) error { return database.RedisHealthCheck(ctx, redisClient) }
		}
	}

	synthesizer := synth.New()
	ga4Client := ga4.NewClient(ga4.Credentials{
		ClientEmail: cfg.GA4.ClientEmail,
		ProjectID:   cfg.GA4.ProjectID,
	}, ga4.WithLatency(cfg.GA4.GA4Latency()))

	eventService, err := services.NewEventService(cfg, synthesizer, ga4Client, cache, log)
	if err != nil {
		log.Fatal("Failed to initialize EventService", zap.Error(err))
	}

	warehouseService, err := services.NewWarehouseService(store, ledger, synthesizer, services.BatcherConfig{
		Capacity:      cfg.ClickHouse.BufferChannelCapacity,
		BatchSize:     cfg.ClickHouse.BatchSize,
		FlushInterval: time.Duration(cfg.ClickHouse.FlushIntervalSeconds) * time.Second,
		Source:        domain.SourceSimulated,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize WarehouseService", zap.Error(err))
	}

	app := api.NewApp(api.Handlers{
		Events:    api.NewEventHandler(eventService, cfg.Generator),
		Analytics: api.NewAnalyticsHandler(eventService, cfg.Generator),
		Warehouse: api.NewWarehouseHandler(warehouseService, cfg.Generator),
		Health:    api.NewHealthCheck(clickhouseCheck, redisCheck),
	}, log)

	// Listen from a different goroutine
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic("HTTP server stopped", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // This blocks the main thread until an interrupt is received
	log.Info("Gracefully shutting down...")
	_ = app.Shutdown()

	log.Info("Running cleanup tasks...")

	// Shutdown warehouse batcher (flushes remaining events)
	if err := services.ShutdownService(warehouseService); err != nil {
		log.Error("Error shutting down warehouse batcher", zap.Error(err))
	}

	if clickhouseDB.DB != nil {
		if err := clickhouseDB.Close(); err != nil {
			log.Error("Error closing ClickHouse", zap.Error(err))
		}
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis", zap.Error(err))
		}
	}

	log.Info("Fiber was successful shutdown.")
}
