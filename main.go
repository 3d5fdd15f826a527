package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"denizyil/pricewatch/config"
	"denizyil/pricewatch/internal/extract"
	"denizyil/pricewatch/internal/render"
	"denizyil/pricewatch/internal/runner"
	"denizyil/pricewatch/logger"
	"denizyil/pricewatch/scheduler"
	"denizyil/pricewatch/services/cache"
	"denizyil/pricewatch/services/publisher"
	"denizyil/pricewatch/services/store"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Str("scrape_cron", cfg.ScrapeCron).
		Int("concurrency", cfg.Concurrency).
		Msg("Starting application")

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Initialize storage
	pg, err := store.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Postgres")
	}
	defer pg.Close()

	if err := pg.CreateTables(); err != nil {
		log.Fatal().Err(err).Msg("Failed to create tables")
	}
	logger.Info("Connected to Postgres")

	// Build the extraction registry: per-brand selectors from the brands
	// table, falling back to the built-in table when the rows are empty.
	table, err := pg.BrandSelectorTable()
	if err != nil {
		log.Warn().Err(err).Msg("Could not load brand selectors, using built-in table")
	}
	if len(table) == 0 {
		table = extract.DefaultSelectorTable()
	}
	registry := extract.NewRegistry(table)
	log.Info().Int("brand_count", len(registry.Brands())).Msg("Extraction registry ready")

	// Initialize renderer
	renderer := render.NewRenderer(render.Options{
		BrowserBin:  cfg.BrowserBin,
		NavTimeout:  cfg.NavTimeout,
		SettleDelay: cfg.SettleDelay,
	})
	defer renderer.Close()

	// Initialize publisher
	redisPublisher := publisher.NewRedisPublisher(
		ctx,
		cfg.RedisAddr,
		cfg.RedisDB,
		cfg.RedisStream,
		cfg.RedisStreamCount,
		cfg.RedisStreamMaxLength,
	)
	defer redisPublisher.Close()
	logger.Info("Connected to Redis at %s (DB: %d, Stream: %s)",
		cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream)

	// Initialize cooldown cache
	cooldowns := cache.NewMemcacheService(cfg.MemcacheAddr)
	logger.Info("Connected to Memcache at %s", cfg.MemcacheAddr)

	// Create the batch runner and put it on the schedule
	r := runner.NewRunner(pg, renderer, registry, redisPublisher, cooldowns, runner.Options{
		Concurrency: cfg.Concurrency,
		BatchDelay:  cfg.BatchDelay,
		CooldownTTL: cfg.CooldownTTL,
	})

	sched := scheduler.New(ctx, r, cfg.ScrapeCron)
	if err := sched.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}

	// Wait for shutdown signal
	sig := <-sigChan
	log.Info().
		Str("signal", sig.String()).
		Msg("Received shutdown signal")
	cancel()

	// Graceful shutdown: stop the schedule and wait for the in-flight batch
	log.Info().Msg("Shutting down gracefully...")
	sched.Stop()
}
