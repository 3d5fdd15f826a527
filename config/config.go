package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents the application configuration
type Config struct {
	// Postgres configuration
	DatabaseURL string

	// Redis configuration
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamCount     int
	RedisStreamMaxLength int

	// Memcache configuration
	MemcacheAddr string

	// Scrape batch configuration
	ScrapeCron  string
	Concurrency int
	BatchDelay  time.Duration
	CooldownTTL time.Duration

	// Renderer configuration
	BrowserBin  string
	NavTimeout  time.Duration
	SettleDelay time.Duration

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	streamCount, _ := strconv.Atoi(getEnv("REDIS_STREAM_COUNT", "1"))
	streamMaxLen, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "500"))
	concurrency, _ := strconv.Atoi(getEnv("SCRAPE_CONCURRENCY", "10"))
	batchDelay, _ := strconv.Atoi(getEnv("BATCH_DELAY_SECONDS", "1"))
	cooldown, _ := strconv.Atoi(getEnv("FETCH_COOLDOWN_SECONDS", "300"))
	navTimeout, _ := strconv.Atoi(getEnv("NAV_TIMEOUT_SECONDS", "15"))
	settle, _ := strconv.Atoi(getEnv("SETTLE_DELAY_MS", "1000"))

	return Config{
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:              redisDB,
		RedisStream:          getEnv("REDIS_STREAM", "prices"),
		RedisStreamCount:     streamCount,
		RedisStreamMaxLength: streamMaxLen,
		MemcacheAddr:         getEnv("MEMCACHE_ADDR", "localhost:11211"),
		ScrapeCron:           getEnv("SCRAPE_CRON", "0 */6 * * *"),
		Concurrency:          concurrency,
		BatchDelay:           time.Duration(batchDelay) * time.Second,
		CooldownTTL:          time.Duration(cooldown) * time.Second,
		BrowserBin:           getEnv("BROWSER_BIN", ""),
		NavTimeout:           time.Duration(navTimeout) * time.Second,
		SettleDelay:          time.Duration(settle) * time.Millisecond,
		Environment:          getEnv("PRICEWATCH_ENVIRONMENT", "development"),
	}
}

// Validate checks that the configuration is usable
func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("SCRAPE_CONCURRENCY must be positive, got %d", c.Concurrency)
	}
	if c.ScrapeCron == "" {
		return fmt.Errorf("SCRAPE_CRON must not be empty")
	}
	if c.RedisStreamCount <= 0 {
		return fmt.Errorf("REDIS_STREAM_COUNT must be positive, got %d", c.RedisStreamCount)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
