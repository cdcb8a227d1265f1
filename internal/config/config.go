package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field has a default; nothing is required.
type Config struct {
	// Server
	HTTPPort        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Upper bound on the hostname lookup performed by GET /health.
	HostnameLookupTimeout time.Duration

	// Global request rate limit. RateLimit == 0 disables limiting.
	RateLimit      int
	RateLimitBurst int
}

// Load reads configuration from the environment. Variables from the file
// named by ENV_FILE (default ".env") are applied first when that file
// exists; real environment variables always win.
func Load() (*Config, error) {
	if err := godotenv.Load(getEnv("ENV_FILE", ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	rateLimit := getInt("RATE_LIMIT_PER_SECOND", 100)

	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		ReadTimeout:     getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDuration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		HostnameLookupTimeout: getDuration("HOSTNAME_LOOKUP_TIMEOUT", 2*time.Second),

		RateLimit:      rateLimit,
		RateLimitBurst: getInt("RATE_LIMIT_BURST", rateLimit),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	for name, d := range map[string]time.Duration{
		"READ_TIMEOUT":            c.ReadTimeout,
		"WRITE_TIMEOUT":           c.WriteTimeout,
		"SHUTDOWN_TIMEOUT":        c.ShutdownTimeout,
		"HOSTNAME_LOOKUP_TIMEOUT": c.HostnameLookupTimeout,
	} {
		if d < 0 {
			return fmt.Errorf("%s must not be negative, got %s", name, d)
		}
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_SECOND must not be negative, got %d", c.RateLimit)
	}
	if c.RateLimitBurst < 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must not be negative, got %d", c.RateLimitBurst)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
