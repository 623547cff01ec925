// Package config loads the flexcache service configuration from the
// environment, optionally seeded from a .env file.
//
// Environment Variables:
//   - REDIS_CONNECTION_STRING: remote cache connection string; empty selects the in-memory cache
//   - HTTP_ADDR: listen address (default: :8080)
//   - LOG_LEVEL: debug, info, warn or error (default: info)
//   - LOG_FORMAT: console or json (default: console)
//   - CACHE_PREFIX: namespace tag applied to every key (default: AppCache)
//   - CACHE_DEFAULT_TTL: TTL for writes that omit one (default: 5m)
//   - CACHE_ENTRY_TTL: TTL applied by the set endpoint (default: 30m)
//   - REDIS_CONNECT_TIMEOUT: startup ping timeout (default: 5s)
//   - SWAGGER_ENABLED: mount the Swagger UI (default: true)
//   - SHUTDOWN_TIMEOUT: graceful shutdown budget (default: 15s)
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Config holds the service settings.
type Config struct {
	RedisConnectionString string        `env:"REDIS_CONNECTION_STRING"`
	HTTPAddr              string        `env:"HTTP_ADDR"              envDefault:":8080"`
	LogLevel              string        `env:"LOG_LEVEL"              envDefault:"info"`
	LogFormat             string        `env:"LOG_FORMAT"             envDefault:"console"`
	CachePrefix           string        `env:"CACHE_PREFIX"           envDefault:"AppCache"`
	CacheDefaultTTL       time.Duration `env:"CACHE_DEFAULT_TTL"      envDefault:"5m"`
	CacheEntryTTL         time.Duration `env:"CACHE_ENTRY_TTL"        envDefault:"30m"`
	RedisConnectTimeout   time.Duration `env:"REDIS_CONNECT_TIMEOUT"  envDefault:"5s"`
	SwaggerEnabled        bool          `env:"SWAGGER_ENABLED"        envDefault:"true"`
	ShutdownTimeout       time.Duration `env:"SHUTDOWN_TIMEOUT"       envDefault:"15s"`
}

// Load reads configuration from the process environment. Values from the
// given dotenv files (".env" when none are named) fill in variables that are
// not already set; a missing default .env file is not an error.
func Load(files ...string) (*Config, error) {
	environ := env.ToMap(os.Environ())

	explicit := len(files) > 0
	if !explicit {
		files = []string{".env"}
	}
	dotenv, err := godotenv.Read(files...)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read dotenv: %w", err)
		}
	}
	for k, v := range dotenv {
		if _, set := environ[k]; !set {
			environ[k] = v
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the loaded values can be used to start the service.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be 'console' or 'json'")
	}
	if strings.TrimSpace(c.CachePrefix) == "" {
		return fmt.Errorf("CACHE_PREFIX must not be empty")
	}
	if c.CacheDefaultTTL <= 0 {
		return fmt.Errorf("CACHE_DEFAULT_TTL must be positive")
	}
	if c.CacheEntryTTL <= 0 {
		return fmt.Errorf("CACHE_ENTRY_TTL must be positive")
	}
	if c.RedisConnectTimeout <= 0 {
		return fmt.Errorf("REDIS_CONNECT_TIMEOUT must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}
