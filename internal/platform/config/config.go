package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage and counter backends.
const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
)

// Config holds application configuration.
type Config struct {
	AppName      string
	AppVersion   string
	Port         string
	IsProduction bool
	DatabaseURL  string

	// StoreDriver selects where voucher documents live: postgres or memory.
	StoreDriver string
	// SequenceBackend selects the counter store for voucher numbers: postgres, redis or memory.
	// It defaults to the store driver.
	SequenceBackend string
	RedisURL        string

	MigrationsPath string
	CORSOrigins    []string
	// RateLimit is a ulule/limiter formatted rate, e.g. "300-M".
	RateLimit     string
	DefaultUserID string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("APP_NAME", "Voucher Management API")
	v.SetDefault("APP_VERSION", "1.0.0")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("STORE_DRIVER", BackendPostgres)
	v.SetDefault("SEQUENCE_BACKEND", "")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("MIGRATIONS_PATH", "migrations")
	v.SetDefault("CORS_ORIGINS", "http://localhost:4200,http://127.0.0.1:4200")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("DEFAULT_USER_ID", "admin")
	v.AutomaticEnv()

	cfg := &Config{
		AppName:         v.GetString("APP_NAME"),
		AppVersion:      v.GetString("APP_VERSION"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		DatabaseURL:     v.GetString("PGSQL_URL"),
		StoreDriver:     strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		SequenceBackend: strings.ToLower(strings.TrimSpace(v.GetString("SEQUENCE_BACKEND"))),
		RedisURL:        v.GetString("REDIS_URL"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		CORSOrigins:     splitList(v.GetString("CORS_ORIGINS")),
		RateLimit:       v.GetString("RATE_LIMIT"),
		DefaultUserID:   v.GetString("DEFAULT_USER_ID"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.SequenceBackend == "" {
		cfg.SequenceBackend = cfg.StoreDriver
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UsesPostgres reports whether any backend needs the Postgres pool.
func (c *Config) UsesPostgres() bool {
	return c.StoreDriver == BackendPostgres || c.SequenceBackend == BackendPostgres
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case BackendPostgres, BackendMemory:
	default:
		return fmt.Errorf("invalid STORE_DRIVER %q: expected postgres or memory", c.StoreDriver)
	}
	switch c.SequenceBackend {
	case BackendPostgres, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("invalid SEQUENCE_BACKEND %q: expected postgres, redis or memory", c.SequenceBackend)
	}
	if c.UsesPostgres() && c.DatabaseURL == "" {
		return fmt.Errorf("PGSQL_URL is required when a postgres backend is selected")
	}
	if c.SequenceBackend == BackendRedis && c.RedisURL == "" {
		return fmt.Errorf("REDIS_URL is required when SEQUENCE_BACKEND is redis")
	}
	if c.StoreDriver == BackendMemory && c.SequenceBackend != BackendMemory {
		log.Printf("Warning: vouchers are kept in memory but numbered by %s; numbers survive restarts, vouchers do not.\n", c.SequenceBackend)
	}
	if strings.TrimSpace(c.DefaultUserID) == "" {
		c.DefaultUserID = "admin"
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
