package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported database drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the application.
type Config struct {
	AppPort     string `mapstructure:"app_port"`
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`

	DBDriver    string `mapstructure:"db_driver"`
	DatabaseDSN string `mapstructure:"database_dsn"`

	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`

	// RabbitMQURL may be empty, in which case events are not published.
	RabbitMQURL string `mapstructure:"rabbitmq_url"`

	// RedisURL enables the shared analytics summary cache when set.
	RedisURL        string        `mapstructure:"redis_url"`
	SummaryCacheTTL time.Duration `mapstructure:"summary_cache_ttl"`

	// CatalogPath points at a YAML/JSON catalog; empty uses the built-in one.
	CatalogPath string `mapstructure:"catalog_path"`
	MatchLimit  int    `mapstructure:"match_limit"`
	SearchLimit int    `mapstructure:"search_limit"`

	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
	AllowedOrigins string  `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables, an optional
// config.yaml and built-in defaults, in that order of precedence.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper decodes and validates configuration held by v, after applying
// defaults and environment overrides.
func FromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.DBDriver = strings.ToLower(cfg.DBDriver)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_port", ":8080")
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")

	v.SetDefault("db_driver", DriverSQLite)
	v.SetDefault("database_dsn", "file:oro.db?cache=shared")

	v.SetDefault("jwt_secret", "capsule-wardrobe-secret-key")
	v.SetDefault("token_ttl", "720h") // 30 days

	v.SetDefault("rabbitmq_url", "")

	v.SetDefault("redis_url", "")
	v.SetDefault("summary_cache_ttl", "30s")

	v.SetDefault("catalog_path", "")
	v.SetDefault("match_limit", 6)
	v.SetDefault("search_limit", 0)

	v.SetDefault("rate_limit_rps", 20)
	v.SetDefault("rate_limit_burst", 40)
	v.SetDefault("allowed_origins", "*")
}

func validate(cfg *Config) error {
	switch cfg.DBDriver {
	case DriverMemory, DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("db driver must be one of memory, sqlite, postgres; got: %s", cfg.DBDriver)
	}
	if cfg.DBDriver != DriverMemory && cfg.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN is required for the %s driver", cfg.DBDriver)
	}
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got: %s", cfg.TokenTTL)
	}
	if cfg.MatchLimit <= 0 {
		return fmt.Errorf("MATCH_LIMIT must be positive, got: %d", cfg.MatchLimit)
	}
	if cfg.SearchLimit < 0 {
		return fmt.Errorf("SEARCH_LIMIT must not be negative, got: %d", cfg.SearchLimit)
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit must be positive (rps=%v, burst=%d)", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	return nil
}
