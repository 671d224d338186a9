package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	POS      POSConfig
	Cache    CacheConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds the secret used to verify tokens issued by the auth service
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// POSConfig holds Square Connect credentials and paging settings
type POSConfig struct {
	AccessToken     string
	LocationID      string
	Environment     string // sandbox | production
	BaseURL         string // overrides the environment default when set
	APIVersion      string
	PageLimit       int
	Timeout         time.Duration
	DefaultTimezone string
}

// CacheConfig controls the weekly dashboard cache.
// A zero TTL keeps entries for the process lifetime.
type CacheConfig struct {
	DashboardTTL  time.Duration
	SweepInterval time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, reading configuration from environment")
	}

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hospomate"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
	}

	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	pageLimit, err := strconv.Atoi(getEnv("SQUARE_PAGE_LIMIT", "50"))
	if err != nil {
		return nil, fmt.Errorf("invalid SQUARE_PAGE_LIMIT: %w", err)
	}
	posTimeout, err := time.ParseDuration(getEnv("SQUARE_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SQUARE_TIMEOUT: %w", err)
	}

	config.POS = POSConfig{
		AccessToken:     getEnv("SQUARE_ACCESS_TOKEN", ""),
		LocationID:      getEnv("SQUARE_LOCATION_ID", ""),
		Environment:     strings.ToLower(getEnv("SQUARE_ENVIRONMENT", "sandbox")),
		BaseURL:         getEnv("SQUARE_BASE_URL", ""),
		APIVersion:      getEnv("SQUARE_API_VERSION", "2024-06-04"),
		PageLimit:       pageLimit,
		Timeout:         posTimeout,
		DefaultTimezone: getEnv("DEFAULT_TIMEZONE", "Australia/Sydney"),
	}

	cacheTTL, err := time.ParseDuration(getEnv("DASHBOARD_CACHE_TTL", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DASHBOARD_CACHE_TTL: %w", err)
	}
	sweepInterval, err := time.ParseDuration(getEnv("DASHBOARD_CACHE_SWEEP_INTERVAL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DASHBOARD_CACHE_SWEEP_INTERVAL: %w", err)
	}

	config.Cache = CacheConfig{
		DashboardTTL:  cacheTTL,
		SweepInterval: sweepInterval,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.POS.AccessToken == "" {
		return fmt.Errorf("SQUARE_ACCESS_TOKEN is required")
	}
	if c.POS.LocationID == "" {
		return fmt.Errorf("SQUARE_LOCATION_ID is required")
	}
	if c.POS.Environment != "sandbox" && c.POS.Environment != "production" {
		return fmt.Errorf("SQUARE_ENVIRONMENT must be sandbox or production")
	}
	if c.POS.PageLimit <= 0 {
		return fmt.Errorf("SQUARE_PAGE_LIMIT must be positive")
	}
	if _, err := time.LoadLocation(c.POS.DefaultTimezone); err != nil {
		return fmt.Errorf("invalid DEFAULT_TIMEZONE: %w", err)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
