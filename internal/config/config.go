package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Stats    StatsConfig
	Cache    CacheConfig
	Features FeaturesConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// StatsConfig holds statistics configuration
type StatsConfig struct {
	// DefaultWindowMonths is the trailing window used when a request does
	// not ask for a specific one.
	DefaultWindowMonths int
}

// CacheConfig holds read-cache and form-session lifetimes
type CacheConfig struct {
	TTL            time.Duration
	FormSessionTTL time.Duration
}

// FeaturesConfig toggles optional behavior
type FeaturesConfig struct {
	// InlineEmployeeCreate enables creating an employee from inside the
	// apartment form.
	InlineEmployeeCreate bool
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "ordermaster"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// Statistics configuration
	statsWindow, err := strconv.Atoi(getEnv("STATS_DEFAULT_WINDOW_MONTHS", "6"))
	if err != nil {
		return nil, fmt.Errorf("invalid STATS_DEFAULT_WINDOW_MONTHS: %w", err)
	}
	config.Stats = StatsConfig{DefaultWindowMonths: statsWindow}

	// Cache configuration
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	formSessionTTL, err := time.ParseDuration(getEnv("FORM_SESSION_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid FORM_SESSION_TTL: %w", err)
	}

	config.Cache = CacheConfig{
		TTL:            cacheTTL,
		FormSessionTTL: formSessionTTL,
	}

	// Feature flags
	inlineCreate, err := strconv.ParseBool(getEnv("FEATURE_INLINE_EMPLOYEE_CREATE", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid FEATURE_INLINE_EMPLOYEE_CREATE: %w", err)
	}
	config.Features = FeaturesConfig{InlineEmployeeCreate: inlineCreate}

	// Validate required fields
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
	if c.Stats.DefaultWindowMonths < 1 {
		return fmt.Errorf("STATS_DEFAULT_WINDOW_MONTHS must be at least 1")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	if c.Cache.FormSessionTTL <= 0 {
		return fmt.Errorf("FORM_SESSION_TTL must be positive")
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

func getEnvSlice(key, fallback string) []string {
	value := getEnv(key, fallback)
	if value == "" {
		return []string{}
	}

	parts := strings.Split(value, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
