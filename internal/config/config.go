package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Email    EmailConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name    string
	Version string
	Debug   bool
	Port    string
	Host    string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

// EmailConfig holds the notification mail settings. Sender and recipient
// are fixed for the process lifetime.
type EmailConfig struct {
	Enabled   bool
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	ToEmail   string
	// DisabledReason is set when Load had to turn email off because the
	// settings were incomplete.
	DisabledReason string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	username := getEnv("EMAIL_USER", "")
	password := getEnv("EMAIL_PASS", "")

	cfg := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "Form Intake API"),
			Version: getEnv("APP_VERSION", "1.0.0"),
			Debug:   getEnvAsBool("DEBUG", false),
			Port:    getEnv("PORT", "5000"),
			Host:    getEnv("HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			URL:     getEnv("DATABASE_URL", "sqlite:///./intake.db"),
			SSLMode: getEnv("DATABASE_SSLMODE", "require"),
		},
		CORS: CORSConfig{
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
			MaxAge:         86400,
		},
		Email: EmailConfig{
			Enabled:   getEnvAsBool("EMAIL_ENABLED", username != "" && password != ""),
			SMTPHost:  getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:  getEnvAsInt("SMTP_PORT", 587),
			Username:  username,
			Password:  password,
			FromEmail: getEnv("EMAIL_FROM", username),
			// EMAIL_RECIVER is the historical spelling used by existing deployments.
			ToEmail: getEnv("EMAIL_RECIVER", getEnv("EMAIL_RECEIVER", "")),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	if cfg.Email.Enabled && cfg.Email.ToEmail == "" {
		cfg.Email.Enabled = false
		cfg.Email.DisabledReason = "EMAIL_RECIVER is not set"
	}

	return cfg, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.App.Port == "" {
		return fmt.Errorf("PORT must be set")
	}
	if _, err := strconv.Atoi(cfg.App.Port); err != nil {
		return fmt.Errorf("PORT must be numeric: %q", cfg.App.Port)
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// Addr returns the host:port the HTTP server listens on.
func (c *AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsPostgres checks if the database URL is for PostgreSQL
func (c *DatabaseConfig) IsPostgres() bool {
	return strings.HasPrefix(c.URL, "postgres://") || strings.HasPrefix(c.URL, "postgresql://")
}

// GetPostgresDSN returns the PostgreSQL connection URL with an sslmode
// parameter. An sslmode already present in the URL wins over SSLMode.
// Keyword/value DSNs are returned as is.
func (c *DatabaseConfig) GetPostgresDSN() string {
	if !c.IsPostgres() {
		return c.URL
	}

	u, err := url.Parse(c.URL)
	if err != nil {
		return c.URL
	}

	q := u.Query()
	if q.Get("sslmode") == "" && c.SSLMode != "" {
		q.Set("sslmode", c.SSLMode)
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// GetSQLitePath extracts SQLite database path from URL
func (c *DatabaseConfig) GetSQLitePath() string {
	return strings.TrimPrefix(c.URL, "sqlite:///")
}
