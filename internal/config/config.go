package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Auth     AuthConfig
	SMTP     SMTPConfig
	Storage  StorageConfig
	Report   ReportConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// AuthConfig holds the single admin credential used to issue tokens
type AuthConfig struct {
	AdminEmail        string
	AdminPasswordHash string
}

// SMTPConfig holds the mail relay; sender address and app password live
// in the mail settings table and are supplied per send.
type SMTPConfig struct {
	Host string
	Port int
}

// StorageConfig holds file storage for generated report artifacts
type StorageConfig struct {
	Type     string
	BasePath string
	BaseURL  string
}

// ReportConfig holds the auto-send job settings
type ReportConfig struct {
	AutoSend     bool
	AutoSendHour int
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
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
		Name:     getEnv("DB_NAME", "tipshare"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	// Admin credential
	config.Auth = AuthConfig{
		AdminEmail:        getEnv("ADMIN_EMAIL", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}

	// SMTP relay
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	config.SMTP = SMTPConfig{
		Host: getEnv("SMTP_HOST", "smtp.gmail.com"),
		Port: smtpPort,
	}

	// Report artifact storage
	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./downloads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/downloads"),
	}

	// Report auto-send job
	autoSendHour, err := strconv.Atoi(getEnv("REPORT_AUTO_SEND_HOUR", "9"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_AUTO_SEND_HOUR: %w", err)
	}
	config.Report = ReportConfig{
		AutoSend:     getEnv("REPORT_AUTO_SEND", "false") == "true",
		AutoSendHour: autoSendHour,
	}

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
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Auth.AdminEmail == "" {
		return fmt.Errorf("ADMIN_EMAIL is required")
	}
	if c.Auth.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	if c.Report.AutoSendHour < 0 || c.Report.AutoSendHour > 23 {
		return fmt.Errorf("REPORT_AUTO_SEND_HOUR must be between 0 and 23")
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
