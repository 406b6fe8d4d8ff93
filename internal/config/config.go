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
	App      AppConfig
	JWT      JWTConfig
	Admin    AdminConfig
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

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret            string
	SessionExpiration string
}

// AdminConfig holds the local operator credential. The password is stored
// as a bcrypt hash; there is no external identity provider.
type AdminConfig struct {
	Username     string
	PasswordHash string
}

// ReportConfig holds the report engine knobs: which externally defined
// views to read and the burnout threshold in OT hours.
type ReportConfig struct {
	PayrollView       string
	BurnoutView       string
	BurnoutColumn     string
	BurnoutDateColumn string
	BurnoutThreshold  float64
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("WORKFORCE_DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORKFORCE_DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("WORKFORCE_DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("WORKFORCE_DB_USER", "postgres"),
		Password: getEnv("WORKFORCE_DB_PASSWORD", ""),
		Name:     getEnv("WORKFORCE_DB_NAME", "workforce"),
		SSLMode:  getEnv("WORKFORCE_DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		SessionExpiration: getEnv("JWT_SESSION_EXPIRATION_TIME", "8h"),
	}

	config.Admin = AdminConfig{
		Username:     getEnv("ADMIN_USERNAME", "admin"),
		PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}

	burnoutThreshold, err := strconv.ParseFloat(getEnv("WORKFORCE_BURNOUT_THRESHOLD", "60"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid WORKFORCE_BURNOUT_THRESHOLD: %w", err)
	}

	config.Report = ReportConfig{
		PayrollView:       getEnv("WORKFORCE_PAYROLL_VIEW", "v_daily_payroll"),
		BurnoutView:       getEnv("WORKFORCE_BURNOUT_VIEW", "v_weekly_hours_summary"),
		BurnoutColumn:     getEnv("WORKFORCE_BURNOUT_COLUMN", "total_ot_hours"),
		BurnoutDateColumn: getEnv("WORKFORCE_BURNOUT_DATE_COLUMN", "week_start"),
		BurnoutThreshold:  burnoutThreshold,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("WORKFORCE_DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Admin.PasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	if c.Report.BurnoutThreshold <= 0 {
		return fmt.Errorf("WORKFORCE_BURNOUT_THRESHOLD must be positive")
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
