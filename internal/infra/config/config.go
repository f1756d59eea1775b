package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	Port             string
	DatabaseURL      string
	AuthServiceURL   string
	MailHost         string
	MailPort         int
	MailUser         string
	MailPass         string
	MailFrom         string
	AllowedOrigins   []string
	ReminderCronSpec string
	LogLevel         string
	Environment      string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.Port = os.Getenv("PORT")
	if cfg.Port == "" {
		cfg.Port = "5000"
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	// The send-email endpoint denies every request when this is unset; the
	// reminder job still runs.
	cfg.AuthServiceURL = os.Getenv("AUTH_SERVICE_URL")

	cfg.MailHost = os.Getenv("MAIL_HOST")
	if cfg.MailHost == "" {
		return nil, fmt.Errorf("MAIL_HOST is not set")
	}

	mailPortStr := os.Getenv("MAIL_PORT")
	if mailPortStr == "" {
		mailPortStr = "587"
	}
	mailPort, err := strconv.Atoi(mailPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid MAIL_PORT: %w", err)
	}
	cfg.MailPort = mailPort

	cfg.MailUser = os.Getenv("MAIL_USER")
	if cfg.MailUser == "" {
		return nil, fmt.Errorf("MAIL_USER is not set")
	}

	cfg.MailPass = os.Getenv("MAIL_PASS")
	if cfg.MailPass == "" {
		return nil, fmt.Errorf("MAIL_PASS is not set")
	}

	cfg.MailFrom = os.Getenv("MAIL_FROM")
	if cfg.MailFrom == "" {
		cfg.MailFrom = `"Locaccm Notifications" <no-reply@locaccm.io>`
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	originsStr := os.Getenv("ALLOWED_ORIGINS")
	if originsStr == "" {
		if cfg.Environment == "development" {
			originsStr = "http://localhost:3000"
		} else {
			originsStr = "https://locaccm.io"
		}
	}
	for _, origin := range strings.Split(originsStr, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	cfg.ReminderCronSpec = os.Getenv("REMINDER_CRON_SPEC")
	if cfg.ReminderCronSpec == "" {
		cfg.ReminderCronSpec = "@every 24h" // Default: one sweep per day
	}

	return cfg, nil
}
