// Package config loads the application configuration from environment
// variables with development-friendly defaults.
package config

import (
	"os"
	"strconv"

	"github.com/veugravata/backend/internal/mail"
)

// Config holds the application configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string

	// MetricsAddr is the Prometheus listen address ("" disables metrics).
	MetricsAddr string

	// DBPath is the SQLite database file.
	DBPath string

	// PublicBaseURL prefixes public site links in invitations and QR
	// codes, e.g. "https://veuegravata.com".
	PublicBaseURL string

	// JWTSecret signs session tokens.
	JWTSecret string

	// TokenTTLHours is the session token lifetime.
	TokenTTLHours int

	// BankingKey is the 64-char hex key sealing banking details at rest.
	BankingKey string

	// SMTP is the invitation mail relay.
	SMTP mail.SMTPConfig
}

// Load reads configuration from environment variables or defaults.
func Load() *Config {
	return &Config{
		Addr:          getEnv("ADDR", ":8080"),
		MetricsAddr:   getEnv("METRICS_ADDR", ":9090"),
		DBPath:        getEnv("DB_PATH", "./data/veugravata.db"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTLHours: getEnvInt("TOKEN_TTL_HOURS", 24),
		// Dev default is a fixed key so local databases survive restarts.
		BankingKey: getEnv("BANKING_KEY",
			"6368616e676520746869732064657620626164206b6579206e6f772e2e2e2e21"),
		SMTP: mail.SMTPConfig{
			Host:     getEnv("SMTP_HOST", "localhost"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "convites@veuegravata.com"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
