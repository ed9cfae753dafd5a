package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	FrontendURL string
	// SMTP Configuration (Gmail)
	SMTPHost      string
	SMTPPort      string
	EmailUser     string
	EmailPass     string
	ToEmail       string
	EmailTimezone string
	// Dispatch timeout in seconds for a single verify+send cycle
	EmailTimeoutSeconds int
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("APP_ENV", getEnv("NODE_ENV", "development")),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// SMTP Configuration
		SMTPHost:            getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:            getEnv("SMTP_PORT", "587"),
		EmailUser:           getEnv("EMAIL_USER", ""),
		EmailPass:           getEnv("EMAIL_PASS", ""),
		ToEmail:             getEnv("TO_EMAIL", "allbusiness1z1234@gmail.com"),
		EmailTimezone:       getEnv("EMAIL_TIMEZONE", "America/New_York"),
		EmailTimeoutSeconds: getEnvInt("EMAIL_TIMEOUT_SECONDS", 15),
	}

	return cfg, nil
}

// IsProduction reports whether the process runs with the production tag.
// Gates CORS origins and client-visible error detail.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
