package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned when no model API key is configured
var ErrMissingAPIKey = errors.New("API_KEY is not set")

// Config holds application configuration
type Config struct {
	// Database
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Generative model
	APIKey        string
	GeminiModel   string
	GeminiBaseURL string
	AITimeout     time.Duration

	// Fleet generator profile (YAML), empty for the built-in one
	ProfilePath string

	// Server
	ServerPort string
	GinMode    string
	LogMode    string
}

// Load loads configuration from environment variables
func Load() *Config {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	return &Config{
		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBPath:     getEnv("DB_PATH", "kochi_metro.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "kochi_metro"),

		APIKey:        getEnv("API_KEY", os.Getenv("GEMINI_API_KEY")),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),
		AITimeout:     getDuration("AI_TIMEOUT", 60*time.Second),

		ProfilePath: os.Getenv("FLEET_PROFILE"),

		ServerPort: getEnv("SERVER_PORT", "5000"),
		GinMode:    os.Getenv("GIN_MODE"),
		LogMode:    getEnv("LOG_MODE", "development"),
	}
}

// RequireAPIKey fails when the model API key is absent.
// The server calls it at startup so a missing key never surfaces on first use.
func (c *Config) RequireAPIKey() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
