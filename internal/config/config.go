package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrSessionSecretMissing is returned by Validate when no session secret is configured.
var ErrSessionSecretMissing = errors.New("SESSION_SECRET must be set")

type Config struct {
	Port string

	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	SessionSecret string
	SessionStore  string
	RedisHost     string
	RedisPort     string

	GinMode  string
	LogLevel string

	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int

	OpenAIAPIKey string
	OpenAIModel  string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	driver := strings.ToLower(getEnv("DB_DRIVER", "sqlite"))

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DBDriver:         driver,
		DBPath:           getEnv("DB_PATH", "worklog.db"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", defaultDBPort(driver)),
		DBUser:           getEnv("DB_USER", "worklog"),
		DBPassword:       getEnv("DB_PASSWORD", "worklog"),
		DBName:           getEnv("DB_NAME", "worklog"),
		SessionSecret:    os.Getenv("SESSION_SECRET"),
		SessionStore:     strings.ToLower(getEnv("SESSION_STORE", "cookie")),
		RedisHost:        getEnv("REDIS_HOST", "localhost"),
		RedisPort:        getEnv("REDIS_PORT", "6379"),
		GinMode:          getEnv("GIN_MODE", "debug"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		RateLimitEnabled: getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitRPS:     getEnvFloat("RATE_LIMIT_RPS", 1),
		RateLimitBurst:   getEnvInt("RATE_LIMIT_BURST", 5),
		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4o-mini"),
	}
}

// Validate reports settings the server cannot run without.
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return ErrSessionSecretMissing
	}
	return nil
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func defaultDBPort(driver string) string {
	if driver == "postgres" {
		return "5432"
	}
	return "3306"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "":
		return defaultValue
	case "0", "false", "no", "off":
		return false
	default:
		return true
	}
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return defaultValue
}
