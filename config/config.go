package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	LLM     LLMConfig
	Email   EmailConfig
	Session SessionConfig
	App     AppConfig
}

type ServerConfig struct {
	Port string
}

type StoreConfig struct {
	// Backend selects the record store: memory, redis or postgres.
	Backend     string
	RedisAddr   string
	RedisDB     int
	Namespace   string
	PostgresDSN string
}

type LLMConfig struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
}

type EmailConfig struct {
	BaseURL string
}

type SessionConfig struct {
	IdleTTLMinutes int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Store: StoreConfig{
			Backend:     getEnv("STORE_BACKEND", "memory"),
			RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
			RedisDB:     getEnvAsInt("REDIS_DB", 0),
			Namespace:   getEnv("STORE_NAMESPACE", "reqmaster:users"),
			PostgresDSN: getEnv("DB_DSN", ""),
		},
		LLM: LLMConfig{
			BaseURL:        getEnv("LLM_BASE_URL", "http://localhost:8088"),
			APIKey:         getEnv("LLM_API_KEY", ""),
			TimeoutSeconds: getEnvAsInt("LLM_TIMEOUT_SECONDS", 60),
		},
		Email: EmailConfig{
			BaseURL: getEnv("EMAIL_BASE_URL", "http://localhost:8090"),
		},
		Session: SessionConfig{
			IdleTTLMinutes: getEnvAsInt("SESSION_IDLE_TTL_MINUTES", 720),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Store.Backend {
	case "memory", "redis", "postgres":
	default:
		return fmt.Errorf("STORE_BACKEND must be memory, redis or postgres")
	}

	if c.Store.Backend == "postgres" && c.Store.PostgresDSN == "" {
		return fmt.Errorf("DB_DSN is required for the postgres backend")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
