package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Surreal   SurrealConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Firebase  FirebaseConfig
	Auth      AuthConfig
	Assistant AssistantConfig
	App       AppConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// StoreConfig selects which persistence adapter backs the content
// collections: "surreal", "postgres" or "memory".
type StoreConfig struct {
	Backend string
}

type SurrealConfig struct {
	URL       string
	Namespace string
	Database  string
	Username  string
	Password  string
}

type PostgresConfig struct {
	URL string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type FirebaseConfig struct {
	CredentialsPath string
}

// AuthConfig selects the authorization gate: "session" validates opaque
// tokens issued by the login endpoint, "firebase" validates Firebase ID
// tokens.
type AuthConfig struct {
	Mode              string
	AdminEmail        string
	AdminPasswordHash string
	SessionTTL        time.Duration
}

type AssistantConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	ProfilePath string
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
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: []string{getEnv("ALLOWED_ORIGIN", "http://localhost:3000")},
		},
		Store: StoreConfig{
			Backend: getEnv("STORE_BACKEND", "surreal"),
		},
		Surreal: SurrealConfig{
			URL:       getEnv("SURREALDB_URL", "ws://localhost:8000/rpc"),
			Namespace: getEnv("SURREALDB_NAMESPACE", "portfolio"),
			Database:  getEnv("SURREALDB_DATABASE", "portfolio"),
			Username:  getEnv("SURREALDB_USER", "root"),
			Password:  getEnv("SURREALDB_PASS", "root"),
		},
		Postgres: PostgresConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Firebase: FirebaseConfig{
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		},
		Auth: AuthConfig{
			Mode:              getEnv("AUTH_MODE", "session"),
			AdminEmail:        getEnv("ADMIN_EMAIL", ""),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			SessionTTL:        getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		},
		Assistant: AssistantConfig{
			BaseURL:     getEnv("COHERE_BASE_URL", "https://api.cohere.ai"),
			APIKey:      getEnv("COHERE_API_KEY", ""),
			Model:       getEnv("COHERE_MODEL", "command-r-plus"),
			ProfilePath: getEnv("PORTFOLIO_DATA_PATH", "data/portfolio.json"),
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
	case "surreal", "postgres", "memory":
	default:
		return fmt.Errorf("STORE_BACKEND must be one of surreal, postgres, memory")
	}

	if c.Store.Backend == "postgres" && c.Postgres.URL == "" {
		return fmt.Errorf("DATABASE_URL is required when STORE_BACKEND=postgres")
	}

	switch c.Auth.Mode {
	case "session", "firebase":
	default:
		return fmt.Errorf("AUTH_MODE must be one of session, firebase")
	}

	if c.Auth.Mode == "firebase" && c.Firebase.CredentialsPath == "" {
		return fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required when AUTH_MODE=firebase")
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

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}
