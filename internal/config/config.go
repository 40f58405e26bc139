package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Storage backend names accepted in STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config holds the application configuration.
type Config struct {
	Port        int    `validate:"required,gt=0,lte=65535"`
	LogLevel    string `validate:"required,oneof=DEBUG INFO WARN ERROR"`
	LogFormat   string `validate:"required,oneof=json text"`
	Environment string `validate:"required,oneof=dev staging prod"`

	// StorageBackend selects where snapshots go.
	StorageBackend string `validate:"required,oneof=memory redis postgres"`
	SaveSlot       string `validate:"required"`

	RedisAddr string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// Seed fixes the session's random stream; 0 means derive one from
	// the clock at startup.
	Seed int64
}

// Load loads the configuration from environment variables.
func Load() (*Config, error) {
	// Load .env if present; real environment variables win.
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		Environment:    getEnv("ENVIRONMENT", "dev"),
		StorageBackend: getEnv("STORAGE_BACKEND", BackendMemory),
		SaveSlot:       getEnv("SAVE_SLOT", "default"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBName:         getEnv("DB_NAME", "homestead"),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if seedStr := getEnv("GAME_SEED", ""); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid GAME_SEED value: %w", err)
		}
		cfg.Seed = seed
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
