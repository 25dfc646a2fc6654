// Package config loads the application configuration from the environment
// and watches an optional JSON overrides file for runtime changes.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// PostgresConfig holds the database connection settings.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN renders the connection string for the postgres driver.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}

// Config holds all application configuration.
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Storage: "postgres" or "memory" for local runs and tests.
	StorageDriver string
	Postgres      PostgresConfig

	// Messaging
	EventQueueCapacity int

	// Logging
	LogLevel string

	// Feature flags
	EnableMetrics        bool
	EnableCORS           bool
	EnableCircuitBreaker bool

	// Path of the optional dynamic overrides file; empty disables the
	// watcher.
	DynamicConfigPath string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		StorageDriver: getEnv("STORAGE_DRIVER", "postgres"),
		Postgres: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			Database: getEnv("POSTGRES_DB", "catalog"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		},

		EventQueueCapacity: getEnvInt("EVENT_QUEUE_CAPACITY", 1024),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		EnableMetrics:        getEnvBool("ENABLE_METRICS", true),
		EnableCORS:           getEnvBool("ENABLE_CORS", true),
		EnableCircuitBreaker: getEnvBool("ENABLE_CIRCUIT_BREAKER", true),

		DynamicConfigPath: getEnv("DYNAMIC_CONFIG_PATH", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case "postgres", "memory":
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.IsProduction() {
		if c.StorageDriver != "postgres" {
			return fmt.Errorf("STORAGE_DRIVER must be postgres in production")
		}
		if c.Postgres.Password == "" {
			return fmt.Errorf("POSTGRES_PASSWORD is required in production")
		}
	}

	if c.EventQueueCapacity <= 0 {
		return fmt.Errorf("EVENT_QUEUE_CAPACITY must be positive")
	}

	return nil
}

// IsDevelopment checks if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
