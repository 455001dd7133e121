// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	Storage   StorageConfig
	Recurring RecurringConfig
	Assistant AssistantConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// StorageConfig names the keys under which the collections are stored.
type StorageConfig struct {
	BillsKey    string
	ExpensesKey string
}

// RecurringConfig holds defaults for recurring bill generation.
type RecurringConfig struct {
	DefaultCount int
}

// AssistantConfig holds chat assistant settings.
type AssistantConfig struct {
	HistoryLimit int
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Storage: StorageConfig{
			BillsKey:    getEnv("STORAGE_BILLS_KEY", "resolvpay:bills"),
			ExpensesKey: getEnv("STORAGE_EXPENSES_KEY", "resolvpay:expenses"),
		},
		Recurring: RecurringConfig{
			DefaultCount: getEnvAsInt("RECURRING_DEFAULT_COUNT", 12),
		},
		Assistant: AssistantConfig{
			HistoryLimit: getEnvAsInt("ASSISTANT_HISTORY_LIMIT", 50),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
