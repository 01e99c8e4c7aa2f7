package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port           string
	Environment    string
	AllowedOrigins []string
	JWTSecret      string
	Redis          RedisConfig
	Logger         LoggerConfig
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

type LoggerConfig struct {
	JSON  bool
	Debug bool
}

func Load() *Config {
	// Parse allowed origins (comma-separated)
	originsStr := getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	origins := strings.Split(originsStr, ",")

	return &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		AllowedOrigins: origins,
		JWTSecret:      getEnv("JWT_SECRET", "change-me-in-production"),
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", true),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Logger: LoggerConfig{
			JSON:  getEnvBool("LOG_JSON", false),
			Debug: getEnvBool("LOG_DEBUG", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
