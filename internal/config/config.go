package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию сервиса
type Config struct {
	Port               int
	MaxHomePrice       float64
	MaxMonthlyRent     float64
	MaxRate            float64
	MaxPercent         float64
	MaxCost            float64
	RedisAddr          string
	CacheTTL           time.Duration
	CacheMaxEntries    int
	RateLimitPerMinute int
	OTELEndpoint       string
	OTELServiceName    string
	LogLevel           string
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnvInt("PORT", 8000),
		MaxHomePrice:       getEnvFloat("MAX_HOME_PRICE", 1e9),
		MaxMonthlyRent:     getEnvFloat("MAX_MONTHLY_RENT", 1e7),
		MaxRate:            getEnvFloat("MAX_RATE", 100),
		MaxPercent:         getEnvFloat("MAX_PERCENT", 100),
		MaxCost:            getEnvFloat("MAX_COST", 1e8),
		RedisAddr:          getEnvString("REDIS_ADDR", ""),
		CacheTTL:           time.Duration(getEnvInt("CACHE_TTL_SECONDS", 600)) * time.Second,
		CacheMaxEntries:    getEnvInt("CACHE_MAX_ENTRIES", 10000),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		OTELEndpoint:       getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName:    getEnvString("OTEL_SERVICE_NAME", "rentbuy-service"),
		LogLevel:           getEnvString("LOG_LEVEL", "INFO"),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
