package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Env      string
	LogLevel string
	HTTPAddr string

	StoreDriver string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RabbitMQURL   string
	EventExchange string

	JWTSecret string

	CleaningFee     float64
	ServiceFee      float64
	CalendarTTL     time.Duration
	PendingTTL      time.Duration
	CleanupInterval time.Duration
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		Env:           getEnv("APP_ENV", "dev"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		StoreDriver:   strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres)),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getEnv("DB_NAME", "hotel"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RabbitMQURL:   os.Getenv("RABBITMQ_URL"),
		EventExchange: getEnv("EVENT_EXCHANGE", "hotel.bookings"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
	}

	var err error
	if cfg.RedisDB, err = parseIntEnv("REDIS_DB", 0); err != nil {
		return Config{}, err
	}

	if cfg.CleaningFee, err = parseFeeEnv("BOOKING_CLEANING_FEE", 50); err != nil {
		return Config{}, err
	}

	if cfg.ServiceFee, err = parseFeeEnv("BOOKING_SERVICE_FEE", 30); err != nil {
		return Config{}, err
	}

	if cfg.CalendarTTL, err = parseDurationEnv("CALENDAR_CACHE_TTL", time.Minute); err != nil {
		return Config{}, err
	}

	if cfg.PendingTTL, err = parseDurationEnv("PENDING_TTL", 30*time.Minute); err != nil {
		return Config{}, err
	}

	if cfg.CleanupInterval, err = parseDurationEnv("CLEANUP_INTERVAL", time.Minute); err != nil {
		return Config{}, err
	}

	if cfg.StoreDriver != StoreDriverPostgres && cfg.StoreDriver != StoreDriverMemory {
		return Config{}, fmt.Errorf("invalid STORE_DRIVER %q: want postgres or memory", cfg.StoreDriver)
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseIntEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s integer: %w", key, err)
	}
	return n, nil
}

func parseFeeEnv(key string, def float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s amount: %w", key, err)
	}
	if f < 0 {
		return 0, fmt.Errorf("invalid %s amount: must not be negative", key)
	}
	return f, nil
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}
