package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/kanso-steps/internal/core/domain"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Port string
	Env  string

	// logging
	LogLevel    string
	LogJSON     bool
	LogFile     string
	LogToStdout bool
	SentryDSN   string

	// storage
	Storage    string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// redis
	RedisHost          string
	RedisPort          string
	RedisPassword      string
	RedisDB            int
	RateLimitPerMinute int

	// dashboard
	Location        *time.Location
	DailyGoal       int
	DefaultWindow   domain.TimeWindow
	SeedDemoData    bool
	NotificationTTL time.Duration

	// auth
	JWTSecret         string
	JWTIssuer         string
	TokenTTL          time.Duration
	OwnerPasswordHash string
}

// Load reads the configuration from the environment. A .env file at path is
// loaded first when present; variables already set take precedence.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			logrus.Warnf("[CONFIG] could not read %s: %v", path, err)
		}
	}

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("APP_ENV", "development"),

		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFile:           os.Getenv("LOG_FILE"),
		SentryDSN:         os.Getenv("SENTRY_DSN"),
		Storage:           strings.ToLower(getEnv("STORAGE", StorageMemory)),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		RedisHost:         os.Getenv("REDIS_HOST"),
		RedisPort:         getEnv("REDIS_PORT", "6379"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		JWTIssuer:         getEnv("JWT_ISSUER", "kanso-steps"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		OwnerPasswordHash: os.Getenv("OWNER_PASSWORD_HASH"),
	}

	var err error
	if cfg.LogJSON, err = getBool("LOG_JSON", false); err != nil {
		return nil, err
	}
	if cfg.LogToStdout, err = getBool("LOG_TO_STDOUT", true); err != nil {
		return nil, err
	}
	if cfg.SeedDemoData, err = getBool("SEED_DEMO_DATA", true); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMinute, err = getInt("RATE_LIMIT_PER_MINUTE", 100); err != nil {
		return nil, err
	}
	if cfg.DailyGoal, err = getInt("DAILY_GOAL", domain.DefaultDailyGoal); err != nil {
		return nil, err
	}
	if cfg.DailyGoal <= 0 {
		return nil, fmt.Errorf("config: DAILY_GOAL must be positive, got %d", cfg.DailyGoal)
	}
	if cfg.NotificationTTL, err = getDuration("NOTIFICATION_TTL", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.TokenTTL, err = getDuration("TOKEN_TTL", 24*time.Hour); err != nil {
		return nil, err
	}

	if cfg.DefaultWindow, err = domain.ParseTimeWindow(getEnv("DEFAULT_WINDOW", string(domain.DefaultTimeWindow))); err != nil {
		return nil, fmt.Errorf("config: DEFAULT_WINDOW: %w", err)
	}

	if cfg.Location, err = time.LoadLocation(getEnv("TIMEZONE", "Local")); err != nil {
		return nil, fmt.Errorf("config: TIMEZONE: %w", err)
	}

	switch cfg.Storage {
	case StorageMemory, StoragePostgres:
	default:
		return nil, fmt.Errorf("config: unknown STORAGE %q (must be memory or postgres)", cfg.Storage)
	}

	return cfg, nil
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s must be a boolean: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be a duration: %w", key, err)
	}
	return d, nil
}
