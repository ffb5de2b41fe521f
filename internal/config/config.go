package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Rate limit store backends.
const (
	RateLimitStoreMemory = "memory"
	RateLimitStoreRedis  = "redis"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	MaxPayloadBytes int64

	// Rate limiting
	RateLimitPerMinute int
	RateLimitPerDay    int
	RateLimitStore     string
	RedisURL           string

	// Moderation
	ModerationPolicy string

	// Generation service; an empty key leaves generation unconfigured.
	GeminiAPIKey      string
	GeminiModel       string
	GeminiBaseURL     string
	GenerationTimeout time.Duration

	// Identity provider
	SupabaseURL       string
	SupabaseAnonKey   string
	SupabaseJWTSecret string

	// CMS publishing
	WordPressBaseURL     string
	WordPressUsername    string
	WordPressAppPassword string
	WordPressAuthorID    int
	PublishRatePerMinute int

	// Database configuration; the ledger is disabled when DBHost is empty.
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration
	DBMigrationsPath    string

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		ReadTimeout:          getEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:         getEnvDuration("HTTP_WRITE_TIMEOUT", 45*time.Second),
		IdleTimeout:          getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		MaxPayloadBytes:      int64(getEnvInt("MAX_PAYLOAD_BYTES", 10*1024)),
		RateLimitPerMinute:   getEnvInt("RATE_LIMIT_PER_MINUTE", 5),
		RateLimitPerDay:      getEnvInt("RATE_LIMIT_PER_DAY", 20),
		RateLimitStore:       getEnv("RATE_LIMIT_STORE", RateLimitStoreMemory),
		RedisURL:             getEnv("REDIS_URL", ""),
		ModerationPolicy:     getEnv("MODERATION_POLICY", "contextual"),
		GeminiAPIKey:         getEnv("GEMINI_API_KEY", ""),
		GeminiModel:          getEnv("GEMINI_MODEL", "gemini-1.5-flash-latest"),
		GeminiBaseURL:        getEnv("GEMINI_BASE_URL", ""),
		GenerationTimeout:    getEnvDuration("GENERATION_TIMEOUT", 30*time.Second),
		SupabaseURL:          getEnv("SUPABASE_URL", ""),
		SupabaseAnonKey:      getEnv("SUPABASE_ANON_KEY", ""),
		SupabaseJWTSecret:    getEnv("SUPABASE_JWT_SECRET", ""),
		WordPressBaseURL:     getEnv("WORDPRESS_BASE_URL", "https://hospitalityfn.com"),
		WordPressUsername:    getEnv("WORDPRESS_USERNAME", ""),
		WordPressAppPassword: getEnv("WORDPRESS_APP_PASSWORD", ""),
		WordPressAuthorID:    getEnvInt("WORDPRESS_AUTHOR_ID", 1),
		PublishRatePerMinute: getEnvInt("PUBLISH_RATE_PER_MINUTE", 3),
		DBHost:               getEnv("DB_HOST", ""),
		DBPort:               getEnvInt("DB_PORT", 5432),
		DBUser:               getEnv("DB_USER", "postgres"),
		DBPassword:           getEnv("DB_PASSWORD", "postgres"),
		DBName:               getEnv("DB_NAME", "article_generator"),
		DBSSLMode:            getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:           int32(getEnvInt("DB_MAX_CONNS", 10)),
		DBMinConns:           int32(getEnvInt("DB_MIN_CONNS", 1)),
		DBMaxConnLifetime:    getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:    getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod:  getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		DBMigrationsPath:     getEnv("DB_MIGRATIONS_PATH", "migrations"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DatabaseEnabled reports whether the publication ledger is configured.
func (c *Config) DatabaseEnabled() bool {
	return c.DBHost != ""
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.MaxPayloadBytes < 1 {
		return fmt.Errorf("MAX_PAYLOAD_BYTES must be at least 1")
	}
	if c.RateLimitPerMinute < 1 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be at least 1")
	}
	if c.RateLimitPerDay < 1 {
		return fmt.Errorf("RATE_LIMIT_PER_DAY must be at least 1")
	}
	switch c.RateLimitStore {
	case RateLimitStoreMemory:
	case RateLimitStoreRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when RATE_LIMIT_STORE is redis")
		}
	default:
		return fmt.Errorf("RATE_LIMIT_STORE must be %q or %q", RateLimitStoreMemory, RateLimitStoreRedis)
	}
	if c.GenerationTimeout <= 0 {
		return fmt.Errorf("GENERATION_TIMEOUT must be positive")
	}
	if c.PublishRatePerMinute < 1 {
		return fmt.Errorf("PUBLISH_RATE_PER_MINUTE must be at least 1")
	}
	if c.DatabaseEnabled() {
		if c.DBUser == "" {
			return fmt.Errorf("DB_USER is required")
		}
		if c.DBName == "" {
			return fmt.Errorf("DB_NAME is required")
		}
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
