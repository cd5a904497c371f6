package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

var (
	ErrMissingJWTSecret  = errors.New("JWT_SECRET environment variable is required")
	ErrMissingDBPassword = errors.New("DB_PASSWORD environment variable is required")
	ErrMissingGeocodeKey = errors.New("GEOCODING_API_KEY environment variable is required")
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// Geocoding provider
	GeocodingAPIKey  string
	GeocodingBaseURL string
	HTTPTimeout      time.Duration

	// Server
	Port        string
	CORSOrigins string

	// Requests per minute per IP, 0 disables the limiter.
	RateLimit     int
	AuthRateLimit int

	// system_logs retention
	LogRetentionDays int
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "profilehub"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m"), 15*time.Minute),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h"), 168*time.Hour),

		GeocodingAPIKey:  getEnv("GEOCODING_API_KEY", ""),
		GeocodingBaseURL: getEnv("GEOCODING_BASE_URL", "https://maps.googleapis.com"),
		HTTPTimeout:      parseDuration(getEnv("HTTP_TIMEOUT", "10s"), 10*time.Second),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		RateLimit:     parseInt(getEnv("RATE_LIMIT", "60"), 60),
		AuthRateLimit: parseInt(getEnv("AUTH_RATE_LIMIT", "10"), 10),

		LogRetentionDays: parseInt(getEnv("LOG_RETENTION_DAYS", "30"), 30),
	}
}

// Validate reports the first required secret that is missing.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	if c.DBPassword == "" {
		return ErrMissingDBPassword
	}
	if c.GeocodingAPIKey == "" {
		return ErrMissingGeocodeKey
	}
	return nil
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
