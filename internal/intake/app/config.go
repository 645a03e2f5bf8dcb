package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)
	Port      int    // HTTP server port (default: 8080)

	StoreDriver  string // Store driver (memory, sqlite) (default: memory)
	DatabaseFile string // Path to SQLite database file, sqlite driver only (default: ./intake.db)

	CodeLength      int           // Digits in the emailed one-time code (default: 6)
	VerificationTTL time.Duration // Lifetime of a pending verification (default: 15m)
	SessionTTL      time.Duration // Lifetime of an authenticated session (default: 2h)
	MaxAttempts     int           // Verify-call budget per verification session (default: 5)
	ChallengeMin    int           // Smallest math challenge operand (default: 1)
	ChallengeMax    int           // Largest math challenge operand (default: 20)

	SMTPHost     string // SMTP relay host; empty disables delivery and logs codes instead
	SMTPPort     int    // SMTP relay port (default: 587)
	SMTPUsername string // Optional: SMTP AUTH username
	SMTPPassword string // Optional: SMTP AUTH password
	SMTPFrom     string // Sender address (default: noreply@localhost)
	SMTPFromName string // Optional: sender display name

	RequireClientCert bool // Require an mTLS-proxy certificate header on /api/ (default: false)

	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired-record sweep interval (default: 10m)
}

func LoadConfig() Config {
	return Config{
		Env:       getEnvOrDefault("ENV", "dev"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),
		Port:      getEnvIntOrDefault("PORT", 8080),

		StoreDriver:  getEnvOrDefault("STORE_DRIVER", "memory"),
		DatabaseFile: getEnvOrDefault("DATABASE_FILE", "intake.db"),

		CodeLength:      getEnvIntOrDefault("CODE_LENGTH", 6),
		VerificationTTL: getEnvDurationOrDefault("VERIFICATION_TTL", 15*time.Minute),
		SessionTTL:      getEnvDurationOrDefault("SESSION_TTL", 2*time.Hour),
		MaxAttempts:     getEnvIntOrDefault("MAX_ATTEMPTS", 5),
		ChallengeMin:    getEnvIntOrDefault("CHALLENGE_MIN", 1),
		ChallengeMax:    getEnvIntOrDefault("CHALLENGE_MAX", 20),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     getEnvOrDefault("SMTP_FROM", "noreply@localhost"),
		SMTPFromName: os.Getenv("SMTP_FROM_NAME"),

		RequireClientCert: getEnvBoolOrDefault("REQUIRE_CLIENT_CERT", false),

		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 10*time.Minute),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
