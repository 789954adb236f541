package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Host           string
	Port           int
	GinMode        string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string

	// Logging configuration
	LogFormat string
	LogLevel  string

	// Session configuration
	SessionTTL    time.Duration
	MaxSessions   int
	SecureCookies bool

	// Invoice defaults
	DefaultBusinessName string
	DueDays             int

	// Logo configuration
	StaticDir        string
	LogoFetchTimeout time.Duration
	LogoMaxBytes     int64
	LogoCacheTTL     time.Duration
	LogoCacheEntries int
	LogoAllowPrivate bool
	MaxWorkers       int
}

// LoadConfig loads the application configuration from environment variables
func LoadConfig() (*Config, error) {
	// Get the executable directory
	execPath, err := os.Executable()
	if err != nil {
		log.Printf("Warning: Could not determine executable path: %v", err)
	}

	// Determine project root directory
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(execPath)))
	envPath := filepath.Join(projectRoot, ".env")

	// Load .env file if it exists
	if err := godotenv.Load(envPath); err != nil {
		// Try loading from current directory as fallback
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading .env file. Using environment variables.")
		} else {
			log.Println("Loaded environment variables from current directory .env file")
		}
	} else {
		log.Printf("Loaded environment variables from %s", envPath)
	}

	return FromEnv(), nil
}

// FromEnv builds the configuration from the current environment only
func FromEnv() *Config {
	config := &Config{
		// Server configuration
		Host:           getEnvString("HOST", "127.0.0.1"),
		Port:           getEnvInt("PORT", 8080),
		GinMode:        getEnvString("GIN_MODE", "release"),
		ReadTimeout:    getEnvDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getEnvDuration("WRITE_TIMEOUT", 15*time.Second),
		AllowedOrigins: getEnvStringSlice("CORS_ALLOWED_ORIGINS", nil),

		// Logging configuration
		LogFormat: getEnvString("LOG_FORMAT", "json"),
		LogLevel:  getEnvString("LOG_LEVEL", "info"),

		// Session configuration
		SessionTTL:    getEnvDuration("SESSION_TTL", 12*time.Hour),
		MaxSessions:   getEnvInt("MAX_SESSIONS", 10000),
		SecureCookies: getEnvBool("SECURE_COOKIES", false),

		// Invoice defaults
		DefaultBusinessName: getEnvString("DEFAULT_BUSINESS_NAME", "Cloud Net Park"),
		DueDays:             getEnvInt("DUE_DAYS", 15),

		// Logo configuration
		StaticDir:        getEnvString("STATIC_DIR", "public"),
		LogoFetchTimeout: getEnvDuration("LOGO_FETCH_TIMEOUT", 5*time.Second),
		LogoMaxBytes:     int64(getEnvInt("LOGO_MAX_BYTES", 5*1024*1024)),
		LogoCacheTTL:     getEnvDuration("LOGO_CACHE_TTL", 5*time.Minute),
		LogoCacheEntries: getEnvInt("LOGO_CACHE_ENTRIES", 512),
		LogoAllowPrivate: getEnvBool("LOGO_ALLOW_PRIVATE", false),
		MaxWorkers:       getEnvInt("MAX_WORKERS", 4),
	}

	validateConfig(config)

	return config
}

// validateConfig checks configuration values and logs warnings for suspicious ones
func validateConfig(config *Config) {
	if config.LogFormat != "json" && config.LogFormat != "pretty" {
		log.Printf("Warning: Unknown LOG_FORMAT %q, falling back to json", config.LogFormat)
		config.LogFormat = "json"
	}

	switch config.GinMode {
	case "debug", "release", "test":
	default:
		log.Printf("Warning: Unknown GIN_MODE %q, using release", config.GinMode)
		config.GinMode = "release"
	}

	if config.MaxSessions <= 0 {
		log.Printf("Warning: MAX_SESSIONS must be positive, using default: 10000")
		config.MaxSessions = 10000
	}

	for _, origin := range config.AllowedOrigins {
		if origin == "*" {
			log.Printf("Warning: CORS_ALLOWED_ORIGINS contains *, any web page can call the API")
		}
	}

	if config.DueDays <= 0 {
		log.Printf("Warning: DUE_DAYS must be positive, using default: 15")
		config.DueDays = 15
	}

	if _, err := os.Stat(config.StaticDir); err != nil {
		log.Printf("Warning: Static directory %s is not readable. Local logos will show a placeholder.", config.StaticDir)
	}
}

// getEnvInt gets an integer from an environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvBool gets a boolean from an environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	valueStr = strings.ToLower(valueStr)
	return valueStr == "true" || valueStr == "1" || valueStr == "yes"
}

// getEnvString gets a string from an environment variable with a default value
func getEnvString(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration reads a duration such as "30s" or a bare number of seconds
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	if seconds, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(seconds) * time.Second
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvStringSlice gets a string slice from a comma-separated environment variable
func getEnvStringSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
