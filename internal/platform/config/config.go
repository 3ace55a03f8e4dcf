package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL      string
	DBMaxConns       int32
	DBConnectTimeout time.Duration
	Port             string
	IsProduction     bool
	EnableDBCheck    bool
	MigrationsPath   string

	// Tokens are issued by the identity provider; this service only verifies them.
	JWTSecret string
	JWTIssuer string

	CORSAllowedOrigins []string
	RateLimit          string
	RedisURL           string

	PosthogAPIKey   string
	PosthogEndpoint string

	MaxDocumentSizeBytes int64
	AllowedDocumentTypes []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_CONNECT_TIMEOUT", "5s")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "investor-onboarding-app")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	viper.SetDefault("MAX_DOCUMENT_SIZE_BYTES", 10<<20)
	viper.SetDefault("ALLOWED_DOCUMENT_TYPES", "application/pdf,image/png,image/jpeg")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:          viper.GetString("PGSQL_URL"),
		DBMaxConns:           viper.GetInt32("DB_MAX_CONNS"),
		Port:                 viper.GetString("PORT"),
		IsProduction:         viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:        viper.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:       viper.GetString("MIGRATIONS_PATH"),
		JWTSecret:            viper.GetString("JWT_SECRET"),
		JWTIssuer:            viper.GetString("JWT_ISSUER"),
		CORSAllowedOrigins:   splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:            viper.GetString("RATE_LIMIT"),
		RedisURL:             viper.GetString("REDIS_URL"),
		PosthogAPIKey:        viper.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:      viper.GetString("POSTHOG_ENDPOINT"),
		MaxDocumentSizeBytes: viper.GetInt64("MAX_DOCUMENT_SIZE_BYTES"),
		AllowedDocumentTypes: splitList(viper.GetString("ALLOWED_DOCUMENT_TYPES")),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	timeoutStr := viper.GetString("DB_CONNECT_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 5 * time.Second
		log.Printf("Warning: Invalid value for DB_CONNECT_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.DBConnectTimeout = timeout

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.MaxDocumentSizeBytes <= 0 {
		cfg.MaxDocumentSizeBytes = 10 << 20
		log.Printf("Warning: MAX_DOCUMENT_SIZE_BYTES must be positive. Defaulting to %d.\n", cfg.MaxDocumentSizeBytes)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
