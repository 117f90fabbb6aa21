package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	DatabaseURL         string
	JWTSecret           string
	JWTAccessExpiry     time.Duration
	WidgetTokenExpiry   time.Duration
	WorkOSAPIKey        string
	WorkOSBaseURL       string
	FirebaseCredentials string
	FrontendURL         string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 15 * time.Minute
	if exp := os.Getenv("JWT_ACCESS_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	// Widget tokens only need to live long enough for the embedded
	// connection widget to complete the OAuth handshake.
	widgetExpiry := 5 * time.Minute
	if exp := os.Getenv("WIDGET_TOKEN_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			widgetExpiry = parsed
		}
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		JWTSecret:           getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiry:     accessExpiry,
		WidgetTokenExpiry:   widgetExpiry,
		WorkOSAPIKey:        getEnv("WORKOS_API_KEY", ""),
		WorkOSBaseURL:       getEnv("WORKOS_BASE_URL", "https://api.workos.com"),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
		FrontendURL:         getEnv("FRONTEND_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
