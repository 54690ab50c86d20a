package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Gemini (narrative adaptation)
	GeminiAPIKey         string
	GeminiModel          string
	GeminiTimeoutSeconds int

	// Imagen (panel rendering)
	ImagenAPIBaseURL     string
	ImagenModel          string
	ImagenTimeoutSeconds int
	RenderConcurrency    int
	RenderIntervalMillis int

	// Supabase
	SupabaseURL           string
	SupabaseServiceKey    string
	SupabaseStorageBucket string

	// Auth
	JWTSecret          string
	AccessTokenMinutes int

	// Database
	DatabaseURL string

	// Server
	Port           string
	Environment    string
	AllowedOrigins []string

	// Logging
	LogLevel string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		GeminiAPIKey:         getEnv("GEMINI_API_KEY", ""),
		GeminiModel:          getEnv("GEMINI_MODEL", "gemini-2.5-pro"),
		GeminiTimeoutSeconds: getEnvInt("GEMINI_TIMEOUT_SECONDS", 90),

		ImagenAPIBaseURL:     getEnv("IMAGEN_API_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		ImagenModel:          getEnv("IMAGEN_MODEL", "imagen-3.0-generate-002"),
		ImagenTimeoutSeconds: getEnvInt("IMAGEN_TIMEOUT_SECONDS", 60),
		RenderConcurrency:    getEnvInt("RENDER_CONCURRENCY", 2),
		RenderIntervalMillis: getEnvInt("RENDER_INTERVAL_MS", 500),

		SupabaseURL:           getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey:    getEnv("SUPABASE_SERVICE_KEY", ""),
		SupabaseStorageBucket: getEnv("SUPABASE_STORAGE_BUCKET", "diary-panels"),

		JWTSecret:          getEnv("JWT_SECRET", ""),
		AccessTokenMinutes: getEnvInt("ACCESS_TOKEN_MINUTES", 60*24),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		AllowedOrigins: strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"), ","),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabaseServiceKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_KEY is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
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
