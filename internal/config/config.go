package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI  string
	DBName    string
	RedisURI  string
	JWTSecret string

	AccessTokenTTL  time.Duration
	AdminSessionTTL time.Duration

	Environment    string
	Port           string
	AllowedOrigins []string

	CloudinaryName      string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	ImageHostEndpoint   string
	ImageHostAPIKey     string
}

// IsDevelopment reports whether failed reads should fall back to empty
// results instead of surfacing backend errors.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load reads the environment into AppEnv without validating it. Tests use it
// directly; main goes through MustLoad.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:            getEnvOrDefault("MONGO_URI", ""),
		DBName:              getEnvOrDefault("DB_NAME", "omufusion"),
		RedisURI:            getEnvOrDefault("REDIS_URI", ""),
		JWTSecret:           getEnvOrDefault("JWT_SECRET", ""),
		AccessTokenTTL:      getDurationEnv("ACCESS_TOKEN_TTL", 20, time.Minute),
		AdminSessionTTL:     getDurationEnv("ADMIN_SESSION_TTL", 12, time.Hour),
		Environment:         strings.ToLower(getEnvOrDefault("ENV", "development")),
		Port:                getEnvOrDefault("PORT", "8080"),
		AllowedOrigins:      splitList(getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:3000")),
		CloudinaryName:      getEnvOrDefault("CLOUDINARY_NAME", ""),
		CloudinaryAPIKey:    getEnvOrDefault("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnvOrDefault("CLOUDINARY_API_SECRET", ""),
		ImageHostEndpoint:   getEnvOrDefault("IMAGE_HOST_ENDPOINT", ""),
		ImageHostAPIKey:     getEnvOrDefault("IMAGE_HOST_API_KEY", ""),
	}
}

// Validate checks the fixed required-field schema and reports every missing
// field at once, so a broken deployment fails with the full picture.
func (c Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"MONGO_URI", c.MongoURI},
		{"DB_NAME", c.DBName},
		{"REDIS_URI", c.RedisURI},
		{"JWT_SECRET", c.JWTSecret},
	}

	var missing []string
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}

	if c.Environment != "development" && c.Environment != "production" {
		return fmt.Errorf("ENV must be development or production, got %q", c.Environment)
	}
	return nil
}

// MustLoad loads and validates the environment, exiting on failure so no
// client is ever constructed from a broken configuration.
func MustLoad() {
	Load()
	if err := AppEnv.Validate(); err != nil {
		log.Fatalf("[CONFIG] [FATAL] %v", err)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
