// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MongoDB
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// PostgreSQL (admin accounts)
	PostgresURI string

	// Gmail
	GmailClientID     string
	GmailClientSecret string
	GmailRefreshToken string

	// Property
	PropertyName    string
	PropertyEmail   string
	PropertyPhone   string
	PropertyAddress string
	PricePerNight   int64

	// Admin auth
	JWTSecret          string
	JWTExpiry          time.Duration
	BootstrapAdminUser string
	BootstrapAdminPass string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "haven"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresURI: getEnv("POSTGRES_DSN", "postgres://localhost:5432/haven"),

		GmailClientID:     getEnv("GMAIL_CLIENT_ID", ""),
		GmailClientSecret: getEnv("GMAIL_CLIENT_SECRET", ""),
		GmailRefreshToken: getEnv("GMAIL_REFRESH_TOKEN", ""),

		PropertyName:    getEnv("PROPERTY_NAME", "Kilimani Haven"),
		PropertyEmail:   getEnv("PROPERTY_EMAIL", "kilimani.haven@gmail.com"),
		PropertyPhone:   getEnv("PROPERTY_PHONE", "+254 713 908 113"),
		PropertyAddress: getEnv("PROPERTY_ADDRESS", "Golden Mango Heights, Kilimani, Nairobi, Kenya"),
		PricePerNight:   int64(getEnvAsInt("PRICE_PER_NIGHT", 6000)),

		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTExpiry:          time.Duration(getEnvAsInt("JWT_EXPIRE_MIN", 60)) * time.Minute,
		BootstrapAdminUser: getEnv("BOOTSTRAP_ADMIN_EMAIL", ""),
		BootstrapAdminPass: getEnv("BOOTSTRAP_ADMIN_PASSWORD", ""),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
