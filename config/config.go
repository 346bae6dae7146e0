package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Review   ReviewConfig
	Wizard   WizardConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type AdminConfig struct {
	Pin string
}

type ReviewConfig struct {
	DefaultGoogleReviewLink string
	QRCodeBaseURL           string
	FeedbackBaseURL         string
}

type WizardConfig struct {
	SessionTTLMinutes int
}

var AppConfig *Config

func Load() {
	AppConfig = &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "password"),
			Name:     getEnv("DB_NAME", "reviu_db"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "your-super-secret-jwt-key-change-this-in-production"),
			ExpiryHours: getEnvAsInt("JWT_EXPIRY_HOURS", 12),
		},
		Admin: AdminConfig{
			Pin: getEnv("ADMIN_PIN", "2024"),
		},
		Review: ReviewConfig{
			DefaultGoogleReviewLink: getEnv("DEFAULT_GOOGLE_REVIEW_LINK", "https://www.google.com/"),
			QRCodeBaseURL:           getEnv("QRCODE_BASE_URL", "https://api.qrserver.com/v1/create-qr-code/"),
			FeedbackBaseURL:         getEnv("FEEDBACK_BASE_URL", "http://localhost:8080/"),
		},
		Wizard: WizardConfig{
			SessionTTLMinutes: getEnvAsInt("WIZARD_SESSION_TTL_MINUTES", 30),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
