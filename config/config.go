package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	// Server Settings
	AppPort     string
	Host        string
	DatabaseURL string

	// JWT Settings
	JWTSecret     string
	JWTExpiration time.Duration

	// Uploads
	UploadDir string

	// CORS Settings
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment variables")
	}

	config := &Config{
		AppPort:     getEnv("PORT", "8080"),
		Host:        getEnv("HOST", "0.0.0.0"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret:     getEnv("JWT_SECRET", "campuscart-dev-secret"),
		JWTExpiration: parseDuration(getEnv("JWT_EXPIRES_IN", "10h")),

		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),

		CORSAllowOrigins: splitEnv("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"https://accounts.google.com",
			"https://campuscartonlinemarketplace.vercel.app",
		}),
		CORSAllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		CORSAllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}

	return config
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitEnv(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseDuration(raw string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		logrus.Warnf("Invalid JWT_EXPIRES_IN %q, defaulting to 10h", raw)
		return 10 * time.Hour
	}
	return d
}
