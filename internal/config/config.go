package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all runtime configuration loaded from the environment.
type Config struct {
	Port        string
	MongoURI    string
	DBName      string
	JWTSecret   string
	TokenExpiry time.Duration
	SMTPHost    string
}

// LoadConfig reads configuration from a .env file (if present) and the
// process environment. The JWT secret has no default: the process refuses
// to start without one.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:   getEnv("DB_NAME", "devtinder"),
		SMTPHost: os.Getenv("SMTP_HOST"),
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET is not set")
	}

	hours, err := strconv.Atoi(getEnv("TOKEN_EXPIRY_HOURS", "8"))
	if err != nil || hours <= 0 {
		logrus.Warnf("Invalid TOKEN_EXPIRY_HOURS, falling back to 8")
		hours = 8
	}
	cfg.TokenExpiry = time.Duration(hours) * time.Hour

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
