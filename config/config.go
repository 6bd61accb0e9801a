package config

import (
	"log"
	"os"
	"strconv"
)

const (
	DefaultPort           = "8080"
	DefaultDrainBatchSize = 500
	DefaultSMTPPort       = 587
)

type Config struct {
	Env  string
	Port string

	DBURL string

	IdentityTokenSecret string
	SessionTokenSecret  string

	// OperatorEmail is the fixed address granted the Admin role on first
	// sign-in; everyone else defaults to User.
	OperatorEmail string

	DrainBatchSize int

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
}

func Load() *Config {
	return &Config{
		Env:                 getEnv("ENV", "development"),
		Port:                getEnv("PORT", DefaultPort),
		DBURL:               mustGetEnv("DB_URL"),
		IdentityTokenSecret: mustGetEnv("IDENTITY_TOKEN_SECRET"),
		SessionTokenSecret:  mustGetEnv("SESSION_TOKEN_SECRET"),
		OperatorEmail:       getEnv("OPERATOR_EMAIL", "ahmed@gmail.com"),
		DrainBatchSize:      getEnvAsInt("DRAIN_BATCH_SIZE", DefaultDrainBatchSize),
		SMTPHost:            getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:            getEnvAsInt("SMTP_PORT", DefaultSMTPPort),
		SMTPUsername:        getEnv("SMTP_EMAIL", ""),
		SMTPPassword:        getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:            getEnv("SMTP_FROM", ""),
		SMTPFromName:        getEnv("SMTP_FROM_NAME", "Mockrithm"),
	}
}

// IsProduction controls the secure cookie flag and error-detail exposure.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
