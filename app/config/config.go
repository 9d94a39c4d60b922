package config

import (
	"os"
	"strconv"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Port     string
	Session  SessionConfig
	Stripe   StripeConfig
	Analyzer AnalyzerConfig
}

type SessionConfig struct {
	Secret string
}

type StripeConfig struct {
	SecretKey      string
	PublishableKey string
	AppBaseURL     string
}

type AnalyzerConfig struct {
	Mock    bool
	DelayMS int
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "your-secret-key"),
		},
		Stripe: StripeConfig{
			SecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
			PublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
			AppBaseURL:     getEnv("APP_BASE_URL", "http://localhost:3000"),
		},
		Analyzer: AnalyzerConfig{
			Mock:    getBoolEnv("MOCK_ANALYZER", true),
			DelayMS: getIntEnv("MOCK_ANALYZER_DELAY_MS", 2000),
		},
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getIntEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}
