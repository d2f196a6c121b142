package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	MongoURL        string
	DatabaseName    string
	ShutdownTimeout time.Duration
	ProviderTimeout time.Duration

	BeehiivAPIKey        string
	BeehiivPublicationID string

	RazorpayKeyID     string
	RazorpayKeySecret string
}

// FromEnv builds Config with defaults, overridden by environment variables.
// Provider secrets have no defaults; the adapters fail fast when they are empty.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		MongoURL:        envOrDefault("DATABASE_URL", "mongodb://localhost:27017"),
		DatabaseName:    envOrDefault("DATABASE_NAME", "appdb"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		ProviderTimeout: envDuration("PROVIDER_TIMEOUT_SECONDS", 10*time.Second),

		BeehiivAPIKey:        os.Getenv("BEEHIIV_API_KEY"),
		BeehiivPublicationID: os.Getenv("BEEHIIV_PUBLICATION_ID"),

		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
