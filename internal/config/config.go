package config

import (
	"os"
	"strings"
)

// DefaultTimezone is used whenever a caller supplies no timezone. Period
// boundaries are resolved against local civil dates, so a timezone is always
// needed even for "just give me this month".
const DefaultTimezone = "Australia/Sydney"

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerAddr string

	// Timezone used when a request supplies none
	DefaultTimezone string

	// CORS configuration
	AllowedOrigins []string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	serverAddr := os.Getenv("SERVER_ADDR")
	if serverAddr == "" {
		serverAddr = ":8080"
	}

	timezone := os.Getenv("DEFAULT_TIMEZONE")
	if timezone == "" {
		timezone = DefaultTimezone
	}

	// Allowed origins for CORS
	allowedOrigins := []string{"https://app.tandembudget.com"}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}

	return &Config{
		ServerAddr:      serverAddr,
		DefaultTimezone: timezone,
		AllowedOrigins:  allowedOrigins,
	}, nil
}
