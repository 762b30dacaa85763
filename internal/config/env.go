package config

import (
	"os"
	"time"
)

// parseEnv overlays Config fields from environment variables:
//
//	SCHEDULER_DATABASE_DSN    PostgreSQL DSN
//	SCHEDULER_SECRET_KEY      session token HMAC secret
//	SCHEDULER_TOKEN_VALIDITY  duration string, e.g. "12h"
//
// Unset or malformed variables leave the current value in place.
func parseEnv(config *Config) {
	if v := os.Getenv("SCHEDULER_DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SCHEDULER_SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("SCHEDULER_TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidity = d
		}
	}
}
