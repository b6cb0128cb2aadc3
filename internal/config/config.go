// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
)

// Config holds the application configuration loaded from environment variables.
// It is constructed once at startup and passed into the composition root;
// request-handling code never reads ambient environment state.
type Config struct {
	GoogleClientID     string
	GoogleClientSecret string
	RedirectURL        string
	ListenAddr         string
}

// Load reads configuration from environment variables and returns a validated
// Config. The Google OAuth client identifiers (DRIVEPEEK_GOOGLE_CLIENT_ID,
// DRIVEPEEK_GOOGLE_CLIENT_SECRET) are required; the process refuses to start
// without them rather than fail individual requests unpredictably.
// Optional variables with defaults: DRIVEPEEK_REDIRECT_URL
// (http://localhost:8080/auth/google/callback), DRIVEPEEK_LISTEN_ADDR
// (127.0.0.1:8080).
func Load() (*Config, error) {
	clientID := os.Getenv("DRIVEPEEK_GOOGLE_CLIENT_ID")
	if clientID == "" {
		return nil, fmt.Errorf("DRIVEPEEK_GOOGLE_CLIENT_ID is required")
	}

	clientSecret := os.Getenv("DRIVEPEEK_GOOGLE_CLIENT_SECRET")
	if clientSecret == "" {
		return nil, fmt.Errorf("DRIVEPEEK_GOOGLE_CLIENT_SECRET is required")
	}

	redirectURL := "http://localhost:8080/auth/google/callback"
	if v, ok := os.LookupEnv("DRIVEPEEK_REDIRECT_URL"); ok {
		redirectURL = v
	}

	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("DRIVEPEEK_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	return &Config{
		GoogleClientID:     clientID,
		GoogleClientSecret: clientSecret,
		RedirectURL:        redirectURL,
		ListenAddr:         listenAddr,
	}, nil
}
