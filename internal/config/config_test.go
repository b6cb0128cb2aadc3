package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every DRIVEPEEK_ env var that Load() reads.
var allConfigKeys = []string{
	"DRIVEPEEK_GOOGLE_CLIENT_ID",
	"DRIVEPEEK_GOOGLE_CLIENT_SECRET",
	"DRIVEPEEK_REDIRECT_URL",
	"DRIVEPEEK_LISTEN_ADDR",
}

// isolateConfigEnv saves and unsets all DRIVEPEEK_ env vars so tests don't
// inherit values from the host environment. t.Cleanup restores original
// values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("DRIVEPEEK_GOOGLE_CLIENT_ID", "client-id-123")
	t.Setenv("DRIVEPEEK_GOOGLE_CLIENT_SECRET", "client-secret-456")
	t.Setenv("DRIVEPEEK_REDIRECT_URL", "https://example.com/auth/google/callback")
	t.Setenv("DRIVEPEEK_LISTEN_ADDR", "0.0.0.0:9090")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "client-id-123", cfg.GoogleClientID)
	assert.Equal(t, "client-secret-456", cfg.GoogleClientSecret)
	assert.Equal(t, "https://example.com/auth/google/callback", cfg.RedirectURL)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("DRIVEPEEK_GOOGLE_CLIENT_ID", "client-id-123")
	t.Setenv("DRIVEPEEK_GOOGLE_CLIENT_SECRET", "client-secret-456")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/auth/google/callback", cfg.RedirectURL)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
}

func TestLoad_MissingClientID(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("DRIVEPEEK_GOOGLE_CLIENT_SECRET", "client-secret-456")

	cfg, err := Load()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DRIVEPEEK_GOOGLE_CLIENT_ID")
}

func TestLoad_MissingClientSecret(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("DRIVEPEEK_GOOGLE_CLIENT_ID", "client-id-123")

	cfg, err := Load()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DRIVEPEEK_GOOGLE_CLIENT_SECRET")
}
