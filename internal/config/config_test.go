package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"scheduler"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()
	require.Contains(t, cfg.DatabaseDSN, "postgres://")
	require.Equal(t, "secretKey", cfg.SecretKey)
	require.Equal(t, 12*time.Hour, cfg.TokenValidity)
}

func TestLoadConfig_EnvOverlay(t *testing.T) {
	resetArgs(t)
	t.Setenv("SCHEDULER_DATABASE_DSN", "postgres://env/db")
	t.Setenv("SCHEDULER_SECRET_KEY", "env-secret")
	t.Setenv("SCHEDULER_TOKEN_VALIDITY", "45m")

	cfg := LoadConfig()
	require.Equal(t, "postgres://env/db", cfg.DatabaseDSN)
	require.Equal(t, "env-secret", cfg.SecretKey)
	require.Equal(t, 45*time.Minute, cfg.TokenValidity)
}

func TestLoadConfig_EnvIgnoresMalformedDuration(t *testing.T) {
	resetArgs(t)
	t.Setenv("SCHEDULER_TOKEN_VALIDITY", "soon")

	cfg := LoadConfig()
	require.Equal(t, 12*time.Hour, cfg.TokenValidity)
}

func TestLoadConfig_JSONOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(
		`{"database_dsn":"postgres://json/db","secret_key":"json-secret","token_validity":"2h"}`), 0o600))

	resetArgs(t, "-c", path)

	cfg := LoadConfig()
	require.Equal(t, "postgres://json/db", cfg.DatabaseDSN)
	require.Equal(t, "json-secret", cfg.SecretKey)
	require.Equal(t, 2*time.Hour, cfg.TokenValidity)
}

func TestLoadConfig_FlagsWinOverJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_dsn":"postgres://json/db"}`), 0o600))

	resetArgs(t, "-c", path, "-d", "postgres://flag/db", "-t", "30")

	cfg := LoadConfig()
	require.Equal(t, "postgres://flag/db", cfg.DatabaseDSN)
	require.Equal(t, 30*time.Minute, cfg.TokenValidity)
}

func TestParseJSON_MissingFilePanics(t *testing.T) {
	resetArgs(t, "-c", filepath.Join(t.TempDir(), "nope.json"))

	require.Panics(t, func() { LoadConfig() })
}
