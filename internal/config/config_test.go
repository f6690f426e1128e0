package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "PORT", "LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_TIMEOUT", "DEFAULT_WEIGHT_MODE", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}
	// t.Setenv cannot unset; an empty PORT still exercises the Addr fallback
	cfg := Load()

	assert.Equal(t, "", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://trip@db/trips")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "Console")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("DEFAULT_WEIGHT_MODE", "even")

	cfg := Load()

	assert.Equal(t, "postgres://trip@db/trips", cfg.DatabaseURL)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "EVEN", cfg.DefaultWeightMode)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	assert.Equal(t, 15*time.Second, Load().ShutdownTimeout)

	t.Setenv("SHUTDOWN_TIMEOUT", "-2s")
	assert.Equal(t, 15*time.Second, Load().ShutdownTimeout)
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://trips.example.com, ,http://localhost:5173 ")

	assert.Equal(t, []string{"https://trips.example.com", "http://localhost:5173"}, Load().CORSOrigins)
}
