package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_NAME", "PORT", "CORS_ALLOWED_ORIGINS", "SEED_DEMO_DATA",
		"READ_TIMEOUT", "WRITE_TIMEOUT", "IDLE_TIMEOUT", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "pointr-maps-api", cfg.AppName)
	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.False(t, cfg.SeedDemoData)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfigCustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_NAME", "maps")
	t.Setenv("PORT", "8081")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("SEED_DEMO_DATA", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("READ_TIMEOUT", "1m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "maps", cfg.AppName)
	assert.Equal(t, ":8081", cfg.Addr())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.True(t, cfg.SeedDemoData)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, time.Minute, cfg.ReadTimeout)
}

func TestLoadConfigInvalidValues(t *testing.T) {
	cases := map[string]string{
		"PORT":                 "http",
		"SEED_DEMO_DATA":       "maybe",
		"WRITE_TIMEOUT":        "soon",
		"IDLE_TIMEOUT":         "-1s",
		"CORS_ALLOWED_ORIGINS": " , ",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigPortOutOfRange(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "70000")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "PORT")
}
