package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Zafert/pointr-challenge/internal/constants"
)

type Config struct {
	AppName         string
	AppPort         string
	AllowedOrigins  []string
	SeedDemoData    bool
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// LoadConfig derives configuration values from environment variables,
// falling back to defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppName:         getEnv("APP_NAME", constants.DefaultAppName),
		AppPort:         getEnv("PORT", constants.DefaultAppPort),
		AllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", constants.DefaultCORSOrigin)),
		ReadTimeout:     constants.DefaultReadTimeout,
		WriteTimeout:    constants.DefaultWriteTimeout,
		IdleTimeout:     constants.DefaultIdleTimeout,
		ShutdownTimeout: constants.DefaultShutdownTimeout,
	}

	port, err := strconv.Atoi(cfg.AppPort)
	if err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT %q: must be 1-65535", cfg.AppPort)
	}

	if v, ok := os.LookupEnv("SEED_DEMO_DATA"); ok && v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED_DEMO_DATA: %w", err)
		}
		cfg.SeedDemoData = seed
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"READ_TIMEOUT", &cfg.ReadTimeout},
		{"WRITE_TIMEOUT", &cfg.WriteTimeout},
		{"IDLE_TIMEOUT", &cfg.IdleTimeout},
		{"SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		v, ok := os.LookupEnv(d.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", d.key, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("invalid %s: must be positive", d.key)
		}
		*d.dst = parsed
	}

	if len(cfg.AllowedOrigins) == 0 {
		return nil, fmt.Errorf("invalid CORS_ALLOWED_ORIGINS: no origins given")
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.AppPort
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
