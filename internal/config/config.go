package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// HTTP holds HTTP server configuration.
type HTTP struct {
	Host            string
	Port            int
	Mode            string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

// Log configures the zap logger.
type Log struct {
	Level    string
	Encoding string
}

// Metrics configures the Prometheus endpoint.
type Metrics struct {
	Enabled bool
	Path    string
}

// Config wraps all application configuration knobs.
type Config struct {
	HTTP           HTTP
	Log            Log
	Metrics        Metrics
	SeedData       bool
	SwaggerEnabled bool
}

var loadEnvOnce sync.Once

// Load builds a Config from the environment, reading configs/.env or .env when present.
func Load() (Config, error) {
	loadEnvOnce.Do(func() {
		_ = godotenv.Load("configs/.env")
		_ = godotenv.Load()
	})

	port, err := getEnvAsInt("PORT", 5000)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		HTTP: HTTP{
			Host:            getEnv("HTTP_HOST", "0.0.0.0"),
			Port:            port,
			Mode:            getEnv("GIN_MODE", "debug"),
			CORSOrigins:     getEnvAsStringSlice("CORS_ORIGINS", []string{"http://localhost:3000"}),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Log: Log{
			Level:    getEnv("LOG_LEVEL", "info"),
			Encoding: getEnv("LOG_ENCODING", "json"),
		},
		Metrics: Metrics{
			Enabled: getEnvAsBool("METRICS_ENABLED", true),
			Path:    getEnv("METRICS_PATH", "/metrics"),
		},
		SeedData:       getEnvAsBool("SEED_DATA", true),
		SwaggerEnabled: getEnvAsBool("SWAGGER_ENABLED", true),
	}

	return cfg, cfg.normalize()
}

func (c *Config) normalize() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTP.Port)
	}
	switch c.HTTP.Mode {
	case "debug", "release", "test":
	case "":
		c.HTTP.Mode = "debug"
	default:
		return fmt.Errorf("unsupported GIN_MODE: %s", c.HTTP.Mode)
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		c.HTTP.ShutdownTimeout = 10 * time.Second
	}

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.Log.Encoding = strings.ToLower(strings.TrimSpace(c.Log.Encoding))
	switch c.Log.Encoding {
	case "json", "console":
	case "":
		c.Log.Encoding = "json"
	default:
		return fmt.Errorf("unsupported log encoding: %s", c.Log.Encoding)
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	} else if !strings.HasPrefix(c.Metrics.Path, "/") {
		c.Metrics.Path = "/" + c.Metrics.Path
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}
