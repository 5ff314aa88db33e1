package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	libconfig "vibrovolt/libs/config"
)

// Config defines API service configuration. Postgres and Redis are optional:
// with an empty DSN/addr the service runs fully in-memory.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"VIBROVOLT_HTTP_PORT"`
	} `yaml:"http"`
	JWT struct {
		Secret       string `yaml:"secret" env:"VIBROVOLT_JWT_SECRET"`
		ExpiresHours int    `yaml:"expiresHours" env:"VIBROVOLT_JWT_EXPIRES_HOURS"`
	} `yaml:"jwt"`
	Postgres struct {
		DSN string `yaml:"dsn" env:"VIBROVOLT_POSTGRES_DSN"`
	} `yaml:"postgres"`
	Redis struct {
		Addr     string `yaml:"addr" env:"VIBROVOLT_REDIS_ADDR"`
		Password string `yaml:"password" env:"VIBROVOLT_REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"VIBROVOLT_REDIS_DB"`
	} `yaml:"redis"`
	Charging struct {
		SessionTTLMinutes     int `yaml:"sessionTtlMinutes" env:"VIBROVOLT_SESSION_TTL_MINUTES"`
		StreamIntervalSeconds int `yaml:"streamIntervalSeconds" env:"VIBROVOLT_STREAM_INTERVAL_SECONDS"`
	} `yaml:"charging"`
}

// Load configuration via the shared helper.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8080"
	cfg.JWT.ExpiresHours = 24
	cfg.Charging.SessionTTLMinutes = 120
	cfg.Charging.StreamIntervalSeconds = 2

	if err := libconfig.Load(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.JWT.Secret) == "" {
		return nil, errors.New("config: jwt secret required")
	}
	return cfg, nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// JWTExpiry returns token lifetime.
func (c *Config) JWTExpiry() time.Duration {
	if c.JWT.ExpiresHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.JWT.ExpiresHours) * time.Hour
}

// SessionTTL returns active session cache lifetime.
func (c *Config) SessionTTL() time.Duration {
	if c.Charging.SessionTTLMinutes <= 0 {
		return 2 * time.Hour
	}
	return time.Duration(c.Charging.SessionTTLMinutes) * time.Minute
}

// StreamInterval returns the telemetry push interval.
func (c *Config) StreamInterval() time.Duration {
	if c.Charging.StreamIntervalSeconds <= 0 {
		return 2 * time.Second
	}
	return time.Duration(c.Charging.StreamIntervalSeconds) * time.Second
}
