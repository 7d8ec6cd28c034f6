// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment
// variables.
type Config struct {
	ServerHost string `env:"WOLV_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"WOLV_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"WOLV_ENV" envDefault:"development"`
	LogLevel   string `env:"WOLV_LOG_LEVEL" envDefault:"info"`

	// Remote content platform. All three are optional: without URL and
	// anon key the service serves built-in defaults and the local
	// mirror, with remote-dependent operations reporting a
	// configuration error instead of crashing.
	RemoteURL     string `env:"WOLV_REMOTE_URL"`
	RemoteAnonKey string `env:"WOLV_REMOTE_ANON_KEY"`
	// RemoteServiceKey is privileged and server-only; it must never be
	// echoed to clients or logs.
	RemoteServiceKey string `env:"WOLV_REMOTE_SERVICE_KEY"`

	// Mirror configuration
	MirrorPath   string `env:"WOLV_MIRROR_PATH" envDefault:"./data/mirror.db"`
	RedisURL     string `env:"WOLV_REDIS_URL"`                       // Optional Redis mirror for multi-instance deployments
	MirrorPrefix string `env:"WOLV_MIRROR_PREFIX" envDefault:"wolv:"` // Redis key prefix

	// RefreshInterval is the background remote refresh spec in cron
	// syntax. Empty disables periodic refresh.
	RefreshInterval string `env:"WOLV_REFRESH_CRON" envDefault:"@every 5m"`
}

// IsDevelopment returns true if the application is running in
// development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// RemoteConfigured returns true if the remote content platform
// credentials are present.
func (c Config) RemoteConfigured() bool {
	return c.RemoteURL != "" && c.RemoteAnonKey != ""
}

// UseRedisMirror returns true if the Redis mirror backend is configured.
func (c Config) UseRedisMirror() bool {
	return c.RedisURL != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
