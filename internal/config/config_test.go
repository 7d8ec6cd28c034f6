package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ServerAddr() != "localhost:8080" {
		t.Errorf("ServerAddr() = %q, want localhost:8080", cfg.ServerAddr())
	}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true by default")
	}
	if cfg.RemoteConfigured() {
		t.Error("RemoteConfigured() = true with no credentials")
	}
	if cfg.UseRedisMirror() {
		t.Error("UseRedisMirror() = true with no Redis URL")
	}
	if cfg.MirrorPath != "./data/mirror.db" {
		t.Errorf("MirrorPath = %q, want default", cfg.MirrorPath)
	}
	if cfg.RefreshInterval != "@every 5m" {
		t.Errorf("RefreshInterval = %q, want default", cfg.RefreshInterval)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WOLV_SERVER_HOST", "0.0.0.0")
	t.Setenv("WOLV_SERVER_PORT", "9000")
	t.Setenv("WOLV_ENV", "production")
	t.Setenv("WOLV_REMOTE_URL", "https://proj.example.co")
	t.Setenv("WOLV_REMOTE_ANON_KEY", "anon")
	t.Setenv("WOLV_REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ServerAddr() != "0.0.0.0:9000" {
		t.Errorf("ServerAddr() = %q, want 0.0.0.0:9000", cfg.ServerAddr())
	}
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true in production")
	}
	if !cfg.RemoteConfigured() {
		t.Error("RemoteConfigured() = false with credentials set")
	}
	if !cfg.UseRedisMirror() {
		t.Error("UseRedisMirror() = false with Redis URL set")
	}
}
