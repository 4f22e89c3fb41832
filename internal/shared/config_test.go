package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./applyx.db" {
			t.Errorf("expected database path ./applyx.db, got %s", config.Database.Path)
		}

		if config.API.BaseURL != "http://127.0.0.1:8000" {
			t.Errorf("expected api base URL http://127.0.0.1:8000, got %s", config.API.BaseURL)
		}

		if config.API.Timeout != 30*time.Second {
			t.Errorf("expected api timeout 30s, got %v", config.API.Timeout)
		}

		if config.Log.Level != "info" {
			t.Errorf("expected log level info, got %s", config.Log.Level)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[api]
base_url = "http://jobs.internal:9000"
timeout = "5s"
rate_limit = 2.5

[database]
path = "/custom/path.db"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.API.BaseURL != "http://jobs.internal:9000" {
			t.Errorf("expected base url http://jobs.internal:9000, got %s", config.API.BaseURL)
		}
		if config.API.Timeout != 5*time.Second {
			t.Errorf("expected timeout 5s, got %v", config.API.Timeout)
		}
		if config.API.RateLimit != 2.5 {
			t.Errorf("expected rate limit 2.5, got %v", config.API.RateLimit)
		}
		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}
		if config.Log.Level != "info" {
			t.Errorf("missing keys should keep defaults, got log level %q", config.Log.Level)
		}
	})

	t.Run("LoadConfig with invalid TOML", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[api\nbase_url ="), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfig(configPath); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("ApplyEnv", func(t *testing.T) {
		t.Setenv("APPLYX_API_URL", "http://override:1234")
		t.Setenv("APPLYX_API_TIMEOUT", "2s")
		t.Setenv("APPLYX_LOG_LEVEL", "debug")

		config := DefaultConfig()
		if err := ApplyEnv(config); err != nil {
			t.Fatalf("failed to apply env: %v", err)
		}

		if config.API.BaseURL != "http://override:1234" {
			t.Errorf("expected env base url, got %s", config.API.BaseURL)
		}
		if config.API.Timeout != 2*time.Second {
			t.Errorf("expected env timeout 2s, got %v", config.API.Timeout)
		}
		if config.Log.Level != "debug" {
			t.Errorf("expected env log level debug, got %s", config.Log.Level)
		}
		if config.Database.Path != "./applyx.db" {
			t.Errorf("unset env var should keep default db path, got %s", config.Database.Path)
		}
	})

	t.Run("ApplyEnv rejects bad values", func(t *testing.T) {
		t.Setenv("APPLYX_API_TIMEOUT", "soon")

		if err := ApplyEnv(DefaultConfig()); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("ResolveConfig reads .env", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Cleanup(func() { os.Unsetenv("APPLYX_LOG_FILE") })
		if err := os.WriteFile(".env", []byte("APPLYX_LOG_FILE=./logs/tui.log\n"), 0644); err != nil {
			t.Fatalf("failed to write .env: %v", err)
		}

		config, err := ResolveConfig("missing.toml")
		if err != nil {
			t.Fatalf("failed to resolve config: %v", err)
		}
		if config.Log.File != "./logs/tui.log" {
			t.Errorf("expected log file from .env, got %s", config.Log.File)
		}
	})
}
