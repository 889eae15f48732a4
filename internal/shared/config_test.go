package shared

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Server.BaseURL != "http://localhost:8080/api" {
			t.Errorf("expected default base URL, got %s", config.Server.BaseURL)
		}
		if config.Server.TimeoutSeconds != 10 {
			t.Errorf("expected timeout 10s, got %d", config.Server.TimeoutSeconds)
		}
		if config.Database.Path != "./tpx.db" {
			t.Errorf("expected database path ./tpx.db, got %s", config.Database.Path)
		}
	})

	t.Run("Timeout", func(t *testing.T) {
		if got := (ServerConfig{TimeoutSeconds: 30}).Timeout(); got != 30*time.Second {
			t.Errorf("expected 30s, got %v", got)
		}
		if got := (ServerConfig{}).Timeout(); got != 10*time.Second {
			t.Errorf("expected 10s fallback, got %v", got)
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
		if config.Server.BaseURL == "" {
			t.Error("expected base URL in created config")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("expected error when config file already exists")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		t.Run("missing file", func(t *testing.T) {
			if _, err := LoadConfig("/nonexistent/config.toml"); err == nil {
				t.Error("expected error for missing config")
			}
		})

		t.Run("invalid TOML", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("expected parse error")
			}
		})

		t.Run("overrides", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			content := `
[server]
base_url = "https://training.example.com/api"
timeout_seconds = 5
`
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}

			config, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}
			if config.Server.BaseURL != "https://training.example.com/api" {
				t.Errorf("unexpected base URL: %s", config.Server.BaseURL)
			}
			if config.Server.Timeout() != 5*time.Second {
				t.Errorf("unexpected timeout: %v", config.Server.Timeout())
			}
		})
	})
}
