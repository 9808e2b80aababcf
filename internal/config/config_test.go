package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	// Verify top-level defaults
	if cfg.Data != "" {
		t.Errorf("Data = %q, want empty (config-dir default)", cfg.Data)
	}
	if cfg.Limit != 10 {
		t.Errorf("Limit = %d, want 10", cfg.Limit)
	}
	if len(cfg.Excluded) != 0 {
		t.Errorf("Excluded should be empty, got %v", cfg.Excluded)
	}

	// Verify default logging config
	if cfg.Logging.Level != "INFO" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "INFO")
	}
	if cfg.Logging.Dir != "" {
		t.Errorf("Logging.Dir = %q, want empty (stderr)", cfg.Logging.Dir)
	}
	if cfg.Logging.MaxSizeMB != 10 {
		t.Errorf("Logging.MaxSizeMB = %d, want 10", cfg.Logging.MaxSizeMB)
	}
	if cfg.Logging.MaxBackups != 3 {
		t.Errorf("Logging.MaxBackups = %d, want 3", cfg.Logging.MaxBackups)
	}

	// Verify default explore config
	if cfg.Explore.Top != 20 {
		t.Errorf("Explore.Top = %d, want 20", cfg.Explore.Top)
	}
	if cfg.Explore.Parallel {
		t.Error("Explore.Parallel should be false by default")
	}
	if cfg.Explore.MaxWorkers != 0 {
		t.Errorf("Explore.MaxWorkers = %d, want 0", cfg.Explore.MaxWorkers)
	}
}

func TestConfig_ResolveDataFile(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir() failed: %v", err)
	}

	tests := []struct {
		name string
		data string
		want string
	}{
		{"empty uses config dir", "", filepath.Join(ConfigDir(), "underlords.json")},
		{"absolute path kept", "/srv/underlords/data.json", "/srv/underlords/data.json"},
		{"relative path kept", "data/underlords.json", "data/underlords.json"},
		{"tilde expands", "~/underlords.json", filepath.Join(home, "underlords.json")},
		{"bare tilde expands", "~", home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Data = tt.data
			got := cfg.ResolveDataFile()
			if got != tt.want {
				t.Errorf("ResolveDataFile() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	// Test with XDG_CONFIG_HOME set
	t.Run("with XDG_CONFIG_HOME", func(t *testing.T) {
		original := os.Getenv("XDG_CONFIG_HOME")
		defer func() { _ = os.Setenv("XDG_CONFIG_HOME", original) }()

		_ = os.Setenv("XDG_CONFIG_HOME", "/custom/config")
		result := ConfigDir()
		expected := "/custom/config/underlords"
		if result != expected {
			t.Errorf("ConfigDir() = %q, want %q", result, expected)
		}
	})

	// Test without XDG_CONFIG_HOME
	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		original := os.Getenv("XDG_CONFIG_HOME")
		defer func() { _ = os.Setenv("XDG_CONFIG_HOME", original) }()

		_ = os.Setenv("XDG_CONFIG_HOME", "")
		result := ConfigDir()

		// Should be based on home directory
		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, ".config", "underlords")
		if result != expected {
			t.Errorf("ConfigDir() = %q, want %q", result, expected)
		}
	})
}

func TestConfigFile(t *testing.T) {
	original := os.Getenv("XDG_CONFIG_HOME")
	defer func() { _ = os.Setenv("XDG_CONFIG_HOME", original) }()

	_ = os.Setenv("XDG_CONFIG_HOME", "/custom/config")
	result := ConfigFile()
	expected := "/custom/config/underlords/config.yaml"
	if result != expected {
		t.Errorf("ConfigFile() = %q, want %q", result, expected)
	}
}

func TestGet(t *testing.T) {
	// Set defaults in viper first (normally done by cmd init)
	SetDefaults()

	// Get() should return defaults when no config file exists
	cfg := Get()
	if cfg == nil {
		t.Fatal("Get() returned nil")
	}

	// Should have default values
	if cfg.Limit != 10 {
		t.Errorf("Get().Limit = %d, want 10", cfg.Limit)
	}
	if cfg.Explore.Top != 20 {
		t.Errorf("Get().Explore.Top = %d, want 20", cfg.Explore.Top)
	}
}
