package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
ui:
  title: Films
  detail_width: 50
logging:
  level: debug
  format: text
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.UI.Title != "Films" {
		t.Errorf("expected title Films, got %q", cfg.UI.Title)
	}
	if cfg.UI.DetailWidth != 50 {
		t.Errorf("expected detail width 50, got %d", cfg.UI.DetailWidth)
	}
	if cfg.UI.TitleColumnWidth != 50 {
		t.Errorf("expected default title column width 50, got %d", cfg.UI.TitleColumnWidth)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "text" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	path := writeConfig(t, "ui:\n  detail_width: 50\n")
	t.Setenv("REEL_UI_DETAIL_WIDTH", "30")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.UI.DetailWidth != 30 {
		t.Errorf("expected env override 30, got %d", cfg.UI.DetailWidth)
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero title column", "ui:\n  title_column_width: 0\n", "title_column_width"},
		{"negative detail", "ui:\n  detail_width: -1\n", "detail_width"},
		{"bad format", "logging:\n  format: xml\n", "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.UI.Title != "Movies" || cfg.UI.TitleColumnWidth != 50 || cfg.UI.DetailWidth != 40 {
		t.Errorf("unexpected UI defaults: %+v", cfg.UI)
	}
}
