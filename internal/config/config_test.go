package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFromPath(t *testing.T) {
	path := writeConfig(t, `
mapping_file: /tmp/mapping.json
previous_file: /tmp/prev.json
log_level: debug
assignments:
  - "eDP-1:1-5"
  - "HDMI-A-1:6,7"
`)
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.MappingFile != "/tmp/mapping.json" {
		t.Errorf("mapping_file = %q", cfg.MappingFile)
	}
	if cfg.PreviousFile != "/tmp/prev.json" {
		t.Errorf("previous_file = %q", cfg.PreviousFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log_level = %q", cfg.LogLevel)
	}
	if want := []string{"eDP-1:1-5", "HDMI-A-1:6,7"}; !reflect.DeepEqual(cfg.Assignments, want) {
		t.Errorf("assignments = %v, want %v", cfg.Assignments, want)
	}
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if !reflect.DeepEqual(cfg, &Config{}) {
		t.Errorf("missing file should give zero config, got %+v", cfg)
	}
}

func TestLoadFromPath_EmptyFile(t *testing.T) {
	cfg, err := LoadFromPath(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if !reflect.DeepEqual(cfg, &Config{}) {
		t.Errorf("empty file should give zero config, got %+v", cfg)
	}
}

func TestLoadFromPath_UnknownKey(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, "mapping_fiel: /tmp/x.json\n"))
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "mapping_fiel") {
		t.Errorf("error should name the offending key: %v", err)
	}
}

func TestLoadFromPath_BadLogLevel(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, "log_level: verbose\n"))
	if err == nil || !strings.Contains(err.Error(), "verbose") {
		t.Fatalf("expected log_level error, got %v", err)
	}
}
