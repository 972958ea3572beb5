package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.ContentVersion != 2.01 {
		t.Errorf("Expected content version 2.01, got %f", cfg.ContentVersion)
	}
	if cfg.RoleIdentifier != "PRPosterRoleLockScreen" {
		t.Errorf("Unexpected role identifier: %s", cfg.RoleIdentifier)
	}
	if cfg.DeviceClass != "iphone" {
		t.Errorf("Unexpected device class: %s", cfg.DeviceClass)
	}
	if !cfg.AppearanceAware {
		t.Error("Expected appearance aware by default")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tendies.yaml")
	content := `
device_class: ipad
prominent_color:
  default: "#112233"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DeviceClass != "ipad" {
		t.Errorf("Expected device class override, got %s", cfg.DeviceClass)
	}
	if cfg.ProminentColor.Default != "#112233" {
		t.Errorf("Expected color override, got %s", cfg.ProminentColor.Default)
	}
	// Untouched keys keep their defaults
	if cfg.RoleIdentifier != "PRPosterRoleLockScreen" {
		t.Errorf("Expected default role identifier, got %s", cfg.RoleIdentifier)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}
