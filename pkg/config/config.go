package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProminentColor holds the wallpaper's preferred prominent colors per
// appearance.
type ProminentColor struct {
	Default string `yaml:"default"`
	Dark    string `yaml:"dark"`
}

// Config carries the manifest fields that are not derivable from the build
// itself. The exact key set the consuming loader expects is not fully
// documented, so these stay overridable instead of hardcoded.
type Config struct {
	ContentVersion  float64        `yaml:"content_version"`
	RoleIdentifier  string         `yaml:"role_identifier"`
	DeviceClass     string         `yaml:"device_class"`
	AppearanceAware bool           `yaml:"appearance_aware"`
	ProminentColor  ProminentColor `yaml:"prominent_color"`
}

// Default returns the values observed in real lock-screen packages.
func Default() *Config {
	return &Config{
		ContentVersion:  2.01,
		RoleIdentifier:  "PRPosterRoleLockScreen",
		DeviceClass:     "iphone",
		AppearanceAware: true,
		ProminentColor: ProminentColor{
			Default: "#4CA4BC",
			Dark:    "#4C9CBC",
		},
	}
}

// Load reads a YAML override file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.DeviceClass == "" {
		cfg.DeviceClass = "iphone"
	}
	return cfg, nil
}
