package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by LoadHopper when no file on disk was used.
const SourceEmbedded = "embedded"

// LoadHopper loads the Sky Hopper configuration and reports where it came from.
// Search order: customPath -> ~/.hopper/configs/hopper.yaml -> ./configs/hopper.yaml -> embedded default.
// Files are applied over the defaults, so a partial file only overrides what it names.
func LoadHopper(customPath string) (HopperConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	candidates := []string{"configs/hopper.yaml"}
	if userCfgPath := userConfigPath("hopper.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		if cfg, err := loadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := Parse(defaultHopperYAML)
	if err != nil {
		return DefaultHopperConfig(), SourceEmbedded, nil
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes a YAML document over the built-in defaults and validates the result.
func Parse(data []byte) (HopperConfig, error) {
	cfg := DefaultHopperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validate: %w", err)
	}
	return cfg, nil
}

// Marshal encodes a config as YAML.
func Marshal(cfg HopperConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func loadFile(path string) (HopperConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultHopperConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hopper", "configs", filename)
}
