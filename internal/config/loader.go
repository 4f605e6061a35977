package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the config directories.
const configFile = "life.yaml"

// Load loads the viewer configuration.
// Search order: customPath -> ~/.life/configs/life.yaml -> ./configs/life.yaml -> embedded default.
// Values missing from a file keep their defaults. A custom path that cannot
// be read, parsed or validated is an error; the other locations are skipped
// when unusable.
func Load(customPath string) (LifeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LifeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return LifeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultLifeYAML)
	if err != nil {
		return DefaultLifeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the hardcoded defaults and validates the result.
func parse(data []byte) (LifeConfig, error) {
	cfg := DefaultLifeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LifeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return LifeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".life", "configs", filename)
}
