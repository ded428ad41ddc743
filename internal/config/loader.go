package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlood loads Flood-It configuration.
// Search order: customPath -> ~/.floodit/configs/flood.yaml -> ./configs/flood.yaml -> embedded default.
// Keys missing from a file keep their default values. A custom path that cannot
// be read, parsed or validated is an error; the other locations are skipped.
func LoadFlood(customPath string) (FloodConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FloodConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseFlood(data)
		if err != nil {
			return FloodConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flood.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseFlood(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "flood.yaml")); err == nil {
		if cfg, err := parseFlood(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseFlood(defaultFloodYAML)
	if err != nil {
		return DefaultFloodConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseFlood decodes YAML over the defaults and validates the result.
func parseFlood(data []byte) (FloodConfig, error) {
	cfg := DefaultFloodConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FloodConfig{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FloodConfig{}, err
	}
	return cfg, nil
}

// WriteDefault writes the embedded default config to the user config
// directory unless a file already exists there. Returns the path.
func WriteDefault() (string, error) {
	path := userConfigPath("flood.yaml")
	if path == "" {
		return "", fmt.Errorf("config: home directory unavailable")
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("config: create directory: %w", err)
	}
	if err := os.WriteFile(path, defaultFloodYAML, 0o644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".floodit", "configs", filename)
}
