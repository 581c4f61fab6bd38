package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the user and local directories.
const FileName = "config.yaml"

// LocalPath is the project-local config path.
const LocalPath = "configs/chromapong.yaml"

// Load loads the configuration and validates it.
// Search order: customPath -> ~/.chromapong/config.yaml -> ./configs/chromapong.yaml -> embedded default
//
// Keys missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (Config, error) {
	cfg := DefaultConfig()

	// Try custom path first
	if customPath != "" {
		path := ExpandPath(customPath)
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if parsed, ok := parseFile(userCfgPath); ok {
			return parsed, nil
		}
	}

	// Try local configs directory
	if parsed, ok := parseFile(LocalPath); ok {
		return parsed, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseFile reads an optional config file. Unreadable or malformed files
// are skipped so the next location in the search order is tried.
func parseFile(path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false
	}
	return cfg, true
}

// UserDir returns ~/.chromapong, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chromapong")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}

// Marshal renders the config as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
