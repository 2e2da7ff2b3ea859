package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "starfall.yaml"

// LoadStarfall loads Starfall configuration.
// Search order: customPath -> ~/.starfall/configs/starfall.yaml -> ./configs/starfall.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadStarfall(customPath string) (StarfallConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultStarfallConfig(), err
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(configFileName), localConfigPath()} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	var cfg StarfallConfig
	if err := yaml.Unmarshal(defaultStarfallYAML, &cfg); err != nil {
		return DefaultStarfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ResolvePath returns the file LoadStarfall would read for customPath, or an
// empty string when the embedded default is used.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range []string{userConfigPath(configFileName), localConfigPath()} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadFile decodes one YAML file over the defaults and validates the result.
func loadFile(path string) (StarfallConfig, error) {
	cfg := DefaultStarfallConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starfall", "configs", filename)
}

func localConfigPath() string {
	return filepath.Join("configs", configFileName)
}
