package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCleanup loads Server Clean-up configuration.
// Search order: customPath -> ~/.ecoclean/configs/cleanup.yaml -> ./configs/cleanup.yaml -> embedded default
func LoadCleanup(customPath string) (CleanupConfig, error) {
	// Custom path is explicit, so failures are reported
	if customPath != "" {
		cfg, err := readCleanup(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("cleanup.yaml"); userCfgPath != "" {
		if cfg, err := readCleanup(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := readCleanup(filepath.Join("configs", "cleanup.yaml")); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parseCleanup(defaultCleanupYAML, "embedded default")
	if err != nil || cfg.Validate() != nil {
		return DefaultCleanupConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readCleanup reads a config file on top of the defaults, so a partial
// file only overrides the keys it names.
func readCleanup(path string) (CleanupConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CleanupConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return parseCleanup(data, path)
}

func parseCleanup(data []byte, source string) (CleanupConfig, error) {
	cfg := DefaultCleanupConfig()
	defaultCatalog := cfg.Catalog
	cfg.Catalog = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CleanupConfig{}, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	if cfg.Catalog == nil {
		cfg.Catalog = defaultCatalog
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ecoclean", "configs", filename)
}
