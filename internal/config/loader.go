package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nodeforge-cli/nodeforge/internal/defs"
)

// maxConfigSize guards against absurdly large config files.
const maxConfigSize = 1 * 1024 * 1024 // 1MB

// DefaultPath returns the canonical config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "nodeforge", defs.ConfigYAML), nil
}

// Load reads the config file at path. A missing file is not an error:
// defaults are returned. A present but unparsable file returns defaults
// together with the parse error so the caller can warn and continue.
func Load(path string) (*Config, error) {
	cfg := Default()

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("stat config file: %w", err)
	}
	if info.Size() > maxConfigSize {
		return cfg, fmt.Errorf("config file too large: %d bytes (max: %d)", info.Size(), maxConfigSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("parse config YAML: %w", err)
	}

	if cfg.License == "" {
		cfg.License = Default().License
	}
	if cfg.PackageManager == "" {
		cfg.PackageManager = Default().PackageManager
	}

	return cfg, nil
}
