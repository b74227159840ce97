// Package config loads the optional user configuration file from
// ~/.config/nodeforge/config.yaml. Flags always override file values;
// a missing or broken file falls back to defaults.
package config

// Config holds user-level defaults applied to every generator run.
type Config struct {
	// Color enables colorized output by default (--color still wins).
	Color bool `yaml:"color"`

	// Author is written into the generated package.json author field.
	Author string `yaml:"author"`

	// License is written into the generated package.json license field.
	License string `yaml:"license"`

	// PackageManager is reserved for future yarn/pnpm support; only
	// "npm" is currently honored by the toolchain.
	PackageManager string `yaml:"package_manager"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Color:          false,
		Author:         "",
		License:        "ISC",
		PackageManager: "npm",
	}
}
