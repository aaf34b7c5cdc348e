package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CLIConfig is the top-level fortran-asr.yaml configuration, grounded on
// the teacher's funxy.yaml loading pattern (internal/ext/config.go) but
// carrying this analyzer's own knobs instead of Go-binding dependency
// declarations.
type CLIConfig struct {
	// Color selects terminal diagnostic coloring: "auto" (default),
	// "always", or "never".
	Color string `yaml:"color,omitempty"`

	// ModuleCachePath is the sqlite-backed module digest cache file
	// (internal/modules.DiskCache). Empty disables caching.
	ModuleCachePath string `yaml:"module_cache_path,omitempty"`

	// SearchPaths are directories searched for `use`d module source files,
	// in order.
	SearchPaths []string `yaml:"search_paths,omitempty"`
}

// DefaultCLIConfig returns the configuration used when no fortran-asr.yaml
// is present.
func DefaultCLIConfig() CLIConfig {
	return CLIConfig{Color: "auto"}
}

// LoadCLIConfig reads and parses a fortran-asr.yaml file at path. A
// missing file is not an error: the caller gets DefaultCLIConfig().
func LoadCLIConfig(path string) (CLIConfig, error) {
	cfg := DefaultCLIConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}
