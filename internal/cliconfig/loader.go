package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigDirName is the directory under the user config root.
	ConfigDirName = "nitractl"
	// ConfigFileName is the name of the config file.
	ConfigFileName = "config.yaml"
)

// FindConfigFile returns the path to the user config file, or "" when none
// exists. NITRADO_CONFIG overrides the default location.
func FindConfigFile() string {
	if path := os.Getenv(EnvConfig); path != "" {
		return path
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(configDir, ConfigDirName, ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// LoadConfigFile reads a Config from a YAML file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// LoadAll resolves configuration from every non-flag source.
// Precedence: env > config file > defaults. Flags are applied on top by
// the CLI layer.
func LoadAll() (*Config, error) {
	cfg := NewDefault()

	if path := FindConfigFile(); path != "" {
		fileCfg, err := LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		Merge(cfg, fileCfg, SourceFile)
	}

	LoadEnv(cfg)
	return cfg, nil
}
