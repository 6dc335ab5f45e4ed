// Package config handles configuration loading and validation for skinmatch.
// It reads an optional .skinmatch.yml file, layers it over built-in defaults
// and rejects unknown fields or invalid values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/skinmatch/pkg/errors"
	"github.com/ajxudir/skinmatch/pkg/verbose"
)

// LoadConfig loads configuration from the specified path or defaults.
//
// If configPath is provided, it loads that specific config file.
// Otherwise, it looks for .skinmatch.yml in the working directory.
// If no config is found, it returns the built-in default configuration.
// The loaded file is validated strictly: unknown fields and invalid values
// are errors.
//
// Parameters:
//   - configPath: path to the config file, or empty to search workDir
//   - workDir: working directory used for lookup and relative catalog paths
//
// Returns:
//   - *Config: the defaults with the file's values layered on top
//   - error: an ExitError with ExitConfigError when the file is unreadable or invalid
func LoadConfig(configPath, workDir string) (*Config, error) {
	if workDir == "" {
		workDir = "."
	}
	base := loadDefaultConfig()
	base.BaseDir = workDir

	path := configPath
	if path == "" {
		local := filepath.Join(workDir, FileName)
		if _, err := os.Stat(local); err != nil {
			verbose.ConfigLoaded("")
			return base, nil
		}
		verbose.Infof("Found local config: %s", local)
		path = local
	}

	loaded, err := LoadConfigFileStrict(path)
	if err != nil {
		return nil, err
	}
	loaded.BaseDir = filepath.Dir(path)
	loaded.Source = path

	verbose.ConfigLoaded(path)
	return mergeConfigs(base, loaded), nil
}

// readConfigFile reads a config file, enforcing the size limit.
//
// Parameters:
//   - path: path to the config file
//
// Returns:
//   - []byte: the file contents
//   - error: error if the file is missing, unreadable or too large
func readConfigFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > DefaultMaxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d bytes)", info.Size(), DefaultMaxConfigFileSize)
	}
	return os.ReadFile(path)
}

// loadConfigData parses YAML configuration data without strict checks.
//
// Parameters:
//   - data: YAML configuration data as bytes
//
// Returns:
//   - *Config: the parsed configuration
//   - error: error if YAML is invalid or malformed
func loadConfigData(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return &cfg, nil
}

// LoadConfigFileStrict loads a config file and validates it.
//
// It performs the following operations:
//   - Step 1: Reads the file with the size limit
//   - Step 2: Decodes with unknown-field detection
//   - Step 3: Validates field values
//
// Parameters:
//   - path: path to the config file
//
// Returns:
//   - *Config: the loaded configuration, without defaults applied
//   - error: an ExitError with ExitConfigError on any failure
func LoadConfigFileStrict(path string) (*Config, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to load config %q: %w", path, err))
	}

	result := ValidateConfigFile(data)
	for _, w := range result.Warnings {
		verbose.Printf("Config warning: %s", w)
	}
	if err := result.Err(); err != nil {
		return nil, err
	}

	return loadConfigData(data)
}
