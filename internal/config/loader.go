package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from the specified file path.
// It supports YAML files and performs environment variable substitution.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Read the config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Unmarshal into config struct
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Perform environment variable substitution
	if err := substituteEnvVars(cfg); err != nil {
		return nil, fmt.Errorf("failed to substitute environment variables: %w", err)
	}

	return cfg, nil
}

// LoadFromViper creates a Config from an existing Viper instance.
// Useful for testing or when Viper is configured externally.
func LoadFromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := substituteEnvVars(cfg); err != nil {
		return nil, fmt.Errorf("failed to substitute environment variables: %w", err)
	}

	return cfg, nil
}

// envVarPattern matches ${VAR_NAME} or $VAR_NAME patterns
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// substituteEnvVars replaces ${VAR_NAME} patterns with environment variable values.
func substituteEnvVars(cfg *Config) error {
	// Substitute in source connection config
	cfg.Source.Host = expandEnvVar(cfg.Source.Host)
	cfg.Source.User = expandEnvVar(cfg.Source.User)
	cfg.Source.Password = expandEnvVar(cfg.Source.Password)
	cfg.Source.Database = expandEnvVar(cfg.Source.Database)

	// Substitute in dataset paths
	for name, ds := range cfg.Datasets {
		ds.Path = expandEnvVar(ds.Path)
		cfg.Datasets[name] = ds
	}

	// Substitute in logging config
	cfg.Logging.Output = expandEnvVar(cfg.Logging.Output)

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value, exists := os.LookupEnv(varName); exists {
			return value
		}
		// Return original if env var not found
		return match
	})
}

// GetDataset retrieves a specific dataset configuration by name.
func (c *Config) GetDataset(name string) (*DatasetConfig, error) {
	ds, exists := c.Datasets[name]
	if !exists {
		return nil, fmt.Errorf("dataset %q not found in configuration", name)
	}
	return &ds, nil
}

// ListDatasets returns all dataset names defined in the configuration.
func (c *Config) ListDatasets() []string {
	names := make([]string, 0, len(c.Datasets))
	for name := range c.Datasets {
		names = append(names, name)
	}
	return names
}

// ApplyOverrides applies CLI flag overrides to the global configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(logLevel, logFormat string, minSupport float64, minSupportIsCount bool, maxClasses int, noColor bool) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if minSupport > 0 {
		c.Mining.MinSupport = minSupport
		c.Mining.MinSupportIsCount = minSupportIsCount
	}
	if maxClasses > 0 {
		c.Mining.MaxClasses = maxClasses
	}
	if noColor {
		c.Output.Color = false
	}
}

// ApplyDatasetOverrides applies CLI flag overrides on top of a specific
// dataset's effective mining configuration.
func (c *Config) ApplyDatasetOverrides(name string, minSupport float64, minSupportIsCount bool, maxClasses int) MiningConfig {
	mining := c.GetDatasetMining(name)

	if minSupport > 0 {
		mining.MinSupport = minSupport
		mining.MinSupportIsCount = minSupportIsCount
	}
	if maxClasses > 0 {
		mining.MaxClasses = maxClasses
	}

	return mining
}
