// Package config provides configuration structures and loading for GoEclat.
package config

// Config represents the complete application configuration.
type Config struct {
	Source   DatabaseConfig           `yaml:"source" mapstructure:"source"`
	Datasets map[string]DatasetConfig `yaml:"datasets" mapstructure:"datasets"`
	Mining   MiningConfig             `yaml:"mining" mapstructure:"mining"`
	Output   OutputConfig             `yaml:"output" mapstructure:"output"`
	Logging  LoggingConfig            `yaml:"logging" mapstructure:"logging"`
}

// DatabaseConfig represents a MySQL database connection configuration,
// used by table-backed datasets.
type DatabaseConfig struct {
	Host               string `yaml:"host" mapstructure:"host"`
	Port               int    `yaml:"port" mapstructure:"port"`
	User               string `yaml:"user" mapstructure:"user"`
	Password           string `yaml:"password" mapstructure:"password"`
	Database           string `yaml:"database" mapstructure:"database"`
	TLS                string `yaml:"tls" mapstructure:"tls"` // disable, preferred, required
	MaxConnections     int    `yaml:"max_connections" mapstructure:"max_connections"`
	MaxIdleConnections int    `yaml:"max_idle_connections" mapstructure:"max_idle_connections"`
}

// DatasetConfig represents one named transaction dataset.
type DatasetConfig struct {
	Kind string `yaml:"kind" mapstructure:"kind"` // "file" or "table"

	// File datasets: one transaction per line, items separated by Delimiter.
	Path      string `yaml:"path" mapstructure:"path"`
	Delimiter string `yaml:"delimiter" mapstructure:"delimiter"`

	// Table datasets: (transaction_column, item_column) rows grouped by
	// transaction identifier.
	Table             string `yaml:"table" mapstructure:"table"`
	TransactionColumn string `yaml:"transaction_column" mapstructure:"transaction_column"`
	ItemColumn        string `yaml:"item_column" mapstructure:"item_column"`
	Where             string `yaml:"where" mapstructure:"where"`

	// Per-dataset mining override, falls back to global when nil.
	Mining *MiningConfig `yaml:"mining,omitempty" mapstructure:"mining"`
}

// MiningConfig represents mining threshold and search-space settings.
type MiningConfig struct {
	// MinSupport is a fraction of the transaction count in (0, 1], or
	// an absolute count when MinSupportIsCount is set.
	MinSupport        float64 `yaml:"min_support" mapstructure:"min_support"`
	MinSupportIsCount bool    `yaml:"min_support_is_count" mapstructure:"min_support_is_count"`
	// MaxClasses bounds equivalence-class expansions; 0 means unbounded.
	MaxClasses int `yaml:"max_classes" mapstructure:"max_classes"`
}

// OutputConfig represents result rendering settings.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // table or csv
	Color  bool   `yaml:"color" mapstructure:"color"`
	Sort   string `yaml:"sort" mapstructure:"sort"` // support, size, or lexical
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Source: DatabaseConfig{
			Port:               3306,
			TLS:                "preferred",
			MaxConnections:     10,
			MaxIdleConnections: 5,
		},
		Mining: MiningConfig{
			MinSupport: 0.05,
			MaxClasses: 0,
		},
		Output: OutputConfig{
			Format: "table",
			Color:  true,
			Sort:   "support",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// GetDatasetMining returns the mining config for a dataset by name, falling back to global if not set.
func (c *Config) GetDatasetMining(name string) MiningConfig {
	ds, err := c.GetDataset(name)
	if err != nil {
		return c.Mining
	}
	return ds.GetDatasetMining(c.Mining)
}

// GetDatasetMining returns the mining config for a dataset, falling back to global if not set.
func (dc *DatasetConfig) GetDatasetMining(global MiningConfig) MiningConfig {
	if dc.Mining == nil {
		return global
	}

	// Merge dataset-specific with global defaults
	result := global
	if dc.Mining.MinSupport > 0 {
		result.MinSupport = dc.Mining.MinSupport
		result.MinSupportIsCount = dc.Mining.MinSupportIsCount
	}
	if dc.Mining.MaxClasses > 0 {
		result.MaxClasses = dc.Mining.MaxClasses
	}
	return result
}

// IsTable reports whether the dataset reads from a MySQL table.
func (dc *DatasetConfig) IsTable() bool {
	return dc.Kind == "table"
}

// EffectiveDelimiter returns the item delimiter for file datasets,
// defaulting to a comma.
func (dc *DatasetConfig) EffectiveDelimiter() string {
	if dc.Delimiter == "" {
		return ","
	}
	return dc.Delimiter
}
