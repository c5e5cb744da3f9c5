package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	// Validate datasets
	if len(c.Datasets) == 0 {
		errors = append(errors, ValidationError{
			Field:   "datasets",
			Message: "at least one dataset must be defined",
		})
	}
	needsSource := false
	for name, ds := range c.Datasets {
		if err := c.validateDataset(name, &ds); err != nil {
			errors = append(errors, err...)
		}
		if ds.IsTable() {
			needsSource = true
		}
	}

	// Validate source connection only when a table dataset uses it
	if needsSource {
		if err := c.validateSource(); err != nil {
			errors = append(errors, err...)
		}
	}

	// Validate mining settings
	if err := validateMining("mining", &c.Mining); err != nil {
		errors = append(errors, err...)
	}

	// Validate output settings
	if err := c.validateOutput(); err != nil {
		errors = append(errors, err...)
	}

	// Validate logging settings
	if err := c.validateLogging(); err != nil {
		errors = append(errors, err...)
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateSource() ValidationErrors {
	var errors ValidationErrors

	if c.Source.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "source.host",
			Message: "host is required when a table dataset is defined",
		})
	}

	if c.Source.Port <= 0 || c.Source.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   "source.port",
			Message: "port must be between 1 and 65535",
		})
	}

	if c.Source.User == "" {
		errors = append(errors, ValidationError{
			Field:   "source.user",
			Message: "user is required when a table dataset is defined",
		})
	}

	if c.Source.Database == "" {
		errors = append(errors, ValidationError{
			Field:   "source.database",
			Message: "database name is required when a table dataset is defined",
		})
	}

	validTLS := map[string]bool{"disable": true, "preferred": true, "required": true, "": true}
	if !validTLS[c.Source.TLS] {
		errors = append(errors, ValidationError{
			Field:   "source.tls",
			Message: "tls must be 'disable', 'preferred', or 'required'",
		})
	}

	if c.Source.MaxConnections < 0 {
		errors = append(errors, ValidationError{
			Field:   "source.max_connections",
			Message: "max_connections cannot be negative",
		})
	}

	if c.Source.MaxIdleConnections < 0 {
		errors = append(errors, ValidationError{
			Field:   "source.max_idle_connections",
			Message: "max_idle_connections cannot be negative",
		})
	}

	return errors
}

func (c *Config) validateDataset(name string, ds *DatasetConfig) ValidationErrors {
	var errors ValidationErrors
	prefix := fmt.Sprintf("datasets.%s", name)

	switch ds.Kind {
	case "file":
		if ds.Path == "" {
			errors = append(errors, ValidationError{
				Field:   prefix + ".path",
				Message: "path is required for file datasets",
			})
		}
	case "table":
		if ds.Table == "" {
			errors = append(errors, ValidationError{
				Field:   prefix + ".table",
				Message: "table is required for table datasets",
			})
		}
		if ds.TransactionColumn == "" {
			errors = append(errors, ValidationError{
				Field:   prefix + ".transaction_column",
				Message: "transaction_column is required for table datasets",
			})
		}
		if ds.ItemColumn == "" {
			errors = append(errors, ValidationError{
				Field:   prefix + ".item_column",
				Message: "item_column is required for table datasets",
			})
		}
	default:
		errors = append(errors, ValidationError{
			Field:   prefix + ".kind",
			Message: "kind must be 'file' or 'table'",
		})
	}

	if ds.Mining != nil {
		if err := validateMining(prefix+".mining", ds.Mining); err != nil {
			errors = append(errors, err...)
		}
	}

	return errors
}

// validateMining mirrors the engine's threshold rules: an absolute
// count must be a positive integer, a fraction must lie in (0, 1].
func validateMining(prefix string, m *MiningConfig) ValidationErrors {
	var errors ValidationErrors

	if m.MinSupportIsCount {
		if m.MinSupport < 1 || m.MinSupport != float64(int(m.MinSupport)) {
			errors = append(errors, ValidationError{
				Field:   prefix + ".min_support",
				Message: "min_support must be a positive integer when min_support_is_count is set",
			})
		}
	} else {
		if m.MinSupport <= 0 || m.MinSupport > 1 {
			errors = append(errors, ValidationError{
				Field:   prefix + ".min_support",
				Message: "min_support must be in (0, 1] when given as a fraction",
			})
		}
	}

	if m.MaxClasses < 0 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".max_classes",
			Message: "max_classes cannot be negative",
		})
	}

	return errors
}

func (c *Config) validateOutput() ValidationErrors {
	var errors ValidationErrors

	validFormats := map[string]bool{"table": true, "csv": true, "": true}
	if !validFormats[c.Output.Format] {
		errors = append(errors, ValidationError{
			Field:   "output.format",
			Message: "format must be 'table' or 'csv'",
		})
	}

	validSorts := map[string]bool{"support": true, "size": true, "lexical": true, "": true}
	if !validSorts[c.Output.Sort] {
		errors = append(errors, ValidationError{
			Field:   "output.sort",
			Message: "sort must be 'support', 'size', or 'lexical'",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
