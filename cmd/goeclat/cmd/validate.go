package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goeclat/internal/config"
	"github.com/dbsmedya/goeclat/internal/database"
	"github.com/dbsmedya/goeclat/internal/dataset"
	"github.com/dbsmedya/goeclat/internal/logger"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and run preflight checks",
	Long: `Validate checks the configuration file and runs preflight checks
against the dataset sources to ensure a mining run can succeed.

Checks performed:
  - Configuration syntax and required fields
  - Minimum support threshold range
  - Basket file existence for file datasets
  - Database connectivity for table datasets
  - Table, column, and row existence for table datasets

Example:
  goeclat validate --config goeclat.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Apply CLI overrides
	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.MinSupport, overrides.MinSupportIsCount,
		overrides.MaxClasses, overrides.NoColor)

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log.Info("Starting validation checks...")

	// Structural validation first
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration invalid:\n%w", err)
	}
	cmd.Println("Configuration: OK")

	ctx := context.Background()

	// File datasets: the basket file must exist
	needsSource := false
	for name, ds := range cfg.Datasets {
		if ds.IsTable() {
			needsSource = true
			continue
		}
		if _, err := os.Stat(ds.Path); err != nil {
			return fmt.Errorf("dataset %q: basket file check failed: %w", name, err)
		}
		cmd.Printf("Dataset %q: file OK\n", name)
	}

	// Table datasets: connectivity plus table shape
	if needsSource {
		dbManager := database.NewManager(cfg)
		if err := dbManager.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to source database: %w", err)
		}
		defer dbManager.Close()

		if err := dbManager.Ping(ctx); err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		cmd.Println("Database connectivity: OK")

		checker, err := dataset.NewPreflightChecker(dbManager.Source, cfg.Source.Database, log)
		if err != nil {
			return fmt.Errorf("failed to create preflight checker: %w", err)
		}
		for name, ds := range cfg.Datasets {
			if !ds.IsTable() {
				continue
			}
			if err := checker.Check(ctx, name, &ds); err != nil {
				return fmt.Errorf("dataset %q: %w", name, err)
			}
			cmd.Printf("Dataset %q: table OK\n", name)
		}
	}

	cmd.Println("\nAll validation checks passed")
	return nil
}
