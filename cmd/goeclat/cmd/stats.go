package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goeclat/internal/config"
	"github.com/dbsmedya/goeclat/internal/eclat"
	"github.com/dbsmedya/goeclat/internal/logger"
)

var statsDataset string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dataset statistics and search-space estimates",
	Long: `Stats loads a dataset and reports its shape together with
pre-mining estimates: how many single items survive the support
threshold and how many pair candidates the first expansion will
intersect. Use it to sanity-check a threshold before a full run.

Example:
  goeclat stats --config goeclat.yaml --dataset groceries`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsDataset, "dataset", "d", "",
		"Dataset name from configuration file (required)")
	statsCmd.MarkFlagRequired("dataset")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dsCfg, err := cfg.GetDataset(statsDataset)
	if err != nil {
		return err
	}

	// Apply CLI overrides
	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.MinSupport, overrides.MinSupportIsCount,
		overrides.MaxClasses, overrides.NoColor)
	mining := cfg.ApplyDatasetOverrides(statsDataset,
		overrides.MinSupport, overrides.MinSupportIsCount, overrides.MaxClasses)

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log = log.WithDataset(statsDataset)

	ctx := context.Background()

	ds, cleanup, err := loadDataset(ctx, cfg, statsDataset, dsCfg, log)
	defer cleanup()
	if err != nil {
		return err
	}

	miner := eclat.NewMiner[string](minSupportFrom(mining))
	estimate, err := miner.Estimate(ds.Transactions)
	if err != nil {
		return fmt.Errorf("estimation failed: %w", err)
	}

	cmd.Printf("Dataset: %s\n\n", statsDataset)
	cmd.Printf("Transactions:      %d\n", estimate.TransactionCount)
	cmd.Printf("Distinct Items:    %d\n", estimate.DistinctItems)
	cmd.Printf("Item Occurrences:  %d\n", ds.Stats.ItemOccurrences)
	cmd.Printf("Density:           %.4f\n", ds.Stats.Density())
	cmd.Printf("\nAt minimum support %v (count %d):\n", mining.MinSupport, estimate.MinCount)
	cmd.Printf("Frequent Items:    %d of %d\n", estimate.FrequentItems, estimate.DistinctItems)
	cmd.Printf("Pair Candidates:   %d\n", estimate.PairCandidates)

	return nil
}
