package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goeclat/internal/config"
	"github.com/dbsmedya/goeclat/internal/database"
	"github.com/dbsmedya/goeclat/internal/dataset"
	"github.com/dbsmedya/goeclat/internal/eclat"
	"github.com/dbsmedya/goeclat/internal/logger"
	"github.com/dbsmedya/goeclat/internal/report"
	"github.com/dbsmedya/goeclat/internal/types"
	"github.com/dbsmedya/goeclat/internal/verifier"
)

var (
	mineDataset string
	mineVerify  bool
	mineLattice bool
)

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine frequent itemsets from a dataset",
	Long: `Mine loads a configured dataset, builds the vertical
item-to-transaction-ID representation, and enumerates every itemset
whose support meets the minimum threshold.

The mining process follows these steps:
  1. Load transactions from the dataset source (file or MySQL table)
  2. Build the vertical database, dropping infrequent single items
  3. Depth-first equivalence-class expansion with anti-monotone pruning
  4. Render the (itemset, support) results

Example:
  goeclat mine --config goeclat.yaml --dataset groceries`,
	RunE: runMine,
}

func init() {
	mineCmd.Flags().StringVarP(&mineDataset, "dataset", "d", "",
		"Dataset name from configuration file (required)")
	mineCmd.MarkFlagRequired("dataset")

	mineCmd.Flags().BoolVar(&mineVerify, "verify", false,
		"Cross-check results against brute-force enumeration (small datasets only)")
	mineCmd.Flags().BoolVar(&mineLattice, "lattice", false,
		"Also render the frequent itemsets as an ASCII prefix tree")

	rootCmd.AddCommand(mineCmd)
}

// minSupportFrom converts the config threshold to the engine's form.
func minSupportFrom(m config.MiningConfig) eclat.MinSupport {
	if m.MinSupportIsCount {
		return eclat.AbsoluteSupport(int(m.MinSupport))
	}
	return eclat.RelativeSupport(m.MinSupport)
}

// loadDataset resolves the dataset source (connecting to MySQL when
// needed) and loads the transactions. The returned cleanup closes any
// database connection and is safe to call unconditionally.
func loadDataset(ctx context.Context, cfg *config.Config, name string, dsCfg *config.DatasetConfig, log *logger.Logger) (*types.Dataset, func(), error) {
	cleanup := func() {}

	var dbManager *database.Manager
	if dsCfg.IsTable() {
		dbManager = database.NewManager(cfg)
		if err := dbManager.Connect(ctx); err != nil {
			return nil, cleanup, fmt.Errorf("failed to connect to source database: %w", err)
		}
		cleanup = func() { dbManager.Close() }
	}

	source, err := dataset.NewSource(name, dsCfg, dbManager, log)
	if err != nil {
		return nil, cleanup, fmt.Errorf("failed to create dataset source: %w", err)
	}

	ds, err := source.Load(ctx)
	if err != nil {
		return nil, cleanup, fmt.Errorf("failed to load dataset: %w", err)
	}
	return ds, cleanup, nil
}

func runMine(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dsCfg, err := cfg.GetDataset(mineDataset)
	if err != nil {
		return err
	}

	// Apply CLI overrides (global for logging/output, effective mining per dataset)
	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.MinSupport, overrides.MinSupportIsCount,
		overrides.MaxClasses, overrides.NoColor)
	mining := cfg.ApplyDatasetOverrides(mineDataset,
		overrides.MinSupport, overrides.MinSupportIsCount, overrides.MaxClasses)

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log = log.WithDataset(mineDataset)

	log.Infow("Starting mining run",
		"config", configFile,
		"min_support", mining.MinSupport,
		"absolute", mining.MinSupportIsCount,
	)

	// Setup context with signal handling
	ctx := database.SetupSignalHandlerWithCallback(func(sig os.Signal) {
		log.Warn("Received shutdown signal - stopping after current equivalence class...")
	})

	ds, cleanup, err := loadDataset(ctx, cfg, mineDataset, dsCfg, log)
	defer cleanup()
	if err != nil {
		return err
	}

	miner := eclat.NewMiner[string](minSupportFrom(mining),
		eclat.WithMaxClasses[string](mining.MaxClasses),
		eclat.WithLogger[string](log),
	)

	result, err := miner.Mine(ctx, ds.Transactions)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("Mining run cancelled by user")
			return nil
		}
		return fmt.Errorf("mining failed: %w", err)
	}

	// Optional brute-force cross-check before rendering
	if mineVerify {
		v := verifier.NewVerifier(0, log)
		vres, err := v.Verify(ds.Transactions, result.MinCount, result.Itemsets)
		if err != nil {
			return fmt.Errorf("verification failed to run: %w", err)
		}
		if !vres.Match {
			return fmt.Errorf("verification failed: %d missing, %d unexpected, %d wrong supports",
				len(vres.Missing), len(vres.Unexpected), len(vres.WrongSupport))
		}
		fmt.Printf("Verification passed: %d itemsets match brute-force enumeration\n\n", vres.Got)
	}

	report.Sort(result.Itemsets, report.SortMode(cfg.Output.Sort))

	switch cfg.Output.Format {
	case "csv":
		renderer := &report.CSVRenderer{}
		if err := renderer.Render(os.Stdout, result.Itemsets); err != nil {
			return fmt.Errorf("failed to render results: %w", err)
		}
	default:
		renderer := &report.TableRenderer{Color: cfg.Output.Color}
		if err := renderer.Render(os.Stdout, result.Itemsets, result.Stats.TransactionCount); err != nil {
			return fmt.Errorf("failed to render results: %w", err)
		}
		fmt.Println()
		if err := report.Summary(os.Stdout, result.Itemsets); err != nil {
			return fmt.Errorf("failed to render summary: %w", err)
		}
	}

	if mineLattice {
		fmt.Println()
		if err := report.RenderLattice(os.Stdout, result.Itemsets); err != nil {
			return fmt.Errorf("failed to render lattice: %w", err)
		}
	}

	// Display run statistics
	fmt.Printf("\n=== Mining Complete ===\n")
	fmt.Printf("Dataset: %s\n", mineDataset)
	fmt.Printf("Transactions: %d\n", result.Stats.TransactionCount)
	fmt.Printf("Minimum Count: %d\n", result.MinCount)
	fmt.Printf("Frequent Itemsets: %d\n", result.Stats.ItemsetsFound)
	fmt.Printf("Largest Itemset: %d items\n", result.Stats.MaxItemsetSize)
	fmt.Printf("Classes Expanded: %d\n", result.Stats.ClassesExpanded)
	fmt.Printf("Intersections: %d\n", result.Stats.Intersections)
	fmt.Printf("Duration: %s\n", result.Stats.Duration)
	if result.Stats.Truncated {
		fmt.Printf("WARNING: run truncated at max_classes=%d; results are incomplete\n", mining.MaxClasses)
	}

	return nil
}
