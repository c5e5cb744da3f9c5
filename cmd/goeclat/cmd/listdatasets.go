package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goeclat/internal/config"
)

var listDatasetsCmd = &cobra.Command{
	Use:   "list-datasets",
	Short: "List all datasets defined in configuration",
	Long: `List-datasets displays all transaction datasets defined in the
configuration file along with their basic settings.

Example:
  goeclat list-datasets --config goeclat.yaml`,
	RunE: runListDatasets,
}

func init() {
	rootCmd.AddCommand(listDatasetsCmd)
}

func runListDatasets(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	names := cfg.ListDatasets()

	if len(names) == 0 {
		cmd.Printf("No datasets defined in %s\n", configFile)
		return nil
	}

	// Sort dataset names for consistent output
	sort.Strings(names)

	cmd.Printf("Datasets defined in %s:\n\n", configFile)

	for i, name := range names {
		ds, err := cfg.GetDataset(name)
		if err != nil {
			return fmt.Errorf("failed to get dataset %q: %w", name, err)
		}

		// Dataset header
		cmd.Printf("%d. %s\n", i+1, name)
		cmd.Printf("   Kind:          %s\n", ds.Kind)

		switch ds.Kind {
		case "file":
			cmd.Printf("   Path:          %s\n", ds.Path)
			cmd.Printf("   Delimiter:     %q\n", ds.EffectiveDelimiter())
		case "table":
			cmd.Printf("   Table:         %s\n", ds.Table)
			cmd.Printf("   Transaction:   %s\n", ds.TransactionColumn)
			cmd.Printf("   Item:          %s\n", ds.ItemColumn)
			if ds.Where != "" {
				cmd.Printf("   WHERE:         %s\n", ds.Where)
			} else {
				cmd.Printf("   WHERE:         (none)\n")
			}
		}

		// Effective mining settings
		mining := ds.GetDatasetMining(cfg.Mining)
		if mining.MinSupportIsCount {
			cmd.Printf("   Min Support:   %d transactions\n", int(mining.MinSupport))
		} else {
			cmd.Printf("   Min Support:   %.4f of transactions\n", mining.MinSupport)
		}

		cmd.Println()
	}

	return nil
}
