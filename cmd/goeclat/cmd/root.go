package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile           string
	logLevel          string
	logFormat         string
	minSupport        float64
	minSupportIsCount bool
	maxClasses        int
	noColor           bool
)

var rootCmd = &cobra.Command{
	Use:   "goeclat",
	Short: "Frequent Itemset Miner",
	Long: `A CLI tool for mining frequent itemsets from transaction datasets
using the ECLAT algorithm (vertical data format, depth-first
equivalence-class lattice traversal).

Features:
  - Vertical transaction-ID-set representation with anti-monotone pruning
  - Datasets from basket files or MySQL tables
  - Absolute or fractional minimum support thresholds
  - Table, CSV, and lattice-tree result rendering
  - Brute-force result verification for small datasets`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "goeclat.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Mining overrides
	rootCmd.PersistentFlags().Float64Var(&minSupport, "min-support", 0,
		"Override minimum support (fraction in (0,1], or a count with --absolute)")
	rootCmd.PersistentFlags().BoolVar(&minSupportIsCount, "absolute", false,
		"Treat --min-support as an absolute transaction count")
	rootCmd.PersistentFlags().IntVar(&maxClasses, "max-classes", 0,
		"Override equivalence-class expansion limit (0 = unbounded)")

	// Output overrides
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel          string
	LogFormat         string
	MinSupport        float64
	MinSupportIsCount bool
	MaxClasses        int
	NoColor           bool
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:          logLevel,
		LogFormat:         logFormat,
		MinSupport:        minSupport,
		MinSupportIsCount: minSupportIsCount,
		MaxClasses:        maxClasses,
		NoColor:           noColor,
	}
}
