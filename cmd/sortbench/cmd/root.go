package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/sortbench/internal/config"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
	runs      int
	sortKey   string
	sorterSel []string
	seed      int64
	verify    bool
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "sortbench",
	Short: "Quicksort vs. Mergesort timing benchmark",
	Long: `SortBench generates random student records, sorts them with quicksort
and mergesort, and reports the average execution time of each algorithm
for the input sizes you choose.

Features:
  - Interactive input sizes, or --sizes for scripted runs
  - Sorting by id, name or score
  - Averaged timings over several runs on identical data
  - Optional verification of every sorted output

Running sortbench without a subcommand is the same as "sortbench run".`,
	Version:      Version,
	SilenceUsage: true,
	RunE:         runBenchmark,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", config.DefaultFile,
		"Path to configuration file (optional)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Benchmark overrides
	rootCmd.PersistentFlags().IntVarP(&runs, "runs", "r", 0,
		"Override number of timed runs averaged per measurement")
	rootCmd.PersistentFlags().StringVarP(&sortKey, "key", "k", "",
		"Override field to sort by (id, name, score)")
	rootCmd.PersistentFlags().StringSliceVar(&sorterSel, "sorters", nil,
		"Override sorters to measure (comma separated)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0,
		"Override random seed for data generation (0 = time based)")
	rootCmd.PersistentFlags().BoolVar(&verify, "verify", false,
		"Verify that every sorted output is ordered and complete")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")

	addRunFlags(rootCmd)
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel  string
	LogFormat string
	Runs      int
	Key       string
	Sorters   []string
	Seed      int64
	Verify    bool
	NoColor   bool
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Runs:      runs,
		Key:       sortKey,
		Sorters:   sorterSel,
		Seed:      seed,
		Verify:    verify,
		NoColor:   noColor,
	}
}

// loadConfig reads the config file, applies CLI overrides and validates the
// result. A missing file is only an error when --config was given explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile := GetConfigFile()

	var (
		cfg *config.Config
		err error
	)
	if flag := cmd.Flags().Lookup("config"); flag != nil && flag.Changed {
		cfg, err = config.Load(configFile)
	} else {
		cfg, err = config.LoadOptional(configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	o := GetCLIOverrides()
	cfg.ApplyOverrides(config.Overrides{
		LogLevel:  o.LogLevel,
		LogFormat: o.LogFormat,
		Runs:      o.Runs,
		Key:       o.Key,
		Sorters:   o.Sorters,
		Seed:      o.Seed,
		Verify:    o.Verify,
		NoColor:   o.NoColor,
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
