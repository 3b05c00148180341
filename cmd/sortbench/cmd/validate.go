package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/sortbench/internal/benchmark"
	"github.com/dbsmedya/sortbench/internal/logger"
	"github.com/dbsmedya/sortbench/internal/sorting"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration",
	Long: `Validate loads the configuration file, applies command line overrides
and checks the result.

Checks performed:
  - Configuration syntax and value ranges
  - Sort key and sorter names
  - Generator ranges and name vocabularies

Example:
  sortbench validate --config sortbench.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	runner, err := benchmark.NewRunner(cfg, sorting.DefaultRegistry(), logger.NewNop())
	if err != nil {
		return err
	}

	names := make([]string, 0, len(runner.Sorters()))
	for _, s := range runner.Sorters() {
		names = append(names, s.Name)
	}

	cmd.Printf("=== Configuration Validation ===\n")
	cmd.Printf("Config file: %s\n", GetConfigFile())
	cmd.Printf("Sorters:     %s\n", strings.Join(names, ", "))
	cmd.Printf("Key:         %s\n", runner.Key().Name)
	cmd.Printf("Runs:        %d\n", cfg.Benchmark.Runs)
	if sizes := cfg.Sizes(); sizes != nil {
		cmd.Printf("Sizes:       %v\n", sizes)
	} else {
		cmd.Printf("Sizes:       (prompt)\n")
	}
	cmd.Printf("Verify:      %v\n", cfg.Benchmark.Verify)
	cmd.Println("✅ Configuration is valid")
	return nil
}
