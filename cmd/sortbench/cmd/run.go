package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/sortbench/internal/benchmark"
	"github.com/dbsmedya/sortbench/internal/config"
	"github.com/dbsmedya/sortbench/internal/logger"
	"github.com/dbsmedya/sortbench/internal/prompt"
	"github.com/dbsmedya/sortbench/internal/report"
	"github.com/dbsmedya/sortbench/internal/shutdown"
	"github.com/dbsmedya/sortbench/internal/sorting"
)

var (
	runSizes      []int
	runNoPrompt   bool
	runNoProgress bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Measure sorter execution time across input sizes",
	Long: `Run asks for the input sizes to analyze, one per line, until you enter 0.
Negative or non-numeric entries are rejected and asked again. When no size
is entered the default sizes 1, 10, 20, 50, 100, 200, 500 and 1000 are used.

For every size a fresh dataset is generated and each sorter is timed on
identical copies of it. The averaged times are printed as a table.

Example:
  sortbench run
  sortbench run --sizes 100,1000,10000 --runs 5 --key score`,
	RunE: runBenchmark,
}

func init() {
	addRunFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func addRunFlags(c *cobra.Command) {
	c.Flags().IntSliceVarP(&runSizes, "sizes", "s", nil,
		"Input sizes to measure, skipping the prompt (comma separated)")
	c.Flags().BoolVar(&runNoPrompt, "no-prompt", false,
		"Do not prompt; use configured or default sizes")
	c.Flags().BoolVar(&runNoProgress, "no-progress", false,
		"Hide the progress indicator")
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(runSizes) > 0 {
		cfg.Benchmark.Sizes = runSizes
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	runner, err := benchmark.NewRunner(cfg, sorting.DefaultRegistry(), log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	sizes := cfg.Sizes()
	switch {
	case sizes != nil:
		sort.Ints(sizes)
	case runNoPrompt:
		sizes = config.DefaultSizes()
	default:
		printWelcome(out, runner.Sorters(), cfg.Output.Color)
		sizes, err = prompt.New(cmd.InOrStdin(), out, cfg.Output.Color).Collect()
		if err != nil {
			return err
		}
	}

	log.Infow("Starting benchmark run",
		"config", GetConfigFile(),
		"sizes", sizes,
		"key", runner.Key().Name,
	)

	ctx, stop := shutdown.WithSignals(context.Background(), func(sig os.Signal) {
		log.Warnw("Received shutdown signal - stopping after current run", "signal", sig.String())
	})
	defer stop()

	fmt.Fprintln(out, "\nAnalyzing algorithm complexity...")
	progress := report.NewProgress(cmd.ErrOrStderr(), len(sizes), cfg.Output.Progress && !runNoProgress)
	summary, err := runner.Execute(ctx, sizes, progress)
	progress.Done()
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	report.NewTable(out, cfg.Output.Color).WriteResults(summary.Results)

	if summary.Interrupted {
		fmt.Fprintf(out, "\nInterrupted: %d of %d sizes measured\n", summary.Sizes, len(sizes))
	}
	return nil
}

func printWelcome(w io.Writer, sorters []sorting.Sorter, useColor bool) {
	title := "Welcome to the sorting algorithm complexity analyzer!"
	if useColor {
		title = color.Bold.Sprint(title)
	}
	fmt.Fprintln(w, title)

	names := ""
	for i, s := range sorters {
		switch {
		case i == 0:
			names = s.Title
		case i == len(sorters)-1:
			names += " and " + s.Title
		default:
			names += ", " + s.Title
		}
	}
	fmt.Fprintf(w, "This program compares the execution time of %s\n", names)
	fmt.Fprintln(w, "for the input sizes you choose.")
	fmt.Fprintln(w, "\nExample input sizes: 100, 500, 1000, 5000, ...")
}
