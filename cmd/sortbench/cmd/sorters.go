package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbsmedya/sortbench/internal/record"
	"github.com/dbsmedya/sortbench/internal/sorting"
)

var sortersCmd = &cobra.Command{
	Use:   "sorters",
	Short: "List available sorters and sort keys",
	Long: `Sorters displays every registered sorting algorithm, in report column
order, together with the fields records can be sorted by.

Example:
  sortbench sorters`,
	RunE: runSorters,
}

func init() {
	rootCmd.AddCommand(sortersCmd)
}

func runSorters(cmd *cobra.Command, args []string) error {
	all := sorting.DefaultRegistry().All()

	cmd.Println("Sorters:")
	for i, s := range all {
		cmd.Printf("%d. %-10s (column: %s)\n", i+1, s.Name, s.Title)
	}

	cmd.Println()
	cmd.Println("Sort keys:")
	for _, k := range record.Keys() {
		cmd.Printf("  - %s\n", k.Name)
	}

	cmd.Printf("\nTotal: %d sorter(s)\n", len(all))
	return nil
}
