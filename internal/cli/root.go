// Package cli is the slimtrack command-line shell.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type options struct {
	dbPath  string
	backend string
	rules   string
}

// NewRootCmd builds the slimtrack command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "slimtrack",
		Short:         "slimtrack records weight and height and tracks your BMI",
		Long:          "slimtrack is a local-first BMI tracker: record measurements, review trends and category charts, and get simple suggestions.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "Path to SQLite database (overrides SLIMTRACK_DB_PATH)")
	root.PersistentFlags().StringVar(&opts.backend, "backend", "", "Storage backend: sqlite, postgres or memory (overrides SLIMTRACK_BACKEND)")
	root.PersistentFlags().StringVar(&opts.rules, "config", "", "YAML file with validation bounds and category ranges (overrides SLIMTRACK_CONFIG)")

	root.AddCommand(
		newInitCmd(opts),
		newAddCmd(opts),
		newListCmd(opts),
		newDeleteCmd(opts),
		newSuggestCmd(opts),
		newChartCmd(opts),
		newServeCmd(opts),
	)
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
