package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/flexscan/cli/internal/config"
)

func Execute(cfg *config.Config) error {
	rootCmd := &cobra.Command{
		Use:   "flexscan",
		Short: "⚡ Flex Consumption migration eligibility scanner",
		Long: `flexscan walks every enabled Azure subscription visible to the signed-in
az CLI, runs the Flex Consumption migration eligibility check in each one,
and aggregates the per-app results into a full JSON export, a
per-subscription summary, and a console table.

Per-subscription failures (a failed switch, a hung command, garbled output)
are logged and skipped; a single bad subscription never aborts the run. The
subscription that was active before the run is restored when it finishes.`,
		Example: `  # Scan everything with default output paths
  flexscan scan

  # Custom export paths
  flexscan scan --output all.json --summary-output summary.json

  # Skip the az extension update on a locked-down machine
  flexscan scan --skip-extension-update`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newScanCommand(cfg, afero.NewOsFs()),
		newVersionCommand(),
	)

	return rootCmd.Execute()
}
