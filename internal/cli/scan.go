package cli

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/flexscan/cli/internal/azure"
	"github.com/flexscan/cli/internal/config"
	"github.com/flexscan/cli/internal/output"
	"github.com/flexscan/cli/internal/pterm"
	"github.com/flexscan/cli/internal/report"
	"github.com/flexscan/cli/internal/scan"
	"github.com/flexscan/cli/internal/style"
)

func newScanCommand(cfg *config.Config, fs afero.Fs) *cobra.Command {
	var (
		outputPath          string
		summaryPath         string
		azPath              string
		timeout             time.Duration
		skipExtensionUpdate bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "🔍 Scan all subscriptions for migration eligibility",
		Long: `Enumerates every enabled subscription, switches the az CLI to each one in
turn, runs the eligibility enumeration, and exports the aggregated results.

Subscriptions are processed strictly one at a time: the active account is
process-wide az state, so two concurrent scans would race on which
subscription a given command actually targets.`,
		Example: `  # Scan with defaults
  flexscan scan

  # Write exports somewhere else
  flexscan scan -o /tmp/all.json --summary-output /tmp/summary.json

  # Tighten the per-command timeout
  flexscan scan --timeout 30s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			mode := output.DetectMode()
			log := pterm.NewLogger(mode == output.OutputModeCI)

			fmt.Fprintln(cmd.OutOrStdout(), style.TitleStyle.Render("Flex Consumption migration scan"))

			client := azure.NewClient(azPath, timeout)

			if ver, outdated, err := client.CheckCLIVersion(ctx); err != nil {
				log.Debug("could not determine az CLI version: %v", err)
			} else if outdated {
				log.Warning("az CLI %s is older than the supported minimum %s; results may be incomplete", ver, azure.MinCLIVersion)
			}

			if !skipExtensionUpdate {
				sp := output.NewSpinner("Updating az extensions", mode)
				sp.Start()
				err := client.EnsureExtension(ctx)
				sp.Stop()
				if err != nil {
					// The extension may already be present; keep going.
					log.Warning("%v", err)
				}
			}

			scanner := scan.NewScanner(client, client, client, log)
			sp := output.NewSpinner("Scanning subscriptions", mode)
			scanner.OnSubscription = func(i, total int, sub scan.Subscription) {
				sp.UpdateMessage(fmt.Sprintf("Scanning %s (%d/%d)", sub.Name, i+1, total))
			}
			sp.Start()
			result, err := scanner.Run(ctx)
			sp.Stop()
			if err != nil {
				return err
			}

			if result.Subscriptions == 0 {
				log.Warning("no enabled subscriptions found; nothing to scan")
				return nil
			}
			if len(result.Records) == 0 {
				log.Warning("no function apps found across %d subscriptions; nothing to export", result.Subscriptions)
				return nil
			}

			reporter := report.NewReporter(fs)
			if err := reporter.ExportRecords(result.Records, outputPath); err != nil {
				return err
			}
			if err := reporter.ExportSummaries(result.Summaries, summaryPath); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout())
			if err := report.PrintSummary(cmd.OutOrStdout(), result.Summaries, result.Records); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())

			log.Success("scan complete: %d records exported to %s, summary to %s",
				len(result.Records), outputPath, summaryPath)
			if result.Skipped > 0 {
				log.Info("%d of %d subscriptions were skipped due to errors", result.Skipped, result.Subscriptions)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", cfg.OutputPath, "Path for the full records JSON export")
	cmd.Flags().StringVar(&summaryPath, "summary-output", cfg.SummaryOutputPath, "Path for the per-subscription summary JSON export")
	cmd.Flags().StringVar(&azPath, "az-path", cfg.AzPath, "Path to the az CLI binary (defaults to az on PATH)")
	cmd.Flags().DurationVar(&timeout, "timeout", cfg.CommandTimeout, "Timeout applied to each az invocation")
	cmd.Flags().BoolVar(&skipExtensionUpdate, "skip-extension-update", cfg.SkipExtensionUpdate, "Skip installing/updating the az extension before scanning")
	return cmd
}
