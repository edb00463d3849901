package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/flexscan/cli/internal/scan"
)

// Reporter serializes scan results to files. It writes through an afero
// filesystem so tests run against an in-memory one.
type Reporter struct {
	fs afero.Fs
}

// NewReporter returns a reporter writing to the given filesystem.
func NewReporter(fs afero.Fs) *Reporter {
	return &Reporter{fs: fs}
}

// ExportRecords writes the full ordered record sequence as an indented
// JSON array, overwriting any existing file.
func (r *Reporter) ExportRecords(records []scan.Record, path string) error {
	return r.writeJSON(records, path)
}

// ExportSummaries writes the per-subscription summaries as an indented
// JSON array, overwriting any existing file.
func (r *Reporter) ExportSummaries(summaries []scan.Summary, path string) error {
	return r.writeJSON(summaries, path)
}

func (r *Reporter) writeJSON(v interface{}, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := afero.WriteFile(r.fs, path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// PrintSummary writes the per-subscription table and run totals to w.
// It has no effect on the exported files.
func PrintSummary(w io.Writer, summaries []scan.Summary, records []scan.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SUBSCRIPTION\tTOTAL\tELIGIBLE\tINELIGIBLE")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", s.SubscriptionName, s.TotalApps, s.EligibleApps, s.IneligibleApps)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	eligible := 0
	for _, rec := range records {
		if rec.Eligibility == scan.Eligible {
			eligible++
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Subscriptions with apps: %d\n", len(summaries))
	fmt.Fprintf(w, "Total function apps:     %d\n", len(records))
	fmt.Fprintf(w, "Eligible:                %s\n", color.GreenString("%d", eligible))
	fmt.Fprintf(w, "Ineligible:              %s\n", color.YellowString("%d", len(records)-eligible))
	return nil
}
