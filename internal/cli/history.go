package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/akyairhashvil/morning-stretch/internal/config"
	"github.com/akyairhashvil/morning-stretch/internal/models"
	"github.com/akyairhashvil/morning-stretch/internal/tui"
	"github.com/spf13/cobra"
)

type runJSON struct {
	ID              string     `json:"id"`
	StartedAt       time.Time  `json:"started_at"`
	FinishedAt      *time.Time `json:"finished_at,omitempty"`
	Status          string     `json:"status"`
	CatalogChecksum string     `json:"catalog_checksum,omitempty"`
	Completed       int        `json:"completed"`
	Skipped         int        `json:"skipped"`
	Seconds         int        `json:"seconds"`
}

func toRunJSON(runs []models.RunSummary) []runJSON {
	out := make([]runJSON, 0, len(runs))
	for _, r := range runs {
		out = append(out, runJSON{
			ID:              r.ID,
			StartedAt:       r.StartedAt,
			FinishedAt:      r.FinishedAt,
			Status:          string(r.Status),
			CatalogChecksum: r.CatalogChecksum,
			Completed:       r.Completed,
			Skipped:         r.Skipped,
			Seconds:         r.Seconds,
		})
	}
	return out
}

func newHistoryCmd(opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent routines",
		Long: `Show recent routines, newest first.

Examples:
  stretch history            # Last 50 routines
  stretch history -n 5       # Last 5 routines
  stretch history --json     # Machine-readable output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer e.Close()

			runs, err := e.db.ListRuns(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), toRunJSON(runs))
			}
			printHistory(cmd.OutOrStdout(), runs)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", config.HistoryLimit, "number of routines to show")
	return cmd
}

func printHistory(w io.Writer, runs []models.RunSummary) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No routines yet.")
		return
	}
	for _, r := range runs {
		fmt.Fprintf(w, "%s  %-11s  %2d done  %2d skipped  %s\n",
			r.StartedAt.Local().Format("2006-01-02 15:04"),
			tui.FormatRunStatus(r.Status),
			r.Completed,
			r.Skipped,
			tui.FormatDuration(time.Duration(r.Seconds)*time.Second),
		)
	}
}
