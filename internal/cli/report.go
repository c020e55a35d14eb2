package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/morning-stretch/internal/config"
	"github.com/akyairhashvil/morning-stretch/internal/report"
	"github.com/akyairhashvil/morning-stretch/internal/util"
	"github.com/spf13/cobra"
)

func newReportCmd(opts *options) *cobra.Command {
	var (
		out   string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export the routine history as a PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer e.Close()

			path := out
			if path == "" {
				name := fmt.Sprintf("%s-history-%s.pdf", config.AppName, time.Now().Format("2006-01-02"))
				path = filepath.Join(util.ReportsDir(config.AppName), name)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("create report dir: %w", err)
			}
			if err := report.WriteFile(cmd.Context(), e.db, limit, path); err != nil {
				return err
			}
			e.log.Info("report written", "path", path)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "PDF path (default: Documents/STRETCH)")
	cmd.Flags().IntVarP(&limit, "limit", "n", config.HistoryLimit, "number of routines to include")
	return cmd
}
