package cli

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/morning-stretch/internal/tui"
	"github.com/akyairhashvil/morning-stretch/internal/util"
	"github.com/spf13/cobra"
)

type exerciseJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Seconds     int    `json:"seconds"`
}

func newExercisesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "exercises",
		Short: "List the exercises of the routine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer e.Close()

			w := cmd.OutOrStdout()
			if opts.jsonOutput {
				out := make([]exerciseJSON, 0, len(e.catalog.Exercises))
				for _, ex := range e.catalog.Exercises {
					out = append(out, exerciseJSON{ID: ex.ID, Name: ex.Name, Description: ex.Description, Seconds: util.CeilSeconds(ex.Duration)})
				}
				return writeJSON(w, out)
			}
			var total time.Duration
			for i, ex := range e.catalog.Exercises {
				total += ex.Duration
				fmt.Fprintf(w, "%2d. %-24s %s\n", i+1, ex.Name, tui.FormatDuration(ex.Duration))
			}
			fmt.Fprintf(w, "Total %s  checksum %s\n", tui.FormatDuration(total), e.catalog.Checksum()[:12])
			return nil
		},
	}
}
