// Package report renders routine history as a PDF.
package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/akyairhashvil/morning-stretch/internal/database"
	"github.com/akyairhashvil/morning-stretch/internal/models"
	"github.com/go-pdf/fpdf"
)

// Build lays out the most recent runs, up to limit, with their exercises.
func Build(ctx context.Context, repo database.RunRepository, limit int, generated time.Time) (*fpdf.Fpdf, error) {
	runs, err := repo.ListRuns(ctx, limit)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Stretching History")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, "Generated "+generated.Format("2006-01-02 15:04"))
	pdf.Ln(12)

	if len(runs) == 0 {
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, "No routines recorded yet.")
		pdf.Ln(8)
		return pdf, nil
	}

	totalSeconds := 0
	completedRuns := 0
	for _, r := range runs {
		totalSeconds += r.Seconds
		if r.Status == models.RunCompleted {
			completedRuns++
		}

		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 9, fmt.Sprintf("%s  (%s)", r.StartedAt.Local().Format("Mon 2006-01-02 15:04"), r.Status))
		pdf.Ln(7)

		exercises, err := repo.GetRunExercises(ctx, r.ID)
		if err != nil {
			return nil, err
		}
		pdf.SetFont("Arial", "", 11)
		if len(exercises) == 0 {
			pdf.Cell(0, 7, "  - No exercises recorded.")
			pdf.Ln(6)
		}
		for _, e := range exercises {
			mark := "[x]"
			if e.Status == models.ExerciseSkipped {
				mark = "[-]"
			}
			pdf.Cell(0, 7, fmt.Sprintf("    %s %s  %ds", mark, e.Name, int(e.Duration/time.Second)))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Routines completed: %d of %d", completedRuns, len(runs)))
	pdf.Ln(7)
	pdf.Cell(0, 10, fmt.Sprintf("Time stretched: %s", (time.Duration(totalSeconds) * time.Second).String()))
	return pdf, nil
}

// Write renders the report to w.
func Write(ctx context.Context, repo database.RunRepository, limit int, w io.Writer) error {
	pdf, err := Build(ctx, repo, limit, time.Now())
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// WriteFile renders the report to path.
func WriteFile(ctx context.Context, repo database.RunRepository, limit int, path string) error {
	pdf, err := Build(ctx, repo, limit, time.Now())
	if err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}
