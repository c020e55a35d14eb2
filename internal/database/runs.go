package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/akyairhashvil/morning-stretch/internal/models"
	"github.com/akyairhashvil/morning-stretch/internal/util"
	"github.com/google/uuid"
)

// StartRun opens a new run for the catalogue identified by checksum.
func (d *Database) StartRun(ctx context.Context, checksum string) (models.Run, error) {
	run := models.Run{
		ID:              uuid.NewString(),
		StartedAt:       now(),
		Status:          models.RunRunning,
		CatalogChecksum: checksum,
	}
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO runs (id, started_at, status, catalog_checksum) VALUES (?, ?, ?, ?)",
		run.ID, run.StartedAt, string(run.Status), nullableString(checksum))
	if err != nil {
		return models.Run{}, wrapRunErr("start", run.ID, err)
	}
	return run, nil
}

// RecordExercise appends the outcome of one exercise to a running run.
func (d *Database) RecordExercise(ctx context.Context, rec models.RunExercise) error {
	if rec.FinishedAt.IsZero() {
		rec.FinishedAt = now()
	}
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		if err := requireRunning(ctx, tx, rec.RunID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO run_exercises (run_id, position, exercise_id, name, duration_seconds, status, finished_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			rec.RunID, rec.Position, rec.ExerciseID, rec.Name, util.CeilSeconds(rec.Duration), string(rec.Status), rec.FinishedAt)
		return err
	})
	return wrapRunErr("record exercise", rec.RunID, err)
}

// FinishRun closes a run with the given status.
func (d *Database) FinishRun(ctx context.Context, runID string, status models.RunStatus) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		if err := requireRunning(ctx, tx, runID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, "UPDATE runs SET status = ?, finished_at = ? WHERE id = ?", string(status), now(), runID)
		return err
	})
	return wrapRunErr("finish", runID, err)
}

func requireRunning(ctx context.Context, tx *sql.Tx, runID string) error {
	var status string
	err := tx.QueryRowContext(ctx, "SELECT status FROM runs WHERE id = ?", runID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRunNotFound
	}
	if err != nil {
		return err
	}
	if models.RunStatus(status) != models.RunRunning {
		return ErrRunFinished
	}
	return nil
}

// ListRuns returns the most recent runs first, with per-run totals.
func (d *Database) ListRuns(ctx context.Context, limit int) ([]models.RunSummary, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := d.DB.QueryContext(ctx, `
		SELECT r.id, r.started_at, r.finished_at, r.status, r.catalog_checksum,
			COALESCE(SUM(CASE WHEN e.status = 'completed' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN e.status = 'skipped' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN e.status = 'completed' THEN e.duration_seconds ELSE 0 END), 0)
		FROM runs r
		LEFT JOIN run_exercises e ON e.run_id = r.id
		GROUP BY r.id
		ORDER BY r.started_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, wrapRunErr("list", "", err)
	}
	defer rows.Close()

	var out []models.RunSummary
	for rows.Next() {
		var (
			s        models.RunSummary
			finished sql.NullTime
			status   string
			checksum sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.StartedAt, &finished, &status, &checksum, &s.Completed, &s.Skipped, &s.Seconds); err != nil {
			return nil, wrapRunErr("list", "", err)
		}
		s.FinishedAt = timePtr(finished)
		s.Status = models.RunStatus(status)
		s.CatalogChecksum = checksum.String
		out = append(out, s)
	}
	return out, wrapRunErr("list", "", rows.Err())
}

// GetRunExercises returns the exercises recorded for a run in order.
func (d *Database) GetRunExercises(ctx context.Context, runID string) ([]models.RunExercise, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT run_id, position, exercise_id, name, duration_seconds, status, finished_at
		FROM run_exercises WHERE run_id = ? ORDER BY position, id`, runID)
	if err != nil {
		return nil, wrapRunErr("get exercises", runID, err)
	}
	defer rows.Close()

	var out []models.RunExercise
	for rows.Next() {
		var (
			e       models.RunExercise
			seconds int
			status  string
		)
		if err := rows.Scan(&e.RunID, &e.Position, &e.ExerciseID, &e.Name, &seconds, &status, &e.FinishedAt); err != nil {
			return nil, wrapRunErr("get exercises", runID, err)
		}
		e.Duration = time.Duration(seconds) * time.Second
		e.Status = models.ExerciseStatus(status)
		out = append(out, e)
	}
	return out, wrapRunErr("get exercises", runID, rows.Err())
}
