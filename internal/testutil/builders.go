package testutil

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/morning-stretch/internal/models"
)

// ExerciseBuilder provides fluent API for creating test exercises.
type ExerciseBuilder struct {
	ex models.Exercise
}

func NewExercise() *ExerciseBuilder {
	return &ExerciseBuilder{
		ex: models.Exercise{
			ID:          "neck-roll",
			Name:        "Neck roll",
			Description: "Slowly roll the head in a full circle.",
			Duration:    30 * time.Second,
		},
	}
}

func (b *ExerciseBuilder) WithID(id string) *ExerciseBuilder {
	b.ex.ID = id
	return b
}

func (b *ExerciseBuilder) WithName(n string) *ExerciseBuilder {
	b.ex.Name = n
	return b
}

func (b *ExerciseBuilder) WithDuration(d time.Duration) *ExerciseBuilder {
	b.ex.Duration = d
	return b
}

func (b *ExerciseBuilder) Build() models.Exercise {
	return b.ex
}

// Exercises returns n distinct exercises of duration d.
func Exercises(n int, d time.Duration) []models.Exercise {
	out := make([]models.Exercise, n)
	for i := range out {
		out[i] = NewExercise().
			WithID(fmt.Sprintf("ex-%d", i+1)).
			WithName(fmt.Sprintf("Exercise %d", i+1)).
			WithDuration(d).
			Build()
	}
	return out
}

// RunBuilder provides fluent API for creating test runs.
type RunBuilder struct {
	run models.Run
}

func NewRun() *RunBuilder {
	return &RunBuilder{
		run: models.Run{
			ID:        "00000000-0000-0000-0000-000000000001",
			StartedAt: time.Date(2026, 10, 16, 7, 0, 0, 0, time.UTC),
			Status:    models.RunRunning,
		},
	}
}

func (b *RunBuilder) WithID(id string) *RunBuilder {
	b.run.ID = id
	return b
}

func (b *RunBuilder) WithStatus(s models.RunStatus) *RunBuilder {
	b.run.Status = s
	return b
}

func (b *RunBuilder) Finished(at time.Time) *RunBuilder {
	b.run.FinishedAt = &at
	return b
}

func (b *RunBuilder) Build() models.Run {
	return b.run
}
