package models

import "time"

// RunStatus enumerates the possible states of a routine run.
type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunAbandoned RunStatus = "abandoned"
)

// ExerciseStatus records how an exercise in a run ended.
type ExerciseStatus string

const (
	ExerciseCompleted ExerciseStatus = "completed"
	ExerciseSkipped   ExerciseStatus = "skipped"
)

// Exercise is one timed step of a routine.
type Exercise struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Duration    time.Duration `yaml:"duration"`
}

// Run is one pass through the routine.
type Run struct {
	ID              string
	StartedAt       time.Time
	FinishedAt      *time.Time
	Status          RunStatus
	CatalogChecksum string
}

// RunExercise is the outcome of one exercise within a run.
type RunExercise struct {
	RunID      string
	Position   int
	ExerciseID string
	Name       string
	Duration   time.Duration
	Status     ExerciseStatus
	FinishedAt time.Time
}

// RunSummary is a Run with its aggregate counts.
type RunSummary struct {
	Run
	Completed int
	Skipped   int
	Seconds   int
}
