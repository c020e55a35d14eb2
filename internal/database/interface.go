package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/morning-stretch/internal/models"
)

// RunRepository defines run-history operations.
type RunRepository interface {
	StartRun(ctx context.Context, checksum string) (models.Run, error)
	RecordExercise(ctx context.Context, rec models.RunExercise) error
	FinishRun(ctx context.Context, runID string, status models.RunStatus) error
	ListRuns(ctx context.Context, limit int) ([]models.RunSummary, error)
	GetRunExercises(ctx context.Context, runID string) ([]models.RunExercise, error)
}

// SettingsRepository stores small key/value preferences.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -source=interface.go -destination=mocks/mock_repository.go -package=mocks
type Repository interface {
	RunRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)

// now is replaced in tests.
var now = func() time.Time { return time.Now().UTC() }
