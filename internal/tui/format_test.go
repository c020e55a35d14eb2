package tui

import (
	"testing"
	"time"

	"github.com/akyairhashvil/morning-stretch/internal/models"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{time.Minute, "1m"},
		{90 * time.Second, "1m 30s"},
		{2*time.Hour + 15*time.Minute, "2h 15m"},
		{3 * time.Hour, "3h"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatTimeRemaining(t *testing.T) {
	if got := FormatTimeRemaining(0); got != "00:00" {
		t.Fatalf("got %q", got)
	}
	if got := FormatTimeRemaining(75); got != "01:15" {
		t.Fatalf("got %q", got)
	}
	if got := FormatTimeRemaining(-3); got != "00:00" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatExerciseCount(t *testing.T) {
	if got := FormatExerciseCount(0, 0); got != "No exercises" {
		t.Fatalf("got %q", got)
	}
	if got := FormatExerciseCount(2, 8); got != "3 / 8" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatRunStatus(t *testing.T) {
	if FormatRunStatus(models.RunCompleted) != "Completed" || FormatRunStatus(models.RunAbandoned) != "Abandoned" {
		t.Fatalf("unexpected status labels")
	}
	if FormatRunStatus(models.RunStatus("bogus")) != "Unknown" {
		t.Fatalf("expected Unknown for unrecognised status")
	}
}
