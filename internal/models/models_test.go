package models

import "testing"

func TestRunStatusConstants(t *testing.T) {
	if RunRunning != "running" {
		t.Fatalf("RunRunning = %q", RunRunning)
	}
	if RunCompleted != "completed" {
		t.Fatalf("RunCompleted = %q", RunCompleted)
	}
	if RunAbandoned != "abandoned" {
		t.Fatalf("RunAbandoned = %q", RunAbandoned)
	}
	if ExerciseSkipped != "skipped" {
		t.Fatalf("ExerciseSkipped = %q", ExerciseSkipped)
	}
}

func TestRunZeroValues(t *testing.T) {
	var r Run
	if r.FinishedAt != nil {
		t.Fatalf("expected nil FinishedAt by default")
	}
	var s RunSummary
	if s.Completed != 0 || s.Skipped != 0 || s.Seconds != 0 {
		t.Fatalf("expected zero counts by default")
	}
}
