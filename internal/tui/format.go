package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/morning-stretch/internal/models"
)

// FormatDuration formats a duration for display (e.g., "2h 15m", "45s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		secs := int(d.Seconds()) % 60
		if secs == 0 {
			return fmt.Sprintf("%dm", mins)
		}
		return fmt.Sprintf("%dm %ds", mins, secs)
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatTimeRemaining formats whole seconds as mm:ss.
func FormatTimeRemaining(seconds int) string {
	if seconds <= 0 {
		return "00:00"
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatExerciseCount formats the position within a routine.
func FormatExerciseCount(index, total int) string {
	if total == 0 {
		return "No exercises"
	}
	return fmt.Sprintf("%d / %d", index+1, total)
}

// FormatRunStatus returns a human-readable run status.
func FormatRunStatus(status models.RunStatus) string {
	switch status {
	case models.RunCompleted:
		return "Completed"
	case models.RunAbandoned:
		return "Abandoned"
	case models.RunRunning:
		return "In progress"
	default:
		return "Unknown"
	}
}
