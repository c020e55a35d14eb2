package config

// Layout constants.
const (
	// RingUnitsPerCell converts ring geometry units to terminal rows.
	// Columns are doubled to compensate for the cell aspect ratio.
	RingUnitsPerCell = 25.0

	// MinContentWidth is the narrowest layout the screens render for.
	MinContentWidth = 40

	// ProgressBarWidth is the preferred width of the routine progress bar.
	ProgressBarWidth = 40

	// MaxDescriptionWidth wraps exercise descriptions.
	MaxDescriptionWidth = 60
)

// Display limits.
const (
	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)
