package config

import "time"

// Ring geometry defaults, in abstract drawing units.
const (
	RingSize   = 250.0
	RingStroke = 10.0
)

// Countdown timing.
const (
	DefaultLeadIn    = 550 * time.Millisecond
	WarningThreshold = 3
	FrameRate        = 60
	FrameInterval    = time.Second / FrameRate
)

// Transitions.
const (
	StaggerDelay    = 200 * time.Millisecond
	StaggerStep     = 150 * time.Millisecond
	StaggerDuration = 600 * time.Millisecond
	StaggerShift    = 6
	SlideOutTime    = 600 * time.Millisecond
	SlideFrequency  = 6.0
	SlideDamping    = 1.0
)

// Confetti burst defaults.
const (
	ConfettiCount    = 120
	ConfettiSpread   = 180.0
	ConfettiVelocity = 45.0
	ConfettiGravity  = 0.7
	ConfettiScalar   = 1.0
	ConfettiOriginY  = 1.1
)

// Run statuses.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusAbandoned = "abandoned"
	StatusSkipped   = "skipped"
)

// Application settings.
const (
	AppName          = "stretch"
	DBFileName       = "stretch.db"
	LogFileName      = "stretch.log"
	SettingsFileName = "settings.yaml"
	HistoryLimit     = 50
)
