package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidRing   = errors.New("ring size must exceed stroke and both must be positive")
	ErrInvalidLeadIn = errors.New("lead_in must not be negative")
)

// RingSettings configures the countdown ring geometry.
type RingSettings struct {
	Size   float64 `yaml:"size"`
	Stroke float64 `yaml:"stroke"`
}

// SoundSettings configures the audio cues. Start and Warning name .wav or .mp3
// files; empty paths use the built-in cues. With Command set, configured paths
// are handed to that program instead of the speaker.
type SoundSettings struct {
	Start   string `yaml:"start"`
	Warning string `yaml:"warning"`
	Command string `yaml:"command"`
	Muted   bool   `yaml:"muted"`
}

// Settings is the user-editable configuration file.
type Settings struct {
	Ring      RingSettings  `yaml:"ring"`
	LeadIn    time.Duration `yaml:"lead_in"`
	Sounds    SoundSettings `yaml:"sounds"`
	Theme     string        `yaml:"theme"`
	LogLevel  string        `yaml:"log_level"`
	Exercises string        `yaml:"exercises"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Ring:     RingSettings{Size: RingSize, Stroke: RingStroke},
		LeadIn:   DefaultLeadIn,
		Theme:    "default",
		LogLevel: "INFO",
	}
}

// LoadSettings reads path on top of the defaults. A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings %q: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("settings %q: %w", path, err)
	}
	return s, nil
}

func (s Settings) Validate() error {
	r := s.Ring
	if !finitePositive(r.Size) || !finitePositive(r.Stroke) || r.Stroke >= r.Size {
		return ErrInvalidRing
	}
	if s.LeadIn < 0 {
		return ErrInvalidLeadIn
	}
	return nil
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
