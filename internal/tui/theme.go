package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Header    lipgloss.Style
	Title     lipgloss.Style
	Text      lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Paused    lipgloss.Style
	Error     lipgloss.Style
	RingFill  lipgloss.Style
	RingTrack lipgloss.Style
	RingLabel lipgloss.Style
	Card      lipgloss.Style
	ProgressA string
	ProgressB string
	Confetti  []lipgloss.Color
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Paused:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		RingFill:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		RingTrack: lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
		RingLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 2),
		ProgressA: "#FF7CCB",
		ProgressB: "#FDFF8C",
		Confetti:  []lipgloss.Color{"205", "63", "214", "81", "120", "228"},
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		Paused:    lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		RingFill:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		RingTrack: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		RingLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 2),
		ProgressA: "#BD93F9",
		ProgressB: "#FF79C6",
		Confetti:  []lipgloss.Color{"212", "141", "215", "117", "120", "228"},
	},
}

// ThemeByName falls back to the default theme for unknown names.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}
