package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/morning-stretch/internal/models"
	"github.com/akyairhashvil/morning-stretch/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func handleRestart(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m.startRoutine(), nil, true
}

func handleCelebrate(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.confetti = NewConfetti(DefaultBurst(), m.opts.Theme.Confetti, m.opts.Rand)
	return m, nil, true
}

// summary counts the exercises of the last routine.
func (m MainModel) summary() (completed, skipped int, stretched time.Duration) {
	for _, r := range m.results {
		switch r.Status {
		case models.ExerciseCompleted:
			completed++
			stretched += r.Duration
		case models.ExerciseSkipped:
			skipped++
		}
	}
	return completed, skipped, stretched
}

func (m MainModel) viewEnd() string {
	th := m.opts.Theme
	completed, skipped, stretched := m.summary()

	var b strings.Builder
	if m.confetti.Active() && m.width > 0 && m.height > 12 {
		b.WriteString(m.confetti.View(m.width-4, m.height-12))
		b.WriteString("\n")
	}
	b.WriteString(th.Header.Render("Well done!"))
	b.WriteString("\n\n")
	b.WriteString(th.Text.Render(fmt.Sprintf("%d %s completed", completed, util.Plural(completed, "exercise", "exercises"))))
	if skipped > 0 {
		b.WriteString(th.Dim.Render(fmt.Sprintf(", %d skipped", skipped)))
	}
	b.WriteString("\n")
	b.WriteString(th.Text.Render("Time stretched: " + FormatDuration(stretched)))
	return b.String()
}
