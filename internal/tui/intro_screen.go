package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/morning-stretch/internal/config"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

var errNoExercises = errors.New("the routine has no exercises")

func handleStart(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m.startRoutine(), nil, true
}

func (m MainModel) viewIntro() string {
	th := m.opts.Theme
	exercises := m.store.Exercises()

	var total time.Duration
	lines := make([]string, len(exercises))
	nameWidth := max(10, min(32, m.contentWidth()-12))
	for i, ex := range exercises {
		total += ex.Duration
		name := ansi.Truncate(ex.Name, nameWidth, config.TruncationSuffix)
		pad := strings.Repeat(" ", max(1, nameWidth-ansi.StringWidth(name)+2))
		lines[i] = fmt.Sprintf("%s %s%s%s", th.Highlight.Render("•"), th.Text.Render(name), pad, th.Dim.Render(FormatDuration(ex.Duration)))
	}

	var b strings.Builder
	b.WriteString(th.Header.Render("Morning Stretch"))
	b.WriteString("\n")
	b.WriteString(th.Dim.Render(fmt.Sprintf("%d exercises · %s", len(exercises), FormatDuration(total))))
	b.WriteString("\n\n")
	b.WriteString(m.stagger.Render(lines, th))
	b.WriteString("\n\n")
	if m.stagger.Done() {
		b.WriteString(th.Title.Render("Press enter to begin."))
	}
	return b.String()
}
