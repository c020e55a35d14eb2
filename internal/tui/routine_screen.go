package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/morning-stretch/internal/arc"
	"github.com/akyairhashvil/morning-stretch/internal/config"
	"github.com/akyairhashvil/morning-stretch/internal/models"
	"github.com/akyairhashvil/morning-stretch/internal/timer"
	"github.com/akyairhashvil/morning-stretch/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// exerciseSession is the state of the exercise on screen. Timer and tween
// callbacks write into it; Update reads it after each frame.
type exerciseSession struct {
	exercise  models.Exercise
	position  int
	ring      *arc.Ring
	timer     *timer.Timer
	remaining int
	completed bool
	finished  bool
	gone      bool
}

func (m MainModel) startRoutine() MainModel {
	m.stagger.Stop()
	m.confetti = nil
	m.err = nil
	m.results = nil
	m.store.Reset()
	if _, ok := m.store.Current(); !ok {
		m.err = errNoExercises
		return m
	}
	m.run = nil
	if m.opts.Repo != nil {
		checksum := ""
		if m.opts.Catalog != nil {
			checksum = m.opts.Catalog.Checksum()
		}
		run, err := m.opts.Repo.StartRun(m.ctx, checksum)
		if err != nil {
			m.opts.Logger.Error("start run", "err", err)
		} else {
			m.run = &run
		}
	}
	m.screen = ScreenRoutine
	return m.startExercise()
}

func (m MainModel) startExercise() MainModel {
	ex, ok := m.store.Current()
	if !ok {
		return m.finishRoutine()
	}
	m.store.Resume()

	th := m.opts.Theme
	ring := arc.NewRing(m.opts.Geometry)
	ring.Fill = th.RingFill
	ring.Track = th.RingTrack
	ring.Label = th.RingLabel

	sess := &exerciseSession{
		exercise:  ex,
		position:  m.store.Index(),
		ring:      ring,
		remaining: util.CeilSeconds(ex.Duration),
	}
	t, err := timer.New(ring, timer.Options{
		Duration:   ex.Duration,
		LeadIn:     m.opts.LeadIn,
		OnTick:     func(r int) { sess.remaining = r },
		OnComplete: func() { sess.completed = true },
	}, m.engine, m.opts.Cues, m.opts.Geometry)
	if err != nil {
		m.opts.Logger.Error("start timer", "exercise", ex.ID, "err", err)
		m.err = err
		m.session = nil
		return m
	}
	sess.timer = t
	m.session = sess
	m.slide = NewSlideIn(m.cardHeight())
	m.opts.Logger.Debug("exercise started", "exercise", ex.ID, "position", sess.position)
	return m
}

// finishExercise records the outcome and slides the card out; the next
// exercise starts once it has left.
func (m MainModel) finishExercise(status models.ExerciseStatus) MainModel {
	sess := m.session
	if sess == nil || sess.finished {
		return m
	}
	sess.timer.Cancel()
	sess.finished = true

	rec := models.RunExercise{
		Position:   sess.position,
		ExerciseID: sess.exercise.ID,
		Name:       sess.exercise.Name,
		Duration:   sess.exercise.Duration,
		Status:     status,
		FinishedAt: time.Now().UTC(),
	}
	if m.run != nil {
		rec.RunID = m.run.ID
		if err := m.opts.Repo.RecordExercise(m.ctx, rec); err != nil {
			m.opts.Logger.Error("record exercise", "exercise", rec.ExerciseID, "err", err)
		}
	}
	m.results = append(m.results, rec)

	if m.slide == nil {
		m.slide = NewSlideIn(0)
	}
	m.slide.SlideOut(m.engine, m.cardHeight(), func() { sess.gone = true })
	return m
}

func (m MainModel) advance() MainModel {
	m.session = nil
	if m.store.Next() {
		return m.startExercise()
	}
	return m.finishRoutine()
}

func (m MainModel) finishRoutine() MainModel {
	if m.run != nil {
		if err := m.opts.Repo.FinishRun(m.ctx, m.run.ID, models.RunCompleted); err != nil {
			m.opts.Logger.Error("finish run", "run", m.run.ID, "err", err)
		}
		m.run = nil
	}
	m.session = nil
	m.slide = nil
	m.screen = ScreenEnd
	m.confetti = NewConfetti(DefaultBurst(), m.opts.Theme.Confetti, m.opts.Rand)
	return m
}

// abandon tears the routine down without completing it.
func (m MainModel) abandon() MainModel {
	if m.session != nil {
		m.session.timer.Cancel()
		m.session = nil
	}
	m.slide.Cancel()
	m.slide = nil
	if m.run != nil {
		if err := m.opts.Repo.FinishRun(m.ctx, m.run.ID, models.RunAbandoned); err != nil {
			m.opts.Logger.Error("abandon run", "run", m.run.ID, "err", err)
		}
		m.run = nil
	}
	m.store.Reset()
	return m
}

func handleTogglePause(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.session == nil || m.session.finished {
		return m, nil, true
	}
	if m.store.Paused() {
		m.store.Resume()
		m.session.timer.Resume()
	} else {
		m.store.Pause()
		m.session.timer.Pause()
	}
	return m, nil, true
}

func handleSkip(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.session == nil || m.session.finished {
		return m, nil, true
	}
	m.store.Resume()
	return m.finishExercise(models.ExerciseSkipped), nil, true
}

func handleAbandon(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m = m.abandon()
	m.screen = ScreenIntro
	m.stagger = NewStagger(m.engine, m.store.Len())
	m.stagger.Finish()
	return m, nil, true
}

func (m MainModel) cardHeight() int {
	return arc.NewRing(m.opts.Geometry).Rows() + 6
}

func (m MainModel) viewRoutine() string {
	th := m.opts.Theme
	sess := m.session
	var b strings.Builder

	b.WriteString(th.Header.Render("Morning Stretch"))
	b.WriteString("  ")
	b.WriteString(th.Dim.Render(FormatExerciseCount(m.store.Index(), m.store.Len())))
	b.WriteString("\n\n")

	if sess == nil {
		return b.String()
	}

	label := strconv.Itoa(sess.remaining)
	status := th.Dim.Render(FormatTimeRemaining(sess.remaining))
	if m.store.Paused() {
		status = th.Paused.Render("PAUSED")
	}
	desc := lipgloss.NewStyle().Width(min(config.MaxDescriptionWidth, m.contentWidth())).Render(sess.exercise.Description)
	card := lipgloss.JoinVertical(lipgloss.Center,
		th.Title.Render(sess.exercise.Name),
		"",
		sess.ring.View(label),
		"",
		status,
		th.Text.Render(desc),
	)
	b.WriteString(clipLines(card, m.slide.Offset(), m.cardHeight()+lipgloss.Height(desc)))
	b.WriteString("\n\n")

	overall := m.store.Progress()
	if m.store.Len() > 0 {
		overall += sess.timer.Fraction() / float64(m.store.Len())
	}
	b.WriteString(m.progress.ViewAs(util.ClampFloat(overall, 0, 1)))
	return b.String()
}

func (m MainModel) contentWidth() int {
	if m.width <= 0 {
		return config.MaxDescriptionWidth
	}
	return max(config.MinContentWidth, m.width-6)
}

// clipLines shifts block down by offset rows inside a window of height rows.
func clipLines(block string, offset, height int) string {
	lines := strings.Split(block, "\n")
	if offset > 0 {
		lines = append(make([]string, offset), lines...)
	}
	if offset < 0 && -offset < len(lines) {
		lines = lines[-offset:]
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
