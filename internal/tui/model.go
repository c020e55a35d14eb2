package tui

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/akyairhashvil/morning-stretch/internal/arc"
	"github.com/akyairhashvil/morning-stretch/internal/audio"
	"github.com/akyairhashvil/morning-stretch/internal/catalog"
	"github.com/akyairhashvil/morning-stretch/internal/config"
	"github.com/akyairhashvil/morning-stretch/internal/database"
	"github.com/akyairhashvil/morning-stretch/internal/models"
	"github.com/akyairhashvil/morning-stretch/internal/routine"
	"github.com/akyairhashvil/morning-stretch/internal/tween"
	"github.com/akyairhashvil/morning-stretch/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is one of the three top-level views.
type Screen int

const (
	ScreenIntro Screen = iota
	ScreenRoutine
	ScreenEnd
)

// FrameMsg drives every animation; one arrives per rendered frame.
type FrameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(config.FrameInterval, func(t time.Time) tea.Msg { return FrameMsg(t) })
}

// CuePlayer is the audio registry as seen by the UI.
type CuePlayer interface {
	Play(cue audio.Cue)
	Unlock()
}

// Options carries the collaborators built at start-up.
type Options struct {
	Repo     database.RunRepository
	Catalog  *catalog.Catalog
	Cues     CuePlayer
	Geometry arc.Geometry
	LeadIn   time.Duration
	Theme    Theme
	Logger   *slog.Logger
	Rand     *rand.Rand
}

// MainModel is the root bubbletea model that switches between screens.
type MainModel struct {
	ctx       context.Context
	opts      Options
	keys      *HandlerRegistry
	engine    *tween.Engine
	store     *routine.Store
	screen    Screen
	run       *models.Run
	session   *exerciseSession
	slide     *Slide
	stagger   *Stagger
	confetti  *Confetti
	progress  progress.Model
	results   []models.RunExercise
	lastFrame time.Time
	unlocked  bool
	err       error
	width     int
	height    int
}

func NewMainModel(ctx context.Context, opts Options) MainModel {
	if opts.Logger == nil {
		opts.Logger = util.Logger("tui")
	}
	if opts.Geometry.Circumference == 0 {
		opts.Geometry = arc.DefaultGeometry()
	}
	if opts.Theme.Name == "" {
		opts.Theme = ThemeByName("default")
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	var exercises []models.Exercise
	if opts.Catalog != nil {
		exercises = opts.Catalog.Exercises
	}

	m := MainModel{
		ctx:    ctx,
		opts:   opts,
		keys:   defaultBindings(),
		engine: tween.NewEngine(),
		store:  routine.NewStore(exercises),
		screen: ScreenIntro,
	}
	m.progress = progress.New(
		progress.WithGradient(opts.Theme.ProgressA, opts.Theme.ProgressB),
		progress.WithWidth(config.ProgressBarWidth),
	)
	m.stagger = NewStagger(m.engine, len(exercises))
	return m
}

func (m MainModel) Init() tea.Cmd {
	return frameCmd()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.unlocked && m.opts.Cues != nil {
			m.opts.Cues.Unlock()
			m.unlocked = true
		}
		next, cmd, _ := m.keys.Handle(m, msg.String())
		return next, cmd
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.width > 0 {
			m.progress.Width = util.Clamp(m.width-8, 10, config.ProgressBarWidth)
		}
		return m, nil
	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}
	return m, nil
}

func (m MainModel) handleFrame(now time.Time) (MainModel, tea.Cmd) {
	dt := config.FrameInterval
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame)
	}
	m.lastFrame = now
	return m.step(dt), frameCmd()
}

// step advances all animations by dt and reacts to anything that finished.
func (m MainModel) step(dt time.Duration) MainModel {
	m.engine.Step(dt)
	m.slide.Update()
	m.confetti.Update()

	if m.screen != ScreenRoutine || m.session == nil {
		return m
	}
	if m.session.completed && !m.session.finished {
		m = m.finishExercise(models.ExerciseCompleted)
	}
	if m.session != nil && m.session.gone {
		m = m.advance()
	}
	return m
}

func (m MainModel) View() string {
	var body string
	switch m.screen {
	case ScreenIntro:
		body = m.viewIntro()
	case ScreenRoutine:
		body = m.viewRoutine()
	case ScreenEnd:
		body = m.viewEnd()
	}
	if m.err != nil {
		body += "\n\n" + m.opts.Theme.Error.Render("Error: "+m.err.Error())
	}
	footer := m.opts.Theme.Dim.Render(m.keys.HelpFor(m.screen))
	return m.opts.Theme.Base.Render(body + "\n\n" + footer)
}

func handleQuit(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.screen == ScreenRoutine {
		m = m.abandon()
	}
	m.engine.KillAll()
	return m, tea.Quit, true
}
