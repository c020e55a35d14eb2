package tui

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/akyairhashvil/morning-stretch/internal/audio"
	"github.com/akyairhashvil/morning-stretch/internal/catalog"
	"github.com/akyairhashvil/morning-stretch/internal/config"
	"github.com/akyairhashvil/morning-stretch/internal/database"
	"github.com/akyairhashvil/morning-stretch/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

type testEnv struct {
	rec *audio.Recorder
}

func newTestModel(t *testing.T, repo database.RunRepository, n int, d time.Duration) (MainModel, *testEnv) {
	t.Helper()
	rec := audio.NewRecorder()
	cues := audio.NewRegistry(audio.Assets{audio.CueStart: "up", audio.CueWarning: "down"}, rec.Factory(), nil)
	m := NewMainModel(context.Background(), Options{
		Repo:    repo,
		Catalog: &catalog.Catalog{Exercises: testutil.Exercises(n, d)},
		Cues:    cues,
		Rand:    rand.New(rand.NewPCG(7, 7)),
	})
	m.width, m.height = 100, 40
	return m, &testEnv{rec: rec}
}

func press(t *testing.T, m MainModel, msg tea.KeyMsg) (MainModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MainModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	spaceKey = runes(" ")
	escKey   = tea.KeyMsg{Type: tea.KeyEscape}
)

// advance steps the model frame by frame for at least d.
func advance(m MainModel, d time.Duration) MainModel {
	frames := int(d/config.FrameInterval) + 1
	for i := 0; i < frames; i++ {
		m = m.step(config.FrameInterval)
	}
	return m
}
