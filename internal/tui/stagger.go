package tui

import (
	"strings"
	"time"

	"github.com/akyairhashvil/morning-stretch/internal/config"
	"github.com/akyairhashvil/morning-stretch/internal/tween"
)

// Stagger reveals a list of lines one after another, each fading in from a
// small horizontal shift.
type Stagger struct {
	reveal []float64
	tweens []*tween.Tween
}

func NewStagger(engine *tween.Engine, n int) *Stagger {
	s := &Stagger{reveal: make([]float64, n), tweens: make([]*tween.Tween, n)}
	for i := 0; i < n; i++ {
		s.tweens[i] = engine.To(tween.Spec{
			From:     0,
			To:       1,
			Duration: config.StaggerDuration,
			Delay:    config.StaggerDelay + time.Duration(i)*config.StaggerStep,
			Ease:     tween.OutQuad,
			OnUpdate: func(v float64) { s.reveal[i] = v },
		})
	}
	return s
}

// Reveal returns the entrance progress of line i in [0,1].
func (s *Stagger) Reveal(i int) float64 {
	if s == nil || i < 0 || i >= len(s.reveal) {
		return 1
	}
	return s.reveal[i]
}

// Done reports whether every line has fully entered.
func (s *Stagger) Done() bool {
	if s == nil {
		return true
	}
	for _, v := range s.reveal {
		if v < 1 {
			return false
		}
	}
	return true
}

// Finish jumps every line to its final state.
func (s *Stagger) Finish() {
	if s == nil {
		return
	}
	for i, t := range s.tweens {
		t.Kill()
		s.reveal[i] = 1
	}
}

// Stop kills pending tweens without changing what is shown.
func (s *Stagger) Stop() {
	if s == nil {
		return
	}
	for _, t := range s.tweens {
		t.Kill()
	}
}

// Render applies the entrance state to each line.
func (s *Stagger) Render(lines []string, th Theme) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		r := s.Reveal(i)
		switch {
		case r <= 0:
			out[i] = ""
		case r < 0.5:
			out[i] = strings.Repeat(" ", shift(r)) + th.Dim.Render(line)
		default:
			out[i] = strings.Repeat(" ", shift(r)) + line
		}
	}
	return strings.Join(out, "\n")
}

func shift(r float64) int {
	return int((1 - r) * config.StaggerShift)
}
