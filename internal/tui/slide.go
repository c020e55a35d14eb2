package tui

import (
	"math"

	"github.com/akyairhashvil/morning-stretch/internal/config"
	"github.com/akyairhashvil/morning-stretch/internal/tween"
	"github.com/charmbracelet/harmonica"
)

// Slide moves the exercise card vertically. Sliding in rides a critically
// damped spring towards zero; sliding out is an eased tween away from it.
type Slide struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	out    *tween.Tween
}

func NewSlideIn(distance int) *Slide {
	return &Slide{
		spring: harmonica.NewSpring(harmonica.FPS(config.FrameRate), config.SlideFrequency, config.SlideDamping),
		pos:    float64(distance),
	}
}

// Update advances the spring by one frame.
func (s *Slide) Update() {
	if s == nil || s.out != nil {
		return
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, 0)
	if s.Settled() {
		s.pos, s.vel = 0, 0
	}
}

// SlideOut animates the card away over config.SlideOutTime and calls done
// when it is gone.
func (s *Slide) SlideOut(engine *tween.Engine, distance int, done func()) {
	if s.out != nil {
		s.out.Kill()
	}
	from := s.pos
	s.out = engine.To(tween.Spec{
		From:       from,
		To:         float64(distance),
		Duration:   config.SlideOutTime,
		Ease:       tween.InQuad,
		OnUpdate:   func(v float64) { s.pos = v },
		OnComplete: done,
	})
}

// Cancel drops a pending slide-out without calling its completion.
func (s *Slide) Cancel() {
	if s != nil && s.out != nil {
		s.out.Kill()
		s.out = nil
	}
}

func (s *Slide) Offset() int {
	if s == nil {
		return 0
	}
	return int(math.Round(s.pos))
}

func (s *Slide) Settled() bool {
	if s == nil {
		return true
	}
	return s.out == nil && math.Abs(s.pos) < 0.5 && math.Abs(s.vel) < 0.5
}

func (s *Slide) Leaving() bool {
	return s != nil && s.out != nil
}
