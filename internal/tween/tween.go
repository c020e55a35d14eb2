// Package tween interpolates scalar values over time. It owns no clock: the
// host calls Engine.Step once per frame with the elapsed frame time, and every
// callback runs synchronously inside that call.
package tween

import (
	"math"
	"time"
)

// Ease maps linear progress in [0,1] to eased progress.
type Ease func(p float64) float64

func Linear(p float64) float64 { return p }

// InQuad and OutQuad match the "power2" curves used for slides.
func InQuad(p float64) float64 { return p * p }

func OutQuad(p float64) float64 { return 1 - (1-p)*(1-p) }

func OutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

func InOutSine(p float64) float64 {
	return -(math.Cos(math.Pi*p) - 1) / 2
}

// Spec describes one interpolation.
type Spec struct {
	From       float64
	To         float64
	Duration   time.Duration
	Delay      time.Duration
	Ease       Ease
	OnUpdate   func(value float64)
	OnComplete func()
}

// Tween is the handle to a scheduled interpolation.
type Tween struct {
	spec    Spec
	elapsed time.Duration
	paused  bool
	killed  bool
	done    bool
}

func (t *Tween) Pause() {
	if t.killed || t.done {
		return
	}
	t.paused = true
}

func (t *Tween) Resume() {
	if t.killed || t.done {
		return
	}
	t.paused = false
}

// Kill stops the tween for good. No callback fires after Kill returns.
func (t *Tween) Kill() {
	t.killed = true
}

func (t *Tween) Paused() bool { return t.paused }
func (t *Tween) Killed() bool { return t.killed }
func (t *Tween) Done() bool   { return t.done }

// Progress returns linear progress in [0,1], not counting the delay.
func (t *Tween) Progress() float64 {
	if t.done {
		return 1
	}
	active := t.elapsed - t.spec.Delay
	if active <= 0 {
		return 0
	}
	if t.spec.Duration <= 0 || active >= t.spec.Duration {
		return 1
	}
	return float64(active) / float64(t.spec.Duration)
}

func (t *Tween) value(p float64) float64 {
	ease := t.spec.Ease
	if ease == nil {
		ease = Linear
	}
	if p >= 1 {
		return t.spec.To
	}
	return t.spec.From + (t.spec.To-t.spec.From)*ease(p)
}

// advance moves the tween forward and reports whether it is finished.
func (t *Tween) advance(dt time.Duration) bool {
	if t.killed {
		return true
	}
	if t.paused {
		return false
	}
	t.elapsed += dt
	if t.elapsed <= t.spec.Delay {
		return false
	}
	p := t.Progress()
	if t.spec.OnUpdate != nil {
		t.spec.OnUpdate(t.value(p))
	}
	// OnUpdate may kill the tween.
	if t.killed {
		return true
	}
	if p < 1 {
		return false
	}
	t.done = true
	if t.spec.OnComplete != nil {
		t.spec.OnComplete()
	}
	return true
}

// Engine drives a set of tweens.
type Engine struct {
	tweens []*Tween
}

func NewEngine() *Engine {
	return &Engine{}
}

// To schedules a new tween. It starts on the next Step.
func (e *Engine) To(spec Spec) *Tween {
	t := &Tween{spec: spec}
	e.tweens = append(e.tweens, t)
	return t
}

// Step advances all live tweens by dt. Tweens scheduled from a callback start
// on the following Step; tweens killed from a callback do not run again.
func (e *Engine) Step(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	batch := append([]*Tween(nil), e.tweens...)
	for _, t := range batch {
		if t.killed {
			continue
		}
		t.advance(dt)
	}
	live := e.tweens[:0]
	for _, t := range e.tweens {
		if !t.killed && !t.done {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(e.tweens); i++ {
		e.tweens[i] = nil
	}
	e.tweens = live
}

// Active reports the number of tweens still scheduled.
func (e *Engine) Active() int {
	n := 0
	for _, t := range e.tweens {
		if !t.killed && !t.done {
			n++
		}
	}
	return n
}

// KillAll kills every scheduled tween.
func (e *Engine) KillAll() {
	for _, t := range e.tweens {
		t.Kill()
	}
	e.tweens = nil
}
