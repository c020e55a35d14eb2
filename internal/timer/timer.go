// Package timer implements the arc countdown: one session per exercise,
// driven by a tween engine, reporting remaining whole seconds and playing
// warning cues over the last three seconds.
package timer

import (
	"errors"
	"time"

	"github.com/akyairhashvil/morning-stretch/internal/arc"
	"github.com/akyairhashvil/morning-stretch/internal/audio"
	"github.com/akyairhashvil/morning-stretch/internal/config"
	"github.com/akyairhashvil/morning-stretch/internal/tween"
	"github.com/akyairhashvil/morning-stretch/internal/util"
)

var (
	ErrInvalidDuration = errors.New("timer: duration must be positive")
	ErrInvalidLeadIn   = errors.New("timer: lead-in must not be negative")
	ErrNoTarget        = errors.New("timer: render target is required")
	ErrNoScheduler     = errors.New("timer: scheduler is required")
)

// State is the lifecycle state of a session.
type State int

const (
	Running State = iota
	Paused
	Completed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s == Completed || s == Cancelled
}

// Scheduler is the part of the tween engine a timer needs.
type Scheduler interface {
	To(spec tween.Spec) *tween.Tween
}

// Cues plays named audio cues. *audio.Registry satisfies it.
type Cues interface {
	Play(cue audio.Cue)
}

// Options configures one countdown.
type Options struct {
	Duration   time.Duration
	LeadIn     time.Duration
	OnTick     func(remaining int)
	OnComplete func()
}

// Timer is one countdown session. It is not safe for concurrent use; all
// calls and callbacks happen on the host's update loop.
type Timer struct {
	target        arc.Target
	geo           arc.Geometry
	cues          Cues
	duration      time.Duration
	onTick        func(int)
	onComplete    func()
	tw            *tween.Tween
	state         State
	fraction      float64
	lastRemaining int
}

// New validates opts, resets target to an empty ring, plays the start cue and
// schedules the countdown. cues may be nil.
func New(target arc.Target, opts Options, sched Scheduler, cues Cues, geo arc.Geometry) (*Timer, error) {
	if opts.Duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if opts.LeadIn < 0 {
		return nil, ErrInvalidLeadIn
	}
	if target == nil {
		return nil, ErrNoTarget
	}
	if sched == nil {
		return nil, ErrNoScheduler
	}

	t := &Timer{
		target:        target,
		geo:           geo,
		cues:          cues,
		duration:      opts.Duration,
		onTick:        opts.OnTick,
		onComplete:    opts.OnComplete,
		state:         Running,
		lastRemaining: util.CeilSeconds(opts.Duration),
	}

	target.SetStrokeDashOffset(geo.Circumference)
	t.play(audio.CueStart)

	t.tw = sched.To(tween.Spec{
		From:       0,
		To:         1,
		Duration:   opts.Duration,
		Delay:      opts.LeadIn,
		Ease:       tween.Linear,
		OnUpdate:   t.update,
		OnComplete: t.complete,
	})
	return t, nil
}

func (t *Timer) update(fraction float64) {
	if t.state != Running {
		return
	}
	t.fraction = fraction
	t.target.SetStrokeDashOffset(t.geo.Circumference * (1 - fraction))

	remaining := remainingSeconds(t.duration, fraction)
	if remaining != t.lastRemaining && remaining > 0 && remaining <= config.WarningThreshold {
		t.play(audio.CueWarning)
	}
	if t.onTick != nil {
		t.onTick(remaining)
	}
	t.lastRemaining = remaining
}

func (t *Timer) complete() {
	if t.state != Running {
		return
	}
	t.state = Completed
	t.tw = nil
	if t.onComplete != nil {
		t.onComplete()
	}
}

func (t *Timer) play(cue audio.Cue) {
	if t.cues != nil {
		t.cues.Play(cue)
	}
}

// Pause freezes the countdown. No ticks fire until Resume.
func (t *Timer) Pause() {
	if t.state != Running {
		return
	}
	t.state = Paused
	t.tw.Pause()
}

// Resume continues from the frozen fraction.
func (t *Timer) Resume() {
	if t.state != Paused {
		return
	}
	t.state = Running
	t.tw.Resume()
}

// Cancel stops the countdown for good. No OnTick or OnComplete fires after
// Cancel returns, even for a frame that is already being processed.
func (t *Timer) Cancel() {
	if t.state.Terminal() {
		return
	}
	t.state = Cancelled
	if t.tw != nil {
		t.tw.Kill()
		t.tw = nil
	}
}

func (t *Timer) State() State { return t.state }

// Fraction is the elapsed share of the countdown in [0,1].
func (t *Timer) Fraction() float64 { return t.fraction }

// Remaining is the last reported whole seconds left.
func (t *Timer) Remaining() int { return t.lastRemaining }

func (t *Timer) Duration() time.Duration { return t.duration }

// remainingSeconds is ceil(duration × (1 − fraction)) in whole seconds. The
// product is truncated to nanoseconds first so float noise at a second
// boundary cannot push the ceiling up by one.
func remainingSeconds(d time.Duration, fraction float64) int {
	if fraction >= 1 {
		return 0
	}
	left := time.Duration(float64(d) * (1 - fraction))
	return util.CeilSeconds(left)
}
