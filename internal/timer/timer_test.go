package timer

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/akyairhashvil/morning-stretch/internal/arc"
	"github.com/akyairhashvil/morning-stretch/internal/audio"
	"github.com/akyairhashvil/morning-stretch/internal/tween"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	offsets []float64
}

func (f *fakeTarget) SetStrokeDashOffset(v float64) { f.offsets = append(f.offsets, v) }

func (f *fakeTarget) last() float64 { return f.offsets[len(f.offsets)-1] }

type harness struct {
	engine    *tween.Engine
	target    *fakeTarget
	rec       *audio.Recorder
	cues      *audio.Registry
	ticks     []int
	completes int
	order     []string
}

func newHarness() *harness {
	rec := audio.NewRecorder()
	return &harness{
		engine: tween.NewEngine(),
		target: &fakeTarget{},
		rec:    rec,
		cues:   audio.NewRegistry(audio.Assets{audio.CueStart: "up", audio.CueWarning: "down"}, rec.Factory(), nil),
	}
}

func (h *harness) start(t *testing.T, d, leadIn time.Duration) *Timer {
	t.Helper()
	tm, err := New(h.target, Options{
		Duration: d,
		LeadIn:   leadIn,
		OnTick: func(r int) {
			h.ticks = append(h.ticks, r)
			h.order = append(h.order, "tick")
		},
		OnComplete: func() {
			h.completes++
			h.order = append(h.order, "complete")
		},
	}, h.engine, h.cues, arc.DefaultGeometry())
	require.NoError(t, err)
	return tm
}

func (h *harness) run(steps int, dt time.Duration) {
	for i := 0; i < steps; i++ {
		h.engine.Step(dt)
	}
}

func dedupe(in []int) []int {
	var out []int
	for _, v := range in {
		if len(out) == 0 || out[len(out)-1] != v {
			out = append(out, v)
		}
	}
	return out
}

func TestFiveSecondRun(t *testing.T) {
	h := newHarness()
	tm := h.start(t, 5*time.Second, 0)

	h.run(12, 500*time.Millisecond)

	assert.Equal(t, []int{5, 4, 3, 2, 1, 0}, dedupe(h.ticks))
	assert.Equal(t, 1, h.completes)
	assert.Equal(t, "complete", h.order[len(h.order)-1])
	assert.Equal(t, 0, h.ticks[len(h.ticks)-1])
	assert.Equal(t, 3, h.rec.Plays(audio.CueWarning))
	assert.Equal(t, 1, h.rec.Plays(audio.CueStart))
	assert.Equal(t, Completed, tm.State())
	assert.Equal(t, 0, h.engine.Active())
	assert.InDelta(t, 0, h.target.last(), 1e-9)
}

func TestTicksAreNonIncreasingAtFrameRate(t *testing.T) {
	h := newHarness()
	h.start(t, 7*time.Second, 0)

	h.run(60*8, time.Second/60)

	require.NotEmpty(t, h.ticks)
	for i := 1; i < len(h.ticks); i++ {
		assert.LessOrEqual(t, h.ticks[i], h.ticks[i-1])
	}
	for _, r := range h.ticks[:len(h.ticks)-1] {
		assert.Positive(t, r, "zero reported before the final tick")
	}
	assert.Equal(t, []int{7, 6, 5, 4, 3, 2, 1, 0}, dedupe(h.ticks))
	assert.Equal(t, 3, h.rec.Plays(audio.CueWarning))
	assert.Equal(t, 1, h.completes)
}

func TestTickFiresEveryUpdate(t *testing.T) {
	h := newHarness()
	h.start(t, 10*time.Second, 0)

	h.run(4, 100*time.Millisecond)

	assert.Equal(t, []int{10, 10, 10, 10}, h.ticks)
}

func TestConstructionResetsTargetAndPlaysStart(t *testing.T) {
	h := newHarness()
	h.start(t, 3*time.Second, 0)

	require.Len(t, h.target.offsets, 1)
	assert.InDelta(t, arc.DefaultGeometry().Circumference, h.target.offsets[0], 1e-9)
	assert.Equal(t, 1, h.rec.Plays(audio.CueStart))
	assert.Empty(t, h.ticks)
}

func TestOffsetTracksFraction(t *testing.T) {
	h := newHarness()
	tm := h.start(t, 4*time.Second, 0)

	h.run(1, 2*time.Second)

	c := arc.DefaultGeometry().Circumference
	assert.InDelta(t, c/2, h.target.last(), 1e-9)
	assert.InDelta(t, 0.5, tm.Fraction(), 1e-9)
	assert.Equal(t, 2, tm.Remaining())
}

func TestRejectsInvalidConstruction(t *testing.T) {
	engine := tween.NewEngine()
	target := &fakeTarget{}
	geo := arc.DefaultGeometry()
	cases := []struct {
		name   string
		target arc.Target
		sched  Scheduler
		opts   Options
		want   error
	}{
		{"zero duration", target, engine, Options{}, ErrInvalidDuration},
		{"negative duration", target, engine, Options{Duration: -time.Second}, ErrInvalidDuration},
		{"negative lead-in", target, engine, Options{Duration: time.Second, LeadIn: -1}, ErrInvalidLeadIn},
		{"no target", nil, engine, Options{Duration: time.Second}, ErrNoTarget},
		{"no scheduler", target, nil, Options{Duration: time.Second}, ErrNoScheduler},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tm, err := New(c.target, c.opts, c.sched, nil, geo)
			assert.Nil(t, tm)
			assert.ErrorIs(t, err, c.want)
		})
	}
	assert.Empty(t, target.offsets)
	assert.Equal(t, 0, engine.Active())
}

func TestLeadInDelaysArcNotStartCue(t *testing.T) {
	h := newHarness()
	h.start(t, 2*time.Second, 550*time.Millisecond)

	assert.Equal(t, 1, h.rec.Plays(audio.CueStart))
	h.run(5, 100*time.Millisecond)
	assert.Empty(t, h.ticks)

	h.run(1, 100*time.Millisecond)
	require.Len(t, h.ticks, 1)
	assert.Equal(t, 2, h.ticks[0])

	h.run(30, 100*time.Millisecond)
	assert.Equal(t, 1, h.completes)
}

func TestPauseDoesNotCountAgainstDuration(t *testing.T) {
	h := newHarness()
	tm := h.start(t, 10*time.Second, 0)

	h.run(4, time.Second)
	tm.Pause()
	assert.Equal(t, Paused, tm.State())
	ticksBefore := len(h.ticks)

	h.run(100, time.Second)
	assert.Len(t, h.ticks, ticksBefore, "ticks fired while paused")
	assert.Equal(t, 0, h.completes)

	tm.Resume()
	assert.Equal(t, Running, tm.State())
	h.run(5, time.Second)
	assert.Equal(t, 0, h.completes, "completed before 10s of running time")
	h.run(1, time.Second)
	assert.Equal(t, 1, h.completes)
	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, h.ticks)
}

func TestPauseResumeIdempotent(t *testing.T) {
	h := newHarness()
	tm := h.start(t, 5*time.Second, 0)

	tm.Resume()
	assert.Equal(t, Running, tm.State())
	tm.Pause()
	tm.Pause()
	assert.Equal(t, Paused, tm.State())
	tm.Resume()
	tm.Resume()
	assert.Equal(t, Running, tm.State())

	h.run(10, time.Second)
	assert.Equal(t, 1, h.completes)
}

func TestCancelBeforeFirstTick(t *testing.T) {
	h := newHarness()
	tm := h.start(t, 5*time.Second, 0)

	tm.Cancel()
	h.run(20, time.Second)

	assert.Empty(t, h.ticks)
	assert.Equal(t, 0, h.completes)
	assert.Equal(t, Cancelled, tm.State())
	assert.Equal(t, 0, h.engine.Active())
}

func TestCancelAfterTicks(t *testing.T) {
	h := newHarness()
	tm := h.start(t, 5*time.Second, 0)

	h.run(2, time.Second)
	tm.Cancel()
	tm.Cancel()
	h.run(10, time.Second)

	assert.Equal(t, []int{4, 3}, h.ticks)
	assert.Equal(t, 0, h.completes)
	assert.Equal(t, 1, h.rec.Plays(audio.CueWarning))

	tm.Pause()
	tm.Resume()
	assert.Equal(t, Cancelled, tm.State())
}

func TestCancelWhilePaused(t *testing.T) {
	h := newHarness()
	tm := h.start(t, 5*time.Second, 0)

	tm.Pause()
	tm.Cancel()
	tm.Resume()
	h.run(10, time.Second)

	assert.Equal(t, Cancelled, tm.State())
	assert.Empty(t, h.ticks)
}

func TestCancelAfterCompleteIsNoop(t *testing.T) {
	h := newHarness()
	tm := h.start(t, time.Second, 0)

	h.run(2, time.Second)
	tm.Cancel()
	tm.Pause()

	assert.Equal(t, Completed, tm.State())
	assert.Equal(t, 1, h.completes)
}

func TestCancelFromSiblingTickInSameFrame(t *testing.T) {
	h := newHarness()
	var victim *Timer
	victimTicks := 0

	_, err := New(h.target, Options{
		Duration: 5 * time.Second,
		OnTick:   func(int) { victim.Cancel() },
	}, h.engine, nil, arc.DefaultGeometry())
	require.NoError(t, err)
	victim, err = New(&fakeTarget{}, Options{
		Duration:   5 * time.Second,
		OnTick:     func(int) { victimTicks++ },
		OnComplete: func() { t.Fatalf("cancelled timer completed") },
	}, h.engine, nil, arc.DefaultGeometry())
	require.NoError(t, err)

	h.run(10, time.Second)
	assert.Equal(t, 0, victimTicks)
}

func TestCancelInsideOwnFinalTick(t *testing.T) {
	h := newHarness()
	var tm *Timer
	completed := false
	tm, err := New(h.target, Options{
		Duration: time.Second,
		OnTick: func(r int) {
			if r == 0 {
				tm.Cancel()
			}
		},
		OnComplete: func() { completed = true },
	}, h.engine, nil, arc.DefaultGeometry())
	require.NoError(t, err)

	h.run(2, time.Second)
	assert.False(t, completed)
	assert.Equal(t, Cancelled, tm.State())
}

func TestAudioFailureDoesNotStopTimer(t *testing.T) {
	h := newHarness()
	h.rec.Err = errors.New("no audio device")
	h.start(t, 4*time.Second, 0)

	h.run(4, time.Second)

	assert.Equal(t, 1, h.completes)
	assert.Equal(t, []int{3, 2, 1, 0}, h.ticks)
}

func TestRemainingSecondsAtBoundaries(t *testing.T) {
	d := 5 * time.Second
	for i := 0; i <= 50; i++ {
		f := float64(i) / 50
		want := int(math.Ceil(5 - 5*f - 1e-9))
		if want < 0 {
			want = 0
		}
		assert.Equal(t, want, remainingSeconds(d, f), "fraction %v", f)
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "cancelled", Cancelled.String())
	assert.True(t, Completed.Terminal())
	assert.False(t, Paused.Terminal())
}
