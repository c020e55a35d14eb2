package tween

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearInterpolation(t *testing.T) {
	e := NewEngine()
	var values []float64
	completed := 0
	e.To(Spec{
		From:       0,
		To:         10,
		Duration:   time.Second,
		OnUpdate:   func(v float64) { values = append(values, v) },
		OnComplete: func() { completed++ },
	})

	for i := 0; i < 4; i++ {
		e.Step(250 * time.Millisecond)
	}
	e.Step(250 * time.Millisecond)

	require.Len(t, values, 4)
	assert.InDeltaSlice(t, []float64{2.5, 5, 7.5, 10}, values, 1e-9)
	assert.Equal(t, 1, completed)
	assert.Equal(t, 0, e.Active())
}

func TestDelayPostponesUpdates(t *testing.T) {
	e := NewEngine()
	var values []float64
	tw := e.To(Spec{
		From:     0,
		To:       1,
		Duration: time.Second,
		Delay:    500 * time.Millisecond,
		OnUpdate: func(v float64) { values = append(values, v) },
	})

	e.Step(400 * time.Millisecond)
	assert.Empty(t, values)
	assert.Equal(t, 0.0, tw.Progress())

	e.Step(600 * time.Millisecond)
	require.Len(t, values, 1)
	assert.InDelta(t, 0.5, values[0], 1e-9)
}

func TestPauseDoesNotConsumeDuration(t *testing.T) {
	e := NewEngine()
	completed := false
	tw := e.To(Spec{From: 0, To: 1, Duration: time.Second, OnComplete: func() { completed = true }})

	e.Step(600 * time.Millisecond)
	tw.Pause()
	for i := 0; i < 100; i++ {
		e.Step(time.Second)
	}
	assert.False(t, completed)
	assert.InDelta(t, 0.6, tw.Progress(), 1e-9)

	tw.Resume()
	e.Step(300 * time.Millisecond)
	assert.False(t, completed)
	e.Step(100 * time.Millisecond)
	assert.True(t, completed)
}

func TestKillFromSiblingCallbackSkipsSameStep(t *testing.T) {
	e := NewEngine()
	var second *Tween
	secondCalls := 0
	e.To(Spec{From: 0, To: 1, Duration: time.Second, OnUpdate: func(float64) { second.Kill() }})
	second = e.To(Spec{From: 0, To: 1, Duration: time.Second, OnUpdate: func(float64) { secondCalls++ }})

	e.Step(100 * time.Millisecond)
	e.Step(100 * time.Millisecond)
	assert.Equal(t, 0, secondCalls)
	assert.Equal(t, 1, e.Active())
}

func TestKillInsideOwnUpdateSuppressesComplete(t *testing.T) {
	e := NewEngine()
	var tw *Tween
	completed := false
	tw = e.To(Spec{
		From:       0,
		To:         1,
		Duration:   time.Second,
		OnUpdate:   func(float64) { tw.Kill() },
		OnComplete: func() { completed = true },
	})
	e.Step(2 * time.Second)
	assert.False(t, completed)
	assert.True(t, tw.Killed())
}

func TestEases(t *testing.T) {
	for name, ease := range map[string]Ease{"linear": Linear, "inQuad": InQuad, "outQuad": OutQuad, "outCubic": OutCubic, "inOutSine": InOutSine} {
		assert.InDelta(t, 0, ease(0), 1e-9, name)
		assert.InDelta(t, 1, ease(1), 1e-9, name)
	}
	assert.Greater(t, OutCubic(0.5), 0.5)
	assert.InDelta(t, 0.25, InQuad(0.5), 1e-9)
	assert.InDelta(t, 0.75, OutQuad(0.5), 1e-9)
	assert.InDelta(t, 0.5, InOutSine(0.5), 1e-9)
}

func TestKillAll(t *testing.T) {
	e := NewEngine()
	calls := 0
	for i := 0; i < 3; i++ {
		e.To(Spec{From: 0, To: 1, Duration: time.Second, OnUpdate: func(float64) { calls++ }})
	}
	e.KillAll()
	e.Step(time.Second)
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, e.Active())
}
