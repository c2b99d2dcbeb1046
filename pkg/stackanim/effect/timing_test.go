package effect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEaseOutExpoBounds(t *testing.T) {
	assert.Equal(t, 0.0, EaseOutExpo(0))
	assert.Equal(t, 1.0, EaseOutExpo(1))
	assert.Equal(t, 1.0, EaseOutExpo(2))
	assert.InDelta(t, 0.96875, EaseOutExpo(0.5), 1e-9)
}

func TestTimingDoesNothingBeforeStart(t *testing.T) {
	tm := NewTiming(10, 0, 100*time.Millisecond)
	tm.Tick(time.Second)

	assert.Equal(t, 10.0, tm.Value())
	assert.False(t, tm.Finished())
}

func TestTimingFinishesOnce(t *testing.T) {
	calls := 0
	tm := NewTiming(0, 100, 100*time.Millisecond)
	require.True(t, tm.Start(func() { calls++ }))

	tm.Tick(50 * time.Millisecond)
	assert.Greater(t, tm.Value(), 50.0, "ease out is past halfway at half time")
	assert.Less(t, tm.Value(), 100.0)
	assert.Equal(t, 0, calls)

	tm.Tick(50 * time.Millisecond)
	assert.Equal(t, 100.0, tm.Value())
	assert.True(t, tm.Finished())
	assert.Equal(t, 1, calls)

	tm.Tick(time.Second)
	assert.Equal(t, 100.0, tm.Value())
	assert.Equal(t, 1, calls)
}

func TestTimingStartIsLatched(t *testing.T) {
	first, second := 0, 0
	tm := NewTiming(0, 1, 10*time.Millisecond)

	assert.True(t, tm.Start(func() { first++ }))
	tm.Tick(5 * time.Millisecond)
	assert.False(t, tm.Start(func() { second++ }))
	assert.Equal(t, 5*time.Millisecond, tm.Elapsed(), "restart must not reset progress")

	tm.Tick(5 * time.Millisecond)
	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second)
}

func TestTimingStopSuppressesCompletion(t *testing.T) {
	calls := 0
	tm := NewTiming(0, 1, 10*time.Millisecond)
	tm.Start(func() { calls++ })
	tm.Tick(5 * time.Millisecond)
	v := tm.Value()

	tm.Stop()
	tm.Tick(time.Second)

	assert.Equal(t, 0, calls)
	assert.False(t, tm.Finished())
	assert.Equal(t, v, tm.Value())
}

func TestTimingZeroDurationCompletesOnFirstTick(t *testing.T) {
	calls := 0
	tm := NewTiming(5, 9, 0)
	tm.Start(func() { calls++ })
	tm.Tick(0)

	assert.Equal(t, 9.0, tm.Value())
	assert.Equal(t, 1, calls)
}

func TestTimingNilCallback(t *testing.T) {
	tm := NewTiming(0, 1, time.Millisecond)
	tm.Start(nil)
	assert.NotPanics(t, func() { tm.Tick(time.Millisecond) })
	assert.True(t, tm.Finished())
}
