package anim

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock advances a fake clock by a fixed step per frame.
type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) current() time.Time { return c.now }

func (c *stepClock) advance() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func newTestScheduler(step time.Duration) (*Scheduler, *stepClock) {
	clock := &stepClock{now: time.Unix(0, 0), step: step}
	s := NewScheduler()
	s.SetClock(clock.current)
	s.RequestFrame = func() {}
	return s, clock
}

func TestScheduler_ProgressMonotonicAndCompletesOnce(t *testing.T) {
	t.Parallel()

	s, clock := newTestScheduler(100 * time.Millisecond)

	var progresses []float64
	completions := 0
	s.Add(&Animation{
		Duration:   350 * time.Millisecond,
		Update:     func(p float64) { progresses = append(progresses, p) },
		OnComplete: func() { completions++ },
	})

	for i := 0; i < 10; i++ {
		s.Tick(clock.advance())
	}

	require.NotEmpty(t, progresses)
	assert.GreaterOrEqual(t, progresses[0], 0.0)
	for i := 1; i < len(progresses); i++ {
		assert.GreaterOrEqual(t, progresses[i], progresses[i-1], "progress must be non-decreasing")
	}
	assert.Equal(t, 1.0, progresses[len(progresses)-1], "final progress must be exactly 1")
	assert.Equal(t, 1, completions, "completion fires exactly once")
	assert.Equal(t, 0, s.Active(), "finished animation is removed")
}

func TestScheduler_StartIsIdempotent(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	frames := 0
	s.RequestFrame = func() { frames++ }

	s.Start()
	s.Start()
	s.Start()

	assert.True(t, s.Running())
	assert.Equal(t, 1, frames, "only the first Start schedules a frame")
}

func TestScheduler_AddAutoStarts(t *testing.T) {
	t.Parallel()

	s, _ := newTestScheduler(time.Millisecond)
	assert.False(t, s.Running())

	s.Add(&Animation{Duration: time.Second, Update: func(float64) {}})
	assert.True(t, s.Running())
	assert.Equal(t, 1, s.Active())
}

func TestScheduler_StopIsObservedLazily(t *testing.T) {
	t.Parallel()

	s, clock := newTestScheduler(10 * time.Millisecond)

	updates := 0
	s.Add(&Animation{Duration: time.Second, Update: func(float64) { updates++ }})

	s.Tick(clock.advance())
	require.Equal(t, 1, updates)

	s.Stop()
	s.Tick(clock.advance())
	assert.Equal(t, 1, updates, "no updates after stop takes effect at the tick boundary")
	assert.False(t, s.Running())
}

func TestScheduler_RequestsNextFrameWhileRunning(t *testing.T) {
	t.Parallel()

	clock := &stepClock{now: time.Unix(0, 0), step: 10 * time.Millisecond}
	s := NewScheduler()
	s.SetClock(clock.current)

	frames := 0
	s.RequestFrame = func() { frames++ }

	s.Add(&Animation{Duration: time.Second, Update: func(float64) {}})
	require.Equal(t, 1, frames)

	s.Tick(clock.advance())
	assert.Equal(t, 2, frames)

	s.Stop()
	s.Tick(clock.advance())
	assert.Equal(t, 2, frames, "stopped loop does not reschedule")
}

func TestScheduler_MoveToken(t *testing.T) {
	t.Parallel()

	s, clock := newTestScheduler(250 * time.Millisecond)

	var last Point
	s.MoveToken(Point{X: 0, Y: 0}, Point{X: 100, Y: 50}, time.Second, func(p Point) { last = p })

	s.Tick(clock.advance()) // t = 0.25
	quarter := EaseInOutCubic(0.25)
	assert.InDelta(t, 100*quarter, last.X, 1e-9)
	assert.InDelta(t, 50*quarter, last.Y, 1e-9)

	for i := 0; i < 4; i++ {
		s.Tick(clock.advance())
	}
	assert.InDelta(t, 100, last.X, 1e-9)
	assert.InDelta(t, 50, last.Y, 1e-9)
}

func TestScheduler_FadeAndPulse(t *testing.T) {
	t.Parallel()

	s, clock := newTestScheduler(100 * time.Millisecond)

	var opacity float64 = -1
	s.FadeIn(200*time.Millisecond, func(o float64) { opacity = o })
	assert.Equal(t, 0.0, opacity, "fade-in starts from zero immediately")

	hidden := false
	var outOpacity float64 = -1
	s.FadeOut(200*time.Millisecond, func(o float64) { outOpacity = o }, func() { hidden = true })

	var scale float64
	reset := false
	s.Pulse(200*time.Millisecond, func(sc float64) { scale = sc }, func() { reset = true })

	s.Tick(clock.advance()) // halfway
	assert.InDelta(t, 0.5, opacity, 1e-9)
	assert.InDelta(t, 0.5, outOpacity, 1e-9)
	assert.InDelta(t, 1+0.2*math.Sin(math.Pi/2), scale, 1e-9)
	assert.False(t, hidden)

	s.Tick(clock.advance()) // done
	assert.Equal(t, 1.0, opacity)
	assert.Equal(t, 0.0, outOpacity)
	assert.True(t, hidden, "fade-out hides after completion")
	assert.True(t, reset, "pulse resets on completion")
	assert.Equal(t, 0, s.Active())
}

func TestEaseInOutCubic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, EaseInOutCubic(0))
	assert.Equal(t, 1.0, EaseInOutCubic(1))
	assert.InDelta(t, 0.5, EaseInOutCubic(0.5), 1e-9)
	assert.InDelta(t, 4*0.125*0.125*0.125, EaseInOutCubic(0.125), 1e-9)
	assert.InDelta(t, 1-math.Pow(-2*0.75+2, 3)/2, EaseInOutCubic(0.75), 1e-9)
}
