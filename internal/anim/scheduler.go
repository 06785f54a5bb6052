// Package anim runs time-based visual interpolations on a cooperative,
// host-driven per-frame loop. It has no knowledge of game semantics.
package anim

import (
	"math"
	"time"
)

// Point is a 2D position used by the positional tween.
type Point struct {
	X, Y float64
}

// Animation is one timed interpolation. Update receives progress in [0, 1]
// every tick; OnComplete fires exactly once when progress reaches 1.
type Animation struct {
	Duration   time.Duration
	Update     func(progress float64)
	OnComplete func()

	start time.Time
}

// Scheduler owns the active animation list. It is driven by the host: the
// UI loop calls Tick once per frame, and RequestFrame is invoked whenever
// another frame is wanted. Not safe for concurrent use; everything runs on
// the host's single update loop.
type Scheduler struct {
	// RequestFrame schedules the next Tick. Set by the host before use.
	RequestFrame func()

	animations []*Animation
	running    bool
	now        func() time.Time
}

// NewScheduler creates an idle scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{now: time.Now}
}

// SetClock overrides the time source. Tests use this to step frames
// deterministically.
func (s *Scheduler) SetClock(now func() time.Time) { s.now = now }

// Running reports whether the loop is active.
func (s *Scheduler) Running() bool { return s.running }

// Active returns the number of in-flight animations.
func (s *Scheduler) Active() int { return len(s.animations) }

// Start begins the loop if it is not already running.
func (s *Scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	if s.RequestFrame != nil {
		s.RequestFrame()
	}
}

// Stop clears the running flag. The loop observes it at the next tick
// boundary; an in-flight tick is unaffected.
func (s *Scheduler) Stop() {
	s.running = false
}

// Add registers an animation and starts the loop if it was idle.
func (s *Scheduler) Add(a *Animation) {
	a.start = s.now()
	if a.Duration <= 0 {
		a.Duration = time.Second
	}
	s.animations = append(s.animations, a)
	s.Start()
}

// Tick advances every active animation to the given time. Finished
// animations are removed after their completion callback fires. While the
// running flag is set the next frame is requested.
func (s *Scheduler) Tick(now time.Time) {
	if !s.running {
		return
	}

	remaining := s.animations[:0]
	for _, a := range s.animations {
		progress := clamp(float64(now.Sub(a.start))/float64(a.Duration), 0, 1)
		a.Update(progress)

		if progress >= 1 {
			if a.OnComplete != nil {
				a.OnComplete()
			}
			continue
		}
		remaining = append(remaining, a)
	}
	s.animations = remaining

	if s.running && s.RequestFrame != nil {
		s.RequestFrame()
	}
}

// MoveToken tweens a position from one point to another with an eased curve.
func (s *Scheduler) MoveToken(from, to Point, duration time.Duration, set func(Point)) {
	s.Add(&Animation{
		Duration: duration,
		Update: func(progress float64) {
			eased := EaseInOutCubic(progress)
			set(Point{
				X: from.X + (to.X-from.X)*eased,
				Y: from.Y + (to.Y-from.Y)*eased,
			})
		},
	})
}

// FadeIn raises opacity linearly from 0 to 1.
func (s *Scheduler) FadeIn(duration time.Duration, set func(opacity float64)) {
	set(0)
	s.Add(&Animation{
		Duration: duration,
		Update:   func(progress float64) { set(progress) },
	})
}

// FadeOut lowers opacity linearly from 1 to 0, then fires the hide side
// effect once the fade completes.
func (s *Scheduler) FadeOut(duration time.Duration, set func(opacity float64), hide func()) {
	s.Add(&Animation{
		Duration:   duration,
		Update:     func(progress float64) { set(1 - progress) },
		OnComplete: hide,
	})
}

// Pulse modulates a scale by 1 + 0.2·sin(π·progress) and resets it to the
// original on completion.
func (s *Scheduler) Pulse(duration time.Duration, set func(scale float64), reset func()) {
	s.Add(&Animation{
		Duration:   duration,
		Update:     func(progress float64) { set(1 + 0.2*math.Sin(progress*math.Pi)) },
		OnComplete: reset,
	})
}

// EaseInOutCubic is the default eased curve: 4t³ below the midpoint,
// 1 − (−2t+2)³/2 above it.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
