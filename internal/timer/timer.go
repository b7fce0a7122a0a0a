// Package timer provides countdown timers advanced by the frame loop.
package timer

import (
	"math/rand"
	"time"
)

// Timer counts down while running and invokes OnTimeout when the remaining
// time drops below zero. A repeating timer restarts itself after firing, a
// one-shot timer finishes and stays frozen until started again.
//
// Timers are advanced explicitly with Update, once per frame; at most one
// timeout fires per Update regardless of how large delta is.
type Timer struct {
	OnTimeout func()

	duration  time.Duration
	remaining time.Duration
	oneTime   bool
	paused    bool
	finished  bool

	// resample draws a new duration on every start (RandomTimer). nil for
	// fixed timers.
	resample func() time.Duration
}

// New creates a fixed-duration timer. When autoStart is false the timer is
// created paused and must be started with Start.
func New(duration time.Duration, oneTime, autoStart bool, onTimeout func()) *Timer {
	return &Timer{
		OnTimeout: onTimeout,
		duration:  duration,
		remaining: duration,
		oneTime:   oneTime,
		paused:    !autoStart,
	}
}

// NewRandom creates a timer whose duration is redrawn uniformly from
// [min, max] every time it (re)starts. rng may be nil to use the global source.
func NewRandom(min, max time.Duration, rng *rand.Rand, oneTime, autoStart bool, onTimeout func()) *Timer {
	if max < min {
		min, max = max, min
	}
	sample := func() time.Duration {
		f := rand.Float64
		if rng != nil {
			f = rng.Float64
		}
		return min + time.Duration(f()*float64(max-min))
	}

	t := New(sample(), oneTime, autoStart, onTimeout)
	t.resample = sample
	return t
}

// Start (re)starts the countdown from the full duration.
func (t *Timer) Start() {
	if t.resample != nil {
		t.duration = t.resample()
	}
	t.remaining = t.duration
	t.paused = false
	t.finished = false
}

// Pause freezes the countdown.
func (t *Timer) Pause() {
	t.paused = true
}

// Resume continues a paused countdown from where it stopped.
func (t *Timer) Resume() {
	t.paused = false
}

// Update advances the countdown by delta.
func (t *Timer) Update(delta time.Duration) {
	if t.paused || t.finished {
		return
	}
	t.remaining -= delta
	if t.remaining < 0 {
		t.timeout()
	}
}

func (t *Timer) timeout() {
	if t.OnTimeout != nil {
		t.OnTimeout()
	}
	if !t.oneTime {
		t.Start()
	} else {
		t.finished = true
	}
}

// Duration returns the current countdown length.
func (t *Timer) Duration() time.Duration { return t.duration }

// Remaining returns the time left before the next timeout.
func (t *Timer) Remaining() time.Duration { return t.remaining }

// Paused reports whether the countdown is frozen.
func (t *Timer) Paused() bool { return t.paused }

// Finished reports whether a one-shot timer has fired.
func (t *Timer) Finished() bool { return t.finished }

// Running reports whether the timer is counting down.
func (t *Timer) Running() bool { return !t.paused && !t.finished }
