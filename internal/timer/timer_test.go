package timer

import (
	"math/rand"
	"testing"
	"time"

	"pgregory.net/rapid"
)

func TestOneShotFiresOnce(t *testing.T) {
	fired := 0
	tm := New(100*time.Millisecond, true, true, func() { fired++ })

	for i := 0; i < 1000; i++ {
		tm.Update(time.Millisecond)
	}
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	if !tm.Finished() {
		t.Fatal("one-shot timer should be finished after firing")
	}

	tm.Start()
	if tm.Finished() || tm.Paused() {
		t.Fatal("Start should clear finished and paused")
	}
	for i := 0; i < 1000; i++ {
		tm.Update(time.Millisecond)
	}
	if fired != 2 {
		t.Fatalf("fired after restart = %d, want 2", fired)
	}
}

func TestOneShotFiresForTinyDeltas(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		duration := time.Duration(rapid.Int64Range(1, int64(time.Second)).Draw(t, "duration"))
		delta := time.Duration(rapid.Int64Range(1, int64(duration)).Draw(t, "delta"))

		fired := 0
		tm := New(duration, true, true, func() { fired++ })
		steps := int(duration/delta) + 2
		for i := 0; i < steps*2; i++ {
			tm.Update(delta)
		}
		if fired != 1 {
			t.Fatalf("fired = %d, want 1 (duration %v, delta %v)", fired, duration, delta)
		}
	})
}

func TestRepeatingFireCount(t *testing.T) {
	fired := 0
	tm := New(100*time.Millisecond, false, true, func() { fired++ })
	for i := 0; i < 12; i++ {
		tm.Update(30 * time.Millisecond)
	}
	// 360ms elapsed, floor(360/100) = 3
	if fired != 3 {
		t.Fatalf("fired = %d, want 3", fired)
	}
	if tm.Finished() {
		t.Fatal("repeating timer must never finish")
	}
}

func TestRepeatingFireCountBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		duration := time.Duration(rapid.Int64Range(10, 1000).Draw(t, "durationMs")) * time.Millisecond
		delta := time.Duration(rapid.Int64Range(1, 100).Draw(t, "deltaMs")) * time.Millisecond
		updates := rapid.IntRange(0, 500).Draw(t, "updates")

		fired := 0
		tm := New(duration, false, true, func() { fired++ })
		for i := 0; i < updates; i++ {
			tm.Update(delta)
		}
		total := time.Duration(updates) * delta
		if max := int(total / duration); fired > max {
			t.Fatalf("fired %d times, more than floor(%v/%v) = %d", fired, total, duration, max)
		}
		// Each firing consumes at most duration+delta of elapsed time.
		if min := int(total / (duration + delta)); fired < min {
			t.Fatalf("fired %d times, fewer than %d", fired, min)
		}
	})
}

func TestLargeDeltaFiresOnlyOnce(t *testing.T) {
	fired := 0
	tm := New(10*time.Millisecond, false, true, func() { fired++ })
	tm.Update(time.Second)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	if tm.Remaining() != tm.Duration() {
		t.Fatalf("remaining = %v, want reset to %v", tm.Remaining(), tm.Duration())
	}
}

func TestPausedTimerDoesNotAdvance(t *testing.T) {
	fired := 0
	tm := New(50*time.Millisecond, true, false, func() { fired++ })
	if !tm.Paused() {
		t.Fatal("timer without autostart should begin paused")
	}
	tm.Update(time.Second)
	if fired != 0 || tm.Remaining() != 50*time.Millisecond {
		t.Fatalf("paused timer advanced: fired=%d remaining=%v", fired, tm.Remaining())
	}

	tm.Start()
	tm.Update(20 * time.Millisecond)
	tm.Pause()
	tm.Update(time.Second)
	if tm.Remaining() != 30*time.Millisecond {
		t.Fatalf("remaining = %v, want 30ms", tm.Remaining())
	}
	tm.Resume()
	tm.Update(31 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
}

func TestRandomTimerResamplesWithinRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	min, max := 500*time.Millisecond, 2*time.Second
	tm := NewRandom(min, max, rng, false, true, nil)

	seen := map[time.Duration]bool{}
	for i := 0; i < 50; i++ {
		d := tm.Duration()
		if d < min || d > max {
			t.Fatalf("duration %v outside [%v, %v]", d, min, max)
		}
		seen[d] = true
		tm.Update(max + time.Millisecond)
	}
	if len(seen) < 2 {
		t.Fatal("random timer never changed its duration")
	}
}

func TestRandomTimerSwappedBounds(t *testing.T) {
	tm := NewRandom(2*time.Second, time.Second, rand.New(rand.NewSource(1)), true, true, nil)
	if d := tm.Duration(); d < time.Second || d > 2*time.Second {
		t.Fatalf("duration %v outside swapped range", d)
	}
}
