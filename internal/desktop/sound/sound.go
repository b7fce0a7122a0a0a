// Package sound synthesizes the game's sound effects and music as raw PCM:
// signed 16-bit little-endian stereo, the format ebiten's audio players take.
package sound

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"
)

// SampleRate is the sample rate of every clip.
const SampleRate = 44100

// bytesPerFrame is one stereo frame of two 16-bit samples.
const bytesPerFrame = 4

// Wave is an oscillator shape evaluated at phase in [0, 1).
type Wave func(phase float64) float64

// Sine is a pure tone.
func Sine(phase float64) float64 { return math.Sin(2 * math.Pi * phase) }

// Square is a hard-edged retro tone.
func Square(phase float64) float64 {
	if phase < 0.5 {
		return 1
	}
	return -1
}

// Triangle sits between Sine and Square.
func Triangle(phase float64) float64 {
	return 4*math.Abs(phase-math.Floor(phase+0.5)) - 1
}

func frames(d time.Duration) int {
	return int(d.Seconds() * SampleRate)
}

// Sweep renders a tone gliding from one frequency to another with a linear
// fade out.
func Sweep(from, to float64, d time.Duration, volume float64, wave Wave) []byte {
	n := frames(d)
	samples := make([]float64, n)
	phase := 0.0
	for i := range samples {
		t := float64(i) / float64(max(n, 1))
		freq := from + (to-from)*t
		samples[i] = wave(phase) * volume * (1 - t)
		phase += freq / SampleRate
		phase -= math.Floor(phase)
	}
	return Encode(samples)
}

// Noise renders a decaying noise burst, low-passed by smooth. Equal seeds give
// equal clips.
func Noise(d time.Duration, volume, smooth float64, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	n := frames(d)
	samples := make([]float64, n)
	prev := 0.0
	for i := range samples {
		t := float64(i) / float64(max(n, 1))
		white := rng.Float64()*2 - 1
		prev += (white - prev) * (1 - smooth)
		samples[i] = prev * volume * math.Pow(1-t, 2)
	}
	return Encode(samples)
}

// Note is one step of a melody. A zero frequency is a rest.
type Note struct {
	Freq float64
	Dur  time.Duration
}

// Melody renders notes back to back with a short attack and release on each
// so consecutive notes do not click.
func Melody(notes []Note, volume float64, wave Wave) []byte {
	var samples []float64
	for _, note := range notes {
		n := frames(note.Dur)
		ramp := min(n/10, frames(5*time.Millisecond))
		phase := 0.0
		for i := 0; i < n; i++ {
			env := 1.0
			if ramp > 0 && i < ramp {
				env = float64(i) / float64(ramp)
			} else if ramp > 0 && i >= n-ramp {
				env = float64(n-i) / float64(ramp)
			}
			v := 0.0
			if note.Freq > 0 {
				v = wave(phase) * volume * env
			}
			samples = append(samples, v)
			phase += note.Freq / SampleRate
			phase -= math.Floor(phase)
		}
	}
	return Encode(samples)
}

// Encode converts mono samples in [-1, 1] to 16-bit stereo PCM. Out of range
// samples are clipped.
func Encode(samples []float64) []byte {
	out := make([]byte, len(samples)*bytesPerFrame)
	for i, s := range samples {
		s = math.Max(-1, math.Min(1, s))
		v := uint16(int16(s * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame:], v)
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame+2:], v)
	}
	return out
}

// Clips is the full sound set of the game.
type Clips struct {
	Shoot      []byte
	Hit        []byte
	Explosions [3][]byte // Picked at random per explosion
	Music      []byte    // Loops seamlessly
}

// Generate renders every clip.
func Generate() Clips {
	const beat = 180 * time.Millisecond
	bass := []Note{
		{55, beat}, {0, beat}, {55, beat}, {65.41, beat},
		{49, beat}, {0, beat}, {49, beat}, {58.27, beat},
	}

	return Clips{
		Shoot: Sweep(1200, 300, 120*time.Millisecond, 0.25, Square),
		Hit:   Sweep(220, 40, 400*time.Millisecond, 0.5, Triangle),
		Explosions: [3][]byte{
			Noise(350*time.Millisecond, 0.6, 0.6, 1),
			Noise(500*time.Millisecond, 0.6, 0.8, 2),
			Noise(700*time.Millisecond, 0.7, 0.9, 3),
		},
		Music: Melody(bass, 0.2, Triangle),
	}
}
