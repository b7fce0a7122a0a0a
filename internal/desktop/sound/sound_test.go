package sound

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
	"time"
)

func TestEncodeClipsAndDuplicatesChannels(t *testing.T) {
	out := Encode([]float64{0, 1, -1, 2, -3})
	if len(out) != 5*bytesPerFrame {
		t.Fatalf("len = %d, want %d", len(out), 5*bytesPerFrame)
	}
	want := []int16{0, math.MaxInt16, -math.MaxInt16, math.MaxInt16, -math.MaxInt16}
	for i, w := range want {
		left := int16(binary.LittleEndian.Uint16(out[i*4:]))
		right := int16(binary.LittleEndian.Uint16(out[i*4+2:]))
		if left != w || right != w {
			t.Errorf("frame %d = (%d, %d), want %d on both channels", i, left, right, w)
		}
	}
}

func TestClipLengths(t *testing.T) {
	tests := []struct {
		name string
		clip []byte
		dur  time.Duration
	}{
		{"sweep", Sweep(440, 220, 100*time.Millisecond, 0.5, Sine), 100 * time.Millisecond},
		{"noise", Noise(250*time.Millisecond, 0.5, 0.5, 1), 250 * time.Millisecond},
		{"melody", Melody([]Note{{440, 50 * time.Millisecond}, {0, 50 * time.Millisecond}}, 0.5, Square), 100 * time.Millisecond},
	}
	for _, tt := range tests {
		want := int(tt.dur.Seconds()*SampleRate) * bytesPerFrame
		if len(tt.clip) != want {
			t.Errorf("%s: len = %d, want %d", tt.name, len(tt.clip), want)
		}
	}
}

func TestNoiseIsDeterministic(t *testing.T) {
	a := Noise(50*time.Millisecond, 0.5, 0.5, 42)
	b := Noise(50*time.Millisecond, 0.5, 0.5, 42)
	c := Noise(50*time.Millisecond, 0.5, 0.5, 43)
	if !bytes.Equal(a, b) {
		t.Fatal("same seed produced different clips")
	}
	if bytes.Equal(a, c) {
		t.Fatal("different seeds produced identical clips")
	}
}

func TestRestsAreSilent(t *testing.T) {
	clip := Melody([]Note{{0, 20 * time.Millisecond}}, 1, Square)
	for i, b := range clip {
		if b != 0 {
			t.Fatalf("byte %d = %d in a rest", i, b)
		}
	}
}

func TestWavesStayInRange(t *testing.T) {
	for name, w := range map[string]Wave{"sine": Sine, "square": Square, "triangle": Triangle} {
		for i := 0; i < 100; i++ {
			v := w(float64(i) / 100)
			if v < -1 || v > 1 {
				t.Fatalf("%s(%v) = %v out of [-1, 1]", name, float64(i)/100, v)
			}
		}
	}
}

func TestGenerate(t *testing.T) {
	clips := Generate()
	if len(clips.Shoot) == 0 || len(clips.Hit) == 0 || len(clips.Music) == 0 {
		t.Fatal("empty clip")
	}
	for i, e := range clips.Explosions {
		if len(e) == 0 {
			t.Fatalf("explosion %d is empty", i)
		}
	}
	if len(clips.Music)%bytesPerFrame != 0 {
		t.Fatal("music is not frame aligned")
	}
}
