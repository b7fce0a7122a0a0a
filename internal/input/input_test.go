package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func feed(s *Stream, data string) {
	for i := 0; i < len(data); i++ {
		s.ch <- data[i]
	}
}

func TestReadInputMapsKeys(t *testing.T) {
	tests := []struct {
		name  string
		bytes string
		check func(Input) bool
	}{
		{"left letter", "a", func(in Input) bool { return in.Left }},
		{"left arrow", "\x1b[D", func(in Input) bool { return in.Left && !in.Pressed.Quit }},
		{"right arrow", "\x1b[C", func(in Input) bool { return in.Right }},
		{"thrust arrow", "\x1b[A", func(in Input) bool { return in.Thrust }},
		{"shoot", " ", func(in Input) bool { return in.Shoot && in.Pressed.Shoot }},
		{"spawn", "j", func(in Input) bool { return in.Pressed.Spawn }},
		{"restart enter", "\r", func(in Input) bool { return in.Pressed.Restart }},
		{"quit", "q", func(in Input) bool { return in.Quit && in.Pressed.Quit }},
		{"combo", "aw ", func(in Input) bool { return in.Left && in.Thrust && in.Pressed.Shoot }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStream()
			feed(s, tt.bytes)
			if in := ReadInput(s); !tt.check(in) {
				t.Errorf("unexpected input for %q: %+v", tt.bytes, in)
			}
		})
	}
}

func TestHeldKeysExpire(t *testing.T) {
	now := time.Unix(100, 0)
	s := newStream()
	s.now = func() time.Time { return now }

	feed(s, "w ")
	in := ReadInput(s)
	if !in.Thrust || !in.Pressed.Shoot {
		t.Fatalf("first frame: %+v", in)
	}

	now = now.Add(10 * time.Millisecond)
	in = ReadInput(s)
	if !in.Thrust {
		t.Fatal("thrust should still be held within hold duration")
	}
	if in.Pressed.Shoot {
		t.Fatal("press events must only be reported once")
	}

	now = now.Add(keyHoldDuration)
	if in = ReadInput(s); in.Thrust || in.Shoot {
		t.Fatalf("keys should be released after hold duration: %+v", in)
	}
}

func TestResetClearsHeldKeys(t *testing.T) {
	s := newStream()
	feed(s, "a")
	ReadInput(s)
	s.Reset()
	if in := ReadInput(s); in.Left {
		t.Fatal("Reset should forget held keys")
	}
}

func TestClosedStreamQuits(t *testing.T) {
	s := newStream()
	close(s.ch)
	in := ReadInput(s)
	if !in.Pressed.Quit || !s.Closed() {
		t.Fatalf("closed stream should report quit: %+v", in)
	}
}

// endlessReader never runs out of key presses.
type endlessReader struct{}

func (endlessReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'x'
	}
	return len(p), nil
}

func TestCloseStopsUndrainedReader(t *testing.T) {
	s := StartStream(bufio.NewReader(endlessReader{}))

	// Nobody drains the stream, so the reader fills the buffer and blocks.
	time.Sleep(20 * time.Millisecond)
	s.Close()
	s.Close()

	select {
	case <-s.exited:
	case <-time.After(time.Second):
		t.Fatal("reader goroutine still running after Close")
	}
}

func TestReaderErrorClosesStream(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("q")))
	select {
	case <-s.exited:
	case <-time.After(time.Second):
		t.Fatal("reader goroutine did not exit at EOF")
	}
	in := ReadInput(s)
	if !in.Pressed.Quit || !s.Closed() {
		t.Fatalf("quit=%v closed=%v, want both", in.Pressed.Quit, s.Closed())
	}
}
