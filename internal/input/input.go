// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"sync"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, never key releases.
const keyHoldDuration = 30 * time.Millisecond

// Actions is the set of discrete key-press events seen during one frame.
type Actions struct {
	Shoot   bool
	Spawn   bool
	Restart bool
	Quit    bool
}

// Any reports whether any action was pressed.
func (a Actions) Any() bool {
	return a.Shoot || a.Spawn || a.Restart || a.Quit
}

// Input represents the current frame's input state: held keys plus the
// discrete presses that arrived since the previous frame.
type Input struct {
	Left    bool
	Right   bool
	Thrust  bool
	Shoot   bool
	Spawn   bool
	Restart bool
	Quit    bool
	Pressed Actions
	Raw     []byte // Bytes received this frame (for inactivity tracking)
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	left    time.Time
	right   time.Time
	thrust  time.Time
	shoot   time.Time
	spawn   time.Time
	restart time.Time
	quit    time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch        chan byte
	done      chan struct{} // Closed by Close; stops the reader goroutine
	exited    chan struct{} // Closed when the reader goroutine returns
	closeOnce sync.Once
	state     keyState
	closed    bool
	now       func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream until r fails or Close is called.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		defer close(s.exited)
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{
		ch:     make(chan byte, 128),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
		now:    time.Now,
	}
}

// Close stops the reader goroutine once it next has a byte to deliver, so it
// does not block forever on a stream nobody drains. A goroutine blocked in
// the reader itself returns when the reader does.
func (s *Stream) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Closed reports whether the underlying reader has ended (EOF or error).
func (s *Stream) Closed() bool {
	return s.closed
}

// Reset forgets all held keys, so a key held across a screen change does not
// leak into the next one.
func (s *Stream) Reset() {
	s.state = keyState{}
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// Uses key state persistence to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	now := s.now()
	var buf []byte

	// Drain all available bytes
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	var pressed Actions

	// Parse the collected bytes and update key state timestamps
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// Check for escape sequences (arrow keys, etc.)
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			// CSI sequence: ESC [ <code>
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.thrust = now
				i += 2
				continue
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			case 'B': // Down arrow, unused
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, &pressed, b, now)
	}

	if s.closed {
		pressed.Quit = true
		s.state.quit = now
	}

	// Keys are "held" if seen within hold duration
	held := func(t time.Time) bool { return now.Sub(t) < keyHoldDuration }

	return Input{
		Left:    held(s.state.left),
		Right:   held(s.state.right),
		Thrust:  held(s.state.thrust),
		Shoot:   held(s.state.shoot),
		Spawn:   held(s.state.spawn),
		Restart: held(s.state.restart),
		Quit:    held(s.state.quit),
		Pressed: pressed,
		Raw:     buf,
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, pressed *Actions, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // q or Ctrl-C
		state.quit = now
		pressed.Quit = true
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'k', 'K':
		state.thrust = now
	case ' ':
		state.shoot = now
		pressed.Shoot = true
	case 'j', 'J':
		state.spawn = now
		pressed.Spawn = true
	case 'r', 'R', '\n', '\r':
		state.restart = now
		pressed.Restart = true
	}
}
