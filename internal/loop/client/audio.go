package client

import (
	"github.com/tomz197/roids/internal/draw"
	"github.com/tomz197/roids/internal/loop"
)

// bellAudio rings the terminal bell when the ship is hit. Other cues have no
// terminal equivalent.
type bellAudio struct {
	ring bool
}

func (a *bellAudio) Play(cue loop.Cue) {
	if cue == loop.CueHit {
		a.ring = true
	}
}

// flush appends a pending bell to the frame.
func (a *bellAudio) flush(cw *draw.ChunkWriter) {
	if a.ring {
		cw.Bell()
		a.ring = false
	}
}
