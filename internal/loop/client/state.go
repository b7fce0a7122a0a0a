package client

import (
	"time"

	"github.com/tomz197/roids/internal/object"
)

// GameState represents the current game phase for a client.
type GameState int

const (
	GameStateStart   GameState = iota // Title screen
	GameStatePlaying                  // A session is running (alive or dead)
)

// ClientState holds per-connection state that is not part of the session.
type ClientState struct {
	Input         object.Input
	GameState     GameState
	Running       bool          // Client loop running
	delta         time.Duration // Frame delta time
	isInactive    bool          // Whether the client is in inactive warning state
	prevGameState GameState     // Game state drawn last frame
	wasDead       bool          // Session death state drawn last frame
	wasInactive   bool          // Inactivity state drawn last frame
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		GameState: GameStateStart,
		Running:   true,
	}
}
