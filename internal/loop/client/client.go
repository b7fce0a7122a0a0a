// Package client is the terminal frontend: it reads keys from a terminal
// connection, steps a game session and renders it with half-block characters.
package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/roids/internal/draw"
	"github.com/tomz197/roids/internal/input"
	"github.com/tomz197/roids/internal/loop"
	"github.com/tomz197/roids/internal/loop/config"
	"github.com/tomz197/roids/internal/physics"
)

// Client handles rendering and input for a single terminal connection.
type Client struct {
	session      *loop.Session
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates frame output for chunked writes
	renderer     *canvasRenderer
	audio        *bellAudio
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	termSizeFunc draw.TermSizeFunc
	opts         Options
	logger       *log.Logger
}

// Options configures the client.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Store        loop.HighScoreStore // Optional; scores are not persisted when nil
	Logger       *log.Logger         // Optional; logs are discarded when nil
	Game         config.Game         // Unset fields take the defaults
}

// NewClient creates a client reading keys from r and drawing to w.
func NewClient(r *bufio.Reader, w io.Writer, opts Options) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	opts.Game = opts.Game.WithDefaults()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Username != "" {
		logger = logger.With("user", opts.Username)
	}

	area := physics.Rect{W: opts.Game.Width, H: opts.Game.Height}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight, area.W/area.H)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, area.W, area.H)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Client{
		state:        NewClientState(),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		renderer:     newCanvasRenderer(canvas, area),
		audio:        &bellAudio{},
		writer:       w,
		inputStream:  input.StartStream(r),
		lastInput:    time.Now(),
		termSizeFunc: termSizeFunc,
		opts:         opts,
		logger:       logger,
	}
}

// Run starts the client loop. Blocks until the player quits, the input
// stream closes, the client goes inactive for too long or ctx is done.
func (c *Client) Run(ctx context.Context) error {
	defer c.inputStream.Close()

	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	c.logger.Info("client started")
	defer c.logger.Info("client stopped")

	lastTime := time.Now()

	for c.state.Running {
		if ctx.Err() != nil {
			break
		}

		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		// Process input
		c.processInput()
		if !c.state.Running {
			break
		}

		// Handle screen resize
		c.updateScreen()

		// Handle game state
		switch c.state.GameState {
		case GameStateStart:
			c.updateStartState()
		case GameStatePlaying:
			c.session.Step(c.state.delta, c.state.Input)
		}

		// Draw frame
		if err := c.drawFrame(); err != nil {
			return fmt.Errorf("drawing frame: %w", err)
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// processInput reads input and tracks inactivity.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)

	if len(c.state.Input.Raw) > 0 {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.logger.Info("disconnecting inactive client")
		c.state.Running = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	if c.state.Input.Pressed.Quit {
		c.state.Running = false
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight, c.renderer.aspect())

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize fits a canvas with the given width/height aspect into the
// terminal, capped at the max render resolution, and computes the centering
// offset. One terminal cell is two sub-pixels tall.
func clampTermSize(termWidth, termHeight int, aspect float64) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)

	if w := int(float64(renderHeight) * 2 * aspect); w < renderWidth {
		renderWidth = w
	} else {
		renderHeight = int(float64(renderWidth) / (2 * aspect))
	}
	renderWidth = max(renderWidth, 1)
	renderHeight = max(renderHeight, 1)

	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}

// updateStartState waits on the title screen for the first shot or restart.
func (c *Client) updateStartState() {
	if c.state.Input.Pressed.Shoot || c.state.Input.Pressed.Restart {
		c.startGame()
	}
}

// startGame creates the session. Later rounds restart inside the session.
func (c *Client) startGame() {
	c.inputStream.Reset()
	c.session = loop.NewSession(loop.Options{
		Config: c.opts.Game,
		Audio:  c.audio,
		Store:  c.opts.Store,
		Logger: c.logger,
	})
	c.state.GameState = GameStatePlaying
}
