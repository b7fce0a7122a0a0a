package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomz197/roids/internal/draw"
	"github.com/tomz197/roids/internal/loop/config"
)

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On game state, death or inactivity transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	dead := c.session != nil && c.session.Dead()
	stateChanged := c.state.GameState != c.state.prevGameState || dead != c.state.wasDead
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if stateChanged || inactiveChanged {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevGameState = c.state.GameState
		c.state.wasDead = dead
		c.state.wasInactive = c.state.isInactive
	}

	c.canvas.Clear()

	if c.state.GameState == GameStatePlaying && !c.state.isInactive {
		c.session.Draw(c.renderer)
	}

	// Render canvas to terminal
	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	// Session labels, then client overlays
	c.renderer.flushText(c.chunkWriter)
	c.drawUI()

	c.audio.flush(c.chunkWriter)
	return c.chunkWriter.Flush()
}

// drawUI draws the client overlay.
func (c *Client) drawUI() {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch c.state.GameState {
	case GameStateStart:
		c.drawStartScreen(centerX, centerY)
	case GameStatePlaying:
		c.drawPlayingHUD(termWidth, termHeight)
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	cw := c.chunkWriter
	title := "INACTIVITY WARNING"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	)
	cw.WriteAt(max(centerX-len(msg)/2, 1), centerY, msg)

	hint := "Press any key to continue"
	cw.WriteAt(centerX-len(hint)/2, centerY+2, hint)
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerX, centerY int) {
	// ASCII art title (figlet "small" font)
	titleArt := []string{
		`    _   ___ _____ ___ ___  ___ ___ ___  ___  `,
		`   /_\ / __|_   _| __| _ \/ _ \_ _|   \/ __| `,
		`  / _ \\__ \ | | | _||   / (_) | || |) \__ \ `,
		` /_/ \_\___/ |_| |___|_|_\\___/___|___/|___/ `,
		`                                             `,
	}

	// Find max width for centering
	titleWidth := 0
	for _, line := range titleArt {
		titleWidth = max(titleWidth, len(line))
	}

	cw := c.chunkWriter
	titleStartY := centerY - 7
	cw.WriteString(draw.ColorBold + draw.ColorBrightCyan)
	for i, line := range titleArt {
		cw.WriteAt(max(centerX-titleWidth/2, 1), titleStartY+i, line)
	}
	cw.WriteString(draw.ColorReset)

	controlsY := titleStartY + len(titleArt) + 1
	controlHeader := "Controls"
	cw.WriteAt(centerX-len(controlHeader)/2, controlsY, controlHeader)

	controlLines := []string{
		"W / Up  . . . . Thrust",
		"A D / < >  . .  Rotate",
		"SPACE  . . . . . Shoot",
		"R / Enter  . . Restart",
		"J  . . . . . . .  Spawn",
		"Q  . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		cw.WriteAt(centerX-len(line)/2, controlsY+1+i, line)
	}

	// Blinking start prompt
	prompt := ">>  Press SPACE to Start  <<"
	if time.Now().UnixMilli()/600%2 != 0 {
		prompt = strings.Repeat(" ", len(prompt))
	}
	cw.WriteAt(centerX-len(prompt)/2, controlsY+len(controlLines)+2, prompt)
}

// drawPlayingHUD draws the ship's health in the top right corner.
// Fixed-width so a shrinking value leaves no residual characters.
func (c *Client) drawPlayingHUD(termWidth, termHeight int) {
	p := c.session.Player()
	health := strings.Repeat("♥", max(p.Health, 0)) + strings.Repeat(" ", max(3-p.Health, 0))
	text := "Health: " + health

	width := len([]rune(text))
	col := max(termWidth-width, 1)

	cw := c.chunkWriter
	cw.WriteString(draw.ColorBrightRed)
	cw.WriteAt(col, 1, text)
	cw.WriteString(draw.ColorReset)
	c.canvas.MarkTextDirty(col, 1, width)

	if c.session.Dead() {
		hint := "Q to quit"
		cw.WriteAt(2, termHeight, hint)
		c.canvas.MarkTextDirty(2, termHeight, len(hint))
	}
}
