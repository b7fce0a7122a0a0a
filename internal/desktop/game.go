// Package desktop is the windowed frontend: an ebiten game that drives one
// loop.Session with keyboard input, vector graphics and synthesized audio.
package desktop

import (
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/roids/internal/loop"
	"github.com/tomz197/roids/internal/loop/config"
)

// Options configures the desktop game.
type Options struct {
	Game   config.Game
	Store  loop.HighScoreStore
	Logger *log.Logger
	Mute   bool
	Title  string
}

// Game implements ebiten.Game around a single session.
type Game struct {
	session  *loop.Session
	renderer *vectorRenderer
	logger   *log.Logger
	width    int
	height   int
	title    string
}

var background = color.RGBA{0x05, 0x05, 0x10, 0xff}

// New creates the game and starts its first round.
func New(opts Options) *Game {
	cfg := opts.Game.WithDefaults()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	title := opts.Title
	if title == "" {
		title = "Asteroids"
	}

	var audio loop.Audio = loop.NopAudio{}
	if !opts.Mute {
		audio = newEbitenAudio(logger)
	}

	session := loop.NewSession(loop.Options{
		Config: cfg,
		Audio:  audio,
		Store:  opts.Store,
		Logger: logger,
	})

	return &Game{
		session:  session,
		renderer: newVectorRenderer(session.Area()),
		logger:   logger.WithPrefix("desktop"),
		width:    int(cfg.Width),
		height:   int(cfg.Height),
		title:    title,
	}
}

// Run opens the window and blocks until the player quits or the window is
// closed.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(g.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	g.logger.Info("Window opened", "session", g.session.ID)
	return ebiten.RunGame(g)
}

// Update advances the session by one tick.
func (g *Game) Update() error {
	in := readInput()
	if in.Quit {
		g.logger.Info("Quit requested", "score", g.session.Score(), "high_score", g.session.HighScore())
		return ebiten.Termination
	}

	g.session.Step(time.Second/time.Duration(ebiten.TPS()), in)
	return nil
}

// Draw renders the session onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.renderer.begin(screen)
	g.session.Draw(g.renderer)
	g.renderer.drawHealth(g.session.Player().Health)
}

// Layout keeps the logical screen at the play area size; ebiten scales it to
// the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
