// Package loop runs a single game session: the per-frame update, the
// collision pass, spawning, scoring and the restart flow.
package loop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tomz197/roids/internal/loop/config"
	"github.com/tomz197/roids/internal/object"
	"github.com/tomz197/roids/internal/physics"
	"github.com/tomz197/roids/internal/timer"
)

// Options configures a Session. Nil collaborators select no-op defaults and
// unset Config fields are filled by config.Game.WithDefaults.
type Options struct {
	Config config.Game
	Audio  Audio
	Store  HighScoreStore
	Logger *log.Logger
	Rand   *rand.Rand
}

// Session holds all state of one game: the player, the live entity sets,
// the deferred queues and the timers. It is not safe for concurrent use; the
// owning frontend calls Step and Draw from a single goroutine.
type Session struct {
	ID string

	cfg    config.Game
	area   physics.Rect
	rng    *rand.Rand
	logger *log.Logger
	audio  Audio
	store  HighScoreStore

	player    *object.Player
	asteroids []*object.Asteroid
	bullets   []*object.Bullet
	debris    []*object.Particle

	pendingAsteroids []*object.Asteroid // Admitted at the next admission step
	pendingBullets   []*object.Bullet   // Fired this frame, admitted after culling
	culledBullets    []bool             // Indexed like bullets
	spentBullets     []bool             // Bullets hit in the collision pass, removed when it ends
	destroyed        []bool             // Asteroids destroyed by the collision pass

	spawner            *object.AsteroidSpawner
	spawnTimer         *timer.Timer
	invincibilityTimer *timer.Timer
	blinkTimer         *timer.Timer
	grid               *physics.SpatialGrid

	score     int
	highScore int
	dead      bool

	scoreLabel     *object.Label
	highScoreLabel *object.Label
	gameOverLabel  *object.Label
	restartLabel   *object.Label
}

// broadPhaseCellSize must be at least the largest asteroid box edge.
const broadPhaseCellSize = 64

// NewSession creates a session, loads the stored high score and starts the
// first round.
func NewSession(opts Options) *Session {
	cfg := opts.Config.WithDefaults()
	audio := opts.Audio
	if audio == nil {
		audio = NopAudio{}
	}
	store := opts.Store
	if store == nil {
		store = nopStore{}
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	id := uuid.NewString()
	area := physics.Rect{W: cfg.Width, H: cfg.Height}
	s := &Session{
		ID:      id,
		cfg:     cfg,
		area:    area,
		rng:     rng,
		logger:  logger.WithPrefix("session").With("id", id),
		audio:   audio,
		store:   store,
		player:  object.NewPlayer(area.Center()),
		spawner: object.NewAsteroidSpawner(area, cfg.MinSpeed, cfg.MaxSpeed, rng),
		grid:    physics.NewSpatialGrid(area, broadPhaseCellSize),
	}

	s.spawnTimer = timer.NewRandom(cfg.SpawnMin, cfg.SpawnMax, rng, false, true, s.spawnAsteroid)
	s.invincibilityTimer = timer.New(cfg.Invincibility, true, false, s.endInvincibility)
	s.blinkTimer = timer.New(cfg.BlinkInterval, false, false, s.blink)
	s.initLabels()

	high, err := store.Load()
	if err != nil {
		s.logger.Warn("loading high score", "err", err)
		high = 0
	}
	s.highScore = high

	s.reset()
	s.audio.Play(CueMusicStart)
	s.logger.Info("session started", "highScore", s.highScore)
	return s
}

// Restart begins a new round. The high score survives.
func (s *Session) Restart() {
	s.reset()
	s.audio.Play(CueMusicStart)
	s.logger.Info("session restarted")
}

// reset clears all round state and queues the initial asteroids.
func (s *Session) reset() {
	clear(s.asteroids)
	s.asteroids = s.asteroids[:0]
	clear(s.bullets)
	s.bullets = s.bullets[:0]
	clear(s.pendingAsteroids)
	s.pendingAsteroids = s.pendingAsteroids[:0]
	clear(s.pendingBullets)
	s.pendingBullets = s.pendingBullets[:0]
	for _, p := range s.debris {
		object.ReleaseObject(p)
	}
	clear(s.debris)
	s.debris = s.debris[:0]

	s.dead = false
	s.setScore(0)
	s.player.Reset(s.area.Center())

	s.spawnTimer.Start()
	s.invincibilityTimer.Pause()
	s.blinkTimer.Pause()

	for i := 0; i < s.cfg.InitialAsteroids; i++ {
		s.pendingAsteroids = append(s.pendingAsteroids, s.spawner.Spawn())
	}
}

// Player returns the session's ship.
func (s *Session) Player() *object.Player { return s.player }

// Asteroids returns the live asteroids. The slice is owned by the session.
func (s *Session) Asteroids() []*object.Asteroid { return s.asteroids }

// PendingAsteroids returns asteroids waiting for admission.
func (s *Session) PendingAsteroids() []*object.Asteroid { return s.pendingAsteroids }

// Bullets returns the live bullets. The slice is owned by the session.
func (s *Session) Bullets() []*object.Bullet { return s.bullets }

// Debris returns the live explosion particles.
func (s *Session) Debris() []*object.Particle { return s.debris }

// Score returns the current round's score.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score seen by this session or loaded from the
// store.
func (s *Session) HighScore() int { return s.highScore }

// Dead reports whether the round is over and waiting for a restart.
func (s *Session) Dead() bool { return s.dead }

// Area returns the gameplay rectangle.
func (s *Session) Area() physics.Rect { return s.area }

// QueueAsteroid schedules a for admission at the next admission step.
func (s *Session) QueueAsteroid(a *object.Asteroid) {
	s.pendingAsteroids = append(s.pendingAsteroids, a)
}

func (s *Session) setScore(score int) {
	s.score = score
	if s.score > s.highScore {
		s.highScore = s.score
	}
	s.updateScoreLabels()
}

func (s *Session) addScore(points int) {
	s.setScore(s.score + points)
}
