// Package config centralizes all tunable game parameters.
package config

import (
	"time"

	envconfig "github.com/tomz197/roids/internal/config"
)

// Gameplay area in logical units. Frontends scale it to their output.
const (
	AreaWidth  = 800
	AreaHeight = 640
)

// Player
const (
	InvincibilitySeconds = 3.0
	BlinkInterval        = 100 * time.Millisecond
)

// Spawning
const (
	SpawnMinSeconds  = 1.5
	SpawnMaxSeconds  = 4.0
	MinAsteroidSpeed = 15.0
	MaxAsteroidSpeed = 60.0
	InitialAsteroids = 4
)

// Debris
const (
	ExplosionParticles = 12
	ExplosionSpeed     = 60.0
	ExplosionLifetime  = 0.6 // Seconds
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS

	// Max terminal render area; larger terminals get a centered, bordered canvas.
	MaxTermWidth  = 200
	MaxTermHeight = 80
)

// Game is the set of parameters a session is built from.
type Game struct {
	Width, Height    float64
	SpawnMin         time.Duration
	SpawnMax         time.Duration
	MinSpeed         float64
	MaxSpeed         float64
	Invincibility    time.Duration
	BlinkInterval    time.Duration
	InitialAsteroids int
}

// Default returns the built-in parameters.
func Default() Game {
	return Game{
		Width:            AreaWidth,
		Height:           AreaHeight,
		SpawnMin:         seconds(SpawnMinSeconds),
		SpawnMax:         seconds(SpawnMaxSeconds),
		MinSpeed:         MinAsteroidSpeed,
		MaxSpeed:         MaxAsteroidSpeed,
		Invincibility:    seconds(InvincibilitySeconds),
		BlinkInterval:    BlinkInterval,
		InitialAsteroids: InitialAsteroids,
	}
}

// WithDefaults returns g with every unset field taken from Default. The zero
// Game is Default itself; otherwise InitialAsteroids is kept as given, since
// zero asteroids is a valid setting.
func (g Game) WithDefaults() Game {
	d := Default()
	if g == (Game{}) {
		return d
	}
	if g.Width <= 0 || g.Height <= 0 {
		g.Width, g.Height = d.Width, d.Height
	}
	if g.SpawnMin <= 0 {
		g.SpawnMin = d.SpawnMin
	}
	if g.SpawnMax <= 0 {
		g.SpawnMax = d.SpawnMax
	}
	if g.MinSpeed <= 0 {
		g.MinSpeed = d.MinSpeed
	}
	if g.MaxSpeed <= 0 {
		g.MaxSpeed = d.MaxSpeed
	}
	if g.Invincibility <= 0 {
		g.Invincibility = d.Invincibility
	}
	if g.BlinkInterval <= 0 {
		g.BlinkInterval = d.BlinkInterval
	}
	return g
}

// FromEnv returns Default overridden by ASTEROIDS_SPAWN_MIN,
// ASTEROIDS_SPAWN_MAX (seconds) and ASTEROIDS_INITIAL.
func FromEnv() Game {
	g := Default()
	g.SpawnMin = seconds(envconfig.GetEnvFloat("ASTEROIDS_SPAWN_MIN", SpawnMinSeconds))
	g.SpawnMax = seconds(envconfig.GetEnvFloat("ASTEROIDS_SPAWN_MAX", SpawnMaxSeconds))
	g.InitialAsteroids = envconfig.GetEnvInt("ASTEROIDS_INITIAL", InitialAsteroids)
	if g.InitialAsteroids < 0 {
		g.InitialAsteroids = 0
	}
	return g
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
