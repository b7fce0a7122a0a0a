package object

import (
	"math/rand"

	"github.com/tomz197/roids/internal/physics"
)

// AsteroidSize represents the size tier of an asteroid.
type AsteroidSize int

const (
	AsteroidSmall  AsteroidSize = 0 // Cannot split further
	AsteroidMedium AsteroidSize = 1
	AsteroidLarge  AsteroidSize = 2
)

// asteroidTileSize is the bounding box edge of a small asteroid. Each tier up
// adds one more tile.
const asteroidTileSize = 16.0

// ChildSpeedFactor scales a parent's speed for its fragments.
const ChildSpeedFactor = 0.8

// AsteroidVariations is the number of texture variations per size tier.
const AsteroidVariations = 3

// Asteroid is a drifting, screen-wrapping hazard.
type Asteroid struct {
	Body
	Direction     physics.Vector // Unit direction of travel
	Speed         float64        // Units per second
	RotationSpeed float64        // Degrees per tick, cosmetic only
	Rotation      float64        // Current visual rotation in degrees
	Size          AsteroidSize
	Health        int // Hits required to destroy
	Variation     int // Texture variation
	Area          physics.Rect
}

// NewAsteroid creates an asteroid at pos heading along dir. The size is
// clamped to the valid tiers and a zero direction is replaced by the default
// direction.
func NewAsteroid(pos, dir physics.Vector, size AsteroidSize, speed float64, area physics.Rect) *Asteroid {
	if size < AsteroidSmall {
		size = AsteroidSmall
	} else if size > AsteroidLarge {
		size = AsteroidLarge
	}
	return &Asteroid{
		Body:          Body{Pos: pos},
		Direction:     dir.Normalize(),
		Speed:         speed,
		RotationSpeed: 1,
		Size:          size,
		Health:        1,
		Area:          area,
	}
}

// Update moves the asteroid, spins it and wraps it around the gameplay area.
func (a *Asteroid) Update(ctx UpdateContext) {
	dt := ctx.Delta.Seconds()

	a.Pos = a.Pos.Add(a.Direction.Scale(a.Speed * dt))
	a.Rotation += a.RotationSpeed

	a.Pos = a.Area.Wrap(a.Pos)
}

// Bounds returns the square bounding box anchored at the asteroid's position.
func (a *Asteroid) Bounds() physics.Rect {
	edge := float64(a.Size+1) * asteroidTileSize
	return physics.RectAt(a.Pos, edge, edge)
}

// Draw hands the asteroid's sprite to the renderer.
func (a *Asteroid) Draw(r Renderer) {
	if a.Hidden {
		return
	}
	r.DrawSprite(Sprite{
		Kind:      KindAsteroid,
		Size:      int(a.Size),
		Variation: a.Variation,
		Bounds:    a.Bounds(),
		Rotation:  a.Rotation,
		Fade:      1,
	})
}

// Hit applies one bullet hit. Returns true when the asteroid is destroyed.
func (a *Asteroid) Hit() bool {
	a.Health--
	return a.Health <= 0
}

// Reward returns the score for destroying this asteroid.
func (a *Asteroid) Reward() int {
	return (int(a.Size) + 1) * 100
}

// Split returns the fragments left behind when the asteroid is destroyed:
// exactly Size children one tier smaller, or none for the smallest tier.
// Children start at the parent's position with a random direction, 80% of the
// parent's speed and a spin drawn from [0, maxSpin).
func (a *Asteroid) Split(rng *rand.Rand, maxSpin float64) []*Asteroid {
	if a.Size <= AsteroidSmall {
		return nil
	}

	children := make([]*Asteroid, 0, int(a.Size))
	for i := 0; i < int(a.Size); i++ {
		dir := physics.Vec(rng.Float64()*2-1, rng.Float64()*2-1)
		child := NewAsteroid(a.Pos, dir, a.Size-1, a.Speed*ChildSpeedFactor, a.Area)
		child.RotationSpeed = rng.Float64() * maxSpin
		child.Variation = rng.Intn(AsteroidVariations)
		children = append(children, child)
	}
	return children
}
