package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/roids/internal/physics"
)

// AsteroidSpawner creates asteroids on the edge of the gameplay area.
type AsteroidSpawner struct {
	Area     physics.Rect
	MinSpeed float64
	MaxSpeed float64
	MaxSpin  float64
	rng      *rand.Rand
}

// NewAsteroidSpawner creates a spawner for area with speeds drawn from
// [minSpeed, maxSpeed].
func NewAsteroidSpawner(area physics.Rect, minSpeed, maxSpeed float64, rng *rand.Rand) *AsteroidSpawner {
	if maxSpeed < minSpeed {
		minSpeed, maxSpeed = maxSpeed, minSpeed
	}
	return &AsteroidSpawner{
		Area:     area,
		MinSpeed: minSpeed,
		MaxSpeed: maxSpeed,
		MaxSpin:  minSpeed,
		rng:      rng,
	}
}

// EdgePoint returns the point where a ray from the area's centre along dir
// leaves the area.
func EdgePoint(area physics.Rect, dir physics.Vector) physics.Vector {
	center := area.Center()
	halfW, halfH := area.W/2, area.H/2
	dir = dir.Normalize()

	// Scale so the dominant axis lands exactly on its edge.
	scale := math.Inf(1)
	if dir.X != 0 && halfW > 0 {
		scale = math.Min(scale, halfW/math.Abs(dir.X))
	}
	if dir.Y != 0 && halfH > 0 {
		scale = math.Min(scale, halfH/math.Abs(dir.Y))
	}
	if math.IsInf(scale, 1) {
		return center
	}
	return area.Wrap(center.Add(dir.Scale(scale)))
}

// Spawn creates one asteroid at a random point of the area's boundary, aimed
// roughly at the centre, with a random speed, size tier and variation.
func (s *AsteroidSpawner) Spawn() *Asteroid {
	angle := s.rng.Float64() * 360
	pos := EdgePoint(s.Area, physics.FromAngle(angle))

	// Aim roughly toward center with some randomness
	toCenter := s.Area.Center().Sub(pos)
	heading := math.Atan2(toCenter.Y, toCenter.X) * 180 / math.Pi
	heading += (s.rng.Float64() - 0.5) * 90 // ±45° variation

	speed := s.MinSpeed + s.rng.Float64()*(s.MaxSpeed-s.MinSpeed)
	size := AsteroidSize(s.rng.Intn(int(AsteroidLarge) + 1))

	a := NewAsteroid(pos, physics.FromAngle(heading), size, speed, s.Area)
	a.RotationSpeed = s.rng.Float64() * s.MaxSpin
	a.Variation = s.rng.Intn(AsteroidVariations)
	return a
}
