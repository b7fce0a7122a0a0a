package object

import (
	"math"

	"github.com/tomz197/roids/internal/physics"
)

// Ship outline in local coordinates (Y up, nose along +X).
var shipShape = []physics.Vector{
	{X: 16, Y: 0},
	{X: -12, Y: 11},
	{X: -6, Y: 0},
	{X: -12, Y: -11},
}

// asteroidShapes holds radius multipliers per texture variation; each entry
// is one vertex of a jagged outline, evenly spaced around the centre.
var asteroidShapes = [AsteroidVariations][]float64{
	{1.0, 0.85, 0.95, 0.75, 1.0, 0.9, 0.8, 0.95, 0.85, 0.9},
	{0.9, 1.0, 0.7, 0.95, 0.85, 1.0, 0.75, 0.9, 1.0, 0.8},
	{0.8, 0.95, 1.0, 0.85, 0.7, 0.95, 1.0, 0.8, 0.9, 1.0},
}

// Outline appends the closed polygon of a player or asteroid sprite to dst in
// gameplay space. Other kinds have no outline and leave dst unchanged.
func Outline(dst []physics.Vector, s Sprite) []physics.Vector {
	center := s.Bounds.Center()
	sin, cos := math.Sincos(s.Rotation * math.Pi / 180)

	switch s.Kind {
	case KindPlayer:
		for _, v := range shipShape {
			dst = append(dst, center.Add(physics.Vec(v.X*cos-v.Y*sin, v.X*sin+v.Y*cos)))
		}
	case KindAsteroid:
		shape := asteroidShapes[0]
		if s.Variation >= 0 && s.Variation < len(asteroidShapes) {
			shape = asteroidShapes[s.Variation]
		}
		radius := s.Bounds.W / 2
		step := 2 * math.Pi / float64(len(shape))
		rot := s.Rotation * math.Pi / 180
		for i, m := range shape {
			a := rot + float64(i)*step
			dst = append(dst, center.Add(physics.Vec(math.Cos(a)*radius*m, math.Sin(a)*radius*m)))
		}
	}
	return dst
}
