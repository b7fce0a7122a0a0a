package object

import "github.com/tomz197/roids/internal/physics"

// Kind identifies which sprite family a renderer should draw.
type Kind int

const (
	KindPlayer Kind = iota
	KindAsteroid
	KindBullet
	KindDebris
)

// Sprite is everything a renderer needs to draw one object. Coordinates are in
// gameplay space with Y pointing up.
type Sprite struct {
	Kind      Kind
	Size      int          // Asteroid size tier
	Variation int          // Texture variation (0..2)
	Bounds    physics.Rect // Bounding box at the current position
	Rotation  float64      // Degrees, counter-clockwise
	Fade      float64      // 1 = fully opaque, 0 = gone (debris)
}

// Renderer is the rendering collaborator. Implementations only read the
// values they are handed.
type Renderer interface {
	DrawSprite(s Sprite)
	DrawText(l Label)
}
