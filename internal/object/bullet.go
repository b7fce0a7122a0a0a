package object

import "github.com/tomz197/roids/internal/physics"

// BulletSpeed is the default bullet speed in units per second.
const BulletSpeed = 300.0

// BulletSize is the bullet's bounding box edge.
const BulletSize = 8.0

// Bullet is a straight-moving projectile fired by the player.
type Bullet struct {
	Body
	Direction physics.Vector
	Speed     float64
}

// NewBullet creates a bullet at pos travelling along dir.
func NewBullet(pos, dir physics.Vector) *Bullet {
	return &Bullet{
		Body:      Body{Pos: pos},
		Direction: dir.Normalize(),
		Speed:     BulletSpeed,
	}
}

// Update moves the bullet. Bullets never wrap; leaving the area is handled
// by the owner through OffScreen.
func (b *Bullet) Update(ctx UpdateContext) {
	b.Pos = b.Pos.Add(b.Direction.Scale(b.Speed * ctx.Delta.Seconds()))
}

// OffScreen reports whether the bullet's box has left area entirely.
func (b *Bullet) OffScreen(area physics.Rect) bool {
	return !b.Bounds().Overlaps(area)
}

// Bounds returns the bullet's box anchored at its position.
func (b *Bullet) Bounds() physics.Rect {
	return physics.RectAt(b.Pos, BulletSize, BulletSize)
}

// Draw hands the bullet's sprite to the renderer.
func (b *Bullet) Draw(r Renderer) {
	if b.Hidden {
		return
	}
	r.DrawSprite(Sprite{Kind: KindBullet, Bounds: b.Bounds(), Fade: 1})
}
