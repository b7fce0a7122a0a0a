package object

import (
	"math"

	"github.com/tomz197/roids/internal/physics"
)

// Player defaults.
const (
	PlayerMaxHealth = 3
	PlayerSpeed     = 10.0 // Thrust velocity; also the rotation and easing rate
	PlayerSize      = 32.0 // Bounding box edge, centred on the position
)

// DamageResult is the outcome of a damage transition.
type DamageResult struct {
	Health int  // Health after the damage was applied
	Died   bool // True only on the transition from alive to dead
}

// Player is the ship controlled by the local input.
type Player struct {
	Body
	Rotation       float64 // Degrees in (-360, 360), 0 = pointing along +X
	Velocity       float64 // Current forward speed (units per tick)
	TargetVelocity float64 // Speed the ship is easing towards
	Speed          float64
	Health         int
	Paused         bool // Ignores input and motion while true
	Invincible     bool // Asteroid contact is ignored while true
}

// NewPlayer creates a ship at pos with full health.
func NewPlayer(pos physics.Vector) *Player {
	return &Player{
		Body:   Body{Pos: pos},
		Speed:  PlayerSpeed,
		Health: PlayerMaxHealth,
	}
}

// Forward returns the unit vector the ship is facing.
func (p *Player) Forward() physics.Vector {
	return physics.FromAngle(p.Rotation)
}

// Update handles rotation, thrust easing, movement and wrapping.
func (p *Player) Update(ctx UpdateContext) {
	if p.Paused {
		return
	}

	// Rotation (left/right), degrees per tick
	turn := p.Speed / 3
	if ctx.Input.Left {
		p.rotate(turn)
	}
	if ctx.Input.Right {
		p.rotate(-turn)
	}

	if ctx.Input.Thrust {
		p.TargetVelocity = p.Speed
	} else {
		p.TargetVelocity = 0
	}

	p.Velocity = physics.MoveTowards(p.Velocity, p.TargetVelocity, ctx.Delta.Seconds()*p.Speed)

	// Velocity is applied per tick, not scaled by delta
	p.Pos = p.Pos.Add(p.Forward().Scale(p.Velocity))

	// Screen wrapping
	p.Pos = ctx.Area.Wrap(p.Pos)
}

func (p *Player) rotate(degrees float64) {
	p.Rotation = math.Mod(p.Rotation+degrees, 360)
}

// ReceiveDamage lowers health by amount. Died is reported exactly once, when
// health first reaches zero or below.
func (p *Player) ReceiveDamage(amount int) DamageResult {
	wasAlive := p.Health > 0
	p.Health -= amount
	return DamageResult{
		Health: p.Health,
		Died:   wasAlive && p.Health <= 0,
	}
}

// Alive reports whether the ship has health left.
func (p *Player) Alive() bool {
	return p.Health > 0
}

// Reset restores a fresh ship at pos.
func (p *Player) Reset(pos physics.Vector) {
	p.Pos = pos
	p.Rotation = 0
	p.Velocity = 0
	p.TargetVelocity = 0
	p.Health = PlayerMaxHealth
	p.Paused = false
	p.Invincible = false
	p.Hidden = false
}

// Bounds returns the bounding box centred on the ship.
func (p *Player) Bounds() physics.Rect {
	return physics.RectCentered(p.Pos, PlayerSize, PlayerSize)
}

// Draw hands the ship's sprite to the renderer.
func (p *Player) Draw(r Renderer) {
	if p.Hidden {
		return
	}
	r.DrawSprite(Sprite{
		Kind:     KindPlayer,
		Bounds:   p.Bounds(),
		Rotation: p.Rotation,
		Fade:     1,
	})
}
