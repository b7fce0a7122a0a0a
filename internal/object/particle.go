package object

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/roids/internal/physics"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// ParticleSize is the debris bounding box edge.
const ParticleSize = 2.0

// Particle is a short-lived piece of cosmetic debris. It never collides and
// never wraps.
type Particle struct {
	Body
	Vel         physics.Vector // Units per second
	Lifetime    float64        // Seconds remaining
	MaxLifetime float64        // Initial lifetime (for fade calculation)
	Drag        float64        // Velocity decay per 1/60s (1.0 = no drag)
}

// NewParticle creates a single particle from the pool.
func NewParticle(pos, vel physics.Vector, lifetime float64) *Particle {
	p := particlePool.Get().(*Particle)
	p.Pos = pos
	p.Hidden = false
	p.Vel = vel
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.95
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnExplosion creates count particles bursting out of pos.
func SpawnExplosion(pos physics.Vector, count int, speed, lifetime float64, rng *rand.Rand) []*Particle {
	particles := make([]*Particle, 0, count)
	for i := 0; i < count; i++ {
		// Random speed variation (50% to 150%)
		spd := speed * (0.5 + rng.Float64())
		// Random lifetime variation (50% to 100%)
		life := lifetime * (0.5 + rng.Float64()*0.5)

		vel := physics.FromAngle(rng.Float64() * 360).Scale(spd)
		particles = append(particles, NewParticle(pos, vel, life))
	}
	return particles
}

// Update moves the particle and burns its lifetime.
func (p *Particle) Update(ctx UpdateContext) {
	dt := ctx.Delta.Seconds()

	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return
	}

	dragFactor := math.Pow(p.Drag, dt*60) // Normalize drag to ~60fps
	p.Vel = p.Vel.Scale(dragFactor)
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
}

// Expired reports whether the particle should be removed.
func (p *Particle) Expired() bool {
	return p.Lifetime <= 0
}

// Bounds returns the particle's box centred on its position.
func (p *Particle) Bounds() physics.Rect {
	return physics.RectCentered(p.Pos, ParticleSize, ParticleSize)
}

// Draw hands the particle to the renderer, fading with remaining lifetime.
func (p *Particle) Draw(r Renderer) {
	if p.Hidden || p.Expired() {
		return
	}
	fade := 1.0
	if p.MaxLifetime > 0 {
		fade = p.Lifetime / p.MaxLifetime
	}
	r.DrawSprite(Sprite{Kind: KindDebris, Bounds: p.Bounds(), Fade: fade})
}
