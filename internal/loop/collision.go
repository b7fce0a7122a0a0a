package loop

import (
	"github.com/tomz197/roids/internal/loop/config"
	"github.com/tomz197/roids/internal/object"
	"github.com/tomz197/roids/internal/physics"
)

// checkCollisions runs the collision pass and compacts whatever it removed.
//
// Asteroids are visited in order. An asteroid touching a vulnerable player
// damages it and ends the pass for this frame. Otherwise the asteroid takes
// at most one bullet: the earliest-fired bullet overlapping it. Hit bullets
// stay in play until the pass ends, so one bullet can destroy every asteroid
// it overlaps.
func (s *Session) checkCollisions() {
	s.spentBullets = resetMarks(s.spentBullets, len(s.bullets))
	s.destroyed = resetMarks(s.destroyed, len(s.asteroids))

	s.grid.Clear()
	for i, b := range s.bullets {
		s.grid.Insert(b.Bounds(), i)
	}

	playerBox := s.player.Bounds()
	for i, a := range s.asteroids {
		box := a.Bounds()

		if !s.player.Invincible && box.Overlaps(playerBox) {
			s.damagePlayer()
			break
		}

		hit := s.firstBulletHitting(box)
		if hit < 0 {
			continue
		}
		s.spentBullets[hit] = true
		if a.Hit() {
			s.destroyed[i] = true
			s.destroyAsteroid(a)
		}
	}

	s.asteroids = compact(s.asteroids, s.destroyed)
	s.bullets = compact(s.bullets, s.spentBullets)
}

// firstBulletHitting returns the index of the lowest-indexed bullet
// overlapping box, or -1.
func (s *Session) firstBulletHitting(box physics.Rect) int {
	first := -1
	s.grid.QueryAround(box, func(i int) bool {
		if first >= 0 && i > first {
			return false
		}
		if s.bullets[i].Bounds().Overlaps(box) {
			first = i
		}
		return false
	})
	return first
}

// destroyAsteroid queues the asteroid's fragments, awards its reward and
// leaves debris behind.
func (s *Session) destroyAsteroid(a *object.Asteroid) {
	s.pendingAsteroids = append(s.pendingAsteroids, a.Split(s.rng, s.spawner.MaxSpin)...)
	s.audio.Play(CueExplosion)
	s.burst(a.Bounds().Center())
	s.addScore(a.Reward())
	s.logger.Debug("asteroid destroyed", "size", a.Size, "score", s.score)
}

// damagePlayer applies one point of damage. A surviving player is moved back
// to the centre and becomes invincible for a while.
func (s *Session) damagePlayer() {
	res := s.player.ReceiveDamage(1)
	s.audio.Play(CueHit)
	s.logger.Debug("player hit", "health", res.Health)

	if res.Died {
		s.die()
		return
	}

	s.player.Pos = s.area.Center()
	s.startInvincibility()
}

// die ends the round and persists the high score. Persistence failures are
// logged and otherwise ignored.
func (s *Session) die() {
	s.dead = true
	s.invincibilityTimer.Pause()
	s.blinkTimer.Pause()
	s.player.Paused = true
	s.player.SetVisible(false)
	s.burst(s.player.Pos)
	s.audio.Play(CueMusicStop)

	if err := s.store.Save(s.highScore); err != nil {
		s.logger.Warn("saving high score", "err", err)
	}
	s.logger.Info("player died", "score", s.score, "highScore", s.highScore)
}

func (s *Session) startInvincibility() {
	s.player.Paused = true
	s.player.Invincible = true
	s.invincibilityTimer.Start()
	s.blinkTimer.Start()
}

func (s *Session) endInvincibility() {
	s.player.Paused = false
	s.player.Invincible = false
	s.player.SetVisible(true)
	s.blinkTimer.Pause()
}

func (s *Session) blink() {
	s.player.SetVisible(!s.player.Visible())
}

// burst spawns explosion debris at pos.
func (s *Session) burst(pos physics.Vector) {
	s.debris = append(s.debris, object.SpawnExplosion(pos,
		config.ExplosionParticles, config.ExplosionSpeed, config.ExplosionLifetime, s.rng)...)
}
