package loop

import (
	"time"

	"github.com/tomz197/roids/internal/input"
	"github.com/tomz197/roids/internal/object"
)

// Step advances the session by one frame.
//
// While the player is alive the frame runs: discrete actions, timers,
// asteroid admission, entity updates, culling, queued removals/admissions
// and the collision pass. While dead only debris animates and a restart
// press is honoured.
func (s *Session) Step(delta time.Duration, in input.Input) {
	ctx := object.UpdateContext{Delta: delta, Input: in, Area: s.area}

	if s.dead {
		s.updateDebris(ctx)
		s.cullDebris()
		if in.Pressed.Restart {
			s.Restart()
		}
		return
	}

	s.handleActions(in.Pressed)

	s.spawnTimer.Update(delta)
	s.invincibilityTimer.Update(delta)
	s.blinkTimer.Update(delta)

	s.admitAsteroids()

	s.updateObjects(ctx)

	s.cullBullets()
	s.cullDebris()

	s.applyQueued()

	s.checkCollisions()
}

// handleActions applies the frame's discrete key presses.
func (s *Session) handleActions(pressed input.Actions) {
	if pressed.Shoot && !s.player.Paused {
		s.pendingBullets = append(s.pendingBullets, object.NewBullet(s.player.Pos, s.player.Forward()))
		s.audio.Play(CueShoot)
	}
	if pressed.Spawn {
		s.spawnAsteroid()
	}
}

// admitAsteroids moves queued asteroids into the live set.
func (s *Session) admitAsteroids() {
	if len(s.pendingAsteroids) == 0 {
		return
	}
	s.asteroids = append(s.asteroids, s.pendingAsteroids...)
	clear(s.pendingAsteroids)
	s.pendingAsteroids = s.pendingAsteroids[:0]
}

// updateObjects advances the player, then asteroids, then bullets, then debris.
func (s *Session) updateObjects(ctx object.UpdateContext) {
	s.player.Update(ctx)
	for _, a := range s.asteroids {
		a.Update(ctx)
	}
	for _, b := range s.bullets {
		b.Update(ctx)
	}
	s.updateDebris(ctx)
}

func (s *Session) updateDebris(ctx object.UpdateContext) {
	for _, p := range s.debris {
		p.Update(ctx)
	}
}

// cullBullets queues every bullet that left the gameplay area for removal.
func (s *Session) cullBullets() {
	s.culledBullets = resetMarks(s.culledBullets, len(s.bullets))
	for i, b := range s.bullets {
		if b.OffScreen(s.area) {
			s.culledBullets[i] = true
		}
	}
}

// cullDebris drops expired particles and returns them to the pool.
func (s *Session) cullDebris() {
	kept := s.debris[:0]
	for _, p := range s.debris {
		if p.Expired() {
			object.ReleaseObject(p)
			continue
		}
		kept = append(kept, p)
	}
	clear(s.debris[len(kept):])
	s.debris = kept
}

// applyQueued removes culled bullets and admits the ones fired this frame.
func (s *Session) applyQueued() {
	s.bullets = compact(s.bullets, s.culledBullets)
	s.bullets = append(s.bullets, s.pendingBullets...)
	clear(s.pendingBullets)
	s.pendingBullets = s.pendingBullets[:0]
}

// resetMarks returns marks resized to n with every entry false.
func resetMarks(marks []bool, n int) []bool {
	if cap(marks) < n {
		marks = make([]bool, n)
	}
	marks = marks[:n]
	clear(marks)
	return marks
}

// compact removes the items whose mark is set, reusing the backing array.
func compact[T any](items []T, removed []bool) []T {
	kept := items[:0]
	for i, item := range items {
		if i < len(removed) && removed[i] {
			continue
		}
		kept = append(kept, item)
	}
	clear(items[len(kept):])
	return kept
}
