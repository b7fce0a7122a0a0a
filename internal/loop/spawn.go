package loop

// spawnAsteroid queues one asteroid on the edge of the gameplay area.
func (s *Session) spawnAsteroid() {
	a := s.spawner.Spawn()
	s.pendingAsteroids = append(s.pendingAsteroids, a)
	s.logger.Debug("asteroid spawned", "size", a.Size, "x", a.Pos.X, "y", a.Pos.Y)
}
