package config

import (
	"testing"
	"time"
)

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("ASTEROIDS_SPAWN_MIN", "0.5")
	t.Setenv("ASTEROIDS_SPAWN_MAX", "2")
	t.Setenv("ASTEROIDS_INITIAL", "9")

	g := FromEnv()
	if g.SpawnMin != 500*time.Millisecond || g.SpawnMax != 2*time.Second {
		t.Fatalf("spawn range = [%v, %v], want [500ms, 2s]", g.SpawnMin, g.SpawnMax)
	}
	if g.InitialAsteroids != 9 {
		t.Fatalf("InitialAsteroids = %d, want 9", g.InitialAsteroids)
	}
	if g.Width != AreaWidth || g.Height != AreaHeight {
		t.Fatalf("area = %vx%v, want %dx%d", g.Width, g.Height, AreaWidth, AreaHeight)
	}
}

func TestFromEnvIgnoresBadValues(t *testing.T) {
	t.Setenv("ASTEROIDS_SPAWN_MIN", "soon")
	t.Setenv("ASTEROIDS_INITIAL", "-4")

	g := FromEnv()
	if g.SpawnMin != Default().SpawnMin {
		t.Fatalf("SpawnMin = %v, want default", g.SpawnMin)
	}
	if g.InitialAsteroids != 0 {
		t.Fatalf("InitialAsteroids = %d, want clamped to 0", g.InitialAsteroids)
	}
}

func TestWithDefaults(t *testing.T) {
	if got := (Game{}).WithDefaults(); got != Default() {
		t.Fatalf("zero Game = %+v, want Default()", got)
	}

	g := Game{Width: 400, Height: 300}.WithDefaults()
	d := Default()
	if g.Width != 400 || g.Height != 300 {
		t.Fatalf("area = %vx%v, want 400x300 kept", g.Width, g.Height)
	}
	if g.SpawnMin != d.SpawnMin || g.SpawnMax != d.SpawnMax {
		t.Fatalf("spawn range = [%v, %v], want defaults", g.SpawnMin, g.SpawnMax)
	}
	if g.BlinkInterval != d.BlinkInterval || g.Invincibility != d.Invincibility {
		t.Fatalf("invincibility = %v/%v, want defaults", g.Invincibility, g.BlinkInterval)
	}
	if g.MinSpeed != d.MinSpeed || g.MaxSpeed != d.MaxSpeed {
		t.Fatalf("speeds = [%v, %v], want defaults", g.MinSpeed, g.MaxSpeed)
	}
	if g.InitialAsteroids != 0 {
		t.Fatalf("InitialAsteroids = %d, want 0 kept", g.InitialAsteroids)
	}

	custom := Default()
	custom.SpawnMin = time.Hour
	custom.InitialAsteroids = 1
	if got := custom.WithDefaults(); got != custom {
		t.Fatalf("fully set Game changed: %+v", got)
	}
}
