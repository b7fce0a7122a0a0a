package loop

import (
	"math/rand"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/tomz197/roids/internal/input"
	"github.com/tomz197/roids/internal/loop/config"
	"github.com/tomz197/roids/internal/object"
	"github.com/tomz197/roids/internal/physics"
)

type recordingAudio struct {
	cues []Cue
}

func (a *recordingAudio) Play(c Cue) { a.cues = append(a.cues, c) }

func (a *recordingAudio) count(c Cue) int {
	n := 0
	for _, got := range a.cues {
		if got == c {
			n++
		}
	}
	return n
}

type recordingRenderer struct {
	sprites []object.Sprite
	labels  []string
}

func (r *recordingRenderer) DrawSprite(s object.Sprite) { r.sprites = append(r.sprites, s) }
func (r *recordingRenderer) DrawText(l object.Label)    { r.labels = append(r.labels, l.Value) }

func newTestSession(tweak func(*config.Game)) (*Session, *recordingAudio) {
	cfg := config.Default()
	cfg.InitialAsteroids = 0
	cfg.SpawnMin = time.Hour
	cfg.SpawnMax = time.Hour
	if tweak != nil {
		tweak(&cfg)
	}
	audio := &recordingAudio{}
	s := NewSession(Options{Config: cfg, Audio: audio, Rand: rand.New(rand.NewSource(7))})
	return s, audio
}

func TestInvincibilityWindow(t *testing.T) {
	s, audio := newTestSession(func(c *config.Game) {
		c.Invincibility = time.Second
		c.BlinkInterval = 100 * time.Millisecond
	})
	center := s.area.Center()
	s.QueueAsteroid(object.NewAsteroid(physics.Vec(center.X-20, center.Y-20), physics.Vec(1, 0), object.AsteroidLarge, 0, s.area))

	s.Step(100*time.Millisecond, input.Input{})
	if s.player.Health != 2 || !s.player.Invincible || !s.player.Paused {
		t.Fatalf("after first hit: health=%d invincible=%v paused=%v", s.player.Health, s.player.Invincible, s.player.Paused)
	}

	hidden := 0
	for i := 0; i < 10; i++ {
		s.Step(100*time.Millisecond, input.Input{Thrust: true, Left: true})
		if s.player.Health != 2 {
			t.Fatalf("frame %d: damaged while invincible (health %d)", i, s.player.Health)
		}
		if s.player.Pos != center || s.player.Rotation != 0 {
			t.Fatalf("frame %d: invincible player moved: %+v", i, s.player)
		}
		if !s.player.Visible() {
			hidden++
		}
	}
	if hidden == 0 {
		t.Fatal("player never blinked during invincibility")
	}

	s.Step(100*time.Millisecond, input.Input{})
	if s.player.Health != 1 {
		t.Fatalf("health after window = %d, want 1", s.player.Health)
	}
	if s.player.Pos != center {
		t.Fatalf("player at %+v, want centre", s.player.Pos)
	}
	if got := audio.count(CueHit); got != 2 {
		t.Fatalf("hit cues = %d, want 2", got)
	}
}

func TestInvincibilityEndsCleanly(t *testing.T) {
	s, _ := newTestSession(func(c *config.Game) { c.Invincibility = 200 * time.Millisecond })
	s.startInvincibility()
	for i := 0; i < 5; i++ {
		s.Step(100*time.Millisecond, input.Input{})
	}
	p := s.player
	if p.Invincible || p.Paused || !p.Visible() {
		t.Fatalf("player still protected: %+v", p)
	}
	if s.blinkTimer.Running() {
		t.Fatal("blink timer should be paused")
	}
}

func TestSpawnTimerQueuesAsteroids(t *testing.T) {
	s, _ := newTestSession(func(c *config.Game) {
		c.SpawnMin = 100 * time.Millisecond
		c.SpawnMax = 100 * time.Millisecond
	})
	s.Step(150*time.Millisecond, input.Input{})
	if len(s.asteroids) != 1 {
		t.Fatalf("asteroids = %d, want 1 admitted in the same frame", len(s.asteroids))
	}
}

func TestDebugSpawnKey(t *testing.T) {
	s, _ := newTestSession(nil)
	s.Step(frame(), input.Input{Pressed: input.Actions{Spawn: true}})
	if len(s.asteroids) != 1 {
		t.Fatalf("asteroids = %d, want 1", len(s.asteroids))
	}
}

func TestPartialConfigKeepsDefaultSpawnRate(t *testing.T) {
	s := NewSession(Options{
		Config: config.Game{Width: 800, Height: 640},
		Rand:   rand.New(rand.NewSource(1)),
	})
	for i := 0; i < 10; i++ {
		s.Step(16*time.Millisecond, input.Input{})
	}
	if n := len(s.asteroids) + len(s.pendingAsteroids); n != 0 {
		t.Fatalf("%d asteroids spawned within 160ms, want none", n)
	}
}

func TestInitialAsteroidsAdmittedOnFirstFrame(t *testing.T) {
	s, _ := newTestSession(func(c *config.Game) { c.InitialAsteroids = 4 })
	if len(s.pendingAsteroids) != 4 || len(s.asteroids) != 0 {
		t.Fatalf("before first frame: pending=%d live=%d", len(s.pendingAsteroids), len(s.asteroids))
	}
	s.Step(frame(), input.Input{})
	if len(s.asteroids) != 4 {
		t.Fatalf("live asteroids = %d, want 4", len(s.asteroids))
	}
}

func frame() time.Duration { return time.Second / 60 }

func TestBulletsCulledOffScreen(t *testing.T) {
	s, audio := newTestSession(nil)
	s.Step(frame(), input.Input{Pressed: input.Actions{Shoot: true}})
	if len(s.bullets) != 1 || audio.count(CueShoot) != 1 {
		t.Fatalf("bullets=%d shoot cues=%d, want 1 and 1", len(s.bullets), audio.count(CueShoot))
	}
	for i := 0; i < 20; i++ {
		s.Step(100*time.Millisecond, input.Input{})
	}
	if len(s.bullets) != 0 {
		t.Fatalf("bullet not culled: %+v", s.bullets[0].Pos)
	}
}

func TestShootingIgnoredWhilePaused(t *testing.T) {
	s, audio := newTestSession(nil)
	s.startInvincibility()
	s.Step(frame(), input.Input{Pressed: input.Actions{Shoot: true}})
	if len(s.bullets) != 0 || audio.count(CueShoot) != 0 {
		t.Fatalf("paused player fired: bullets=%d", len(s.bullets))
	}
}

func TestAsteroidAbsorbsOnlyFirstBullet(t *testing.T) {
	s, _ := newTestSession(nil)
	a := object.NewAsteroid(physics.Vec(100, 100), physics.Vec(1, 0), object.AsteroidSmall, 0, s.area)
	first := object.NewBullet(physics.Vec(104, 104), physics.Vec(1, 0))
	second := object.NewBullet(physics.Vec(106, 106), physics.Vec(1, 0))
	s.asteroids = []*object.Asteroid{a}
	s.bullets = []*object.Bullet{first, second}

	s.checkCollisions()

	if len(s.asteroids) != 0 {
		t.Fatal("asteroid not destroyed")
	}
	if len(s.bullets) != 1 || s.bullets[0] != second {
		t.Fatalf("remaining bullets = %v, want only the second", s.bullets)
	}
	if s.score != 100 {
		t.Fatalf("score = %d, want 100", s.score)
	}
}

func TestBulletDestroysEveryAsteroidItOverlaps(t *testing.T) {
	s, _ := newTestSession(nil)
	a1 := object.NewAsteroid(physics.Vec(100, 100), physics.Vec(1, 0), object.AsteroidSmall, 0, s.area)
	a2 := object.NewAsteroid(physics.Vec(105, 105), physics.Vec(1, 0), object.AsteroidSmall, 0, s.area)
	s.asteroids = []*object.Asteroid{a1, a2}
	s.bullets = []*object.Bullet{object.NewBullet(physics.Vec(108, 108), physics.Vec(1, 0))}

	s.checkCollisions()

	if len(s.asteroids) != 0 {
		t.Fatalf("live asteroids = %v, want both destroyed", s.asteroids)
	}
	if s.score != 200 {
		t.Fatalf("score = %d, want 200", s.score)
	}
	if len(s.bullets) != 0 {
		t.Fatal("bullet not removed after the pass")
	}
}

func TestPlayerHitStopsCollisionPass(t *testing.T) {
	s, _ := newTestSession(nil)
	center := s.area.Center()
	touching := object.NewAsteroid(physics.Vec(center.X-10, center.Y-10), physics.Vec(1, 0), object.AsteroidSmall, 0, s.area)
	shot := object.NewAsteroid(physics.Vec(100, 100), physics.Vec(1, 0), object.AsteroidSmall, 0, s.area)
	s.asteroids = []*object.Asteroid{touching, shot}
	s.bullets = []*object.Bullet{object.NewBullet(physics.Vec(104, 104), physics.Vec(1, 0))}

	s.checkCollisions()

	if s.player.Health != object.PlayerMaxHealth-1 {
		t.Fatalf("health = %d, want %d", s.player.Health, object.PlayerMaxHealth-1)
	}
	if len(s.asteroids) != 2 || len(s.bullets) != 1 {
		t.Fatalf("pass continued after player hit: asteroids=%d bullets=%d", len(s.asteroids), len(s.bullets))
	}
	if s.score != 0 {
		t.Fatalf("score = %d, want 0", s.score)
	}
}

func TestToughAsteroidSurvivesHit(t *testing.T) {
	s, _ := newTestSession(nil)
	a := object.NewAsteroid(physics.Vec(100, 100), physics.Vec(1, 0), object.AsteroidMedium, 0, s.area)
	a.Health = 2
	s.asteroids = []*object.Asteroid{a}
	s.bullets = []*object.Bullet{object.NewBullet(physics.Vec(104, 104), physics.Vec(1, 0))}

	s.checkCollisions()

	if len(s.asteroids) != 1 || len(s.bullets) != 0 || s.score != 0 {
		t.Fatalf("asteroids=%d bullets=%d score=%d, want 1, 0, 0", len(s.asteroids), len(s.bullets), s.score)
	}
}

func TestHighScoreIsRunningMax(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s, _ := newTestSession(nil)
		start := rapid.IntRange(0, 5000).Draw(t, "loaded")
		s.highScore = start
		best := start
		for i, pts := range rapid.SliceOf(rapid.IntRange(0, 300)).Draw(t, "rewards") {
			prev := s.highScore
			s.addScore(pts)
			if s.score > best {
				best = s.score
			}
			if s.highScore < prev {
				t.Fatalf("step %d: high score decreased %d -> %d", i, prev, s.highScore)
			}
			if s.highScore != best {
				t.Fatalf("step %d: high score = %d, want %d", i, s.highScore, best)
			}
		}
	})
}

func TestDrawShowsHUDAndBanner(t *testing.T) {
	s, _ := newTestSession(nil)
	s.QueueAsteroid(object.NewAsteroid(physics.Vec(10, 10), physics.Vec(1, 0), object.AsteroidSmall, 0, s.area))
	s.Step(frame(), input.Input{})

	r := &recordingRenderer{}
	s.Draw(r)
	if len(r.sprites) != 2 {
		t.Fatalf("sprites = %d, want asteroid and player", len(r.sprites))
	}
	if len(r.labels) != 2 || r.labels[0] != "Score: 0" || r.labels[1] != "High score: 0" {
		t.Fatalf("labels = %q", r.labels)
	}

	s.player.Health = 1
	s.damagePlayer()
	r = &recordingRenderer{}
	s.Draw(r)
	if len(r.labels) != 4 || r.labels[2] != "You lost!" {
		t.Fatalf("labels when dead = %q", r.labels)
	}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		items   []int
		removed []bool
		want    []int
	}{
		{[]int{1, 2, 3}, []bool{false, true, false}, []int{1, 3}},
		{[]int{1, 2, 3}, nil, []int{1, 2, 3}},
		{[]int{1, 2}, []bool{true, true}, []int{}},
	}
	for _, tt := range tests {
		got := compact(tt.items, tt.removed)
		if len(got) != len(tt.want) {
			t.Fatalf("compact = %v, want %v", got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("compact = %v, want %v", got, tt.want)
			}
		}
	}
}
