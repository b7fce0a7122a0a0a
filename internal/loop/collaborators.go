package loop

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Audio,HighScoreStore

// Cue is a sound event emitted by a session.
type Cue int

const (
	CueShoot Cue = iota
	CueHit
	CueExplosion
	CueMusicStart
	CueMusicStop
)

func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueHit:
		return "hit"
	case CueExplosion:
		return "explosion"
	case CueMusicStart:
		return "music-start"
	case CueMusicStop:
		return "music-stop"
	default:
		return "unknown"
	}
}

// Audio plays sound cues. Play must not block the frame loop.
type Audio interface {
	Play(cue Cue)
}

// NopAudio discards every cue.
type NopAudio struct{}

// Play implements Audio.
func (NopAudio) Play(Cue) {}

// HighScoreStore persists the best score between runs.
type HighScoreStore interface {
	// Load returns the stored high score. Implementations return 0 with a nil
	// error when nothing has been stored yet.
	Load() (int, error)
	// Save replaces the stored high score.
	Save(score int) error
}

type nopStore struct{}

func (nopStore) Load() (int, error) { return 0, nil }
func (nopStore) Save(int) error     { return nil }
