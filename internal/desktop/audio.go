package desktop

import (
	"bytes"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/tomz197/roids/internal/desktop/sound"
	"github.com/tomz197/roids/internal/loop"
)

// audioContext is process-wide; ebiten allows only one.
var audioContext *audio.Context

// ebitenAudio plays cues through ebiten's mixer. One-shot effects rewind
// their player so rapid repeats restart the clip instead of queueing.
type ebitenAudio struct {
	shoot      *audio.Player
	hit        *audio.Player
	explosions []*audio.Player
	music      *audio.Player
	logger     *log.Logger
}

func newEbitenAudio(logger *log.Logger) loop.Audio {
	if audioContext == nil {
		audioContext = audio.NewContext(sound.SampleRate)
	}
	clips := sound.Generate()

	a := &ebitenAudio{
		shoot:  audioContext.NewPlayerFromBytes(clips.Shoot),
		hit:    audioContext.NewPlayerFromBytes(clips.Hit),
		logger: logger.WithPrefix("audio"),
	}
	for _, e := range clips.Explosions {
		a.explosions = append(a.explosions, audioContext.NewPlayerFromBytes(e))
	}

	loopSrc := audio.NewInfiniteLoop(bytes.NewReader(clips.Music), int64(len(clips.Music)))
	music, err := audioContext.NewPlayer(loopSrc)
	if err != nil {
		a.logger.Warn("Music disabled", "err", err)
	} else {
		music.SetVolume(0.6)
		a.music = music
	}
	return a
}

// Play implements loop.Audio.
func (a *ebitenAudio) Play(cue loop.Cue) {
	switch cue {
	case loop.CueShoot:
		a.restart(a.shoot)
	case loop.CueHit:
		a.restart(a.hit)
	case loop.CueExplosion:
		a.restart(a.explosions[rand.Intn(len(a.explosions))])
	case loop.CueMusicStart:
		a.restart(a.music)
	case loop.CueMusicStop:
		if a.music != nil {
			a.music.Pause()
		}
	}
}

func (a *ebitenAudio) restart(p *audio.Player) {
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		a.logger.Debug("Rewind failed", "err", err)
		return
	}
	p.Play()
}
